// ==============================================================================================
// FILE: cmd/convo/main.go
// PURPOSE: Entry point for the convo CLI, built on cobra.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build metadata, overridable via -ldflags at release time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "convo",
		Short: "Convo is an English-like scripting language",
		Long: `Convo is a dynamically-typed, English-like scripting language with a
lexer, recursive-descent parser, and tree-walking evaluator. Running convo
with no subcommand and no file starts the REPL.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return runScript(cmd, args[0])
			}
			return runREPL(cmd)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable development logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().Int("tab-width", 0, "override the configured tab width")

	rootCmd.AddCommand(runCmd, replCmd, tokensCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeForError(err))
	}
}

// exitCode lets subcommands request a specific process exit status without
// cobra's default of always exiting 1 on error.
type exitCode struct {
	code int
	err  error
}

func (e *exitCode) Error() string { return e.err.Error() }
func (e *exitCode) Unwrap() error { return e.err }

func exitCodeForError(err error) int {
	var ec *exitCode
	if e, ok := err.(*exitCode); ok {
		ec = e
	}
	if ec != nil {
		return ec.code
	}
	return 2
}
