package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/convo-lang/convo/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive convo session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd)
	},
	SilenceUsage: true,
}

func runREPL(cmd *cobra.Command) error {
	cfg, log, err := loadCLIConfig(cmd)
	if err != nil {
		return err
	}
	repl.Start(os.Stdin, os.Stdout, repl.Options{Version: Version, Config: cfg, Log: log})
	return nil
}
