package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/convo-lang/convo/evaluator"
	"github.com/convo-lang/convo/internal/cli/ui"
	"github.com/convo-lang/convo/internal/clog"
	"github.com/convo-lang/convo/internal/config"
	"github.com/convo-lang/convo/lexer"
	"github.com/convo-lang/convo/object"
	"github.com/convo-lang/convo/parser"
)

var runCmd = &cobra.Command{
	Use:   "run <file>.convo",
	Short: "Run a convo script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(cmd, args[0])
	},
	SilenceUsage: true,
}

func loadCLIConfig(cmd *cobra.Command) (*config.Config, *clog.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	tabWidth, _ := cmd.Flags().GetInt("tab-width")

	cfg, err := config.Load(".convorc.yaml")
	if err != nil {
		return nil, nil, &exitCode{code: 2, err: err}
	}
	if noColor {
		cfg.NoColor = true
	}
	if tabWidth > 0 {
		cfg.TabWidth = tabWidth
	}
	return cfg, clog.New(verbose), nil
}

func runScript(cmd *cobra.Command, filename string) error {
	cfg, log, err := loadCLIConfig(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.StartupError(fmt.Sprintf("reading %s: %s", filename, err), cfg.NoColor))
		return &exitCode{code: 2, err: err}
	}

	log.Debugw("parsing script", "file", filename)
	l := lexer.NewWithTabWidth(string(data), cfg.TabWidth)
	p := parser.New(l)
	program := p.ParseProgram()

	errs := append(append([]string{}, l.Errors()...), p.Errors()...)
	if len(errs) != 0 {
		for _, msg := range errs {
			fmt.Fprint(os.Stderr, ui.ParseError(msg, cfg.NoColor))
		}
		return &exitCode{code: 2, err: fmt.Errorf("%d parse error(s)", len(errs))}
	}

	log.Debugw("evaluating script", "file", filename)
	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)

	switch v := result.(type) {
	case *object.Thrown:
		fmt.Fprint(os.Stderr, ui.RuntimeError("UncaughtThrow", v.Value.Inspect(), cfg.NoColor))
		return &exitCode{code: 1, err: fmt.Errorf("uncaught throw")}
	case *object.Error:
		fmt.Fprint(os.Stderr, ui.RuntimeError(v.Kind, v.Message, cfg.NoColor))
		return &exitCode{code: 1, err: fmt.Errorf("%s: %s", v.Kind, v.Message)}
	}
	return nil
}
