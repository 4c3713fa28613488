package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/convo-lang/convo/internal/cli/ui"
	"github.com/convo-lang/convo/lexer"
	"github.com/convo-lang/convo/token"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>.convo",
	Short: "Print the lexer's token stream for a script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadCLIConfig(cmd)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprint(os.Stderr, ui.StartupError(fmt.Sprintf("reading %s: %s", args[0], err), cfg.NoColor))
			return &exitCode{code: 2, err: err}
		}

		l := lexer.NewWithTabWidth(string(data), cfg.TabWidth)
		for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
			fmt.Printf("%-15s %q\n", tok.Type, tok.Literal)
			if tok.Type == token.ILLEGAL {
				return &exitCode{code: 1, err: fmt.Errorf("illegal token at line %d", tok.Line)}
			}
		}
		return nil
	},
	SilenceUsage: true,
}
