// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop interface.
//          It connects the user input stream to the interpreter pipeline (Lexer->Parser->Evaluator)
//          and manages the persistent session state.
// ==============================================================================================

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/convo-lang/convo/evaluator"
	"github.com/convo-lang/convo/internal/cli/ui"
	"github.com/convo-lang/convo/internal/clog"
	"github.com/convo-lang/convo/internal/config"
	"github.com/convo-lang/convo/lexer"
	"github.com/convo-lang/convo/object"
	"github.com/convo-lang/convo/parser"
	"github.com/convo-lang/convo/token"
)

// Options configures a REPL session.
type Options struct {
	Version string
	Config  *config.Config
	Log     *clog.Logger
}

// Start launches the Read-Eval-Print Loop.
// It listens to 'in', evaluates code, and writes results to 'out'.
// The environment persists across the session to allow variable storage.
func Start(in io.Reader, out io.Writer, opts Options) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Log == nil {
		opts.Log = clog.Nop()
	}
	noColor := opts.Config.NoColor
	prompt := opts.Config.Prompt
	if prompt == "" {
		prompt = "convo> "
	}
	promptColor := color.New(color.FgCyan)
	if noColor {
		promptColor.DisableColor()
	}

	scanner := bufio.NewScanner(in)
	env := object.NewEnvironment()
	debugMode := false

	ui.PrintBanner(out, opts.Version, noColor)
	printHelp(out, noColor)
	opts.Log.Debugw("repl started", "version", opts.Version)

	for {
		fmt.Fprint(out, promptColor.Sprint(prompt))
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			switch line {
			case ".exit":
				fmt.Fprintln(out, ui.FormatSuccess("Goodbye!", noColor))
				return
			case ".clear":
				env = object.NewEnvironment()
				fmt.Fprintln(out, ui.FormatSuccess("Environment cleared (memory reset).", noColor))
				continue
			case ".debug":
				debugMode = !debugMode
				status := "DISABLED"
				if debugMode {
					status = "ENABLED"
				}
				fmt.Fprintf(out, "Debug mode %s\n", status)
				continue
			case ".help":
				printHelp(out, noColor)
				continue
			default:
				fmt.Fprint(out, ui.FormatMessage(ui.MessageOptions{
					Level:   ui.LevelWarning,
					Problem: fmt.Sprintf("Unknown command: %s. Type .help for info.", line),
					NoColor: noColor,
				}))
				continue
			}
		}

		if debugMode {
			printTokens(out, line, opts.Config.TabWidth)
		}

		l := lexer.NewWithTabWidth(line, opts.Config.TabWidth)
		p := parser.New(l)
		program := p.ParseProgram()

		if len(p.Errors()) != 0 {
			printParserErrors(out, p.Errors(), noColor)
			continue
		}

		if debugMode {
			printAST(out, program)
		}

		opts.Log.Debugw("evaluating line", "line", line)
		evaluated := evaluator.Eval(program, env)
		if evaluated != nil {
			printEvalResult(out, evaluated, noColor)
		}
	}
}

func printHelp(out io.Writer, noColor bool) {
	gray := color.New(color.FgHiBlack)
	if noColor {
		gray.DisableColor()
	}
	fmt.Fprintln(out, gray.Sprint("Commands:"))
	fmt.Fprintln(out, "  .exit   Quit the REPL")
	fmt.Fprintln(out, "  .clear  Reset memory")
	fmt.Fprintln(out, "  .debug  Toggle verbose AST/Token output")
	fmt.Fprintln(out, "  .help   Show this message")
	fmt.Fprintln(out)
}

func printTokens(out io.Writer, line string, tabWidth int) {
	fmt.Fprintln(out, "┌── [ TOKENS ] ──────────────────────────────────────────┐")
	l := lexer.NewWithTabWidth(line, tabWidth)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		fmt.Fprintf(out, "│ %-15s : %s\n", tok.Type, tok.Literal)
	}
	fmt.Fprintln(out, "└────────────────────────────────────────────────────────┘")
}

func printAST(out io.Writer, program fmt.Stringer) {
	fmt.Fprintln(out, "┌── [ AST TREE ] ────────────────────────────────────────┐")
	if str := program.String(); str != "" {
		fmt.Fprintf(out, "%s\n", str)
	}
	fmt.Fprintln(out, "└────────────────────────────────────────────────────────┘")
}

func printParserErrors(out io.Writer, errors []string, noColor bool) {
	for _, msg := range errors {
		fmt.Fprint(out, ui.ParseError(msg, noColor))
	}
}

// printEvalResult formats the output based on object type.
func printEvalResult(out io.Writer, obj object.Object, noColor bool) {
	if obj == nil || obj.Type() == object.NULL_OBJ {
		return
	}

	str := obj.Inspect()

	mk := func(c color.Attribute) *color.Color {
		col := color.New(c)
		if noColor {
			col.DisableColor()
		}
		return col
	}

	switch obj := obj.(type) {
	case *object.Error:
		fmt.Fprint(out, ui.RuntimeError(obj.Kind, obj.Message, noColor))
	case *object.Integer, *object.Float:
		fmt.Fprintln(out, mk(color.FgYellow).Sprint(str))
	case *object.Boolean:
		c := color.FgGreen
		if !obj.Value {
			c = color.FgRed
		}
		fmt.Fprintln(out, mk(c).Sprint(str))
	case *object.String:
		fmt.Fprintln(out, mk(color.FgGreen).Sprint(str))
	case *object.ReturnValue:
		printEvalResult(out, obj.Value, noColor)
	case *object.Function:
		fmt.Fprintln(out, mk(color.FgMagenta).Sprint("(function)"))
	case *object.Builtin:
		fmt.Fprintln(out, mk(color.FgMagenta).Sprint("(builtin function)"))
	case *object.List:
		fmt.Fprintln(out, mk(color.FgBlue).Sprint(str))
	case *object.Dict:
		fmt.Fprintln(out, mk(color.FgBlue).Sprint(str))
	case *object.Class:
		fmt.Fprintln(out, mk(color.FgCyan).Sprint(str))
	case *object.Instance:
		fmt.Fprintln(out, mk(color.FgCyan).Sprint(str))
	default:
		fmt.Fprintf(out, "%s\n", str)
	}
}
