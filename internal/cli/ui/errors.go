// Package ui renders REPL and CLI output: colorized error/success
// messages and the startup banner.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Level is the severity of a rendered message.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
)

// MessageOptions configures FormatMessage.
type MessageOptions struct {
	Level   Level
	Context string
	Problem string
	Detail  string
	NoColor bool
}

// FormatMessage renders a single colorized line (or two, with Detail).
func FormatMessage(opts MessageOptions) string {
	var b strings.Builder

	var headerColor *color.Color
	var symbol string
	switch opts.Level {
	case LevelError:
		headerColor = color.New(color.FgRed, color.Bold)
		symbol = "✗"
	case LevelWarning:
		headerColor = color.New(color.FgYellow, color.Bold)
		symbol = "!"
	case LevelInfo:
		headerColor = color.New(color.FgCyan, color.Bold)
		symbol = "i"
	}
	if opts.NoColor {
		headerColor.DisableColor()
	}

	if opts.Context != "" {
		headerColor.Fprintf(&b, "%s %s: %s\n", symbol, opts.Context, opts.Problem)
	} else {
		headerColor.Fprintf(&b, "%s %s\n", symbol, opts.Problem)
	}
	if opts.Detail != "" {
		fmt.Fprintf(&b, "  %s\n", opts.Detail)
	}
	return b.String()
}

// WriteMessage writes a formatted message to w.
func WriteMessage(w io.Writer, opts MessageOptions) {
	fmt.Fprint(w, FormatMessage(opts))
}

// FormatSuccess renders a green success line.
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// ParseError renders a SyntaxError raised by the lexer or parser.
func ParseError(message string, noColor bool) string {
	return FormatMessage(MessageOptions{Level: LevelError, Context: "SYNTAX ERROR", Problem: message, NoColor: noColor})
}

// RuntimeError renders an uncaught language-level error (a Throw that
// escaped every Try/Catch, or an evaluator-raised Error).
func RuntimeError(kind, message string, noColor bool) string {
	return FormatMessage(MessageOptions{Level: LevelError, Context: kind, Problem: message, NoColor: noColor})
}

// StartupError renders a host-level failure (bad flags, missing file,
// unreadable config) before the interpreter ever runs.
func StartupError(message string, noColor bool) string {
	return FormatMessage(MessageOptions{Level: LevelError, Context: "STARTUP ERROR", Problem: message, NoColor: noColor})
}
