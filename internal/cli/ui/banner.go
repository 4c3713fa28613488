package ui

import (
	"fmt"
	"io"

	"github.com/phillarmonic/figlet/figletlib"
)

// PrintBanner renders the REPL startup banner to w. It falls back to a
// plain text line if the embedded font can't be loaded, since a missing
// banner should never stop the REPL from starting.
func PrintBanner(w io.Writer, version string, noColor bool) {
	loader := figletlib.NewEmbededLoader()
	font, err := loader.GetFontByName("standard")
	if err != nil || noColor {
		fmt.Fprintln(w, "Convo")
		fmt.Fprintf(w, "a conversational scripting language — version %s\n\n", version)
		return
	}

	startColor, _ := figletlib.ParseColor("#6FE3FF")
	endColor, _ := figletlib.ParseColor("#9B7BFF")
	colorConfig := figletlib.ColorConfig{
		Mode:       figletlib.ColorModeGradient,
		StartColor: startColor,
		EndColor:   endColor,
	}

	figletlib.PrintColoredMsg("Convo", font, 80, font.Settings(), "left", colorConfig)
	fmt.Fprintf(w, "a conversational scripting language — version %s\n", version)
	fmt.Fprintln(w, "type .help for REPL commands, .exit to quit")
	fmt.Fprintln(w)
}
