// ==============================================================================================
// FILE: repl/repl_unit_test.go
// ==============================================================================================
// PURPOSE: Unit tests for basic REPL functionality.
//          Verifies that commands work and simple calculations produce output.
// ==============================================================================================

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/convo-lang/convo/internal/config"
)

// runSession simulates a REPL session over input, returning everything the
// REPL wrote to its out writer.
func runSession(input string) string {
	in := strings.NewReader(input)
	var out bytes.Buffer
	cfg := config.Default()
	cfg.NoColor = true
	Start(in, &out, Options{Version: "test", Config: cfg})
	return out.String()
}

func TestREPL_Math(t *testing.T) {
	output := runSession("10 + 20\n.exit\n")
	require.Contains(t, output, "30")
}

func TestREPL_VariablePersistence(t *testing.T) {
	output := runSession("Let x be 50\nx + 10\n.exit\n")
	require.Contains(t, output, "60")
}

func TestREPL_Commands(t *testing.T) {
	output := runSession(".debug\nLet x be 10\n.clear\nx\n.exit\n")

	require.Contains(t, output, "[ TOKENS ]")
	require.Contains(t, output, "[ AST TREE ]")
	require.Contains(t, output, "NameError")
}
