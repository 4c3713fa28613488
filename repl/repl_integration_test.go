// ==============================================================================================
// FILE: repl/repl_integration_test.go
// ==============================================================================================
// PURPOSE: Integration tests for the REPL.
//          Validates multi-line interactions and richer value types (lists, dicts).
// ==============================================================================================

package repl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegration_ListAndDictSession(t *testing.T) {
	input := "Let scores be [10, 20, 30]\n" +
		"scores[2]\n" +
		`Let profile be {"name": "Convo"}` + "\n" +
		`profile["name"]` + "\n" +
		".exit\n"

	output := runSession(input)

	require.Contains(t, output, "30")
	require.Contains(t, output, "Convo")
}

func TestIntegration_ImportPersistsAcrossLines(t *testing.T) {
	input := "Import strings\n" +
		`upper("hi")` + "\n" +
		`upper("there")` + "\n" +
		".exit\n"

	output := runSession(input)

	require.Contains(t, output, "HI")
	require.Contains(t, output, "THERE")
}
