// ==============================================================================================
// FILE: repl/repl_benchmark_test.go
// ==============================================================================================
// PURPOSE: Performance benchmarks for the REPL loop.
//          Measures startup overhead and input processing latency.
// ==============================================================================================

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/convo-lang/convo/internal/config"
)

// BenchmarkREPL_StartupAndExit measures the cost of initializing the REPL environment.
func BenchmarkREPL_StartupAndExit(b *testing.B) {
	cfg := config.Default()
	cfg.NoColor = true
	for i := 0; i < b.N; i++ {
		in := strings.NewReader(".exit\n")
		var out bytes.Buffer
		Start(in, &out, Options{Version: "bench", Config: cfg})
	}
}

// BenchmarkREPL_Calculation measures throughput for a simple calculation cycle.
func BenchmarkREPL_Calculation(b *testing.B) {
	cfg := config.Default()
	cfg.NoColor = true
	for i := 0; i < b.N; i++ {
		in := strings.NewReader("10 * 10 + 5\n.exit\n")
		var out bytes.Buffer
		Start(in, &out, Options{Version: "bench", Config: cfg})
	}
}
