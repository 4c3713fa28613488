// ==============================================================================================
// FILE: main_benchmark_test.go
// ==============================================================================================
// PURPOSE: System-wide benchmarks.
//          Measures the performance of the entire interpreter pipeline (parsing + evaluation)
//          under heavy load conditions.
// ==============================================================================================

package tests

import (
	"strings"
	"testing"

	"github.com/convo-lang/convo/evaluator"
	"github.com/convo-lang/convo/lexer"
	"github.com/convo-lang/convo/object"
	"github.com/convo-lang/convo/parser"
)

func benchRun(input string) {
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	env := object.NewEnvironment()
	evaluator.Eval(program, env)
}

// BenchmarkSystem_HeavyLoop measures the interpretation speed of iterative logic.
func BenchmarkSystem_HeavyLoop(b *testing.B) {
	input := `Let sum be 0
Let counter be 0
While counter less than 1000 do:
    Let sum be sum + 1
    Let counter be counter + 1
sum
`
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchRun(input)
	}
}

// BenchmarkSystem_DeepRecursion measures the overhead of stack frame allocation
// and environment switching.
func BenchmarkSystem_DeepRecursion(b *testing.B) {
	input := `Define dive with (n):
    If n equals 0 then:
        Return 0
    Return dive(n - 1)

dive(200)
`
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchRun(input)
	}
}

// BenchmarkSystem_StringConcatenation measures the memory allocation overhead
// for string operations in a loop.
func BenchmarkSystem_StringConcatenation(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("Let str be \"\"\n")
	for i := 0; i < 100; i++ {
		sb.WriteString("Let str be str + \"a\"\n")
	}
	sb.WriteString("str\n")
	input := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchRun(input)
	}
}
