// ==============================================================================================
// FILE: lexer/lexer_benchmark_test.go
// PURPOSE: Benchmarks full tokenization of a representative program.
// ==============================================================================================

package lexer

import (
	"testing"

	"github.com/convo-lang/convo/token"
)

const benchmarkProgram = `Define add with (a, b):
    Return a + b

Let i be 0
While i less than 100 do:
    Let i be i + 1
    If i greater than 50 do:
        Say i
`

func BenchmarkNextTokenFullProgram(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := New(benchmarkProgram)
		for {
			tok := l.NextToken()
			if tok.Type == token.EOF {
				break
			}
		}
	}
}
