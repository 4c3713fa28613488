// ==============================================================================================
// FILE: token/token_benchmark_test.go
// PURPOSE: Benchmarks keyword lookup, the hottest path in tokenizing.
// ==============================================================================================

package token

import "testing"

func BenchmarkLookupIdentKeyword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		LookupIdent("define")
	}
}

func BenchmarkLookupIdentIdentifier(b *testing.B) {
	for i := 0; i < b.N; i++ {
		LookupIdent("totalScore")
	}
}
