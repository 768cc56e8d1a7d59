package complexnum_test

import (
	"testing"

	"github.com/katalvlaran/cispoly/complexnum"
)

// sink keeps results alive so the compiler cannot drop the benchmarked work.
var sink complexnum.Complex

// BenchmarkComplex_Mul measures the rectangular product.
func BenchmarkComplex_Mul(b *testing.B) {
	x, y := complexnum.New(1.5, -2.25), complexnum.New(0.75, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = x.Mul(y)
	}
}

// BenchmarkComplex_Pow measures the polar exponentiation path.
func BenchmarkComplex_Pow(b *testing.B) {
	x := complexnum.New(1.5, -2.25)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = x.Pow(7)
	}
}

// BenchmarkComplex_String measures rendering of a two-term value.
func BenchmarkComplex_String(b *testing.B) {
	x := complexnum.New(-1.5, 2.25)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}
