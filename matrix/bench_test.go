// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvpack/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
	sinkF float64
)

// fillDenseSeq writes a deterministic, seed-dependent pattern into m.
func fillDenseSeq(b *testing.B, m *matrix.Dense, seed int) {
	b.Helper()
	if err := m.Apply(func(i, j int, _ float64) float64 {
		return float64((i*31+j*17+seed)%97) / 97
	}); err != nil {
		b.Fatal(err)
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := MustDense(b, n, n), MustDense(b, n, n)
			fillDenseSeq(b, A, 1337)
			fillDenseSeq(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sum(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAddFallback(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := MustDense(b, n, n), MustDense(b, n, n)
			fillDenseSeq(b, A, 1)
			fillDenseSeq(b, B, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(hide{A}, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := MustDense(b, n, n), MustDense(b, n, n)
			fillDenseSeq(b, A, 3)
			fillDenseSeq(b, B, 4)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Product(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			fillDenseSeq(b, A, 5)
			x := make([]float64, n)
			for i := range x {
				x[i] = float64(i%7) - 3
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVecMul(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkNormFrobenius(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			fillDenseSeq(b, A, 6)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := matrix.NormFrobenius(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}
