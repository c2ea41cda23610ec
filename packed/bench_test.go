// SPDX-License-Identifier: MIT

package packed_test

import (
	"testing"

	"github.com/katalvlaran/lvpack/matrix"
	"github.com/katalvlaran/lvpack/packed"
)

var (
	sinkMatrix matrix.Matrix
	sinkFloat  float64
)

func benchSym(b *testing.B, n int) *packed.Symmetric {
	b.Helper()
	s, err := packed.NewSymmetric(n)
	if err != nil {
		b.Fatal(err)
	}
	for i := range s.RawData() {
		s.RawData()[i] = float64(i%17) - 8
	}

	return s
}

func BenchmarkSymmetricAdd_Packed_256(b *testing.B) {
	x, y := benchSym(b, 256), benchSym(b, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMatrix, _ = x.Add(y)
	}
}

func BenchmarkSymmetricAdd_Generic_256(b *testing.B) {
	x, y := benchSym(b, 256), benchSym(b, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMatrix, _ = x.Add(hide{y})
	}
}

func BenchmarkSymmetricAt_256(b *testing.B) {
	s := benchSym(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkFloat, _ = s.At(i%256, (i*7)%256)
	}
}

func BenchmarkSymmetricModulus_512(b *testing.B) {
	s := benchSym(b, 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, _ := s.Modulus(3)
		sinkFloat = m.AtDiagonal(0)
	}
}
