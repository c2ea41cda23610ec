// SPDX-License-Identifier: MIT

package packed

import (
	"github.com/katalvlaran/lvpack/matrix"
	"gonum.org/v1/gonum/mat"
)

const (
	opFromGonum      = "SymmetricFromGonum"
	opLowerFromGonum = "LowerTriangularFromGonum"
)

// gonumView adapts a gonum mat.Matrix to matrix.Matrix (read-only).
type gonumView struct{ m mat.Matrix }

func (g gonumView) Rows() int { r, _ := g.m.Dims(); return r }
func (g gonumView) Cols() int { _, c := g.m.Dims(); return c }

func (g gonumView) At(i, j int) (float64, error) {
	r, c := g.m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, matrix.ErrOutOfRange
	}

	return g.m.At(i, j), nil
}

func (g gonumView) Set(int, int, float64) error { return matrix.ErrStructuralZero }

func (g gonumView) Clone() matrix.Matrix { return g }

// ToSymDense returns a gonum SymDense holding a copy of s.
func (s *Symmetric) ToSymDense() *mat.SymDense {
	n := s.Order()
	out := mat.NewSymDense(n, nil)
	var r, c int
	for c = 0; c < n; c++ {
		for r = 0; r <= c; r++ {
			out.SetSym(r, c, s.AtUpper(r, c))
		}
	}

	return out
}

// ToTriDense returns a gonum lower TriDense holding a copy of l.
func (l *LowerTriangular) ToTriDense() *mat.TriDense {
	n := l.Order()
	out := mat.NewTriDense(n, mat.Lower, nil)
	var r, c int
	for r = 0; r < n; r++ {
		for c = 0; c <= r; c++ {
			out.SetTri(r, c, l.AtLower(r, c))
		}
	}

	return out
}

// SymmetricFromGonum copies a square gonum matrix, validating symmetry like
// NewSymmetricFrom. Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry.
func SymmetricFromGonum(m mat.Matrix, opts ...Option) (*Symmetric, error) {
	if m == nil {
		return nil, packedErrorf(opFromGonum, matrix.ErrNilMatrix)
	}
	s, err := NewSymmetricFrom(gonumView{m: m}, opts...)
	if err != nil {
		return nil, packedErrorf(opFromGonum, err)
	}

	return s, nil
}

// LowerTriangularFromGonum copies a square gonum matrix whose strict upper
// triangle is zero. Errors: ErrNilMatrix, ErrDimensionMismatch, ErrStructuralZero.
func LowerTriangularFromGonum(m mat.Matrix, opts ...Option) (*LowerTriangular, error) {
	if m == nil {
		return nil, packedErrorf(opLowerFromGonum, matrix.ErrNilMatrix)
	}
	l, err := NewLowerTriangularFrom(gonumView{m: m}, opts...)
	if err != nil {
		return nil, packedErrorf(opLowerFromGonum, err)
	}

	return l, nil
}
