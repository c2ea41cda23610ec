// SPDX-License-Identifier: MIT

package packed

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpack/matrix"
	"github.com/katalvlaran/lvpack/provider"
	"gonum.org/v1/gonum/stat/distuv"
)

// LowerTriangular is an N×N lower-triangular matrix in packed row-major
// storage: offset of (r,c), r ≥ c, is r(r+1)/2 + c. Cells above the diagonal
// are not stored; they read as 0 and reject every write.
type LowerTriangular struct {
	scheme IndexScheme
	data   []float64
	opts   Options
}

// Compile-time assertions.
var (
	_ matrix.Matrix      = (*LowerTriangular)(nil)
	_ matrix.Layouter    = (*LowerTriangular)(nil)
	_ matrix.Symmetricer = (*LowerTriangular)(nil)
	_ fmt.Stringer       = (*LowerTriangular)(nil)
)

// NewLowerTriangular creates a zero-filled order-n lower-triangular matrix.
// Errors: ErrInvalidDimensions for n < 1.
func NewLowerTriangular(n int, opts ...Option) (*LowerTriangular, error) {
	scheme, err := NewLowerScheme(n)
	if err != nil {
		return nil, packedErrorf(opNewLower, err)
	}

	return &LowerTriangular{
		scheme: scheme,
		data:   make([]float64, scheme.DataLength()),
		opts:   gatherOptions(opts...),
	}, nil
}

// WrapLowerTriangular aliases a caller-owned lower-packed array (no copy).
// Errors: ErrInvalidDimensions, ErrDimensionMismatch (len(data) != N(N+1)/2).
func WrapLowerTriangular(n int, data []float64, opts ...Option) (*LowerTriangular, error) {
	scheme, err := NewLowerScheme(n)
	if err != nil {
		return nil, packedErrorf(opWrapLower, err)
	}
	if len(data) != scheme.DataLength() {
		return nil, packedErrorf(opWrapLower,
			fmt.Errorf("len(data)=%d, want %d: %w", len(data), scheme.DataLength(), matrix.ErrDimensionMismatch))
	}

	return &LowerTriangular{scheme: scheme, data: data, opts: gatherOptions(opts...)}, nil
}

// NewLowerTriangularFrom2D deep-copies a square 2-D array whose strict upper
// triangle is zero.
// Errors: ErrInvalidDimensions (empty), ErrDimensionMismatch (non-square or
// ragged), ErrStructuralZero (non-zero above the diagonal), ErrNaNInf.
// Complexity: O(N²).
func NewLowerTriangularFrom2D(rows [][]float64, opts ...Option) (*LowerTriangular, error) {
	n := len(rows)
	if n == 0 {
		return nil, packedErrorf(opLowerFrom2D, matrix.ErrInvalidDimensions)
	}
	l, err := NewLowerTriangular(n, opts...)
	if err != nil {
		return nil, packedErrorf(opLowerFrom2D, err)
	}
	var r, c int
	for r = 0; r < n; r++ {
		if len(rows[r]) != n {
			return nil, packedErrorf(opLowerFrom2D, matrix.ErrDimensionMismatch)
		}
		for c = 0; c < n; c++ {
			v := rows[r][c]
			if r < c {
				if v != 0 {
					return nil, cellErrorf(opLowerFrom2D, r, c, matrix.ErrStructuralZero)
				}
				continue
			}
			if l.opts.validateNaNInf && isNonFinite(v) {
				return nil, cellErrorf(opLowerFrom2D, r, c, matrix.ErrNaNInf)
			}
			l.data[l.scheme.IndexOf(r, c)] = v
		}
	}

	return l, nil
}

// NewLowerTriangularFrom copies any square matrix whose strict upper triangle
// is zero. Whole-array copy when m reports LayoutPackedLower with the same order.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrStructuralZero, ErrNaNInf.
func NewLowerTriangularFrom(m matrix.Matrix, opts ...Option) (*LowerTriangular, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, packedErrorf(opLowerFrom, err)
	}
	l, err := NewLowerTriangular(m.Rows(), opts...)
	if err != nil {
		return nil, packedErrorf(opLowerFrom, err)
	}
	if src, ok := flatOf(l, m); ok {
		if l.opts.validateNaNInf {
			if err = requireFinite(src); err != nil {
				return nil, packedErrorf(opLowerFrom, err)
			}
		}
		copy(l.data, src)

		return l, nil
	}

	n := m.Rows()
	var r, c int
	var v float64
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			if v, err = m.At(r, c); err != nil {
				return nil, cellErrorf(opLowerFrom, r, c, err)
			}
			if r < c {
				if v != 0 {
					return nil, cellErrorf(opLowerFrom, r, c, matrix.ErrStructuralZero)
				}
				continue
			}
			if l.opts.validateNaNInf && isNonFinite(v) {
				return nil, cellErrorf(opLowerFrom, r, c, matrix.ErrNaNInf)
			}
			l.data[l.scheme.IndexOf(r, c)] = v
		}
	}

	return l, nil
}

// Order returns N.
func (l *LowerTriangular) Order() int { return l.scheme.Order() }

// Rows returns N.
func (l *LowerTriangular) Rows() int { return l.scheme.Order() }

// Cols returns N.
func (l *LowerTriangular) Cols() int { return l.scheme.Order() }

// Layout reports LayoutPackedLower.
func (l *LowerTriangular) Layout() matrix.Layout { return matrix.LayoutPackedLower }

// Indexer returns the lower index scheme.
func (l *LowerTriangular) Indexer() IndexScheme { return l.scheme }

// RawData exposes the live packed array (read-only contract).
func (l *LowerTriangular) RawData() []float64 { return l.data }

// IsSymmetric scans the strict lower triangle on every call: a lower
// triangular matrix is symmetric iff it is diagonal. Complexity: O(N²/2).
func (l *LowerTriangular) IsSymmetric() bool {
	var r, c int
	for r = 1; r < l.Order(); r++ {
		for c = 0; c < r; c++ {
			if l.AtLower(r, c) != 0 {
				return false
			}
		}
	}

	return true
}

func (l *LowerTriangular) inBounds(row, col int) bool {
	n := l.scheme.Order()

	return row >= 0 && row < n && col >= 0 && col < n
}

// At returns the value at (row, col); cells above the diagonal read as 0.
// Errors: ErrOutOfRange.
func (l *LowerTriangular) At(row, col int) (float64, error) {
	if !l.inBounds(row, col) {
		return 0, cellErrorf(opAt, row, col, matrix.ErrOutOfRange)
	}
	if row < col {
		return 0, nil
	}

	return l.data[l.scheme.IndexOf(row, col)], nil
}

// Set stores v at (row, col) for row ≥ col.
// Errors: ErrOutOfRange; ErrStructuralZero for row < col (any v, zero
// included); ErrNaNInf under the finite-only policy.
func (l *LowerTriangular) Set(row, col int, v float64) error {
	if !l.inBounds(row, col) {
		return cellErrorf(opSet, row, col, matrix.ErrOutOfRange)
	}
	if row < col {
		return cellErrorf(opSet, row, col, matrix.ErrStructuralZero)
	}
	if l.opts.validateNaNInf && isNonFinite(v) {
		return cellErrorf(opSet, row, col, matrix.ErrNaNInf)
	}
	l.data[l.scheme.IndexOf(row, col)] = v

	return nil
}

// AtLower reads (row, col) with row ≥ col. UNCHECKED.
func (l *LowerTriangular) AtLower(row, col int) float64 { return l.data[l.scheme.IndexOf(row, col)] }

// SetLower writes (row, col) with row ≥ col. UNCHECKED.
func (l *LowerTriangular) SetLower(row, col int, v float64) { l.data[l.scheme.IndexOf(row, col)] = v }

// AtDiagonal reads (i, i). UNCHECKED.
func (l *LowerTriangular) AtDiagonal(i int) float64 { return l.data[l.scheme.IndexOfDiagonal(i)] }

// SetDiagonal writes (i, i). UNCHECKED.
func (l *LowerTriangular) SetDiagonal(i int, v float64) { l.data[l.scheme.IndexOfDiagonal(i)] = v }

func (l *LowerTriangular) dup() *LowerTriangular {
	cp := make([]float64, len(l.data))
	copy(cp, l.data)

	return &LowerTriangular{scheme: l.scheme, data: cp, opts: l.opts}
}

// Clone returns an owned deep copy.
func (l *LowerTriangular) Clone() matrix.Matrix { return l.dup() }

// Clear zeroes every stored cell in place.
func (l *LowerTriangular) Clear() { clear(l.data) }

// String dumps the full logical matrix, zeros above the diagonal included.
func (l *LowerTriangular) String() string {
	var b strings.Builder
	n := l.Order()
	var i, j int
	for i = 0; i < n; i++ {
		b.WriteString("[")
		for j = 0; j < n; j++ {
			v := 0.0
			if i >= j {
				v = l.AtLower(i, j)
			}
			fmt.Fprintf(&b, "%g", v)
			if j+1 < n {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// ---------- Arithmetic ----------
//
// Only zero-preserving element-wise ops (0∘0 = 0) keep the unstored half zero,
// so only Add, Sub, Scale, Negate and PointwiseMultiply take the packed fast
// path. PointwiseDivide (0/0 = NaN), Modulus and products use the generic kernels.

func (l *LowerTriangular) binary(other matrix.Matrix, op string, fast arrayOp, generic genericOp) (matrix.Matrix, error) {
	if err := matrix.ValidateBinarySameShape(l, other); err != nil {
		return nil, packedErrorf(op, err)
	}
	if od, ok := flatOf(l, other); ok {
		res := &LowerTriangular{scheme: l.scheme, data: make([]float64, len(l.data)), opts: l.opts}
		if err := fast(l.opts.arrays(), l.data, od, res.data); err != nil {
			return nil, packedErrorf(op, err)
		}

		return res, nil
	}
	res, err := generic(l, other)
	if err != nil {
		return nil, packedErrorf(op, err)
	}

	return res, nil
}

// Add returns l + other; *LowerTriangular when other is packed-lower of the same order.
func (l *LowerTriangular) Add(other matrix.Matrix) (matrix.Matrix, error) {
	return l.binary(other, opAdd, provider.Provider.AddArrays, matrix.Add)
}

// Sub returns l - other; dispatch as Add.
func (l *LowerTriangular) Sub(other matrix.Matrix) (matrix.Matrix, error) {
	return l.binary(other, opSub, provider.Provider.SubtractArrays, matrix.Sub)
}

// PointwiseMultiply returns l ⊙ other; dispatch as Add.
func (l *LowerTriangular) PointwiseMultiply(other matrix.Matrix) (matrix.Matrix, error) {
	return l.binary(other, opPointwiseMul, provider.Provider.PointwiseMultiplyArrays, matrix.Hadamard)
}

// PointwiseDivide returns l ./ other through the generic kernel (*matrix.Dense).
func (l *LowerTriangular) PointwiseDivide(other matrix.Matrix) (matrix.Matrix, error) {
	res, err := matrix.PointwiseDivide(l, other)
	if err != nil {
		return nil, packedErrorf(opPointwiseDiv, err)
	}

	return res, nil
}

// Modulus returns l mod divisor through the generic kernel (*matrix.Dense).
func (l *LowerTriangular) Modulus(divisor float64) (matrix.Matrix, error) {
	res, err := matrix.Modulus(l, divisor)
	if err != nil {
		return nil, packedErrorf(opModulus, err)
	}

	return res, nil
}

// Scale returns k·l; always packed.
func (l *LowerTriangular) Scale(k float64) (*LowerTriangular, error) {
	if l == nil {
		return nil, packedErrorf(opScale, matrix.ErrNilMatrix)
	}
	res := &LowerTriangular{scheme: l.scheme, data: make([]float64, len(l.data)), opts: l.opts}
	if err := l.opts.arrays().ScaleArray(k, l.data, res.data); err != nil {
		return nil, packedErrorf(opScale, err)
	}

	return res, nil
}

// Negate returns -l; always packed.
func (l *LowerTriangular) Negate() (*LowerTriangular, error) {
	res, err := l.Scale(-1)
	if err != nil {
		return nil, packedErrorf(opNegate, err)
	}

	return res, nil
}

// Mul returns l × other (generic, *matrix.Dense).
func (l *LowerTriangular) Mul(other matrix.Matrix) (matrix.Matrix, error) {
	res, err := matrix.Mul(l, other)
	if err != nil {
		return nil, packedErrorf(opMul, err)
	}

	return res, nil
}

// MatVec returns l·x (generic).
func (l *LowerTriangular) MatVec(x []float64) ([]float64, error) {
	y, err := matrix.MatVec(l, x)
	if err != nil {
		return nil, packedErrorf(opMatVec, err)
	}

	return y, nil
}

// Trace sums the diagonal. Errors: ErrNilMatrix, ErrDimensionMismatch.
func (l *LowerTriangular) Trace() (float64, error) {
	if err := matrix.ValidateSquareNonNil(l); err != nil {
		return 0, packedErrorf(opTrace, err)
	}
	sum := 0.0
	for i := 0; i < l.Order(); i++ {
		sum += l.AtDiagonal(i)
	}

	return sum, nil
}

// CopyTo writes l into dst: whole-array copy for a packed-lower destination
// of the same order, else every cell through dst.Set.
func (l *LowerTriangular) CopyTo(dst matrix.Matrix) error {
	if err := matrix.ValidateBinarySameShape(l, dst); err != nil {
		return packedErrorf(opCopyTo, err)
	}
	if dd, ok := flatOf(l, dst); ok {
		copy(dd, l.data)

		return nil
	}
	if err := matrix.Copy(dst, l); err != nil {
		return packedErrorf(opCopyTo, err)
	}

	return nil
}

// Randomize fills every stored cell with sampler.Rand(); the upper half stays zero.
func (l *LowerTriangular) Randomize(sampler distuv.Rander) error {
	if l == nil || sampler == nil {
		return packedErrorf(opRandomize, matrix.ErrNilMatrix)
	}
	for i := range l.data {
		l.data[i] = sampler.Rand()
	}

	return nil
}
