// SPDX-License-Identifier: MIT

// Package packed - Symmetric storage (upper triangle, column-major packed).
//
// Purpose:
//   - Store only the N(N+1)/2 independent cells of an N×N symmetric matrix.
//   - Make symmetry structural: (i,j) and (j,i) resolve to the same packed cell.
//   - Keep ownership visible at the call site: New*/From* copy, Wrap* aliases.
//
// AI-Hints:
//   - At/Set are the checked entry points; AtUpper/AtLower/AtDiagonal are the
//     unchecked hot path and silently address the wrong cell on misuse.
//   - Arithmetic between two *Symmetric of equal order runs on the flat arrays.
//
// Complexity quicksheet:
//   - NewSymmetric: O(N²/2) zero-init; At/Set: O(1); Clone: O(N²/2).

package packed

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpack/matrix"
)

// Symmetric is an N×N symmetric matrix in packed upper-triangle storage.
//   - data holds N(N+1)/2 cells; offset of (r,c), r ≤ c, is c(c+1)/2 + r.
//   - data may alias a caller-owned slice (see WrapSymmetric).
type Symmetric struct {
	scheme IndexScheme
	data   []float64
	opts   Options
}

// Compile-time assertions.
var (
	_ matrix.Matrix      = (*Symmetric)(nil)
	_ matrix.Layouter    = (*Symmetric)(nil)
	_ matrix.Symmetricer = (*Symmetric)(nil)
	_ fmt.Stringer       = (*Symmetric)(nil)
)

// NewSymmetric creates a zero-filled order-n symmetric matrix.
// Errors: ErrInvalidDimensions for n < 1. Complexity: O(N²/2).
func NewSymmetric(n int, opts ...Option) (*Symmetric, error) {
	scheme, err := NewUpperScheme(n)
	if err != nil {
		return nil, packedErrorf(opNewSymmetric, err)
	}

	return &Symmetric{
		scheme: scheme,
		data:   make([]float64, scheme.DataLength()),
		opts:   gatherOptions(opts...),
	}, nil
}

// NewSymmetricFilled creates an order-n symmetric matrix with every cell set to v.
// Errors: ErrInvalidDimensions; ErrNaNInf for non-finite v under the default policy.
func NewSymmetricFilled(n int, v float64, opts ...Option) (*Symmetric, error) {
	s, err := NewSymmetric(n, opts...)
	if err != nil {
		return nil, err
	}
	if s.opts.validateNaNInf && isNonFinite(v) {
		return nil, packedErrorf(opNewSymmetric, matrix.ErrNaNInf)
	}
	for i := range s.data {
		s.data[i] = v
	}

	return s, nil
}

// WrapSymmetric builds an order-n matrix over data WITHOUT copying: writes
// through the matrix are visible in data and vice versa. Only the length is
// validated; the caller vouches that data is an upper-packed array.
// Errors: ErrInvalidDimensions (n < 1), ErrDimensionMismatch (len(data) != N(N+1)/2).
// Complexity: O(1).
func WrapSymmetric(n int, data []float64, opts ...Option) (*Symmetric, error) {
	scheme, err := NewUpperScheme(n)
	if err != nil {
		return nil, packedErrorf(opWrapSymmetric, err)
	}
	if len(data) != scheme.DataLength() {
		return nil, packedErrorf(opWrapSymmetric,
			fmt.Errorf("len(data)=%d, want %d: %w", len(data), scheme.DataLength(), matrix.ErrDimensionMismatch))
	}

	return &Symmetric{scheme: scheme, data: data, opts: gatherOptions(opts...)}, nil
}

// NewSymmetricFromPacked is WrapSymmetric over a private copy of data.
// Errors: as WrapSymmetric, plus ErrNaNInf for a non-finite value under the
// default policy. Complexity: O(N²/2).
func NewSymmetricFromPacked(n int, data []float64, opts ...Option) (*Symmetric, error) {
	s, err := NewSymmetric(n, opts...)
	if err != nil {
		return nil, packedErrorf(opFromPacked, err)
	}
	if len(data) != len(s.data) {
		return nil, packedErrorf(opFromPacked,
			fmt.Errorf("len(data)=%d, want %d: %w", len(data), len(s.data), matrix.ErrDimensionMismatch))
	}
	if s.opts.validateNaNInf {
		if err = requireFinite(data); err != nil {
			return nil, packedErrorf(opFromPacked, err)
		}
	}
	copy(s.data, data)

	return s, nil
}

// NewSymmetricFrom2D validates and deep-copies a square 2-D array.
// MAIN DESCRIPTION:
//   - Copy-construction; later mutation of rows does not affect the matrix.
//
// Implementation:
//   - Stage 1: ValidateSymmetric2D(rows, eps) - square, rectangular, symmetric.
//   - Stage 2: copy the upper triangle (r ≤ c) into packed storage.
//
// Errors:
//   - ErrInvalidDimensions (empty), ErrDimensionMismatch (non-square or ragged),
//     ErrAsymmetry (rows[i][j] and rows[j][i] differ by more than eps),
//     ErrNaNInf (non-finite cell under the default policy).
//
// Complexity:
//   - Time O(N²), Space O(N²/2).
func NewSymmetricFrom2D(rows [][]float64, opts ...Option) (*Symmetric, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSymmetric2D(rows, o.eps); err != nil {
		return nil, packedErrorf(opFrom2D, err)
	}
	s, err := NewSymmetric(len(rows), opts...)
	if err != nil {
		return nil, packedErrorf(opFrom2D, err)
	}

	var r, c int
	for c = 0; c < len(rows); c++ {
		for r = 0; r <= c; r++ {
			if o.validateNaNInf && isNonFinite(rows[r][c]) {
				return nil, cellErrorf(opFrom2D, r, c, matrix.ErrNaNInf)
			}
			s.data[s.scheme.IndexOf(r, c)] = rows[r][c]
		}
	}

	return s, nil
}

// NewSymmetricFrom copies any square matrix that is symmetric.
// Implementation:
//   - Stage 1: nil → ErrNilMatrix; non-square → ErrDimensionMismatch.
//   - Stage 2: ask the source's own predicate (matrix.Symmetricer), else scan
//     with matrix.IsSymmetric(m, eps); failure → ErrAsymmetry.
//   - Stage 3: whole-array copy when m reports LayoutPackedUpper with the same
//     order; otherwise walk the upper triangle through m.At. Under the default
//     policy a non-finite stored cell → ErrNaNInf.
//
// Complexity: Time O(N²), Space O(N²/2).
func NewSymmetricFrom(m matrix.Matrix, opts ...Option) (*Symmetric, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, packedErrorf(opFrom, err)
	}
	o := gatherOptions(opts...)
	if !matrix.IsSymmetric(m, o.eps) {
		return nil, packedErrorf(opFrom, matrix.ErrAsymmetry)
	}
	s, err := NewSymmetric(m.Rows(), opts...)
	if err != nil {
		return nil, packedErrorf(opFrom, err)
	}

	// Fast path: source already uses the same packed layout.
	if src, ok := flatOf(s, m); ok {
		if o.validateNaNInf {
			if err = requireFinite(src); err != nil {
				return nil, packedErrorf(opFrom, err)
			}
		}
		copy(s.data, src)

		return s, nil
	}

	var r, c int
	var v float64
	for c = 0; c < s.Order(); c++ {
		for r = 0; r <= c; r++ {
			if v, err = m.At(r, c); err != nil {
				return nil, cellErrorf(opFrom, r, c, err)
			}
			if o.validateNaNInf && isNonFinite(v) {
				return nil, cellErrorf(opFrom, r, c, matrix.ErrNaNInf)
			}
			s.data[s.scheme.IndexOf(r, c)] = v
		}
	}

	return s, nil
}

// IdentitySymmetric returns the order-n identity in packed form.
// Errors: ErrInvalidDimensions for n < 1. Complexity: O(N²/2).
func IdentitySymmetric(n int, opts ...Option) (*Symmetric, error) {
	s, err := NewSymmetric(n, opts...)
	if err != nil {
		return nil, packedErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		s.data[s.scheme.IndexOfDiagonal(i)] = 1
	}

	return s, nil
}

// Order returns N.
func (s *Symmetric) Order() int { return s.scheme.Order() }

// Rows returns N.
func (s *Symmetric) Rows() int { return s.scheme.Order() }

// Cols returns N.
func (s *Symmetric) Cols() int { return s.scheme.Order() }

// Layout reports LayoutPackedUpper.
func (s *Symmetric) Layout() matrix.Layout { return matrix.LayoutPackedUpper }

// Indexer returns the upper index scheme backing this matrix.
func (s *Symmetric) Indexer() IndexScheme { return s.scheme }

// RawData exposes the packed array. It is the live backing store: callers
// must treat it as read-only (serialization, fast copies).
func (s *Symmetric) RawData() []float64 { return s.data }

// IsSymmetric is always true; symmetry is structural.
func (s *Symmetric) IsSymmetric() bool { return true }

// inBounds reports whether (row, col) addresses a cell.
func (s *Symmetric) inBounds(row, col int) bool {
	n := s.scheme.Order()

	return row >= 0 && row < n && col >= 0 && col < n
}

// At returns the value at (row, col), reflecting onto the upper triangle.
// Errors: ErrOutOfRange. Complexity: O(1).
func (s *Symmetric) At(row, col int) (float64, error) {
	if !s.inBounds(row, col) {
		return 0, cellErrorf(opAt, row, col, matrix.ErrOutOfRange)
	}
	r, c := min(row, col), max(row, col)

	return s.data[s.scheme.IndexOf(r, c)], nil
}

// Set stores v at (row, col), which is also (col, row).
// Errors: ErrOutOfRange; ErrNaNInf under the finite-only policy.
// Complexity: O(1).
func (s *Symmetric) Set(row, col int, v float64) error {
	if !s.inBounds(row, col) {
		return cellErrorf(opSet, row, col, matrix.ErrOutOfRange)
	}
	if s.opts.validateNaNInf && isNonFinite(v) {
		return cellErrorf(opSet, row, col, matrix.ErrNaNInf)
	}
	r, c := min(row, col), max(row, col)
	s.data[s.scheme.IndexOf(r, c)] = v

	return nil
}

// AtUpper reads (row, col) with row ≤ col. UNCHECKED: no bounds, triangle or
// policy validation; violating the precondition reads the wrong cell or panics
// on an out-of-range offset.
func (s *Symmetric) AtUpper(row, col int) float64 { return s.data[s.scheme.IndexOf(row, col)] }

// SetUpper writes (row, col) with row ≤ col. UNCHECKED, see AtUpper.
func (s *Symmetric) SetUpper(row, col int, v float64) { s.data[s.scheme.IndexOf(row, col)] = v }

// AtLower reads (row, col) with row ≥ col by swapping onto the upper cell. UNCHECKED.
func (s *Symmetric) AtLower(row, col int) float64 { return s.data[s.scheme.IndexOf(col, row)] }

// SetLower writes (row, col) with row ≥ col. UNCHECKED.
func (s *Symmetric) SetLower(row, col int, v float64) { s.data[s.scheme.IndexOf(col, row)] = v }

// AtDiagonal reads (i, i). UNCHECKED.
func (s *Symmetric) AtDiagonal(i int) float64 { return s.data[s.scheme.IndexOfDiagonal(i)] }

// SetDiagonal writes (i, i). UNCHECKED.
func (s *Symmetric) SetDiagonal(i int, v float64) { s.data[s.scheme.IndexOfDiagonal(i)] = v }

// dup returns an owned deep copy with the same options.
func (s *Symmetric) dup() *Symmetric {
	cp := make([]float64, len(s.data))
	copy(cp, s.data)

	return &Symmetric{scheme: s.scheme, data: cp, opts: s.opts}
}

// emptyLike returns a zero matrix of the same order and options.
func (s *Symmetric) emptyLike() *Symmetric {
	return &Symmetric{scheme: s.scheme, data: make([]float64, len(s.data)), opts: s.opts}
}

// Clone returns an owned deep copy; a wrapped source is never aliased.
func (s *Symmetric) Clone() matrix.Matrix { return s.dup() }

// Clear zeroes every stored cell in place (aliased arrays see the change).
func (s *Symmetric) Clear() { clear(s.data) }

// String dumps the full logical matrix row by row, like matrix.Dense.
func (s *Symmetric) String() string {
	var b strings.Builder
	n := s.Order()
	var i, j int
	for i = 0; i < n; i++ {
		b.WriteString("[")
		for j = 0; j < n; j++ {
			fmt.Fprintf(&b, "%g", s.data[s.scheme.IndexOf(min(i, j), max(i, j))])
			if j+1 < n {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
