// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and the packed storage types.
// This file intentionally contains ONLY the public contracts (Matrix, the
// symmetry predicate and the layout capability tag). Errors and options live
// in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(stored cells)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid; structured types may
	// reject writes into cells they do not store (ErrStructuralZero).
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Symmetricer is implemented by matrices that can answer the symmetry
// question themselves (structurally symmetric storage answers in O(1)).
// Validating constructors consult it before falling back to IsSymmetric.
type Symmetricer interface {
	IsSymmetric() bool
}

// Layout tags the storage scheme a matrix uses. Kernels compare tags (and
// order) instead of concrete types to decide whether a flat-array fast path
// is valid for a pair of operands.
type Layout uint8

const (
	// LayoutGeneral marks any matrix without a packed representation.
	LayoutGeneral Layout = iota
	// LayoutPackedUpper marks column-major upper-triangle packed storage.
	LayoutPackedUpper
	// LayoutPackedLower marks row-major lower-triangle packed storage.
	LayoutPackedLower
)

// String returns a stable, human-readable layout name.
func (l Layout) String() string {
	switch l {
	case LayoutPackedUpper:
		return "packed-upper"
	case LayoutPackedLower:
		return "packed-lower"
	default:
		return "general"
	}
}

// Layouter is the capability interface behind the Layout tag.
type Layouter interface {
	Layout() Layout
}

// LayoutOf reports the layout tag of m; types that do not implement
// Layouter (including nil) are LayoutGeneral.
func LayoutOf(m Matrix) Layout {
	if l, ok := m.(Layouter); ok {
		return l.Layout()
	}

	return LayoutGeneral
}

// SameLayout reports whether a and b share a packed layout tag and shape,
// i.e. whether their flat storage arrays are index-compatible.
// Complexity: O(1).
func SameLayout(a, b Matrix) bool {
	if a == nil || b == nil {
		return false
	}
	la := LayoutOf(a)
	if la == LayoutGeneral || la != LayoutOf(b) {
		return false
	}

	return a.Rows() == b.Rows() && a.Cols() == b.Cols()
}
