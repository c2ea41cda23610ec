// SPDX-License-Identifier: MIT

package packed

import (
	"fmt"

	"github.com/katalvlaran/lvpack/matrix"
)

// Triangle names the stored half of a packed N×N matrix.
type Triangle uint8

const (
	// Upper stores row ≤ col, column by column.
	Upper Triangle = iota
	// Lower stores row ≥ col, row by row.
	Lower
)

// String returns "upper" or "lower".
func (t Triangle) String() string {
	if t == Lower {
		return "lower"
	}

	return "upper"
}

// PackedLen returns N(N+1)/2, the number of stored cells of an order-n
// packed matrix. It does not validate n.
func PackedLen(n int) int { return n * (n + 1) / 2 }

// IndexScheme maps (row, col) inside its triangle onto an offset into a
// packed array of DataLength() cells. It is immutable after construction.
//
// IndexOf performs NO bounds or triangle-membership validation: callers
// outside the triangle must reflect or swap coordinates first. Violating
// the precondition yields a defined but wrong offset (possibly out of range).
type IndexScheme struct {
	order  int
	length int
	tri    Triangle
}

// NewUpperScheme builds the column-major upper-triangle scheme:
// IndexOf(r, c) = c(c+1)/2 + r for r ≤ c.
// Errors: ErrInvalidDimensions for n < 1.
func NewUpperScheme(n int) (IndexScheme, error) { return newScheme(n, Upper) }

// NewLowerScheme builds the row-major lower-triangle scheme:
// IndexOf(r, c) = r(r+1)/2 + c for r ≥ c.
// Errors: ErrInvalidDimensions for n < 1.
func NewLowerScheme(n int) (IndexScheme, error) { return newScheme(n, Lower) }

func newScheme(n int, tri Triangle) (IndexScheme, error) {
	if err := matrix.ValidateOrder(n); err != nil {
		return IndexScheme{}, fmt.Errorf("packed.%sScheme(%d): %w", tri, n, err)
	}

	return IndexScheme{order: n, length: PackedLen(n), tri: tri}, nil
}

// Order returns N.
func (s IndexScheme) Order() int { return s.order }

// DataLength returns N(N+1)/2, computed once at construction.
func (s IndexScheme) DataLength() int { return s.length }

// Triangle reports which half the scheme addresses.
func (s IndexScheme) Triangle() Triangle { return s.tri }

// IndexOf returns the packed offset of (row, col). Unchecked hot path.
func (s IndexScheme) IndexOf(row, col int) int {
	if s.tri == Upper {
		return col*(col+1)/2 + row
	}

	return row*(row+1)/2 + col
}

// IndexOfDiagonal is IndexOf(i, i).
func (s IndexScheme) IndexOfDiagonal(i int) int { return i*(i+1)/2 + i }
