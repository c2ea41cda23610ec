// SPDX-License-Identifier: MIT
// Package matrix - element-wise micro-kernels (private) used by public facades.
//
// Purpose:
//   - Triangle masks (lower/upper, inclusive or strict) materialized into fresh Dense values.
//   - Tolerance comparison (AllClose) with a *Dense fast path.
//
// Determinism:
//   - Fixed i→j loop order everywhere; no data-dependent reordering.

package matrix

import "math"

// triangle mask selectors
const (
	maskLower       = iota // keep j ≤ i
	maskStrictLower        // keep j < i
	maskUpper              // keep j ≥ i
	maskStrictUpper        // keep j > i
)

const opTriangle = "Triangle"

// keepCell reports whether (i,j) survives the given mask.
func keepCell(mask, i, j int) bool {
	switch mask {
	case maskLower:
		return j <= i
	case maskStrictLower:
		return j < i
	case maskUpper:
		return j >= i
	default:
		return j > i
	}
}

// ewTriangle copies the cells selected by mask into a fresh Dense of the
// same shape; every other cell is zero.
// Errors: ErrNilMatrix; element read failures. Complexity: O(r*c).
func ewTriangle(X Matrix, mask int) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opTriangle, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opTriangle, err)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if !keepCell(mask, i, j) {
				continue // complementary half stays zero
			}
			if v, err = X.At(i, j); err != nil {
				return nil, atErrorf(opTriangle, i, j, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	r, c := a.Rows(), a.Cols()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var idx int
			for idx = 0; idx < r*c; idx++ {
				if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, atErrorf("AllClose", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, atErrorf("AllClose", i, j, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
