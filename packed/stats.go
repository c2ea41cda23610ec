// SPDX-License-Identifier: MIT
// Package packed - column statistics that are symmetric by construction.
//
// Purpose:
//   - Covariance(X) and Correlation(X) of the columns of an r×c sample land
//     directly in packed storage: only the c(c+1)/2 upper cells are computed
//     and stored, the lower half is implied.
//
// Behavior highlights:
//   - Sample (r-1) denominators, via gonum/stat.
//   - Correlation zeroes the row and column of a constant feature (std == 0),
//     diagonal included, instead of producing NaN.

package packed

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpack/matrix"
	"gonum.org/v1/gonum/stat"
)

const (
	opCovariance  = "Covariance"
	opCorrelation = "Correlation"
)

// columns copies X into c column slices of length r.
func columns(op string, X matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, packedErrorf(op, err)
	}
	r, c := X.Rows(), X.Cols()
	if c < 1 {
		return nil, packedErrorf(op, matrix.ErrInvalidDimensions)
	}
	if r < 2 {
		return nil, packedErrorf(op, fmt.Errorf("%d observations, need at least 2: %w", r, matrix.ErrDimensionMismatch))
	}
	cols := make([][]float64, c)
	var i, j int
	var err error
	for j = 0; j < c; j++ {
		cols[j] = make([]float64, r)
		for i = 0; i < r; i++ {
			if cols[j][i], err = X.At(i, j); err != nil {
				return nil, cellErrorf(op, i, j, err)
			}
		}
	}

	return cols, nil
}

// Covariance returns the c×c sample covariance of the columns of X and the
// column means.
// Errors: ErrNilMatrix, ErrInvalidDimensions (no columns),
// ErrDimensionMismatch (fewer than two rows).
// Complexity: Time O(r·c²/2), Space O(c²/2 + r·c).
func Covariance(X matrix.Matrix, opts ...Option) (*Symmetric, []float64, error) {
	cols, err := columns(opCovariance, X)
	if err != nil {
		return nil, nil, err
	}
	c := len(cols)
	s, err := NewSymmetric(c, opts...)
	if err != nil {
		return nil, nil, packedErrorf(opCovariance, err)
	}
	means := make([]float64, c)
	var j, k int
	for k = 0; k < c; k++ {
		means[k] = stat.Mean(cols[k], nil)
		for j = 0; j <= k; j++ {
			s.SetUpper(j, k, stat.Covariance(cols[j], cols[k], nil))
		}
	}

	return s, means, nil
}

// Correlation returns the c×c Pearson correlation of the columns of X, the
// column means and the sample standard deviations. The diagonal is exactly 1
// for every non-constant column.
// Errors: as Covariance. Complexity: as Covariance.
func Correlation(X matrix.Matrix, opts ...Option) (*Symmetric, []float64, []float64, error) {
	s, means, err := Covariance(X, opts...)
	if err != nil {
		return nil, nil, nil, packedErrorf(opCorrelation, err)
	}
	c := s.Order()
	stds := make([]float64, c)
	var j, k int
	for k = 0; k < c; k++ {
		stds[k] = math.Sqrt(s.AtDiagonal(k))
	}
	for k = 0; k < c; k++ {
		for j = 0; j < k; j++ {
			if stds[j] == 0 || stds[k] == 0 {
				s.SetUpper(j, k, 0)
				continue
			}
			s.SetUpper(j, k, s.AtUpper(j, k)/(stds[j]*stds[k]))
		}
		if stds[k] > 0 {
			s.SetDiagonal(k, 1)
		}
	}

	return s, means, stds, nil
}
