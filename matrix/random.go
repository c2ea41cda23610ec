// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/stat/distuv"
)

const opRandomFill = "RandomFill"

// RandomFill overwrites every cell of m with a draw from sampler, in fixed
// row-major order, so a seeded source yields a reproducible matrix.
// Any distuv distribution (Normal, Uniform, Poisson, ...) satisfies Rander.
//
// Errors:
//   - ErrNilMatrix for a nil matrix or sampler.
//   - Set failures from m (e.g. ErrNaNInf under the finite-only policy).
//
// Complexity: O(r*c) draws.
func RandomFill(m Matrix, sampler distuv.Rander) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opRandomFill, err)
	}
	if sampler == nil {
		return matrixErrorf(opRandomFill, ErrNilMatrix)
	}
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, sampler.Rand()); err != nil {
				return matrixErrorf(opRandomFill, err)
			}
		}
	}

	return nil
}
