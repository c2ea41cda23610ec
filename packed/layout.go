// SPDX-License-Identifier: MIT

package packed

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpack/matrix"
)

// flat is implemented by packed storage that exposes its array.
type flat interface {
	matrix.Matrix
	matrix.Layouter
	RawData() []float64
}

// flatOf returns other's packed array when other reports the same layout tag
// and order as self, i.e. when the two arrays are index-compatible. Wrapped
// or general matrices never qualify.
func flatOf(self flat, other matrix.Matrix) ([]float64, bool) {
	if matrix.IsNil(other) || !matrix.SameLayout(self, other) {
		return nil, false
	}
	f, ok := other.(flat)
	if !ok {
		return nil, false
	}

	return f.RawData(), true
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// requireFinite fails on the first non-finite value of a packed array.
func requireFinite(data []float64) error {
	for i, v := range data {
		if isNonFinite(v) {
			return fmt.Errorf("data[%d]: %w", i, matrix.ErrNaNInf)
		}
	}

	return nil
}
