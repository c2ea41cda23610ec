// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpack/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
	require.Equal(t, 7.89, m.RawData()[1*3+2]) // row-major offset
}

// TestSetRejectsNonFinite covers the default NaN/Inf policy and the opt-out.
func TestSetRejectsNonFinite(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	raw, err := matrix.NewPreparedDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.False(t, matrix.DenseValidates_TestOnly(raw))
	require.NoError(t, raw.Set(0, 0, math.Inf(1)))
	require.True(t, math.IsInf(MustAt(t, raw, 0, 0), 1))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 0, 0, 2})
	clone := m.Clone()
	MustSet(t, clone, 0, 0, 3.0)

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

// TestNewDenseFrom2D checks deep copy, ragged rejection and the policy.
func TestNewDenseFrom2D(t *testing.T) {
	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewDenseFrom2D(src)
	require.NoError(t, err)
	src[0][0] = 99 // must not leak into m
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	_, err = matrix.NewDenseFrom2D([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom2D(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom2D([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestFill ingests raw row-major data and rejects wrong lengths.
func TestFill(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, m.Fill([]float64{1, 2, 3, 4}))
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))
	require.ErrorIs(t, m.Fill([]float64{1}), matrix.ErrDimensionMismatch)
}

// TestDoApply covers visitor early exit and in-place transform.
func TestDoApply(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	var visited int
	m.Do(func(i, j int, v float64) bool {
		visited++
		return v < 2 // stop after (0,1)
	})
	require.Equal(t, 2, visited)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	require.Equal(t, 40.0, MustAt(t, m, 1, 1))

	err := m.Apply(func(i, j int, v float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestString checks the diagnostic dump.
func TestString(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2.5, 3, 4})
	require.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String())
}

// TestLayoutOfDense reports the general layout for Dense and nil.
func TestLayoutOfDense(t *testing.T) {
	require.Equal(t, matrix.LayoutGeneral, matrix.LayoutOf(MustDense(t, 1, 1)))
	require.Equal(t, matrix.LayoutGeneral, matrix.LayoutOf(nil))
	require.False(t, matrix.SameLayout(MustDense(t, 2, 2), MustDense(t, 2, 2)))
	require.Equal(t, "general", matrix.LayoutGeneral.String())
	require.Equal(t, "packed-upper", matrix.LayoutPackedUpper.String())
	require.Equal(t, "packed-lower", matrix.LayoutPackedLower.String())
}
