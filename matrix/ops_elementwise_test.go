// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpack/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

// seqRander replays a fixed sequence; it satisfies distuv.Rander.
type seqRander struct {
	vals []float64
	pos  int
}

func (s *seqRander) Rand() float64 {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v
}

func TestTriangleExtraction(t *testing.T) {
	a := NewFilledDense(t, 3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})

	lo, err := matrix.LowerTriangle(a)
	require.NoError(t, err)
	CompareExact(t, NewFilledDense(t, 3, 3, []float64{1, 0, 0, 4, 5, 0, 7, 8, 9}), lo)

	slo, err := matrix.StrictlyLowerTriangle(hide{a})
	require.NoError(t, err)
	CompareExact(t, NewFilledDense(t, 3, 3, []float64{0, 0, 0, 4, 0, 0, 7, 8, 0}), slo)

	up, err := matrix.UpperTriangle(a)
	require.NoError(t, err)
	CompareExact(t, NewFilledDense(t, 3, 3, []float64{1, 2, 3, 0, 5, 6, 0, 0, 9}), up)

	sup, err := matrix.StrictlyUpperTriangle(a)
	require.NoError(t, err)
	CompareExact(t, NewFilledDense(t, 3, 3, []float64{0, 2, 3, 0, 0, 6, 0, 0, 0}), sup)

	// the private bridges agree with the facades
	lo2, err := matrix.EwLowerTriangle_TestOnly(a)
	require.NoError(t, err)
	CompareExact(t, lo, lo2)
	sup2, err := matrix.EwStrictUpperTriangle_TestOnly(a)
	require.NoError(t, err)
	CompareExact(t, sup, sup2)

	_, err = matrix.UpperTriangle(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	a := NewFilledDense(t, 1, 3, []float64{1, 2, 3})
	b := NewFilledDense(t, 1, 3, []float64{1, 2, 3 + 1e-10})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.EwAllClose_TestOnly(hide{a}, b, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	require.True(t, matrix.Equal(a, a.Clone()))
	require.False(t, matrix.Equal(a, b))
	require.False(t, matrix.Equal(a, MustDense(t, 3, 1)))
}

func TestRandomFill(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, matrix.RandomFill(m, &seqRander{vals: []float64{1, 2, 3, 4}}))
	CompareExact(t, NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4}), m) // row-major draw order

	u := distuv.Uniform{Min: -1, Max: 1}
	require.NoError(t, matrix.RandomFill(m, u))
	m.Do(func(_, _ int, v float64) bool {
		require.True(t, v >= -1 && v < 1)
		return true
	})

	require.ErrorIs(t, matrix.RandomFill(nil, distuv.UnitNormal), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.RandomFill(MustDense(t, 1, 1), nil), matrix.ErrNilMatrix)
}
