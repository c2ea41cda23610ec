// SPDX-License-Identifier: MIT

package provider_test

import (
	"testing"

	"github.com/katalvlaran/lvpack/matrix"
	"github.com/katalvlaran/lvpack/provider"
	"github.com/stretchr/testify/require"
)

func TestGonumArithmetic(t *testing.T) {
	p := provider.Gonum{}
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}
	out := make([]float64, 3)

	require.NoError(t, p.AddArrays(a, b, out))
	require.Equal(t, []float64{5, 7, 9}, out)

	require.NoError(t, p.SubtractArrays(a, b, out))
	require.Equal(t, []float64{-3, -3, -3}, out)

	require.NoError(t, p.ScaleArray(2, a, out))
	require.Equal(t, []float64{2, 4, 6}, out)

	require.NoError(t, p.PointwiseMultiplyArrays(a, b, out))
	require.Equal(t, []float64{4, 10, 18}, out)

	require.NoError(t, p.PointwiseDivideArrays(b, []float64{2, 5, 4}, out))
	require.Equal(t, []float64{2, 1, 1.5}, out)
}

func TestGonumAliasing(t *testing.T) {
	p := provider.Gonum{}
	a := []float64{1, 2}
	require.NoError(t, p.AddArrays(a, a, a))
	require.Equal(t, []float64{2, 4}, a)
	require.NoError(t, p.ScaleArray(-1, a, a))
	require.Equal(t, []float64{-2, -4}, a)
}

func TestGonumLengthMismatch(t *testing.T) {
	p := provider.Gonum{}
	short := []float64{1}
	long := []float64{1, 2}

	require.ErrorIs(t, p.AddArrays(short, long, long), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, p.SubtractArrays(long, long, short), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, p.ScaleArray(1, long, short), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, p.PointwiseMultiplyArrays(short, long, long), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, p.PointwiseDivideArrays(long, short, long), matrix.ErrDimensionMismatch)
}

type countingProvider struct {
	provider.Gonum
	adds int
}

func (c *countingProvider) AddArrays(a, b, out []float64) error {
	c.adds++
	return c.Gonum.AddArrays(a, b, out)
}

func TestSetDefault(t *testing.T) {
	_, isGonum := provider.Default().(provider.Gonum)
	require.True(t, isGonum)

	cp := &countingProvider{}
	prev, err := provider.SetDefault(cp)
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = provider.SetDefault(prev) })

	require.NoError(t, provider.Default().AddArrays([]float64{1}, []float64{1}, make([]float64, 1)))
	require.Equal(t, 1, cp.adds)

	_, err = provider.SetDefault(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
