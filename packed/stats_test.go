// SPDX-License-Identifier: MIT

package packed_test

import (
	"testing"

	"github.com/katalvlaran/lvpack/matrix"
	"github.com/katalvlaran/lvpack/packed"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var sample = []float64{
	1.0, 2.0, 0.5,
	2.0, 4.1, 0.4,
	3.0, 6.2, 0.6,
	4.0, 7.9, 0.5,
	5.0, 10.1, 0.4,
}

func TestCovarianceMatchesGonum(t *testing.T) {
	X, err := matrix.NewDense(5, 3)
	require.NoError(t, err)
	require.NoError(t, X.Fill(sample))

	cov, means, err := packed.Covariance(X)
	require.NoError(t, err)
	require.Len(t, cov.RawData(), 6)
	require.InDeltaSlice(t, []float64{3, 6.06, 0.48}, means, 1e-12)

	var want mat.SymDense
	stat.CovarianceMatrix(&want, mat.NewDense(5, 3, sample), nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, want.At(i, j), MustAt(t, cov, i, j), 1e-12)
		}
	}
}

func TestCorrelationMatchesGonum(t *testing.T) {
	X, err := matrix.NewDense(5, 3)
	require.NoError(t, err)
	require.NoError(t, X.Fill(sample))

	corr, _, stds, err := packed.Correlation(X)
	require.NoError(t, err)
	require.Len(t, stds, 3)

	var want mat.SymDense
	stat.CorrelationMatrix(&want, mat.NewDense(5, 3, sample), nil)
	for i := 0; i < 3; i++ {
		require.Equal(t, 1.0, corr.AtDiagonal(i))
		for j := 0; j < 3; j++ {
			require.InDelta(t, want.At(i, j), MustAt(t, corr, i, j), 1e-12)
		}
	}
}

func TestCorrelationConstantColumn(t *testing.T) {
	X, err := matrix.NewDenseFrom2D([][]float64{{1, 7}, {2, 7}, {4, 7}})
	require.NoError(t, err)

	corr, _, stds, err := packed.Correlation(X)
	require.NoError(t, err)
	require.Equal(t, 0.0, stds[1])
	RequireGrid(t, [][]float64{{1, 0}, {0, 0}}, corr)
}

func TestStatsErrors(t *testing.T) {
	_, _, err := packed.Covariance(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	one, err := matrix.NewDense(1, 3)
	require.NoError(t, err)
	_, _, err = packed.Covariance(one)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, _, _, err = packed.Correlation(one)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
