// SPDX-License-Identifier: MIT
// Package packed_test contains test helpers shared by the packed tests.

package packed_test

import (
	"testing"

	"github.com/katalvlaran/lvpack/matrix"
	"github.com/katalvlaran/lvpack/packed"
	"github.com/stretchr/testify/require"
)

// hide masks the concrete type (and its Layout) to force generic paths.
type hide struct{ matrix.Matrix }

// indexTester4x4 is the packed [0..9] fixture and its dense expansion.
var (
	indexTester4x4Packed = []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	indexTester4x4Dense  = [][]float64{
		{0, 1, 3, 6},
		{1, 2, 4, 7},
		{3, 4, 5, 8},
		{6, 7, 8, 9},
	}
)

// MustSymmetric2D builds a Symmetric from rows or fails the test.
func MustSymmetric2D(t testing.TB, rows [][]float64, opts ...packed.Option) *packed.Symmetric {
	t.Helper()
	s, err := packed.NewSymmetricFrom2D(rows, opts...)
	require.NoError(t, err)

	return s
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireGrid asserts m reads back exactly as want, cell by cell.
func RequireGrid(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}

// toGrid reads the full logical matrix.
func toGrid(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

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
