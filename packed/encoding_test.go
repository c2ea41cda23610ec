// SPDX-License-Identifier: MIT

package packed_test

import (
	"testing"

	"github.com/katalvlaran/lvpack/matrix"
	"github.com/katalvlaran/lvpack/packed"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	s, err := packed.NewSymmetricFromPacked(4, indexTester4x4Packed)
	require.NoError(t, err)

	env, err := packed.Encode(s)
	require.NoError(t, err)
	require.Equal(t, packed.KindSymmetricUpper, env.Kind)
	require.Equal(t, 4, env.Order)
	s.SetDiagonal(0, 100)
	require.Equal(t, 0.0, env.Data[0], "envelope owns its data")

	back, err := packed.Decode(env)
	require.NoError(t, err)
	RequireGrid(t, indexTester4x4Dense, back)

	l := mustLower(t, lowerFixture)
	lenv, err := packed.Encode(l)
	require.NoError(t, err)
	require.Equal(t, packed.KindTriangularLower, lenv.Kind)
	lback, err := packed.Decode(lenv)
	require.NoError(t, err)
	RequireGrid(t, lowerFixture, lback)
}

func TestEncodeDecodeErrors(t *testing.T) {
	_, err := packed.Encode(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = packed.Encode(d)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = packed.Decode(packed.Envelope{Kind: "band", Order: 1, Data: []float64{1}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = packed.Decode(packed.Envelope{Kind: packed.KindSymmetricUpper, Order: 2, Data: []float64{1}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = packed.Decode(packed.Envelope{Kind: packed.KindTriangularLower, Order: 0})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = packed.Decode(packed.Envelope{Kind: packed.KindTriangularLower, Order: 2, Data: []float64{1, 2}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestJSONRoundTrip(t *testing.T) {
	s := MustSymmetric2D(t, [][]float64{{1, 2.5}, {2.5, -3}})

	b, err := packed.MarshalJSON(s)
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"symmetric-upper","order":2,"data":[1,2.5,-3]}`, string(b))

	m, err := packed.UnmarshalJSON(b)
	require.NoError(t, err)
	back, ok := m.(*packed.Symmetric)
	require.True(t, ok)
	require.Equal(t, s.RawData(), back.RawData())

	_, err = packed.UnmarshalJSON([]byte(`{"kind":`))
	require.Error(t, err)
}

func TestTOMLRoundTrip(t *testing.T) {
	l := mustLower(t, lowerFixture)

	b, err := packed.MarshalTOML(l)
	require.NoError(t, err)
	require.Contains(t, string(b), "triangular-lower")

	m, err := packed.UnmarshalTOML(b)
	require.NoError(t, err)
	back, ok := m.(*packed.LowerTriangular)
	require.True(t, ok)
	require.Equal(t, l.RawData(), back.RawData())

	_, err = packed.UnmarshalTOML([]byte("kind = "))
	require.Error(t, err)
}
