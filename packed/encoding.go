// SPDX-License-Identifier: MIT

package packed

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/lvpack/matrix"
	"github.com/pelletier/go-toml/v2"
)

// Envelope kinds.
const (
	KindSymmetricUpper  = "symmetric-upper"
	KindTriangularLower = "triangular-lower"
)

const (
	opEncode = "Encode"
	opDecode = "Decode"
)

// Envelope is the persisted form of a packed matrix: the packed array plus
// the order and the triangle orientation are enough to rebuild it.
type Envelope struct {
	Kind  string    `json:"kind" toml:"kind"`
	Order int       `json:"order" toml:"order"`
	Data  []float64 `json:"data" toml:"data"`
}

// Encode snapshots m into an Envelope. Data is copied, so later writes to m
// do not leak into the envelope.
// Errors: ErrNilMatrix; ErrDimensionMismatch for a matrix of another kind.
func Encode(m matrix.Matrix) (Envelope, error) {
	if matrix.IsNil(m) {
		return Envelope{}, packedErrorf(opEncode, matrix.ErrNilMatrix)
	}
	var kind string
	switch matrix.LayoutOf(m) {
	case matrix.LayoutPackedUpper:
		kind = KindSymmetricUpper
	case matrix.LayoutPackedLower:
		kind = KindTriangularLower
	default:
		return Envelope{}, packedErrorf(opEncode,
			fmt.Errorf("layout %s has no packed envelope: %w", matrix.LayoutOf(m), matrix.ErrDimensionMismatch))
	}
	f, ok := m.(flat)
	if !ok {
		return Envelope{}, packedErrorf(opEncode, matrix.ErrDimensionMismatch)
	}
	data := make([]float64, len(f.RawData()))
	copy(data, f.RawData())

	return Envelope{Kind: kind, Order: m.Rows(), Data: data}, nil
}

// Decode rebuilds an owned *Symmetric or *LowerTriangular from env.
// Errors: ErrInvalidDimensions (order < 1), ErrDimensionMismatch (unknown kind
// or wrong data length), ErrNaNInf (non-finite data under the default policy).
func Decode(env Envelope, opts ...Option) (matrix.Matrix, error) {
	switch env.Kind {
	case KindSymmetricUpper:
		s, err := NewSymmetricFromPacked(env.Order, env.Data, opts...)
		if err != nil {
			return nil, packedErrorf(opDecode, err)
		}

		return s, nil
	case KindTriangularLower:
		l, err := NewLowerTriangular(env.Order, opts...)
		if err != nil {
			return nil, packedErrorf(opDecode, err)
		}
		if len(env.Data) != len(l.data) {
			return nil, packedErrorf(opDecode, matrix.ErrDimensionMismatch)
		}
		if l.opts.validateNaNInf {
			if err = requireFinite(env.Data); err != nil {
				return nil, packedErrorf(opDecode, err)
			}
		}
		copy(l.data, env.Data)

		return l, nil
	default:
		return nil, packedErrorf(opDecode, fmt.Errorf("unknown kind %q: %w", env.Kind, matrix.ErrDimensionMismatch))
	}
}

// MarshalJSON encodes m as a JSON envelope.
func MarshalJSON(m matrix.Matrix) ([]byte, error) {
	env, err := Encode(m)
	if err != nil {
		return nil, err
	}

	return json.Marshal(env)
}

// UnmarshalJSON decodes a JSON envelope.
func UnmarshalJSON(b []byte, opts ...Option) (matrix.Matrix, error) {
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, packedErrorf(opDecode, err)
	}

	return Decode(env, opts...)
}

// MarshalTOML encodes m as a TOML envelope.
func MarshalTOML(m matrix.Matrix) ([]byte, error) {
	env, err := Encode(m)
	if err != nil {
		return nil, err
	}

	return toml.Marshal(env)
}

// UnmarshalTOML decodes a TOML envelope.
func UnmarshalTOML(b []byte, opts ...Option) (matrix.Matrix, error) {
	var env Envelope
	if err := toml.Unmarshal(b, &env); err != nil {
		return nil, packedErrorf(opDecode, err)
	}

	return Decode(env, opts...)
}
