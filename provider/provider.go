// SPDX-License-Identifier: MIT

// Package provider defines the flat-array arithmetic contract that packed
// storage delegates to on its fast path, and a gonum-backed implementation.
//
// Every entry point requires equal slice lengths and reports a mismatch as
// matrix.ErrDimensionMismatch instead of panicking. The output slice may alias
// either input.
package provider

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/lvpack/matrix"
	"gonum.org/v1/gonum/floats"
)

// Provider performs element-wise arithmetic over flat float64 arrays.
type Provider interface {
	// AddArrays computes out[i] = a[i] + b[i].
	AddArrays(a, b, out []float64) error
	// SubtractArrays computes out[i] = a[i] - b[i].
	SubtractArrays(a, b, out []float64) error
	// ScaleArray computes out[i] = k * a[i].
	ScaleArray(k float64, a, out []float64) error
	// PointwiseMultiplyArrays computes out[i] = a[i] * b[i].
	PointwiseMultiplyArrays(a, b, out []float64) error
	// PointwiseDivideArrays computes out[i] = a[i] / b[i] (IEEE semantics).
	PointwiseDivideArrays(a, b, out []float64) error
}

// providerErrorf wraps err with the provider operation name.
func providerErrorf(op string, err error) error {
	return fmt.Errorf("provider.%s: %w", op, err)
}

// sameLen3 validates that all three slices share one length.
func sameLen3(op string, a, b, out []float64) error {
	if len(a) != len(b) || len(a) != len(out) {
		return providerErrorf(op, matrix.ErrDimensionMismatch)
	}

	return nil
}

// Gonum implements Provider with gonum.org/v1/gonum/floats kernels.
type Gonum struct{}

// Compile-time assertion.
var _ Provider = Gonum{}

// AddArrays implements Provider.
func (Gonum) AddArrays(a, b, out []float64) error {
	if err := sameLen3("AddArrays", a, b, out); err != nil {
		return err
	}
	floats.AddTo(out, a, b)

	return nil
}

// SubtractArrays implements Provider.
func (Gonum) SubtractArrays(a, b, out []float64) error {
	if err := sameLen3("SubtractArrays", a, b, out); err != nil {
		return err
	}
	floats.SubTo(out, a, b)

	return nil
}

// ScaleArray implements Provider.
func (Gonum) ScaleArray(k float64, a, out []float64) error {
	if len(a) != len(out) {
		return providerErrorf("ScaleArray", matrix.ErrDimensionMismatch)
	}
	floats.ScaleTo(out, k, a)

	return nil
}

// PointwiseMultiplyArrays implements Provider.
func (Gonum) PointwiseMultiplyArrays(a, b, out []float64) error {
	if err := sameLen3("PointwiseMultiplyArrays", a, b, out); err != nil {
		return err
	}
	floats.MulTo(out, a, b)

	return nil
}

// PointwiseDivideArrays implements Provider.
func (Gonum) PointwiseDivideArrays(a, b, out []float64) error {
	if err := sameLen3("PointwiseDivideArrays", a, b, out); err != nil {
		return err
	}
	floats.DivTo(out, a, b)

	return nil
}

// holder boxes a Provider so atomic.Value always stores one concrete type.
type holder struct{ p Provider }

var current atomic.Value

func init() { current.Store(holder{p: Gonum{}}) }

// Default returns the process-wide provider (Gonum unless replaced).
func Default() Provider { return current.Load().(holder).p }

// SetDefault swaps the process-wide provider and returns the previous one.
// A nil provider is rejected with matrix.ErrNilMatrix.
func SetDefault(p Provider) (Provider, error) {
	if p == nil {
		return nil, providerErrorf("SetDefault", matrix.ErrNilMatrix)
	}
	prev := current.Swap(holder{p: p}).(holder)

	return prev.p, nil
}
