// SPDX-License-Identifier: MIT

// Package packed: functional configuration for packed matrices.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Options are resolved once per constructor call; the resulting policy is
// captured by the matrix and inherited by results of fast-path arithmetic.
package packed

import (
	"math"

	"github.com/katalvlaran/lvpack/provider"
)

const (
	// DefaultEpsilon makes validating constructors demand exact symmetry.
	DefaultEpsilon = 0.0

	// DefaultValidateNaNInf toggles finite-value validation on checked Set and
	// on every constructor that copies values into fresh storage.
	DefaultValidateNaNInf = true
)

const (
	panicEpsilonInvalid  = "packed: WithEpsilon: eps must be finite, non-negative"
	panicProviderInvalid = "packed: WithProvider: provider must be non-nil"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	eps            float64
	validateNaNInf bool
	prov           provider.Provider // nil: provider.Default() at call time
}

// Epsilon returns the symmetry tolerance of validating constructors.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether checked Set and copying constructors reject NaN/Inf.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon relaxes the symmetry check of NewSymmetricFrom2D/NewSymmetricFrom
// to |a[i,j]-a[j,i]| ≤ eps. Panics when eps is negative or non-finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables finite-only checked writes (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets checked Set store NaN and ±Inf.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithProvider pins the array provider used by fast-path arithmetic.
// Panics on nil.
func WithProvider(p provider.Provider) Option {
	if p == nil {
		panic(panicProviderInvalid)
	}

	return func(o *Options) { o.prov = p }
}

func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon, validateNaNInf: DefaultValidateNaNInf}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// arrays returns the pinned provider or the process-wide default.
func (o Options) arrays() provider.Provider {
	if o.prov != nil {
		return o.prov
	}

	return provider.Default()
}
