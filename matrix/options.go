// SPDX-License-Identifier: MIT
// Package matrix: numeric policy options.
//
// Purpose:
//   - Single source of truth for the numeric policy used by dense ingestion
//     (NewDenseFrom) and approximate comparison (Equal).
//   - Functional options: unexported fields, WithX constructors, defaults as
//     named constants.
//
// Policy:
//   - Option constructors panic on nonsensical values (negative or non-finite
//     epsilon). That is a programmer error, not a runtime condition.
//   - Options apply in order; the last writer wins.

package matrix

import "math"

const (
	// DefaultEpsilon is the absolute tolerance used by Equal.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options during construction.
type Option func(*Options)

// Options is the resolved numeric policy. Build it with NewMatrixOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon reports the configured absolute tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether NaN/Inf ingestion is rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon sets the absolute tolerance for approximate comparisons.
// Panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables rejection of NaN/±Inf on ingestion and Set.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only guard. Use only for
// controlled ingestion of data that is known to carry sentinels.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves user options over the package defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user options in order over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // last-writer-wins
		}
	}

	return o
}
