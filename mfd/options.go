// SPDX-License-Identifier: MIT
// Package mfd: reducer options.
//
// Functional options with unexported fields and defaults as named constants.
// Constructors panic on nonsensical values; options apply in order and the
// last writer wins.

package mfd

import (
	"math"

	"github.com/katalvlaran/lvmfd/matrix"
)

const (
	// DefaultGap is the gap separating "numerically zero" from significant
	// Gram singular values. It drives both the consecutive-ratio rank test
	// and the snapping of small dependency coefficients to zero.
	DefaultGap = 1e8

	// MachineEpsilon is the float64 unit roundoff 2⁻⁵², the default rank ratio epsilon.
	MachineEpsilon = 2.220446049250313e-16

	// DefaultResidualTolerance bounds the residual of an accepted dependency
	// relative to the largest term of the combination.
	DefaultResidualTolerance = 1e-9

	// defaultMaxShift selects Fbcols·Deg as the shift limit.
	defaultMaxShift = -1
)

const (
	panicGapInvalid      = "mfd: WithGap: gap must be finite and > 1"
	panicEpsilonInvalid  = "mfd: WithEpsilon: eps must be finite and > 0"
	panicEigenTolInvalid = "mfd: WithEigenTolerance: tol must be finite and > 0"
	panicMaxShiftInvalid = "mfd: WithMaxShift: shift must be >= 0"
	panicResidualInvalid = "mfd: WithResidualTolerance: tol must be finite and > 0"
)

// Option mutates Options during construction.
type Option func(*Options)

// Options is the resolved reducer policy. Build it with NewOptions.
type Options struct {
	gap      float64 // > 1; DefaultGap
	eps      float64 // > 0; MachineEpsilon
	eigenTol float64 // > 0; matrix.DefaultEigenRelTol
	maxShift int     // >= 0, or defaultMaxShift
	resTol   float64 // > 0; DefaultResidualTolerance
}

// Gap reports the configured singular-value gap.
func (o Options) Gap() float64 { return o.gap }

// Epsilon reports the configured rank ratio epsilon.
func (o Options) Epsilon() float64 { return o.eps }

// EigenTolerance reports the relative Jacobi tolerance.
func (o Options) EigenTolerance() float64 { return o.eigenTol }

// MaxShift reports the configured shift limit, or -1 for Fbcols·Deg.
func (o Options) MaxShift() int { return o.maxShift }

// ResidualTolerance reports the relative residual bound of a dependency.
func (o Options) ResidualTolerance() float64 { return o.resTol }

// WithGap sets the singular-value gap. Panics unless gap is finite and > 1.
func WithGap(gap float64) Option {
	if !(gap > 1) || math.IsInf(gap, 0) {
		panic(panicGapInvalid)
	}

	return func(o *Options) { o.gap = gap }
}

// WithEpsilon sets the rank ratio epsilon: a block is rank deficient when
// σ_last/σ_first < eps·max(rows, cols).
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithEigenTolerance sets the Jacobi tolerance relative to max|G| used for
// the Gram singular values.
func WithEigenTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicEigenTolInvalid)
	}

	return func(o *Options) { o.eigenTol = tol }
}

// WithMaxShift bounds the block-Toeplitz shift searched by Reduce.
func WithMaxShift(shift int) Option {
	if shift < 0 {
		panic(panicMaxShiftInvalid)
	}

	return func(o *Options) { o.maxShift = shift }
}

// WithResidualTolerance sets the relative residual a dependency may leave:
// last − Σ c_p·row_p must stay within tol·max(|last|, |c_p|·|row_p|)
// entrywise, or the row counts as independent.
func WithResidualTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicResidualInvalid)
	}

	return func(o *Options) { o.resTol = tol }
}

// NewOptions resolves user options over the package defaults.
func NewOptions(opts ...Option) Options {
	o := Options{
		gap:      DefaultGap,
		eps:      MachineEpsilon,
		eigenTol: matrix.DefaultEigenRelTol,
		maxShift: defaultMaxShift,
		resTol:   DefaultResidualTolerance,
	}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
