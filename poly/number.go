// SPDX-License-Identifier: MIT

package poly

import "golang.org/x/exp/constraints"

// Number is the coefficient domain: every built-in integer and float type.
// All of them provide additive/multiplicative identities, +, −, ×, ÷ and
// equality, which is exactly what the polynomial ring needs.
type Number interface {
	constraints.Integer | constraints.Float
}

// DefaultEpsilon is the absolute tolerance of Equal for float coefficients.
// Integer coefficients are always compared exactly.
const DefaultEpsilon = 1e-6

// isFloat reports whether T is a floating-point type: only there does 1/2 survive.
func isFloat[T Number]() bool {
	var one T = 1

	return one/2 != 0
}

// closeTo compares a and b with the domain-appropriate rule: exact for
// integers, |a-b| < eps for floats.
func closeTo[T Number](a, b T, eps float64) bool {
	if !isFloat[T]() {
		return a == b
	}
	d := float64(a) - float64(b)
	if d < 0 {
		d = -d
	}

	return d < eps
}
