// SPDX-License-Identifier: MIT
// Package poly: sentinel error set.
// Operations return these sentinels (optionally wrapped with an operation
// tag); callers and tests match them via errors.Is.

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDivisor is returned by Divide when the divisor is the zero polynomial.
	ErrZeroDivisor = errors.New("poly: division by the zero polynomial")

	// ErrZeroDenominator is returned by Fraction.Eval when the denominator
	// evaluates to zero at the requested point.
	ErrZeroDenominator = errors.New("poly: denominator evaluates to zero")
)

// polyErrorf wraps err with an operation tag, preserving the sentinel via %w.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
