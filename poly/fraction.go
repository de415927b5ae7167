// SPDX-License-Identifier: MIT
// Package poly - polynomial fractions.
//
// A Fraction is a plain (numerator, denominator) pair. No reduction to
// lowest terms and no zero-denominator guard is ever applied on
// construction.
//
// Algebra contract:
//   - Add/Sub are COMPONENTWISE: (a/b) + (c/d) = (a+c)/(b+d). This is the
//     pairwise algebra the fraction matrices are built on, not
//     rational-function addition.
//   - Mul is the true product (a·c)/(b·d).
//   - Scale multiplies both parts by the same scalar.
//   - ZeroFraction (0/0) is the additive identity of this algebra.

package poly

import "fmt"

const opFractionEval = "Fraction.Eval"

// Fraction is a numerator/denominator pair of polynomials.
type Fraction[T Number] struct {
	num, den Polynomial[T]
}

// NewFraction pairs num and den as num/den.
func NewFraction[T Number](num, den Polynomial[T]) Fraction[T] {
	return Fraction[T]{num: num, den: den}
}

// FractionOf builds num/den from raw ascending coefficient slices.
func FractionOf[T Number](num, den []T) Fraction[T] {
	return Fraction[T]{num: New(num...), den: New(den...)}
}

// ConstantFraction returns [v]/[v].
func ConstantFraction[T Number](v T) Fraction[T] {
	return Fraction[T]{num: Constant(v), den: Constant(v)}
}

// ZeroFraction returns 0/0, the identity of componentwise addition.
func ZeroFraction[T Number]() Fraction[T] {
	return Fraction[T]{num: Zero[T](), den: Zero[T]()}
}

// Num returns the numerator.
func (f Fraction[T]) Num() Polynomial[T] { return f.num }

// Den returns the denominator.
func (f Fraction[T]) Den() Polynomial[T] { return f.den }

// Add returns (f.num+g.num)/(f.den+g.den).
func (f Fraction[T]) Add(g Fraction[T]) Fraction[T] {
	return Fraction[T]{num: f.num.Add(g.num), den: f.den.Add(g.den)}
}

// Sub returns (f.num−g.num)/(f.den−g.den).
func (f Fraction[T]) Sub(g Fraction[T]) Fraction[T] {
	return Fraction[T]{num: f.num.Sub(g.num), den: f.den.Sub(g.den)}
}

// Mul returns (f.num·g.num)/(f.den·g.den).
func (f Fraction[T]) Mul(g Fraction[T]) Fraction[T] {
	return Fraction[T]{num: f.num.Mul(g.num), den: f.den.Mul(g.den)}
}

// Scale returns (v·num)/(v·den).
func (f Fraction[T]) Scale(v T) Fraction[T] {
	return Fraction[T]{num: f.num.Scale(v), den: f.den.Scale(v)}
}

// Eval returns num(x)/den(x).
// Errors: ErrZeroDenominator when den(x) == 0.
func (f Fraction[T]) Eval(x T) (T, error) {
	d := f.den.Eval(x)
	if d == 0 {
		return 0, polyErrorf(opFractionEval, fmt.Errorf("x=%v: %w", x, ErrZeroDenominator))
	}

	return f.num.Eval(x) / d, nil
}

// EvalFractionAt evaluates f at a value of another arithmetic type X.
// Errors: ErrZeroDenominator when den(x) == 0.
func EvalFractionAt[T, X Number](f Fraction[T], x X) (X, error) {
	d := EvalAt(f.den, x)
	if d == 0 {
		return 0, polyErrorf(opFractionEval, fmt.Errorf("x=%v: %w", x, ErrZeroDenominator))
	}

	return EvalAt(f.num, x) / d, nil
}

// Equal reports whether both numerators and both denominators are Equal.
// Equivalent but differently scaled fractions (1/2 vs 2/4) are not Equal.
func (f Fraction[T]) Equal(g Fraction[T]) bool {
	return f.num.Equal(g.num) && f.den.Equal(g.den)
}

// String renders "[ num ] / [ den ]".
func (f Fraction[T]) String() string {
	return "[ " + f.num.String() + " ] / [ " + f.den.String() + " ]"
}
