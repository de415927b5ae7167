// SPDX-License-Identifier: MIT
// Package poly - univariate polynomials over a numeric coefficient type.
//
// Purpose:
//   - Immutable polynomial values with ring arithmetic (Add, Sub, Mul, Scale),
//     Horner evaluation, long division and tolerance-aware equality.
//
// Invariants:
//   - Coefficients are ascending: index i holds the coefficient of xⁱ.
//   - The highest stored coefficient is non-zero, except for the canonical
//     zero polynomial [0]. Every constructor and every operation re-trims.
//   - Degree == Len()-1; the zero polynomial has degree 0.
//
// Notes:
//   - The Go zero value Polynomial[T]{} behaves as the zero polynomial.
//   - Operations never alias their operands: results own fresh storage.

package poly

import (
	"fmt"
	"strings"
)

const _fmtSep = ", "

// Polynomial is an immutable univariate polynomial with coefficients of type T.
type Polynomial[T Number] struct {
	coeffs []T // ascending, trimmed; nil means [0]
}

// New builds a polynomial from ascending coefficients c0, c1, ..., cn.
// The input is copied and trimmed; no arguments yield the zero polynomial.
func New[T Number](coeffs ...T) Polynomial[T] {
	cp := make([]T, len(coeffs))
	copy(cp, coeffs)

	return fromOwned(cp)
}

// fromOwned adopts a freshly allocated slice without copying.
func fromOwned[T Number](c []T) Polynomial[T] {
	return Polynomial[T]{coeffs: TrimTrailingZeros(c)}
}

// Zero returns the zero polynomial [0].
func Zero[T Number]() Polynomial[T] { return Polynomial[T]{coeffs: []T{0}} }

// Constant returns the degree-0 polynomial [v].
func Constant[T Number](v T) Polynomial[T] { return Polynomial[T]{coeffs: []T{v}} }

// Monomial returns c·xᵏ. Panics when k is negative.
func Monomial[T Number](c T, k int) Polynomial[T] {
	if k < 0 {
		panic("poly: Monomial: negative degree")
	}
	cp := make([]T, k+1)
	cp[k] = c

	return fromOwned(cp)
}

// TrimTrailingZeros returns c without its trailing zero coefficients, always
// keeping at least one coefficient. An empty input yields [0].
// The result shares storage with c. Applying it twice is a no-op.
func TrimTrailingZeros[T Number](c []T) []T {
	if len(c) == 0 {
		return []T{0}
	}
	n := len(c)
	for n > 1 && c[n-1] == 0 {
		n--
	}

	return c[:n]
}

// raw exposes the trimmed coefficients, mapping the zero value to [0].
func (p Polynomial[T]) raw() []T {
	if len(p.coeffs) == 0 {
		return []T{0}
	}

	return p.coeffs
}

// Len returns the number of stored coefficients (Degree()+1).
func (p Polynomial[T]) Len() int { return len(p.raw()) }

// Degree returns the index of the highest stored coefficient. The zero polynomial has degree 0.
func (p Polynomial[T]) Degree() int { return len(p.raw()) - 1 }

// Coeff returns the coefficient of xⁱ, or 0 when i is outside [0, Len()).
func (p Polynomial[T]) Coeff(i int) T {
	c := p.raw()
	if i < 0 || i >= len(c) {
		return 0
	}

	return c[i]
}

// Coeffs returns a copy of the ascending coefficients.
func (p Polynomial[T]) Coeffs() []T {
	c := p.raw()
	out := make([]T, len(c))
	copy(out, c)

	return out
}

// Lead returns the leading (highest-degree) coefficient.
func (p Polynomial[T]) Lead() T {
	c := p.raw()

	return c[len(c)-1]
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial[T]) IsZero() bool {
	c := p.raw()

	return len(c) == 1 && c[0] == 0
}

// Add returns p + q: pad to the longer length, add entrywise, trim.
// Complexity: O(max(len p, len q)).
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	return p.combine(q, 1)
}

// Sub returns p − q.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	return p.combine(q, 0)
}

// combine adds (add==1) or subtracts (add==0) entrywise. The flag is an
// integer switch rather than a sign factor so unsigned T never sees -1.
func (p Polynomial[T]) combine(q Polynomial[T], add int) Polynomial[T] {
	a, b := p.raw(), q.raw()
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]T, n)
	copy(out, a)
	for i, v := range b {
		if add == 1 {
			out[i] += v
		} else {
			out[i] -= v
		}
	}

	return fromOwned(out)
}

// Neg returns −p.
func (p Polynomial[T]) Neg() Polynomial[T] {
	return Zero[T]().Sub(p)
}

// Mul returns p·q by convolution: c[i+j] += a[i]·b[j].
// Complexity: O(len p · len q).
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	a, b := p.raw(), q.raw()
	out := make([]T, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}

	return fromOwned(out)
}

// Scale returns v·p.
func (p Polynomial[T]) Scale(v T) Polynomial[T] {
	a := p.raw()
	out := make([]T, len(a))
	for i, c := range a {
		out[i] = c * v
	}

	return fromOwned(out)
}

// Shift returns xᵏ·p. Panics when k is negative.
func (p Polynomial[T]) Shift(k int) Polynomial[T] {
	return p.Mul(Monomial[T](1, k))
}

// Eval evaluates p at x with Horner's scheme, from the leading coefficient down.
// Complexity: O(Len()).
func (p Polynomial[T]) Eval(x T) T {
	c := p.raw()
	acc := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		acc = acc*x + c[i]
	}

	return acc
}

// EvalAt evaluates p at a value of another arithmetic type X, converting
// every coefficient to X before the Horner step.
func EvalAt[T, X Number](p Polynomial[T], x X) X {
	c := p.raw()
	acc := X(c[len(c)-1])
	for i := len(c) - 2; i >= 0; i-- {
		acc = acc*x + X(c[i])
	}

	return acc
}

// Equal compares p and q coefficientwise: exactly for integer T, within
// DefaultEpsilon for float T. Missing coefficients compare as 0.
func (p Polynomial[T]) Equal(q Polynomial[T]) bool {
	return p.EqualWithin(q, DefaultEpsilon)
}

// EqualWithin is Equal with an explicit float tolerance. Integer T ignores eps.
func (p Polynomial[T]) EqualWithin(q Polynomial[T], eps float64) bool {
	n := p.Len()
	if q.Len() > n {
		n = q.Len()
	}
	for i := 0; i < n; i++ {
		if !closeTo(p.Coeff(i), q.Coeff(i), eps) {
			return false
		}
	}

	return true
}

// MaxByDegree returns the operand of highest degree. On ties the later
// operand wins. With no operands it returns the zero polynomial.
func MaxByDegree[T Number](ps ...Polynomial[T]) Polynomial[T] {
	if len(ps) == 0 {
		return Zero[T]()
	}
	best := ps[0]
	for _, p := range ps[1:] {
		if p.Degree() >= best.Degree() {
			best = p
		}
	}

	return best
}

// Convert re-types every coefficient of p with a Go conversion from T to U
// (float to integer truncates toward zero), then trims.
func Convert[T, U Number](p Polynomial[T]) Polynomial[U] {
	c := p.raw()
	out := make([]U, len(c))
	for i, v := range c {
		out[i] = U(v)
	}

	return fromOwned(out)
}

// String renders the ascending coefficients as "c0, c1, ..., cn".
func (p Polynomial[T]) String() string {
	c := p.raw()
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, _fmtSep)
}
