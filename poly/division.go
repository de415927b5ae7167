// SPDX-License-Identifier: MIT

package poly

const opDivide = "Divide"

// Divide performs polynomial long division: dividend = divisor·quotient + remainder
// with Degree(remainder) < Degree(divisor), or remainder == 0.
//
// Implementation:
//   - Stage 1: reject a zero divisor with ErrZeroDivisor.
//   - Stage 2: a dividend shorter than the divisor yields (0, dividend).
//   - Stage 3: for each of the degN−degD+1 steps, from the top down, the
//     quotient coefficient is lead(working)/lead(divisor); the scaled divisor
//     is subtracted from the working copy and the consumed leading
//     coefficient is set to exactly 0.
//   - Stage 4: the low degD coefficients of the working copy are the remainder.
//
// Notes:
//   - Integer T divides with Go's truncating division; the identity above then
//     holds only when each step divides exactly.
//
// Complexity:
//   - Time O((degN−degD+1)·degD), Space O(degN).
func Divide[T Number](dividend, divisor Polynomial[T]) (quotient, remainder Polynomial[T], err error) {
	if divisor.IsZero() {
		return Polynomial[T]{}, Polynomial[T]{}, polyErrorf(opDivide, ErrZeroDivisor)
	}
	n, d := dividend.raw(), divisor.raw()
	if len(n) < len(d) {
		return Zero[T](), New(n...), nil
	}

	work := make([]T, len(n))
	copy(work, n)
	degN, degD := len(n)-1, len(d)-1
	lead := d[degD]
	q := make([]T, degN-degD+1)

	var k, j int
	var f T
	for k = degN - degD; k >= 0; k-- {
		f = work[k+degD] / lead
		q[k] = f
		for j = 0; j < degD; j++ {
			work[k+j] -= f * d[j]
		}
		work[k+degD] = 0
	}
	if degD == 0 {
		return fromOwned(q), Zero[T](), nil
	}

	return fromOwned(q), fromOwned(work[:degD]), nil
}
