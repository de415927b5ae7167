// Package poly implements univariate polynomials and polynomial fractions
// over any built-in integer or float coefficient type.
//
// Coefficients are ascending (index i is the coefficient of xⁱ) and always
// trimmed of trailing zeros, so Degree is well defined and the zero
// polynomial has the single canonical form [0].
//
// Equality is exact for integer coefficients and tolerant (DefaultEpsilon)
// for float coefficients. Division by the zero polynomial and evaluation of
// a fraction at a root of its denominator are reported with sentinel errors
// (ErrZeroDivisor, ErrZeroDenominator) instead of panics.
package poly
