// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points that delegate to the canonical kernels.
//   - No logic duplication; facades never change loop orders or numeric policy.

package matrix

// ZerosLike returns a new zero matrix with the same shape as m.
// A 0-row or 0-column m yields an empty matrix of that shape.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDenseZeroOK(m.Rows(), m.Cols())
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// Equal reports whether a and b have the same shape and every pair of
// entries differs by at most the configured epsilon (WithEpsilon).
func Equal(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return ewAllClose(a, b, 0, o.eps)
}
