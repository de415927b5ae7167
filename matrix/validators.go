// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Canonical guards shared by every kernel: nil, shape, square, symmetric,
//    vector length and multiplication compatibility.
//  - Return sentinel errors tagged with the validator name so kernels can
//    wrap them once more with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.
//  - The symmetry check scans the strict upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden behind the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly n entries.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch on structural issues.
//   - ErrNaNInf when tol is not finite (negative tol is taken by magnitude).
//   - ErrAsymmetry on the first violating pair in i→j order.
//
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateMulCompatible ensures both operands are non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
