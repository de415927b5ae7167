// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear-algebra kernels used by the
// polynomial layers: multiplication, transpose, matrix-vector product,
// Jacobi eigen decomposition of a symmetric matrix, Doolittle LU and linear
// solves.
//
// Purpose:
//   - One canonical implementation per kernel, with strict fail-fast validation.
//   - Operation tags for uniform error wrapping (matrixErrorf).
//
// Notes:
//   - Every kernel accepts the Matrix interface. Non-*Dense operands are
//     materialized once through asDense, so the arithmetic always runs on
//     flat row-major slices in a fixed loop order.
//   - Inputs are never mutated; every result is freshly allocated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every accumulation.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opEigen     = "Eigen"
	opLU        = "LU"
	opSolve     = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the wrapped error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it already is a *Dense, otherwise a fresh
// *Dense copy read through At. Callers treat the result as read-only.
//
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - Mul(S, Transpose(S)) is exactly symmetric: entry (i,j) and (j,i) run
//     the same products in the same order. Gram relies on this.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                          int
		av                               float64
		rowOffsetA, rowOffsetB, rowOffsR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := dm.r, dm.c
	res, err := newDenseZeroOK(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res.validateNaNInf = dm.validateNaNInf

	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if x[j] != 0 {
				acc += d.data[base+j] * x[j]
			}
		}
		y[i] = acc
	}

	return y, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order,
//     apply the rotation that zeroes it and accumulate it into Q.
//   - Stage 3: Fail with ErrMatrixEigenFailed when the largest off-diagonal
//     magnitude is still ≥ tol after maxIter rotations.
//
// Inputs:
//   - m: symmetric Matrix (within tol).
//   - tol: absolute convergence threshold on off-diagonal magnitudes.
//   - maxIter: safety cap on rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix), unsorted.
//   - *Dense: Q whose columns are the matching eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrAsymmetry,
//     ErrNaNInf (bad tol), ErrMatrixEigenFailed.
//
// Complexity:
//   - Time O(maxIter * n^2), Space O(n^2).
//
// Notes:
//   - Scale tol with the magnitude of the input (see SingularValuesSym);
//     an absolute 1e-12 is meaningless for a Gram matrix with entries near 1e6.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	A := src.Clone().(*Dense) // working copy; input stays untouched
	Q, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		Q.data[i*n+i] = 1.0
	}

	var (
		iter, p, q         int
		maxOff             float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
	)
	for iter = 0; iter < maxIter; iter++ {
		maxOff, p, q = maxOffDiagonal(A)
		if maxOff < tol || maxOff == 0 {
			break
		}

		app = A.data[p*n+p]
		aqq = A.data[q*n+q]
		apq = A.data[p*n+q]

		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = A.data[i*n+p]
			aiq = A.data[i*n+q]
			A.data[i*n+p], A.data[p*n+i] = c*aip-s*aiq, c*aip-s*aiq
			A.data[i*n+q], A.data[q*n+i] = s*aip+c*aiq, s*aip+c*aiq
		}
		A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A.data[p*n+q], A.data[q*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip = Q.data[i*n+p]
			qiq = Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}

	if maxOff, _, _ = maxOffDiagonal(A); maxOff > 0 && maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("off-diagonal %g after %d rotations: %w", maxOff, maxIter, ErrMatrixEigenFailed))
	}

	eigs := make([]float64, n)
	for j = 0; j < n; j++ {
		eigs[j] = A.data[j*n+j]
	}

	return eigs, Q, nil
}

// maxOffDiagonal scans the strict upper triangle of a square Dense in i→j
// order and returns the largest magnitude with its position.
func maxOffDiagonal(a *Dense) (float64, int, int) {
	var (
		n      = a.r
		best   float64
		bp, bq int
		off    float64
	)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if off = math.Abs(a.data[i*n+j]); off > best {
				best, bp, bq = off, i, j
			}
		}
	}

	return best, bp, bq
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (U[i,i]==0 during factorization).
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Without pivoting the factorization is only reliable for matrices whose
//     leading principal minors are well away from zero. Symmetric positive
//     definite systems (Gram matrices of independent rows) always qualify.
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := a.r
	L, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		L.data[i*n+i] = 1.0
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = a.data[i*n+j] - sum
		}
		if U.data[i*n+i] == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", i, ErrSingular))
		}
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (a.data[j*n+i] - sum) / U.data[i*n+i]
		}
	}

	return L, U, nil
}

// Solve returns x with A·x = b using LU followed by forward and backward
// substitution.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square or len(b) != n),
//     ErrSingular (zero pivot).
//
// Complexity:
//   - Time O(n^3) for the factorization plus O(n^2) for the two sweeps.
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	L, U, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := a.Rows()
	y := make([]float64, n)
	x := make([]float64, n)
	var i, k int
	var sum float64
	for i = 0; i < n; i++ { // L*y = b, top-down
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += L.data[i*n+k] * y[k]
		}
		y[i] = b[i] - sum
	}
	for i = n - 1; i >= 0; i-- { // U*x = y, bottom-up
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += U.data[i*n+k] * x[k]
		}
		x[i] = (y[i] - sum) / U.data[i*n+i]
	}

	return x, nil
}
