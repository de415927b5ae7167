// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row-space helpers used by rank decisions: Gram products, singular values
//     of symmetric matrices, orthonormal row bases, vertical stacking with
//     right padding.
//
// Determinism:
//   - Everything delegates to the fixed-order kernels of impl_linear_algebra.go;
//     the eigenvalue order is normalized by a stable descending sort.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

const (
	opGram        = "Gram"
	opSingular    = "SingularValuesSym"
	opStack       = "Stack"
	opOrthonormal = "OrthonormalRows"
)

// DefaultEigenRelTol is the Jacobi tolerance of SingularValuesSym relative to max|G|.
const DefaultEigenRelTol = 1e-14

// MinEigenSweeps is the lower bound of the Jacobi rotation budget used by
// SingularValuesSym; the budget grows as 100·n².
const MinEigenSweeps = 100

// Gram returns S·Sᵀ, the r×r matrix of row inner products of S.
// The result is exactly symmetric (see Mul).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r²·c), Space O(r² + r·c).
func Gram(s Matrix) (*Dense, error) {
	if err := ValidateNotNil(s); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	st, err := Transpose(s)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	g, err := Mul(s, st)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	return g, nil
}

// MaxAbs returns max|m[i,j]|, or 0 for an empty matrix.
func MaxAbs(m *Dense) float64 {
	var best float64
	m.Do(func(_, _ int, v float64) bool {
		if a := math.Abs(v); a > best {
			best = a
		}
		return true
	})

	return best
}

// SingularValuesSym returns the singular values of a symmetric matrix,
// sorted in descending order.
// MAIN DESCRIPTION:
//   - For symmetric G the singular values are the magnitudes of its eigenvalues.
//
// Implementation:
//   - Stage 1: scale the Jacobi tolerance by max|G| (relTol·max|G|), so the
//     stopping rule is independent of the magnitude of G.
//   - Stage 2: Eigen with a rotation budget of max(MinEigenSweeps, 100·n²).
//   - Stage 3: take magnitudes and sort descending.
//
// Inputs:
//   - g: symmetric square matrix.
//   - relTol: relative tolerance (> 0); pass DefaultEigenRelTol when unsure.
//
// Errors:
//   - everything Eigen reports (ErrAsymmetry, ErrMatrixEigenFailed, ...).
//
// Complexity:
//   - Time O(budget·n), Space O(n²).
func SingularValuesSym(g Matrix, relTol float64) ([]float64, error) {
	if err := ValidateSquareNonNil(g); err != nil {
		return nil, matrixErrorf(opSingular, err)
	}
	dg, err := asDense(g)
	if err != nil {
		return nil, matrixErrorf(opSingular, err)
	}
	n := dg.r
	if n == 0 {
		return []float64{}, nil
	}
	scale := MaxAbs(dg)
	if scale == 0 {
		return make([]float64, n), nil // all-zero matrix: every singular value is 0
	}
	budget := 100 * n * n
	if budget < MinEigenSweeps {
		budget = MinEigenSweeps
	}
	eigs, _, err := Eigen(dg, relTol*scale, budget)
	if err != nil {
		return nil, matrixErrorf(opSingular, err)
	}
	for i := range eigs {
		eigs[i] = math.Abs(eigs[i])
	}
	sort.SliceStable(eigs, func(i, j int) bool { return eigs[i] > eigs[j] })

	return eigs, nil
}

// Stack places top above bottom. The narrower operand is padded with zero
// columns on the right, so the result has max(top.Cols, bottom.Cols) columns.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O((r1+r2)·c), Space O((r1+r2)·c).
func Stack(top, bottom Matrix) (*Dense, error) {
	if err := ValidateNotNil(top); err != nil {
		return nil, matrixErrorf(opStack, err)
	}
	if err := ValidateNotNil(bottom); err != nil {
		return nil, matrixErrorf(opStack, err)
	}
	dt, err := asDense(top)
	if err != nil {
		return nil, matrixErrorf(opStack, err)
	}
	db, err := asDense(bottom)
	if err != nil {
		return nil, matrixErrorf(opStack, err)
	}
	cols := dt.c
	if db.c > cols {
		cols = db.c
	}
	res, err := newDenseZeroOK(dt.r+db.r, cols)
	if err != nil {
		return nil, matrixErrorf(opStack, err)
	}
	for i := 0; i < dt.r; i++ {
		copy(res.data[i*cols:i*cols+dt.c], dt.data[i*dt.c:(i+1)*dt.c])
	}
	for i := 0; i < db.r; i++ {
		off := (dt.r + i) * cols
		copy(res.data[off:off+db.c], db.data[i*db.c:(i+1)*db.c])
	}

	return res, nil
}

// OrthonormalRows factors m (r×c) as m = L·Q, where the r rows of Q are
// orthonormal and L is r×r lower triangular with a positive diagonal.
// Implementation:
//   - Stage 1: walk the rows in order; subtract the projections onto the
//     rows of Q built so far (modified Gram-Schmidt), accumulating them in L.
//   - Stage 2: repeat the sweep once more on the remainder, which keeps Q
//     orthonormal to working precision when rows are nearly parallel.
//   - Stage 3: normalize the remainder into the next row of Q.
//
// Errors:
//   - ErrNilMatrix; ErrSingular when a row has no component outside the span
//     of the rows above it (this includes every r > c).
//
// Complexity:
//   - Time O(r²·c), Space O(r·c + r²).
func OrthonormalRows(m Matrix) (q, l *Dense, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opOrthonormal, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opOrthonormal, err)
	}
	r, c := dm.r, dm.c
	if q, err = newDenseZeroOK(r, c); err != nil {
		return nil, nil, matrixErrorf(opOrthonormal, err)
	}
	if l, err = newDenseZeroOK(r, r); err != nil {
		return nil, nil, matrixErrorf(opOrthonormal, err)
	}

	v := make([]float64, c)
	var (
		i, p, j, pass int
		h, norm       float64
	)
	for i = 0; i < r; i++ {
		copy(v, dm.data[i*c:(i+1)*c])
		for pass = 0; pass < 2; pass++ {
			for p = 0; p < i; p++ {
				qp := q.data[p*c : (p+1)*c]
				h = ZeroSum
				for j = 0; j < c; j++ {
					h += v[j] * qp[j]
				}
				for j = 0; j < c; j++ {
					v[j] -= h * qp[j]
				}
				l.data[i*r+p] += h
			}
		}
		norm = ZeroSum
		for j = 0; j < c; j++ {
			norm += v[j] * v[j]
		}
		norm = math.Sqrt(norm)
		if norm == ZeroSum {
			return nil, nil, matrixErrorf(opOrthonormal, fmt.Errorf("row %d: %w", i, ErrSingular))
		}
		l.data[i*r+i] = norm
		for j = 0; j < c; j++ {
			q.data[i*c+j] = v[j] / norm
		}
	}

	return q, l, nil
}
