// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an
// operation tag) and tests match them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so wrapped chains stay
// greppable. Wrap with fmt.Errorf("ctx: %w", ErrX) when context helps;
// callers still match with errors.Is.

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Induced) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a
	// right-hand side whose length differs from the system order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the supplied tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrMatrixEigenFailed indicates that the Jacobi routine failed to converge
	// under the given tolerance/iterations.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrSingular is returned when a zero pivot is met during LU in the
	// non-pivoting scheme, or when OrthonormalRows meets a dependent row.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)
