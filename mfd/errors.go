// SPDX-License-Identifier: MIT
// Package mfd: sentinel error set.
// Every message is prefixed with "mfd: ..."; match with errors.Is.
// Errors from matrix and polymatrix pass through wrapped, so their sentinels
// stay matchable too.

package mfd

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("mfd: nil matrix")

	// ErrShapeMismatch indicates Nl and Dl whose shapes do not describe a
	// left factorization (Dl must be square with Nl.Rows rows).
	ErrShapeMismatch = errors.New("mfd: shape mismatch")

	// ErrInvalidArgument indicates an empty block or an F whose Deg does not
	// divide its column count.
	ErrInvalidArgument = errors.New("mfd: invalid argument")

	// ErrReductionIncomplete indicates that the row search ran out of
	// candidate rows (or shifts) before collecting Frows−Fbcols dependency
	// rows. No partial result accompanies it.
	ErrReductionIncomplete = errors.New("mfd: reduction incomplete")

	// ErrResidual indicates dependency rows that fail to annihilate the
	// shifted system within the residual tolerance. Reduce never returns
	// factors alongside it.
	ErrResidual = errors.New("mfd: residual check failed")
)

// Operation tags.
const (
	opLeft        = "Left"
	opStackedF    = "StackedF"
	opIndependent = "Independent"
	opReduce      = "Reduce"
	opRelations   = "Relations"
)

// mfdErrorf wraps err with an operation tag, preserving the sentinel via %w.
func mfdErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
