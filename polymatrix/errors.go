// SPDX-License-Identifier: MIT
// Package polymatrix: sentinel error set.
// Every message is prefixed with "polymatrix: ..."; match with errors.Is.

package polymatrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates non-positive rows or cols.
	ErrInvalidDimensions = errors.New("polymatrix: dimensions must be > 0")

	// ErrInvalidArgument indicates that rows·cols differs from the number of
	// supplied elements, or that rows of a nested literal are ragged.
	ErrInvalidArgument = errors.New("polymatrix: element count does not match shape")

	// ErrShapeMismatch indicates operands of incompatible shapes
	// (Add/Sub need equal shapes, Mul needs lhs.Cols == rhs.Rows).
	ErrShapeMismatch = errors.New("polymatrix: shape mismatch")

	// ErrOutOfRange indicates a row or column index outside bounds.
	ErrOutOfRange = errors.New("polymatrix: index out of range")

	// ErrNilMatrix indicates a nil matrix operand.
	ErrNilMatrix = errors.New("polymatrix: nil matrix")
)

// Operation tags.
const (
	opNew       = "New"
	opAt        = "At"
	opSet       = "Set"
	opRow       = "Row"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opFlatten   = "ToCoeffMatrix"
	opNatural   = "ToMatrix"
	opUnflatten = "FromCoeffMatrix"
)

// polymatrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
func polymatrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
