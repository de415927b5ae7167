// SPDX-License-Identifier: MIT

package mfd

import (
	"fmt"

	"github.com/katalvlaran/lvmfd/matrix"
	"github.com/katalvlaran/lvmfd/poly"
	"github.com/katalvlaran/lvmfd/polymatrix"
)

// StackedF builds the stacked coefficient matrix of a left factorization:
//
//	F = [ flatten(Dlᵀ) ]   rows rows
//	    [ flatten(Nlᵀ) ]   cols rows
//
// Both halves are flattened degree-major over Fbcols = rows block columns;
// the narrower half is padded with zero columns on the right and the
// returned Deg is the larger of the two.
//
// Errors:
//   - ErrNilMatrix; ErrShapeMismatch when Dl is not square or its order
//     differs from Nl.Rows.
func StackedF[T poly.Number](nl, dl *polymatrix.Matrix[T]) (polymatrix.CoeffMatrix, error) {
	if nl == nil || dl == nil {
		return polymatrix.CoeffMatrix{}, mfdErrorf(opStackedF, ErrNilMatrix)
	}
	if dl.Rows() != dl.Cols() || dl.Rows() != nl.Rows() {
		return polymatrix.CoeffMatrix{}, mfdErrorf(opStackedF,
			fmt.Errorf("Dl %dx%d, Nl %dx%d: %w", dl.Rows(), dl.Cols(), nl.Rows(), nl.Cols(), ErrShapeMismatch))
	}

	top, err := dl.Transpose().ToCoeffMatrix()
	if err != nil {
		return polymatrix.CoeffMatrix{}, mfdErrorf(opStackedF, err)
	}
	bottom, err := nl.Transpose().ToCoeffMatrix()
	if err != nil {
		return polymatrix.CoeffMatrix{}, mfdErrorf(opStackedF, err)
	}
	f, err := matrix.Stack(top.Mat, bottom.Mat)
	if err != nil {
		return polymatrix.CoeffMatrix{}, mfdErrorf(opStackedF, err)
	}

	return polymatrix.CoeffMatrix{Mat: f, Deg: max(top.Deg, bottom.Deg)}, nil
}

// GetF is Left followed by StackedF.
func GetF[T poly.Number](mf *polymatrix.FractionMatrix[T]) (polymatrix.CoeffMatrix, error) {
	nl, dl, err := Left(mf)
	if err != nil {
		return polymatrix.CoeffMatrix{}, err
	}

	return StackedF(nl, dl)
}
