// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmfd/matrix"
)

func TestValidators(t *testing.T) {
	var nilDense *matrix.Dense
	sq := MustDense(t, [][]float64{{1, 2}, {2, 1}})
	rect := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(nilDense), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(sq))

	require.ErrorIs(t, matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(sq, nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateBinarySameShape(sq, sq.Clone()))

	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nilDense), matrix.ErrNilMatrix)

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateSymmetric(sq, 0))
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, [][]float64{{1, 2}, {2.1, 1}}), 0.05), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(MustDense(t, [][]float64{{1, 2}, {2.1, 1}}), 0.2))

	require.NoError(t, matrix.ValidateMulCompatible(sq, rect))
	require.ErrorIs(t, matrix.ValidateMulCompatible(rect, sq), matrix.ErrDimensionMismatch)
}
