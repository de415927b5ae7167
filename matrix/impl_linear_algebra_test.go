// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmfd/matrix"
)

const (
	rtolTiny = 1e-12
	atolTiny = 1e-12
)

func TestZerosLike(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	z, err := matrix.ZerosLike(hide{a})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z)

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustDense(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, p)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_FastPathMatchesFallback hides the concrete type of one operand.
func TestMul_FastPathMatchesFallback(t *testing.T) {
	a := RandFilledDense(t, 4, 5, 1)
	b := RandFilledDense(t, 5, 3, 2)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	CompareClose(t, fast, slow, 0, 0)
}

func TestTransposeMatVec(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at)

	tt, err := matrix.Transpose(hide{at})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, tt)

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEigen_Symmetric(t *testing.T) {
	a := MustDense(t, [][]float64{
		{2, 1, 0},
		{1, 2, 0},
		{0, 0, 5},
	})
	vals, q, err := matrix.Eigen(a, 1e-12, 100)
	require.NoError(t, err)
	sort.Float64s(vals)
	assert.InDeltaSlice(t, []float64{1, 3, 5}, vals, 1e-10)

	// Q is orthogonal: QᵀQ = I.
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	id := MustDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	CompareClose(t, qtq, id, 0, 1e-10)
}

func TestEigen_DiagonalAndOneByOne(t *testing.T) {
	// Already diagonal: no rotation, even with tol = 0.
	vals, _, err := matrix.Eigen(MustDense(t, [][]float64{{4, 0}, {0, -1}}), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, -1}, vals)

	vals, _, err = matrix.Eigen(MustDense(t, [][]float64{{7}}), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, vals)
}

func TestEigen_Errors(t *testing.T) {
	_, _, err := matrix.Eigen(MustDense(t, [][]float64{{1, 2}, {3, 4}}), 1e-12, 10)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.Eigen(MustDense(t, [][]float64{{1, 2, 3}}), 1e-12, 10)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// One rotation cannot diagonalize a dense 3×3.
	full := MustDense(t, [][]float64{{4, 1, 2}, {1, 3, 1}, {2, 1, 5}})
	_, _, err = matrix.Eigen(full, 1e-14, 1)
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)

	_, _, err = matrix.Eigen(full, math.NaN(), 10)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestLU_Reconstructs(t *testing.T) {
	a := MustDense(t, [][]float64{
		{4, 3, 2},
		{6, 3, 1},
		{2, 5, 7},
	})
	l, u, err := matrix.LU(a)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		v, _ := l.At(i, i)
		assert.Equal(t, 1.0, v, "unit diagonal of L")
		for j := 0; j < i; j++ {
			v, _ = u.At(i, j)
			assert.Equal(t, 0.0, v, "U is upper triangular")
		}
	}
	lu, err := matrix.Mul(l, u)
	require.NoError(t, err)
	CompareClose(t, lu, a, rtolTiny, atolTiny)
}

func TestLU_Singular(t *testing.T) {
	_, _, err := matrix.LU(MustDense(t, [][]float64{{0, 1}, {1, 0}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolve(t *testing.T) {
	// Gram matrix of two independent rows: symmetric positive definite.
	g := MustDense(t, [][]float64{{5, 4}, {4, 5}})
	x, err := matrix.Solve(g, []float64{13, 14})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, x, 1e-12)

	_, err = matrix.Solve(g, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Solve(MustDense(t, [][]float64{{1, 2}, {2, 4}}), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrSingular)
}
