// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmfd/matrix"
)

func TestGram(t *testing.T) {
	s := MustDense(t, [][]float64{{1, 2, 0}, {0, 1, 3}})
	g, err := matrix.Gram(s)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{5, 2}, {2, 10}}, g)

	// exact symmetry on random input
	r := RandFilledDense(t, 6, 9, 7)
	g, err = matrix.Gram(hide{r})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(g, 0))

	_, err = matrix.Gram(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSingularValuesSym(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want []float64
	}{
		{name: "diagonal unsorted", rows: [][]float64{{1, 0, 0}, {0, -7, 0}, {0, 0, 3}}, want: []float64{7, 3, 1}},
		{name: "rank one", rows: [][]float64{{1, 2}, {2, 4}}, want: []float64{5, 0}},
		{name: "two by two", rows: [][]float64{{2, 1}, {1, 2}}, want: []float64{3, 1}},
		{name: "all zero", rows: [][]float64{{0, 0}, {0, 0}}, want: []float64{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := matrix.SingularValuesSym(MustDense(t, tt.rows), matrix.DefaultEigenRelTol)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, sig, 1e-12)
			for i := 1; i < len(sig); i++ {
				assert.GreaterOrEqual(t, sig[i-1], sig[i], "descending order")
			}
		})
	}
}

func TestSingularValuesSym_GramOfRandomRows(t *testing.T) {
	// σ(S·Sᵀ) are non-negative; their sum is trace(S·Sᵀ) = ‖S‖²_F.
	s := RandFilledDense(t, 5, 8, 42)
	g, err := matrix.Gram(s)
	require.NoError(t, err)
	sig, err := matrix.SingularValuesSym(g, matrix.DefaultEigenRelTol)
	require.NoError(t, err)

	var trace, sum float64
	for i := 0; i < 5; i++ {
		v, _ := g.At(i, i)
		trace += v
		sum += sig[i]
		assert.GreaterOrEqual(t, sig[i], 0.0)
	}
	assert.InDelta(t, trace, sum, 1e-9)
}

func TestSingularValuesSym_Errors(t *testing.T) {
	_, err := matrix.SingularValuesSym(MustDense(t, [][]float64{{1, 2}}), matrix.DefaultEigenRelTol)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.SingularValuesSym(MustDense(t, [][]float64{{1, 2}, {0, 1}}), matrix.DefaultEigenRelTol)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestStack(t *testing.T) {
	top := MustDense(t, [][]float64{{1, 2, 3}})
	bottom := MustDense(t, [][]float64{{4}, {5}})

	st, err := matrix.Stack(top, bottom)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 0, 0}, {5, 0, 0}}, st)

	st, err = matrix.Stack(bottom, hide{top})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 0, 0}, {5, 0, 0}, {1, 2, 3}}, st)

	_, err = matrix.Stack(top, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMaxAbs(t *testing.T) {
	assert.Equal(t, 9.0, matrix.MaxAbs(MustDense(t, [][]float64{{1, -9}, {3, 4}})))
}

func TestOrthonormalRows(t *testing.T) {
	// Rows with very different scales and a shallow angle between them.
	a := MustDense(t, [][]float64{
		{10000, 200, 1, 0},
		{1, 0, 0, 0},
		{0, 10000, 200, 1},
	})
	q, l, err := matrix.OrthonormalRows(hide{a})
	require.NoError(t, err)

	// Q·Qᵀ = I.
	qqt, err := matrix.Gram(q)
	require.NoError(t, err)
	id := MustDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	CompareClose(t, qqt, id, 0, 1e-12)

	// L is lower triangular with a positive diagonal and L·Q = A.
	for i := 0; i < 3; i++ {
		d, err := l.At(i, i)
		require.NoError(t, err)
		assert.Greater(t, d, 0.0)
		for j := i + 1; j < 3; j++ {
			v, err := l.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v)
		}
	}
	lq, err := matrix.Mul(l, q)
	require.NoError(t, err)
	CompareClose(t, lq, a, 1e-12, 1e-9)
}

func TestOrthonormalRows_Errors(t *testing.T) {
	_, _, err := matrix.OrthonormalRows(MustDense(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, _, err = matrix.OrthonormalRows(MustDense(t, [][]float64{{1}, {1}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, _, err = matrix.OrthonormalRows(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
