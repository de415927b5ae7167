// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Fixtures are small, deterministic and finite, so the NaN/Inf policy never
// interferes with the kernel under test.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmfd/matrix"
)

// hide wraps any Matrix to hide its concrete type, forcing the non-*Dense
// materialization path of the kernels.
type hide struct{ matrix.Matrix }

// MustDense builds a *Dense from row literals or fails the test.
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)

	return d
}

// RandFilledDense returns an r×c Dense filled with deterministic U(-1,1) values.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, d.Set(i, j, rng.Float64()*2-1))
		}
	}

	return d
}

// CompareExact asserts strict equality between m and a row literal.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols of row %d", i)
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v, "m[%d,%d]", i, j)
		}
	}
}

// CompareClose asserts AllClose(a, b) under (rtol, atol).
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "AllClose=false (rtol=%g, atol=%g)\n%v\n%v", rtol, atol, a, b)
}
