// SPDX-License-Identifier: MIT
package mfd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmfd/matrix"
	"github.com/katalvlaran/lvmfd/mfd"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)

	return d
}

func TestIndependent_SingleRow(t *testing.T) {
	ok, c, err := mfd.Independent(mustDense(t, [][]float64{{0, 0, 0}}))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotNil(t, c)
	assert.Empty(t, c)

	ok, c, err = mfd.Independent(mustDense(t, [][]float64{{0, 3, 0}}))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, c)
}

func TestIndependent_Table(t *testing.T) {
	tests := []struct {
		name  string
		rows  [][]float64
		indep bool
		c     []float64
	}{
		{name: "orthogonal", rows: [][]float64{{1, 0}, {0, 1}}, indep: true},
		{name: "skewed but independent", rows: [][]float64{{1, 2, 0}, {1, 2, 1}}, indep: true},
		{name: "multiple", rows: [][]float64{{1, 2, 0}, {2, 4, 0}}, c: []float64{2}},
		{name: "sum of two", rows: [][]float64{{1, 0, 1}, {0, 1, 1}, {1, 1, 2}}, c: []float64{1, 1}},
		{name: "zero candidate", rows: [][]float64{{1, 0}, {0, 0}}, c: []float64{0}},
		{name: "rows of very different scale", rows: [][]float64{{1e5, 0}, {0, 1}}, indep: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, c, err := mfd.Independent(mustDense(t, tt.rows))
			require.NoError(t, err)
			assert.Equal(t, tt.indep, ok)
			if tt.indep {
				assert.Nil(t, c)
				return
			}
			assert.InDeltaSlice(t, tt.c, c, 1e-9)
		})
	}
}

func TestIndependent_SnapsNegligibleCoefficients(t *testing.T) {
	// last = r0 + 1e-12·r1; the 1e-12 share is below max|c|/gap.
	ok, c, err := mfd.Independent(mustDense(t, [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{1, 1e-12, 0},
	}))
	require.NoError(t, err)
	require.False(t, ok)
	require.Len(t, c, 2)
	assert.InDelta(t, 1, c[0], 1e-12)
	assert.Equal(t, 0.0, c[1])
}

func TestIndependent_ResidualDecides(t *testing.T) {
	block := mustDense(t, [][]float64{{1, 0}, {1, 1e-3}})

	ok, _, err := mfd.Independent(block)
	require.NoError(t, err)
	assert.True(t, ok)

	// A tighter gap flags the block, but r0 leaves a residual of 1e-3.
	ok, c, err := mfd.Independent(block, mfd.WithGap(1e4))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, c)

	ok, c, err = mfd.Independent(block, mfd.WithGap(1e4), mfd.WithResidualTolerance(1e-2))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.InDeltaSlice(t, []float64{1}, c, 1e-9)
}

// Rows of the shifted system of 100/(1000+10s+0.1s²): [Dl; Nl] at shifts
// 0..2, each row placed one coefficient further right.
func TestIndependent_ScaledShiftedSystem(t *testing.T) {
	atShift1 := mustDense(t, [][]float64{
		{1000, 10, 0.1, 0},
		{100, 0, 0, 0},
		{0, 1000, 10, 0.1},
		{0, 100, 0, 0},
	})
	ok, c, err := mfd.Independent(atShift1)
	require.NoError(t, err)
	assert.True(t, ok, "no degree-1 relation exists")
	assert.Nil(t, c)

	atShift2 := mustDense(t, [][]float64{
		{1000, 10, 0.1, 0, 0},
		{100, 0, 0, 0, 0},
		{0, 1000, 10, 0.1, 0},
		{0, 100, 0, 0, 0},
		{0, 0, 1000, 10, 0.1},
		{0, 0, 100, 0, 0},
	})
	ok, c, err = mfd.Independent(atShift2)
	require.NoError(t, err)
	require.False(t, ok)
	assert.InDeltaSlice(t, []float64{1000, -10000, 0, -100, 0}, c, 1e-6)
}

func TestIndependent_Errors(t *testing.T) {
	_, _, err := mfd.Independent(nil)
	require.ErrorIs(t, err, mfd.ErrNilMatrix)

	var d *matrix.Dense
	_, _, err = mfd.Independent(d)
	require.ErrorIs(t, err, mfd.ErrNilMatrix)
}
