// SPDX-License-Identifier: MIT
package mfd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmfd/matrix"
	"github.com/katalvlaran/lvmfd/mfd"
)

func TestOptions_Defaults(t *testing.T) {
	o := mfd.NewOptions()
	assert.Equal(t, mfd.DefaultGap, o.Gap())
	assert.Equal(t, mfd.MachineEpsilon, o.Epsilon())
	assert.Equal(t, math.Nextafter(1, 2)-1, o.Epsilon())
	assert.Equal(t, matrix.DefaultEigenRelTol, o.EigenTolerance())
	assert.Equal(t, -1, o.MaxShift())
	assert.Equal(t, mfd.DefaultResidualTolerance, o.ResidualTolerance())
}

func TestOptions_Apply(t *testing.T) {
	o := mfd.NewOptions(mfd.WithGap(1e6), mfd.WithEpsilon(1e-12), mfd.WithEigenTolerance(1e-10), mfd.WithMaxShift(3), mfd.WithResidualTolerance(1e-6), nil, mfd.WithGap(1e7))
	assert.Equal(t, 1e7, o.Gap())
	assert.Equal(t, 1e-12, o.Epsilon())
	assert.Equal(t, 1e-10, o.EigenTolerance())
	assert.Equal(t, 3, o.MaxShift())
	assert.Equal(t, 1e-6, o.ResidualTolerance())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { mfd.WithGap(1) })
	assert.Panics(t, func() { mfd.WithGap(math.Inf(1)) })
	assert.Panics(t, func() { mfd.WithGap(math.NaN()) })
	assert.Panics(t, func() { mfd.WithEpsilon(0) })
	assert.Panics(t, func() { mfd.WithEigenTolerance(-1e-3) })
	assert.Panics(t, func() { mfd.WithMaxShift(-1) })
	assert.Panics(t, func() { mfd.WithResidualTolerance(0) })
	assert.Panics(t, func() { mfd.WithResidualTolerance(math.Inf(1)) })
}
