// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitValInRange(t *testing.T) {
	var mr F64
	mr.SetInfinity()
	assert.False(t, mr.IsValid())

	vals := []float64{0.3, -1.2, 4.5, 2.2}
	for _, v := range vals {
		mr.FitValInRange(v)
	}
	assert.Equal(t, -1.2, mr.Min)
	assert.Equal(t, 4.5, mr.Max)
	assert.True(t, mr.IsValid())
	assert.False(t, mr.FitValInRange(0)) // already in range
}

func TestInRange(t *testing.T) {
	mr := F64{Min: -1, Max: 1}
	assert.True(t, mr.InRange(0))
	assert.True(t, mr.InRange(-1))
	assert.True(t, mr.InRange(1))
	assert.False(t, mr.InRange(1.01))
	assert.Equal(t, 2.0, mr.Range())
	assert.Equal(t, 0.0, mr.Midpoint())
	assert.Equal(t, 1.0, mr.ClipValue(3))
	assert.Equal(t, -1.0, mr.ClipValue(-3))
	assert.Equal(t, 0.5, mr.ClipValue(0.5))
}

func TestRangeClamp(t *testing.T) {
	var rr Range64
	mn, mx := rr.Clamp(-2, 2) // nothing fixed: pass through
	assert.Equal(t, -2.0, mn)
	assert.Equal(t, 2.0, mx)

	rr.SetMin(0)
	mn, mx = rr.Clamp(-2, 2)
	assert.Equal(t, 0.0, mn)
	assert.Equal(t, 2.0, mx)

	rr.SetMax(1)
	mn, mx = rr.Clamp(-2, 2)
	assert.Equal(t, 0.0, mn)
	assert.Equal(t, 1.0, mx)
}
