// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/vg"
)

func TestFromName(t *testing.T) {
	p, err := FromName("dashed")
	assert.NoError(t, err)
	assert.Equal(t, []vg.Length{4, 1.5}, p)

	p, err = FromName("solid")
	assert.NoError(t, err)
	assert.Nil(t, p)

	_, err = FromName("wavy")
	assert.Error(t, err)
	assert.Panics(t, func() { MustFromName("wavy") })
	assert.Nil(t, LogFromName("wavy"))
}

func TestFromNameCopies(t *testing.T) {
	p := MustFromName("dotted")
	p[0] = 99
	assert.Equal(t, []vg.Length{1, 1}, Map["dotted"])
	assert.Equal(t, []vg.Length{1, 1}, MustFromName("dotted"))
}

func TestCycle(t *testing.T) {
	dc, err := NewCycle()
	assert.NoError(t, err)
	assert.Equal(t, len(CycleOrder), len(dc.Patterns))

	assert.Nil(t, dc.Next()) // solid first
	assert.Equal(t, []vg.Length{4, 1.5}, dc.Next())
	assert.Equal(t, []vg.Length{8, 1}, dc.Next())

	dc.Reset()
	assert.Nil(t, dc.Next())

	// wraps around
	for i := 0; i < len(CycleOrder); i++ {
		dc.Next()
	}
	assert.Equal(t, []vg.Length{4, 1.5}, dc.Next())

	_, err = NewCycle("solid", "wavy")
	assert.Error(t, err)
}

func TestCycleOrderNamesValid(t *testing.T) {
	for _, nm := range CycleOrder {
		_, ok := Map[nm]
		assert.True(t, ok, nm)
	}
	assert.Equal(t, len(Map), len(CycleOrder))
}
