// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "image/color"

// CycleOrder is the default order in which colors are assigned
// to successive lines in a plot. The light variants come last so
// that plots with only a few lines get full-strength colors.
var CycleOrder = []string{
	"blue", "orange", "red", "green", "purple", "brown", "pink",
	"yellow", "lightred", "lightblue", "lightorange", "lightgreen",
	"lightpurple",
}

// Cycle returns successive colors from a fixed list,
// wrapping around at the end.
type Cycle struct {
	Colors []color.RGBA
	index  int
}

// NewCycle returns a new [Cycle] over the given color names or
// hex values, or over [CycleOrder] if no names are given. It
// returns an error if any name is not found.
func NewCycle(names ...string) (*Cycle, error) {
	if len(names) == 0 {
		names = CycleOrder
	}
	clr, err := Colors(names...)
	if err != nil {
		return nil, err
	}
	return &Cycle{Colors: clr}, nil
}

// Next returns the next color in the cycle, wrapping around
// at the end of the list.
func (cc *Cycle) Next() color.RGBA {
	c := cc.Colors[cc.index%len(cc.Colors)]
	cc.index++
	return c
}

// Reset restarts the cycle at the first color.
func (cc *Cycle) Reset() {
	cc.index = 0
}

// Colors returns the color values for the given names or hex
// values, or an error if any name is not found.
func Colors(names ...string) ([]color.RGBA, error) {
	clr := make([]color.RGBA, len(names))
	for i, nm := range names {
		c, err := FromString(nm)
		if err != nil {
			return nil, err
		}
		clr[i] = c
	}
	return clr, nil
}
