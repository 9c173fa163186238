// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dashes provides named dash patterns and dash cycles
// for distinguishing lines in print without relying on color.
package dashes

import (
	"slices"

	"cogentcore.org/plottools/base/errors"
	"gonum.org/v1/plot/vg"
)

// Map contains the named dash patterns, as alternating
// dash and gap lengths in points. A nil pattern is a solid line.
var Map = map[string][]vg.Length{
	"solid":            nil,
	"dashed":           {4, 1.5},
	"long-dashed":      {8, 1},
	"double-dashed":    {3, 1, 3, 2.5},
	"dash-dotted":      {5, 1, 1, 1},
	"dot-dot-dashed":   {1, 1, 1, 1, 7, 1},
	"dash-dash-dotted": {4, 1, 4, 1, 1, 1},
	"dotted":           {1, 1},
	"double-dotted":    {1, 1, 1, 3},
}

// CycleOrder is the default order in which dash patterns are
// assigned to successive lines in a plot, chosen so that adjacent
// patterns remain distinguishable.
var CycleOrder = []string{
	"solid", "dashed", "long-dashed", "dash-dotted", "dash-dash-dotted",
	"dot-dot-dashed", "double-dashed", "dotted", "double-dotted",
}

// FromName returns a copy of the dash pattern with the given name,
// so that the caller can modify it without affecting [Map].
// It returns an error if the name is not found.
func FromName(name string) ([]vg.Length, error) {
	p, ok := Map[name]
	if !ok {
		return nil, errors.New("dashes.FromName: name not found: " + name)
	}
	return slices.Clone(p), nil
}

// MustFromName returns a copy of the dash pattern with the given
// name, panicking if the name is not found; see [FromName]
// for a version that returns an error.
func MustFromName(name string) []vg.Length {
	p, err := FromName(name)
	if err != nil {
		panic("dashes.MustFromName: " + err.Error())
	}
	return p
}

// LogFromName returns a copy of the dash pattern with the given
// name, logging an error if the name is not found; see [FromName]
// for a version that returns an error.
func LogFromName(name string) []vg.Length {
	return errors.Log1(FromName(name))
}

// Cycle returns successive dash patterns from a fixed list,
// wrapping around at the end.
type Cycle struct {
	Patterns [][]vg.Length
	index    int
}

// NewCycle returns a new [Cycle] over the given pattern names,
// or over [CycleOrder] if no names are given. It returns an
// error if any name is not found.
func NewCycle(names ...string) (*Cycle, error) {
	if len(names) == 0 {
		names = CycleOrder
	}
	pats := make([][]vg.Length, len(names))
	for i, nm := range names {
		p, err := FromName(nm)
		if err != nil {
			return nil, err
		}
		pats[i] = p
	}
	return &Cycle{Patterns: pats}, nil
}

// Next returns a copy of the next dash pattern in the cycle,
// wrapping around at the end of the list.
func (dc *Cycle) Next() []vg.Length {
	p := dc.Patterns[dc.index%len(dc.Patterns)]
	dc.index++
	return slices.Clone(p)
}

// Reset restarts the cycle at the first pattern.
func (dc *Cycle) Reset() {
	dc.index = 0
}
