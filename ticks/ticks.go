// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks provides [plot.Ticker] implementations for explicit
// control over axis tick placement and labeling: fixed-step ticks,
// minor tick subdivision, printf label formats, and label overrides.
package ticks

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// Step places major ticks at Start, Start+Step, ... through Stop.
// The endpoint is included even when accumulated floating point
// error puts the last tick slightly past Stop. Tick values are
// rounded to the decimal precision implied by Step, so labels
// stay clean.
type Step struct {

	// Start is the value of the first tick.
	Start float64

	// Stop is the value of the last tick.
	Stop float64

	// Step is the spacing between ticks. If it is <= 0,
	// [plot.DefaultTicks] are used instead.
	Step float64

	// Format is the printf format for tick labels (default "%g").
	Format string
}

var _ plot.Ticker = Step{}

// Ticks returns the fixed-step ticks. The axis range arguments are
// ignored: tick placement is fully determined by Start, Stop, Step.
func (s Step) Ticks(min, max float64) []plot.Tick {
	if s.Step <= 0 {
		return plot.DefaultTicks{}.Ticks(min, max)
	}
	format := s.Format
	if format == "" {
		format = "%g"
	}
	dec := 1 - int(math.Floor(math.Log10(s.Step)))
	if dec < 0 {
		dec = 0
	}
	p10 := math.Pow(10, float64(dec))
	var tks []plot.Tick
	stop := s.Stop + s.Step/2
	for i := 0; ; i++ {
		v := s.Start + float64(i)*s.Step
		if v >= stop {
			break
		}
		v = math.Round(v*p10) / p10
		tks = append(tks, plot.Tick{Value: v, Label: fmt.Sprintf(format, v)})
	}
	return tks
}

// Minor subdivides each interval between major ticks into N equal
// parts, adding unlabeled minor ticks at the subdivision points.
// The subdivision extends past the first and last major tick to
// the ends of the axis range.
type Minor struct {

	// Ticker produces the major ticks
	// (default [plot.DefaultTicks]).
	Ticker plot.Ticker

	// N is the number of subdivisions per major interval,
	// giving N-1 minor ticks between adjacent majors.
	// Values <= 1 add no minor ticks.
	N int
}

var _ plot.Ticker = Minor{}

func (m Minor) Ticks(min, max float64) []plot.Tick {
	tkr := m.Ticker
	if tkr == nil {
		tkr = plot.DefaultTicks{}
	}
	tks := tkr.Ticks(min, max)
	if m.N <= 1 {
		return tks
	}
	var majors []float64
	for _, t := range tks {
		if !t.IsMinor() {
			majors = append(majors, t.Value)
		}
	}
	if len(majors) < 2 {
		return tks
	}
	add := func(v float64) {
		tks = append(tks, plot.Tick{Value: v})
	}
	for i := 1; i < len(majors); i++ {
		d := (majors[i] - majors[i-1]) / float64(m.N)
		for k := 1; k < m.N; k++ {
			add(majors[i-1] + float64(k)*d)
		}
	}
	// extend to the axis range beyond the outermost majors
	d := (majors[1] - majors[0]) / float64(m.N)
	for v := majors[0] - d; v >= min-d*1e-9; v -= d {
		add(v)
	}
	d = (majors[len(majors)-1] - majors[len(majors)-2]) / float64(m.N)
	for v := majors[len(majors)-1] + d; v <= max+d*1e-9; v += d {
		add(v)
	}
	return tks
}

// Format relabels the major ticks of another ticker using a
// printf format applied to the tick value.
type Format struct {

	// Ticker produces the ticks to relabel
	// (default [plot.DefaultTicks]).
	Ticker plot.Ticker

	// Format is the printf format for tick labels (default "%g").
	Format string
}

var _ plot.Ticker = Format{}

func (f Format) Ticks(min, max float64) []plot.Tick {
	tkr := f.Ticker
	if tkr == nil {
		tkr = plot.DefaultTicks{}
	}
	format := f.Format
	if format == "" {
		format = "%g"
	}
	tks := tkr.Ticks(min, max)
	for i, t := range tks {
		if !t.IsMinor() {
			tks[i].Label = fmt.Sprintf(format, t.Value)
		}
	}
	return tks
}

// Labels replaces the labels of the major ticks of another ticker,
// in order. Major ticks beyond the given names are left unlabeled.
type Labels struct {

	// Ticker produces the ticks to relabel
	// (default [plot.DefaultTicks]).
	Ticker plot.Ticker

	// Names are the replacement labels, assigned to the major
	// ticks in order.
	Names []string
}

var _ plot.Ticker = Labels{}

func (l Labels) Ticks(min, max float64) []plot.Tick {
	tkr := l.Ticker
	if tkr == nil {
		tkr = plot.DefaultTicks{}
	}
	tks := tkr.Ticks(min, max)
	li := 0
	for i, t := range tks {
		if t.IsMinor() {
			continue
		}
		if li < len(l.Names) {
			tks[i].Label = l.Names[li]
			li++
		} else {
			tks[i].Label = ""
		}
	}
	return tks
}

// NoLabels removes the labels from all ticks of another ticker,
// keeping the tick marks.
type NoLabels struct {

	// Ticker produces the ticks to unlabel
	// (default [plot.DefaultTicks]).
	Ticker plot.Ticker
}

var _ plot.Ticker = NoLabels{}

func (n NoLabels) Ticks(min, max float64) []plot.Tick {
	tkr := n.Ticker
	if tkr == nil {
		tkr = plot.DefaultTicks{}
	}
	tks := tkr.Ticks(min, max)
	for i := range tks {
		tks[i].Label = ""
	}
	return tks
}
