// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot"
)

func TestStep(t *testing.T) {
	tks := Step{Start: 0, Stop: 1, Step: 0.25}.Ticks(0, 1)
	want := []plot.Tick{
		{Value: 0, Label: "0"},
		{Value: 0.25, Label: "0.25"},
		{Value: 0.5, Label: "0.5"},
		{Value: 0.75, Label: "0.75"},
		{Value: 1, Label: "1"},
	}
	assert.Equal(t, want, tks)
}

func TestStepEndpoint(t *testing.T) {
	// 3*0.1 overshoots 0.3 in floating point; the endpoint must
	// still be included and its label must stay clean
	tks := Step{Start: 0, Stop: 0.3, Step: 0.1}.Ticks(0, 0.3)
	want := []plot.Tick{
		{Value: 0, Label: "0"},
		{Value: 0.1, Label: "0.1"},
		{Value: 0.2, Label: "0.2"},
		{Value: 0.3, Label: "0.3"},
	}
	assert.Equal(t, want, tks)
}

func TestStepFormat(t *testing.T) {
	tks := Step{Start: 0, Stop: 1, Step: 0.5, Format: "%.2f"}.Ticks(0, 1)
	assert.Equal(t, []string{"0.00", "0.50", "1.00"},
		[]string{tks[0].Label, tks[1].Label, tks[2].Label})
}

func TestStepDefault(t *testing.T) {
	// zero step falls back to the default ticker
	tks := Step{}.Ticks(0, 10)
	assert.NotEmpty(t, tks)
}

func TestMinor(t *testing.T) {
	tks := Minor{Ticker: Step{Start: 0, Stop: 1, Step: 0.5}, N: 2}.Ticks(0, 1)
	var majors, minors []float64
	for _, tk := range tks {
		if tk.IsMinor() {
			minors = append(minors, tk.Value)
		} else {
			majors = append(majors, tk.Value)
		}
	}
	assert.Equal(t, []float64{0, 0.5, 1}, majors)
	assert.Equal(t, 2, len(minors))
	assert.InDelta(t, 0.25, minors[0], 1e-12)
	assert.InDelta(t, 0.75, minors[1], 1e-12)
}

func TestMinorExtends(t *testing.T) {
	// minor ticks continue past the outermost majors to the ends
	// of the axis range
	tks := Minor{Ticker: Step{Start: 0.2, Stop: 0.8, Step: 0.2}, N: 2}.Ticks(0, 1)
	var minors []float64
	for _, tk := range tks {
		if tk.IsMinor() {
			minors = append(minors, tk.Value)
		}
	}
	assert.Equal(t, 7, len(minors))
	has := func(v float64) bool {
		for _, m := range minors {
			if m > v-1e-9 && m < v+1e-9 {
				return true
			}
		}
		return false
	}
	assert.True(t, has(0.1))
	assert.True(t, has(0.9))
}

func TestMinorNone(t *testing.T) {
	base := Step{Start: 0, Stop: 1, Step: 0.5}
	assert.Equal(t, base.Ticks(0, 1), Minor{Ticker: base, N: 1}.Ticks(0, 1))
	assert.Equal(t, base.Ticks(0, 1), Minor{Ticker: base}.Ticks(0, 1))
}

func TestFormat(t *testing.T) {
	tks := Format{Ticker: Step{Start: 0, Stop: 1, Step: 0.5}, Format: "%.1f ms"}.Ticks(0, 1)
	assert.Equal(t, "0.0 ms", tks[0].Label)
	assert.Equal(t, "0.5 ms", tks[1].Label)
	assert.Equal(t, "1.0 ms", tks[2].Label)
}

func TestLabels(t *testing.T) {
	tks := Labels{
		Ticker: Step{Start: 0, Stop: 2, Step: 1},
		Names:  []string{"lo", "mid"},
	}.Ticks(0, 2)
	assert.Equal(t, "lo", tks[0].Label)
	assert.Equal(t, "mid", tks[1].Label)
	assert.Equal(t, "", tks[2].Label)
}

func TestNoLabels(t *testing.T) {
	tks := NoLabels{Ticker: Step{Start: 0, Stop: 2, Step: 1}}.Ticks(0, 2)
	for _, tk := range tks {
		assert.Equal(t, "", tk.Label)
	}
	assert.Equal(t, 3, len(tks))
}
