// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"cogentcore.org/plottools/base/minmax"
	"cogentcore.org/plottools/ticks"
	"gonum.org/v1/plot"
)

// Axis configures one axis of a figure: its range, label,
// and tick placement and labeling. The displayed range is set
// when Start != Stop or Range is given; a zero range leaves the
// automatic data-driven range in place.
type Axis struct {

	// Start is the lowest axis value, and the first major tick.
	Start float64

	// Stop is the highest axis value, and the last major tick.
	Stop float64

	// Step is the major tick spacing; the default ticks are kept
	// if it is 0.
	Step float64

	// Range optionally overrides the displayed range, which
	// otherwise runs from Start to Stop; either end can be fixed.
	Range *minmax.Range64

	// Minor is the number of subdivisions per major tick interval,
	// giving Minor-1 minor ticks between adjacent majors;
	// none are added if <= 1.
	Minor int

	// Format is the printf format for the major tick labels.
	Format string

	// Label is the axis label.
	Label string

	// TickLabels replaces the major tick labels, in order.
	TickLabels []string

	// NoTickLabels hides the tick labels, keeping the tick marks.
	NoTickLabels bool
}

// SetXAxis configures the X axis of the figure.
func (fig *Figure) SetXAxis(ax Axis) {
	setAxis(&fig.Plot.X, ax)
}

// SetYAxis configures the Y axis of the figure.
func (fig *Figure) SetYAxis(ax Axis) {
	setAxis(&fig.Plot.Y, ax)
}

func setAxis(pax *plot.Axis, ax Axis) {
	mn, mx := ax.Start, ax.Stop
	if mn == mx {
		// no explicit range: clamp against the data-driven one
		mn, mx = pax.Min, pax.Max
	}
	if ax.Range != nil {
		mn, mx = ax.Range.Clamp(mn, mx)
	}
	if mn != mx {
		pax.Min, pax.Max = mn, mx
	}

	if ax.Label != "" {
		pax.Label.Text = ax.Label
	}

	var tkr plot.Ticker
	switch {
	case ax.Step > 0:
		tkr = ticks.Step{Start: ax.Start, Stop: ax.Stop, Step: ax.Step, Format: ax.Format}
	case ax.Format != "":
		tkr = ticks.Format{Format: ax.Format}
	}
	if ax.Minor > 1 {
		tkr = ticks.Minor{Ticker: tkr, N: ax.Minor}
	}
	if ax.TickLabels != nil {
		tkr = ticks.Labels{Ticker: tkr, Names: ax.TickLabels}
	}
	if ax.NoTickLabels {
		tkr = ticks.NoLabels{Ticker: tkr}
	}
	if tkr != nil {
		pax.Tick.Marker = tkr
	}
}
