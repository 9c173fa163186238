// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"image/color"

	"cogentcore.org/plottools/base/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// XY pairs the given x and y values into the format the plotters
// take. It returns an error if the lengths differ.
func XY(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, errors.New("figure.XY: x and y must have the same length")
	}
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return xys, nil
}

// MustXY is the version of [XY] that panics on a length mismatch.
func MustXY(x, y []float64) plotter.XYs {
	return errors.Must1(XY(x, y))
}

// AddLine adds a line through the given points, drawn with the next
// color and dash pattern from the figure's cycles and the style's
// line width. A non-empty name adds a legend entry. The line is
// returned for further styling.
func (fig *Figure) AddLine(name string, xys plotter.XYer) (*plotter.Line, error) {
	ln, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	fig.styleLine(ln)
	fig.Plot.Add(ln)
	if name != "" {
		fig.Plot.Legend.Add(name, ln)
	}
	return ln, nil
}

// AddScatter adds points at the given coordinates, drawn with the
// next color from the figure's color cycle and the style's point
// radius. A non-empty name adds a legend entry. The scatter is
// returned for further styling.
func (fig *Figure) AddScatter(name string, xys plotter.XYer) (*plotter.Scatter, error) {
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	fig.styleScatter(sc, fig.colors.Next())
	fig.Plot.Add(sc)
	if name != "" {
		fig.Plot.Legend.Add(name, sc)
	}
	return sc, nil
}

// AddLinePoints adds a line through the given points with a point
// marker at each, sharing one color from the figure's color cycle.
// A non-empty name adds a legend entry.
func (fig *Figure) AddLinePoints(name string, xys plotter.XYer) (*plotter.Line, *plotter.Scatter, error) {
	ln, sc, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, nil, err
	}
	fig.styleLine(ln)
	fig.styleScatter(sc, ln.Color)
	fig.Plot.Add(ln, sc)
	if name != "" {
		fig.Plot.Legend.Add(name, ln, sc)
	}
	return ln, sc, nil
}

// Add adds any plotters to the figure as is, without styling;
// see [plot.Plot.Add].
func (fig *Figure) Add(ps ...plot.Plotter) {
	fig.Plot.Add(ps...)
}

func (fig *Figure) styleLine(ln *plotter.Line) {
	ln.Color = fig.colors.Next()
	ln.Width = vg.Points(fig.Style.LineWidth)
	if fig.dashs != nil {
		ln.Dashes = fig.dashs.Next()
	}
}

func (fig *Figure) styleScatter(sc *plotter.Scatter, c color.Color) {
	sc.Color = c
	sc.Radius = vg.Points(fig.Style.PointRadius)
}
