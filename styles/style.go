// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides named display styles for figures,
// controlling fonts, line widths, colors, and cycles, with
// presets for common publication targets and support for
// loading styles from TOML, YAML, or JSON files.
package styles

import (
	"image/color"
	"maps"
	"slices"

	"cogentcore.org/plottools/base/errors"
	"cogentcore.org/plottools/dashes"
	"cogentcore.org/plottools/palette"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Style holds the display parameters applied to a figure.
// The zero value gets [Style.Defaults] applied when used.
type Style struct {

	// font size in points for tick labels (default 10)
	FontSize float64 `default:"10"`

	// font size in points for the plot title (default 12)
	TitleSize float64 `default:"12"`

	// font size in points for the axis labels (default 11)
	LabelSize float64 `default:"11"`

	// font size in points for legend entries; FontSize if unset
	LegendSize float64

	// width of plotted lines in points (default 1)
	LineWidth float64 `default:"1"`

	// radius of plotted points in points (default 2)
	PointRadius float64 `default:"2"`

	// length of major axis ticks in points (default 4)
	TickLength float64 `default:"4"`

	// width of the axis frame and tick lines in points (default 0.5)
	AxisWidth float64 `default:"0.5"`

	// padding between the axes and the tick labels in points (default 2)
	Padding float64 `default:"2"`

	// background color name or hex value (default white)
	Background string `default:"white"`

	// foreground color name or hex value for axes and text (default black)
	Foreground string `default:"black"`

	// palette color names or hex values assigned to successive
	// lines (default [palette.CycleOrder])
	ColorCycle []string

	// names of dash patterns assigned to successive lines;
	// lines are solid if empty
	DashCycle []string

	// whether to draw a light grid at the major ticks
	Grid bool
}

// Defaults sets defaults if unset values are present.
func (st *Style) Defaults() {
	if st.FontSize == 0 {
		st.FontSize = 10
	}
	if st.TitleSize == 0 {
		st.TitleSize = 12
	}
	if st.LabelSize == 0 {
		st.LabelSize = 11
	}
	if st.LegendSize == 0 {
		st.LegendSize = st.FontSize
	}
	if st.LineWidth == 0 {
		st.LineWidth = 1
	}
	if st.PointRadius == 0 {
		st.PointRadius = 2
	}
	if st.TickLength == 0 {
		st.TickLength = 4
	}
	if st.AxisWidth == 0 {
		st.AxisWidth = 0.5
	}
	if st.Padding == 0 {
		st.Padding = 2
	}
	if st.Background == "" {
		st.Background = "white"
	}
	if st.Foreground == "" {
		st.Foreground = "black"
	}
	if st.ColorCycle == nil {
		st.ColorCycle = palette.CycleOrder
	}
}

// Colors resolves the background and foreground colors.
func (st *Style) Colors() (bg, fg color.RGBA, err error) {
	bg, err = palette.FromString(st.Background)
	if err != nil {
		return
	}
	fg, err = palette.FromString(st.Foreground)
	return
}

// ColorCycler returns a new color cycle over the style's
// [Style.ColorCycle] names.
func (st *Style) ColorCycler() (*palette.Cycle, error) {
	return palette.NewCycle(st.ColorCycle...)
}

// DashCycler returns a new dash cycle over the style's
// [Style.DashCycle] names, or nil if the style uses solid
// lines only.
func (st *Style) DashCycler() (*dashes.Cycle, error) {
	if len(st.DashCycle) == 0 {
		return nil, nil
	}
	return dashes.NewCycle(st.DashCycle...)
}

// Apply applies the style to the given plot: background,
// title and axis fonts, axis frame and tick line styles, legend
// font, and the grid if enabled. It is typically called once,
// when a figure is created.
func (st *Style) Apply(p *plot.Plot) error {
	st.Defaults()
	bg, fg, err := st.Colors()
	if err != nil {
		return err
	}
	p.BackgroundColor = bg

	p.Title.TextStyle.Color = fg
	p.Title.TextStyle.Font.Size = vg.Points(st.TitleSize)

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Color = fg
		ax.Label.TextStyle.Font.Size = vg.Points(st.LabelSize)
		ax.LineStyle.Color = fg
		ax.LineStyle.Width = vg.Points(st.AxisWidth)
		ax.Padding = vg.Points(st.Padding)
		ax.Tick.Label.Color = fg
		ax.Tick.Label.Font.Size = vg.Points(st.FontSize)
		ax.Tick.LineStyle.Color = fg
		ax.Tick.LineStyle.Width = vg.Points(st.AxisWidth)
		ax.Tick.Length = vg.Points(st.TickLength)
	}

	p.Legend.TextStyle.Color = fg
	p.Legend.TextStyle.Font.Size = vg.Points(st.LegendSize)

	if st.Grid {
		p.Add(plotter.NewGrid())
	}
	return nil
}

// standard holds the built-in presets; see [RegisterPreset]
// to add custom ones.
var standard = map[string]Style{
	"default": {},
	"paper": {
		FontSize:    8,
		TitleSize:   10,
		LabelSize:   9,
		LineWidth:   0.7,
		PointRadius: 1.5,
		TickLength:  3,
	},
	"poster": {
		FontSize:    16,
		TitleSize:   20,
		LabelSize:   18,
		LineWidth:   2,
		PointRadius: 4,
		TickLength:  6,
		AxisWidth:   1,
	},
	"dark": {
		Background: "black",
		Foreground: "white",
		ColorCycle: []string{
			"lightblue", "lightorange", "lightred", "lightgreen",
			"lightpurple", "yellow", "pink", "grey",
		},
	},
}

// presets holds the registered presets, starting with the
// standard ones.
var presets = maps.Clone(standard)

// Preset returns the style preset with the given name,
// with defaults applied. It returns an error if the name
// is not found; see [MustPreset] for a version that panics.
func Preset(name string) (Style, error) {
	st, ok := presets[name]
	if !ok {
		return Style{}, errors.New("styles.Preset: name not found: " + name)
	}
	st.Defaults()
	return st, nil
}

// MustPreset returns the style preset with the given name,
// panicking if the name is not found; see [Preset] for a
// version that returns an error.
func MustPreset(name string) Style {
	st, err := Preset(name)
	if err != nil {
		panic("styles.MustPreset: " + err.Error())
	}
	return st
}

// RegisterPreset registers the given style under the given name,
// so that it can be retrieved with [Preset], replacing any
// existing preset with that name.
func RegisterPreset(name string, st Style) {
	presets[name] = st
}

// PresetNames returns the names of all registered presets,
// in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}
