// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure creates publication-quality figures of a precise
// physical size, wrapping [gonum.org/v1/plot] with styled axes,
// automatic color and dash cycling, and export to the common
// vector and raster formats.
package figure

import (
	"fmt"
	"log/slog"

	"cogentcore.org/plottools/dashes"
	"cogentcore.org/plottools/palette"
	"cogentcore.org/plottools/styles"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// CmPerInch is the number of centimeters per inch.
const CmPerInch = 2.54

// DefaultDPI is the default resolution for rasterized output,
// in dots per inch.
const DefaultDPI = 72

// Figure is a plot with a precise physical size and a display
// style, ready for export. Lines and scatters added through the
// Add methods take successive colors and dash patterns from the
// style's cycles.
type Figure struct {

	// Plot is the underlying plot, for direct access to anything
	// not covered by the Figure methods.
	Plot *plot.Plot

	// Style is the display style the figure was created with.
	Style styles.Style

	width  vg.Length
	height vg.Length
	dpi    int

	colors *palette.Cycle
	dashs  *dashes.Cycle
}

type config struct {
	inches bool
	dpi    int
	style  *styles.Style
	name   string
	quiet  bool
}

// Option configures a [Figure] being created by [New].
type Option func(*config) error

// Inches interprets the width and height given to [New] as inches
// instead of centimeters.
func Inches() Option {
	return func(c *config) error {
		c.inches = true
		return nil
	}
}

// DPI sets the resolution for rasterized output, in dots per inch
// (default [DefaultDPI]).
func DPI(dpi int) Option {
	return func(c *config) error {
		c.dpi = dpi
		return nil
	}
}

// UseStyle uses the style preset or style file with the given name;
// see [styles.Load].
func UseStyle(name string) Option {
	return func(c *config) error {
		st, err := styles.Load(name)
		if err != nil {
			return err
		}
		c.style = &st
		c.name = name
		return nil
	}
}

// WithStyle uses the given style directly.
func WithStyle(st styles.Style) Option {
	return func(c *config) error {
		c.style = &st
		c.name = "custom"
		return nil
	}
}

// Quiet suppresses the log message reporting the figure size.
func Quiet() Option {
	return func(c *config) error {
		c.quiet = true
		return nil
	}
}

// New returns a new figure with the given width and height in
// centimeters (or in inches with the [Inches] option), using the
// default style unless [UseStyle] or [WithStyle] is given.
func New(width, height float64, opts ...Option) (*Figure, error) {
	c := config{dpi: DefaultDPI}
	for _, o := range opts {
		if err := o(&c); err != nil {
			return nil, err
		}
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("figure.New: size %gx%g not valid", width, height)
	}
	if c.dpi <= 0 {
		return nil, fmt.Errorf("figure.New: dpi %d not valid", c.dpi)
	}

	st := styles.MustPreset("default")
	if c.style != nil {
		st = *c.style
		st.Defaults()
	}

	w, h := vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter
	if c.inches {
		w, h = vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch
	}

	p := plot.New()
	if err := st.Apply(p); err != nil {
		return nil, err
	}
	colors, err := st.ColorCycler()
	if err != nil {
		return nil, err
	}
	dashs, err := st.DashCycler()
	if err != nil {
		return nil, err
	}

	if !c.quiet {
		slog.Info("new figure",
			"width(cm)", float64(w/vg.Centimeter),
			"height(cm)", float64(h/vg.Centimeter),
			"dpi", c.dpi, "style", styleName(c.name))
	}

	return &Figure{
		Plot:   p,
		Style:  st,
		width:  w,
		height: h,
		dpi:    c.dpi,
		colors: colors,
		dashs:  dashs,
	}, nil
}

func styleName(name string) string {
	if name == "" {
		return "default"
	}
	return name
}

// Size returns the figure width and height.
func (fig *Figure) Size() (width, height vg.Length) {
	return fig.width, fig.height
}

// SizeCm returns the figure width and height in centimeters.
func (fig *Figure) SizeCm() (width, height float64) {
	return float64(fig.width / vg.Centimeter), float64(fig.height / vg.Centimeter)
}

// DPI returns the resolution used for rasterized output,
// in dots per inch.
func (fig *Figure) DPI() int {
	return fig.dpi
}

// Title sets the plot title.
func (fig *Figure) Title(title string) {
	fig.Plot.Title.Text = title
}
