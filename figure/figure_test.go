// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"bytes"
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/plottools/base/iox/imagex"
	"cogentcore.org/plottools/base/minmax"
	"cogentcore.org/plottools/palette"
	"cogentcore.org/plottools/styles"
	"cogentcore.org/plottools/ticks"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/vg"
)

func TestNewSize(t *testing.T) {
	fig, err := New(15, 10, Quiet())
	assert.NoError(t, err)
	w, h := fig.Size()
	assert.Equal(t, 15*vg.Centimeter, w)
	assert.Equal(t, 10*vg.Centimeter, h)
	wcm, hcm := fig.SizeCm()
	assert.InDelta(t, 15, wcm, 1e-9)
	assert.InDelta(t, 10, hcm, 1e-9)
	assert.Equal(t, DefaultDPI, fig.DPI())
}

func TestNewInches(t *testing.T) {
	fig, err := New(5, 4, Inches(), Quiet())
	assert.NoError(t, err)
	w, h := fig.Size()
	assert.Equal(t, 5*vg.Inch, w)
	assert.Equal(t, 4*vg.Inch, h)
	wcm, _ := fig.SizeCm()
	assert.InDelta(t, 5*CmPerInch, wcm, 1e-9)
}

func TestNewErrors(t *testing.T) {
	_, err := New(0, 10, Quiet())
	assert.Error(t, err)
	_, err = New(10, -1, Quiet())
	assert.Error(t, err)
	_, err = New(10, 10, DPI(0), Quiet())
	assert.Error(t, err)
	_, err = New(10, 10, UseStyle("no-such-style"), Quiet())
	assert.Error(t, err)
}

func TestNewStyle(t *testing.T) {
	fig, err := New(10, 8, UseStyle("poster"), Quiet())
	assert.NoError(t, err)
	assert.Equal(t, 16.0, fig.Style.FontSize)
	assert.Equal(t, vg.Points(20), fig.Plot.Title.TextStyle.Font.Size)

	fig, err = New(10, 8, WithStyle(styles.Style{FontSize: 7}), Quiet())
	assert.NoError(t, err)
	assert.Equal(t, 7.0, fig.Style.FontSize)
	assert.Equal(t, "white", fig.Style.Background) // defaults applied
}

func TestImageSize(t *testing.T) {
	fig, err := New(5, 4, Inches(), DPI(100), Quiet())
	assert.NoError(t, err)
	img := fig.Image()
	assert.Equal(t, image.Pt(500, 400), img.Bounds().Size())
}

func sineFigure(t *testing.T, opts ...Option) *Figure {
	fig, err := New(12, 8, append([]Option{Quiet()}, opts...)...)
	assert.NoError(t, err)
	fig.Title("response")
	n := 100
	x := make([]float64, n)
	sin := make([]float64, n)
	cos := make([]float64, n)
	for i := range x {
		x[i] = 4 * math.Pi * float64(i) / float64(n-1)
		sin[i] = math.Sin(x[i])
		cos[i] = math.Cos(x[i])
	}
	_, err = fig.AddLine("sin", MustXY(x, sin))
	assert.NoError(t, err)
	_, err = fig.AddLine("cos", MustXY(x, cos))
	assert.NoError(t, err)
	fig.SetXAxis(Axis{Start: 0, Stop: 4 * math.Pi, Format: "%.1f", Label: "time"})
	fig.SetYAxis(Axis{Start: -1, Stop: 1, Step: 0.5, Label: "amplitude"})
	return fig
}

func TestWriteFormats(t *testing.T) {
	fig := sineFigure(t)
	magic := []struct {
		name  string
		write func(*bytes.Buffer) error
		want  []byte
	}{
		{"png", func(b *bytes.Buffer) error { return fig.WritePNG(b) }, []byte("\x89PNG")},
		{"jpeg", func(b *bytes.Buffer) error { return fig.WriteJPEG(b) }, []byte("\xff\xd8")},
		{"pdf", func(b *bytes.Buffer) error { return fig.WritePDF(b) }, []byte("%PDF")},
		{"eps", func(b *bytes.Buffer) error { return fig.WriteEPS(b) }, []byte("%!PS-Adobe")},
		{"svg", func(b *bytes.Buffer) error { return fig.WriteSVG(b) }, []byte("<?xml")},
	}
	for _, m := range magic {
		var b bytes.Buffer
		err := m.write(&b)
		assert.NoError(t, err, m.name)
		assert.True(t, bytes.HasPrefix(b.Bytes(), m.want), m.name)
	}
}

func TestSave(t *testing.T) {
	fig := sineFigure(t)
	dir := t.TempDir()
	for _, fn := range []string{"fig.png", "fig.jpg", "fig.tiff", "fig.bmp", "fig.pdf", "fig.eps", "fig.svg"} {
		path := filepath.Join(dir, fn)
		err := fig.Save(path)
		assert.NoError(t, err, fn)
		st, err := os.Stat(path)
		assert.NoError(t, err, fn)
		assert.Greater(t, st.Size(), int64(0), fn)
	}
	assert.Error(t, fig.Save(filepath.Join(dir, "fig.docx")))
}

func TestSaveThumbnail(t *testing.T) {
	fig := sineFigure(t)
	path := filepath.Join(t.TempDir(), "thumb.png")
	err := fig.SaveThumbnail(path, 64)
	assert.NoError(t, err)
	img, _, err := imagex.Open(path)
	assert.NoError(t, err)
	sz := img.Bounds().Size()
	assert.LessOrEqual(t, sz.X, 64)
	assert.LessOrEqual(t, sz.Y, 64)
}

func TestLineCycling(t *testing.T) {
	fig, err := New(10, 8, Quiet())
	assert.NoError(t, err)
	xy := MustXY([]float64{0, 1}, []float64{0, 1})

	l1, err := fig.AddLine("", xy)
	assert.NoError(t, err)
	l2, err := fig.AddLine("", xy)
	assert.NoError(t, err)
	assert.Equal(t, palette.MustFromName("blue"), l1.Color)
	assert.Equal(t, palette.MustFromName("orange"), l2.Color)
	assert.Equal(t, vg.Points(1), l1.Width)
	assert.Nil(t, l1.Dashes) // solid lines without a dash cycle
}

func TestDashCycling(t *testing.T) {
	st := styles.MustPreset("default")
	st.DashCycle = []string{"solid", "dashed"}
	fig, err := New(10, 8, WithStyle(st), Quiet())
	assert.NoError(t, err)
	xy := MustXY([]float64{0, 1}, []float64{0, 1})

	l1, _ := fig.AddLine("", xy)
	l2, _ := fig.AddLine("", xy)
	assert.Nil(t, l1.Dashes)
	assert.Equal(t, []vg.Length{4, 1.5}, l2.Dashes)
}

func TestScatterAndLinePoints(t *testing.T) {
	fig, err := New(10, 8, Quiet())
	assert.NoError(t, err)
	xy := MustXY([]float64{0, 1, 2}, []float64{0, 1, 4})

	sc, err := fig.AddScatter("pts", xy)
	assert.NoError(t, err)
	assert.Equal(t, palette.MustFromName("blue"), sc.Color)
	assert.Equal(t, vg.Points(2), sc.Radius)

	ln, sc2, err := fig.AddLinePoints("both", xy)
	assert.NoError(t, err)
	assert.Equal(t, palette.MustFromName("orange"), ln.Color)
	assert.Equal(t, ln.Color, sc2.Color) // shared color
}

func TestSetAxis(t *testing.T) {
	fig, err := New(10, 8, Quiet())
	assert.NoError(t, err)

	fig.SetXAxis(Axis{Start: 0, Stop: 10, Step: 2, Label: "time [ns]"})
	assert.Equal(t, 0.0, fig.Plot.X.Min)
	assert.Equal(t, 10.0, fig.Plot.X.Max)
	assert.Equal(t, "time [ns]", fig.Plot.X.Label.Text)
	st, ok := fig.Plot.X.Tick.Marker.(ticks.Step)
	assert.True(t, ok)
	assert.Equal(t, 2.0, st.Step)

	fig.SetYAxis(Axis{Start: -1, Stop: 1, Step: 0.5, Minor: 2})
	_, ok = fig.Plot.Y.Tick.Marker.(ticks.Minor)
	assert.True(t, ok)
}

func TestSetAxisRange(t *testing.T) {
	fig, err := New(10, 8, Quiet())
	assert.NoError(t, err)

	var rng minmax.Range64
	rng.SetMax(2)
	fig.SetXAxis(Axis{Start: 0, Stop: 10, Range: &rng})
	assert.Equal(t, 0.0, fig.Plot.X.Min)
	assert.Equal(t, 2.0, fig.Plot.X.Max)
}

func TestXY(t *testing.T) {
	xy, err := XY([]float64{1, 2}, []float64{3, 4})
	assert.NoError(t, err)
	assert.Equal(t, 2, xy.Len())
	x, y := xy.XY(1)
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 4.0, y)

	_, err = XY([]float64{1}, []float64{1, 2})
	assert.Error(t, err)
	assert.Panics(t, func() { MustXY([]float64{1}, []float64{1, 2}) })
}

func TestCanvas(t *testing.T) {
	fig := sineFigure(t)
	c := fig.Canvas()
	assert.NotNil(t, c)

	path := filepath.Join(t.TempDir(), "fig.svg")
	err := fig.SaveCanvas(path)
	assert.NoError(t, err)
	st, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Greater(t, st.Size(), int64(0))
}

func TestRenderSine(t *testing.T) {
	fig := sineFigure(t)
	imagex.Assert(t, fig.Image(), "sine")
}

func TestRenderDark(t *testing.T) {
	fig := sineFigure(t, UseStyle("dark"))
	imagex.Assert(t, fig.Image(), "sine-dark")
}
