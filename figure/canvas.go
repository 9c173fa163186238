// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"gonum.org/v1/plot/vg"
)

// Canvas renders the figure onto a new vector canvas at the
// figure's physical size, for further composition (annotations,
// insets) or export through the canvas renderers.
func (fig *Figure) Canvas() *canvas.Canvas {
	c := canvas.New(float64(fig.width/vg.Millimeter), float64(fig.height/vg.Millimeter))
	fig.Plot.Draw(renderers.NewGonumPlot(c))
	return c
}

// SaveCanvas renders the figure through the canvas renderers and
// saves it, with the format inferred from the filename extension.
// This reaches formats [Figure.Save] does not, notably LaTeX/PGF
// (.tex) for embedding in papers.
func (fig *Figure) SaveCanvas(filename string) error {
	return renderers.Write(filename, fig.Canvas())
}
