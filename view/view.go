// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view displays figures in a desktop window, as a quick
// preview during development.
package view

import (
	"image"

	"cogentcore.org/plottools/base/errors"
	"cogentcore.org/plottools/figure"
	"github.com/hajimehoshi/ebiten/v2"
)

// Show opens a window displaying the figure rasterized at its DPI
// and blocks until the window is closed or Escape is pressed.
func Show(fig *figure.Figure) error {
	title := fig.Plot.Title.Text
	if title == "" {
		title = "plottools"
	}
	return ShowImage(title, fig.Image())
}

// ShowImage opens a window displaying the given image at its pixel
// size and blocks until the window is closed or Escape is pressed.
func ShowImage(title string, img image.Image) error {
	sz := img.Bounds().Size()
	g := &game{img: ebiten.NewImageFromImage(img), w: sz.X, h: sz.Y}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(sz.X, sz.Y)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	img  *ebiten.Image
	w, h int
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
