// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/plottools/base/errors"
	"cogentcore.org/plottools/base/iox/imagex"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Image renders the figure to an image, rasterized at the
// figure's DPI.
func (fig *Figure) Image() image.Image {
	c := vgimg.NewWith(vgimg.UseWH(fig.width, fig.height), vgimg.UseDPI(fig.dpi))
	fig.Plot.Draw(draw.New(c))
	return c.Image()
}

// WritePNG writes the figure to the writer as a PNG image,
// rasterized at the figure's DPI.
func (fig *Figure) WritePNG(w io.Writer) error {
	c := vgimg.NewWith(vgimg.UseWH(fig.width, fig.height), vgimg.UseDPI(fig.dpi))
	fig.Plot.Draw(draw.New(c))
	png := vgimg.PngCanvas{Canvas: c}
	_, err := png.WriteTo(w)
	return err
}

// WriteJPEG writes the figure to the writer as a JPEG image,
// rasterized at the figure's DPI.
func (fig *Figure) WriteJPEG(w io.Writer) error {
	c := vgimg.NewWith(vgimg.UseWH(fig.width, fig.height), vgimg.UseDPI(fig.dpi))
	fig.Plot.Draw(draw.New(c))
	jpg := vgimg.JpegCanvas{Canvas: c}
	_, err := jpg.WriteTo(w)
	return err
}

// WriteTIFF writes the figure to the writer as a TIFF image,
// rasterized at the figure's DPI.
func (fig *Figure) WriteTIFF(w io.Writer) error {
	c := vgimg.NewWith(vgimg.UseWH(fig.width, fig.height), vgimg.UseDPI(fig.dpi))
	fig.Plot.Draw(draw.New(c))
	tif := vgimg.TiffCanvas{Canvas: c}
	_, err := tif.WriteTo(w)
	return err
}

// WritePDF writes the figure to the writer as a PDF document
// at the figure's physical size.
func (fig *Figure) WritePDF(w io.Writer) error {
	c := vgpdf.New(fig.width, fig.height)
	fig.Plot.Draw(draw.New(c))
	_, err := c.WriteTo(w)
	return err
}

// WriteEPS writes the figure to the writer as an EPS document
// at the figure's physical size, with the plot title as the
// document title.
func (fig *Figure) WriteEPS(w io.Writer) error {
	c := vgeps.NewTitle(fig.width, fig.height, fig.Plot.Title.Text)
	fig.Plot.Draw(draw.New(c))
	_, err := c.WriteTo(w)
	return err
}

// WriteSVG writes the figure to the writer as an SVG image
// at the figure's physical size.
func (fig *Figure) WriteSVG(w io.Writer) error {
	c := vgsvg.New(fig.width, fig.height)
	fig.Plot.Draw(draw.New(c))
	_, err := c.WriteTo(w)
	return err
}

// Save saves the figure to the given filename, with the format
// inferred from the extension: png, jpg, tiff, bmp, pdf, eps,
// or svg.
func (fig *Figure) Save(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".bmp" {
		return imagex.Save(fig.Image(), filename)
	}
	var write func(io.Writer) error
	switch ext {
	case ".png":
		write = fig.WritePNG
	case ".jpg", ".jpeg":
		write = fig.WriteJPEG
	case ".tif", ".tiff":
		write = fig.WriteTIFF
	case ".pdf":
		write = fig.WritePDF
	case ".eps":
		write = fig.WriteEPS
	case ".svg":
		write = fig.WriteSVG
	default:
		return fmt.Errorf("figure.Save: extension %q not recognized", ext)
	}
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := write(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// SaveThumbnail renders the figure and saves a thumbnail no larger
// than maxSize pixels in either dimension, with the image format
// inferred from the filename.
func (fig *Figure) SaveThumbnail(filename string, maxSize int) error {
	return imagex.Save(imagex.ResizeMax(fig.Image(), maxSize), filename)
}
