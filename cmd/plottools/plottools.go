// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package main provides the plottools command, which plots numeric
// columns from text data files.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/plottools/figure"
	"cogentcore.org/plottools/textdata"
	"cogentcore.org/plottools/view"
	"github.com/fsnotify/fsnotify"
)

var (
	xcol   = flag.Int("x", 1, "1-based column to use for x values")
	ycols  = flag.String("y", "", "comma-separated 1-based columns to plot against x (default: all others)")
	kind   = flag.String("kind", "line", "how to draw the data: line, points, or linespoints")
	title  = flag.String("title", "", "plot title")
	xlabel = flag.String("xlabel", "", "x axis label")
	ylabel = flag.String("ylabel", "", "y axis label")
	size   = flag.String("size", "15x10", "figure size as WIDTHxHEIGHT in centimeters")
	inches = flag.Bool("in", false, "interpret -size in inches")
	dpi    = flag.Int("dpi", figure.DefaultDPI, "resolution for raster output")
	style  = flag.String("style", "default", "style preset (default, paper, poster, dark) or style file (.toml, .yaml, .json)")
	out    = flag.String("o", "", "output file (default: the data file with a .png extension)")
	thumb  = flag.Int("thumb", 0, "also write a thumbnail at most this many pixels wide or high")
	show   = flag.Bool("show", false, "display the figure in a window")
	watch  = flag.Bool("watch", false, "re-render whenever the data file changes")
	quiet  = flag.Bool("q", false, "suppress informational log messages")
)

func main() {
	flag.Usage = Usage
	flag.Parse()
	if flag.NArg() != 1 {
		Usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0)); err != nil {
		slog.Error("plottools", "err", err)
		os.Exit(1)
	}
}

// Usage is a replacement usage function for the flags package.
func Usage() {
	_, _ = fmt.Fprintf(os.Stderr, "Plottools plots numeric columns from a text data file.\n")
	_, _ = fmt.Fprintf(os.Stderr, "Usage:\n")
	_, _ = fmt.Fprintf(os.Stderr, "\tplottools [flags] datafile\n")
	_, _ = fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func run(datafile string) error {
	if *show && *watch {
		return fmt.Errorf("cannot use -show together with -watch")
	}
	if *out == "" {
		base := strings.TrimSuffix(datafile, ".gz")
		*out = strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
	}

	fig, err := render(datafile)
	if err != nil {
		return err
	}
	if err := save(fig); err != nil {
		return err
	}
	if *show {
		return view.Show(fig)
	}
	if *watch {
		return watchLoop(datafile)
	}
	return nil
}

// render reads the data file and builds the figure from it.
func render(datafile string) (*figure.Figure, error) {
	cols, err := textdata.Open(datafile, nil)
	if err != nil {
		return nil, err
	}
	xi, yis, err := pickColumns(len(cols))
	if err != nil {
		return nil, err
	}

	width, height, err := parseSize(*size)
	if err != nil {
		return nil, err
	}
	opts := []figure.Option{figure.DPI(*dpi), figure.UseStyle(*style)}
	if *inches {
		opts = append(opts, figure.Inches())
	}
	if *quiet {
		opts = append(opts, figure.Quiet())
	}
	fig, err := figure.New(width, height, opts...)
	if err != nil {
		return nil, err
	}

	fig.Title(*title)
	fig.Plot.X.Label.Text = *xlabel
	fig.Plot.Y.Label.Text = *ylabel

	for _, yi := range yis {
		xy, err := figure.XY(cols[xi], cols[yi])
		if err != nil {
			return nil, err
		}
		name := "col " + strconv.Itoa(yi+1)
		switch *kind {
		case "line":
			_, err = fig.AddLine(name, xy)
		case "points":
			_, err = fig.AddScatter(name, xy)
		case "linespoints":
			_, _, err = fig.AddLinePoints(name, xy)
		default:
			return nil, fmt.Errorf("-kind %q not valid: must be line, points, or linespoints", *kind)
		}
		if err != nil {
			return nil, err
		}
	}
	return fig, nil
}

func save(fig *figure.Figure) error {
	if err := fig.Save(*out); err != nil {
		return err
	}
	if !*quiet {
		slog.Info("saved", "output", *out)
	}
	if *thumb > 0 {
		ext := filepath.Ext(*out)
		tn := strings.TrimSuffix(*out, ext) + ".thumb.png"
		if err := fig.SaveThumbnail(tn, *thumb); err != nil {
			return err
		}
		if !*quiet {
			slog.Info("saved", "thumbnail", tn)
		}
	}
	return nil
}

// pickColumns resolves the -x and -y flags against the number of
// columns in the file, converting to 0-based indexes.
func pickColumns(ncols int) (xi int, yis []int, err error) {
	xi = *xcol - 1
	if xi < 0 || xi >= ncols {
		return 0, nil, fmt.Errorf("-x %d out of range: file has %d columns", *xcol, ncols)
	}
	if *ycols == "" {
		for i := 0; i < ncols; i++ {
			if i != xi {
				yis = append(yis, i)
			}
		}
		if len(yis) == 0 {
			return 0, nil, fmt.Errorf("file has no columns to plot against column %d", *xcol)
		}
		return xi, yis, nil
	}
	for _, f := range strings.Split(*ycols, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return 0, nil, fmt.Errorf("-y %q not valid: %w", *ycols, err)
		}
		if n < 1 || n > ncols {
			return 0, nil, fmt.Errorf("-y %d out of range: file has %d columns", n, ncols)
		}
		yis = append(yis, n-1)
	}
	return xi, yis, nil
}

func parseSize(s string) (width, height float64, err error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if ok {
		width, err = strconv.ParseFloat(strings.TrimSpace(w), 64)
		if err == nil {
			height, err = strconv.ParseFloat(strings.TrimSpace(h), 64)
		}
	}
	if !ok || err != nil {
		return 0, 0, fmt.Errorf("-size %q not valid: must be WIDTHxHEIGHT", s)
	}
	return width, height, nil
}

// watchLoop re-renders the figure whenever the data file changes.
// Watching the directory rather than the file keeps working when
// editors replace the file instead of writing in place.
func watchLoop(datafile string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(datafile)); err != nil {
		return err
	}
	name := filepath.Base(datafile)
	slog.Info("watching", "file", datafile)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			time.Sleep(50 * time.Millisecond) // let the writer finish
			fig, err := render(datafile)
			if err != nil {
				slog.Error("render", "err", err)
				continue
			}
			if err := save(fig); err != nil {
				slog.Error("save", "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch", "err", err)
		}
	}
}
