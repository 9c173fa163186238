// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textdata

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/plottools/base/errors"
)

// ReadOptions control how a text file is read; the zero value
// uses the defaults noted per field.
type ReadOptions struct {

	// Comments is the prefix marking a line as a comment
	// to be skipped (default "#").
	Comments string

	// Delimiter separates columns within a row. The default ""
	// splits on any run of whitespace.
	Delimiter string
}

func (ro *ReadOptions) defaults() {
	if ro.Comments == "" {
		ro.Comments = "#"
	}
}

// Open reads numeric columns from the given text file using [Read].
// If the filename ends in .gz, the file is decompressed transparently.
// A nil opts uses the defaults.
func Open(filename string, opts *ReadOptions) ([][]float64, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(fp)
		if err != nil {
			return nil, errors.Log(err)
		}
		defer gz.Close()
		return Read(gz, opts)
	}
	return Read(bufio.NewReader(fp), opts)
}

// OpenFS is the version of [Open] that uses an [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string, opts *ReadOptions) ([][]float64, error) {
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(fp)
		if err != nil {
			return nil, errors.Log(err)
		}
		defer gz.Close()
		return Read(gz, opts)
	}
	return Read(bufio.NewReader(fp), opts)
}

// Read reads numeric columns from the reader, returning one
// []float64 per column. Comment lines and blank lines are skipped.
// All data rows must have the same number of fields.
// A nil opts uses the defaults.
func Read(r io.Reader, opts *ReadOptions) ([][]float64, error) {
	ro := ReadOptions{}
	if opts != nil {
		ro = *opts
	}
	ro.defaults()

	var cols [][]float64
	ln := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ro.Comments) {
			continue
		}
		var fields []string
		if ro.Delimiter == "" {
			fields = strings.Fields(line)
		} else {
			fields = strings.Split(line, ro.Delimiter)
		}
		if cols == nil {
			cols = make([][]float64, len(fields))
		} else if len(fields) != len(cols) {
			return nil, fmt.Errorf("textdata.Read: line %d has %d fields, expected %d", ln, len(fields), len(cols))
		}
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("textdata.Read: line %d field %d: %w", ln, i+1, err)
			}
			cols[i] = append(cols[i], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Log(err)
	}
	return cols, nil
}
