// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textdata

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/plottools/base/errors"
)

// WriteOptions control how columns are written; the zero value
// uses the defaults noted per field.
type WriteOptions struct {

	// Format is the printf format for a single value (default "%.18e"),
	// or a complete row format with one verb per output column, such
	// as "iteration %d: %10.5f", in which case Delimiter is ignored.
	// Complex columns consume two verbs (real and imaginary parts).
	Format string

	// Formats optionally gives one format per output column,
	// joined with Delimiter. It overrides Format if non-nil.
	Formats []string

	// Delimiter separates columns within a row (default "";
	// use width-specifying formats such as %25.16e to align
	// columns without a delimiter).
	Delimiter string

	// Header lines are written before the data,
	// prefixed by Comments.
	Header []string

	// Footer lines are written after the data,
	// prefixed by Comments.
	Footer []string

	// Comments is the prefix marking header and footer lines
	// as comments (default "# ").
	Comments string
}

func (wo *WriteOptions) defaults() {
	if wo.Format == "" {
		wo.Format = "%.18e"
	}
	if wo.Comments == "" {
		wo.Comments = "# "
	}
}

// Save writes the given columns to a text file,
// one row per index, using [Write]. If the filename ends in .gz,
// the file is written in compressed gzip format; [Open] reads
// such files transparently. A nil opts uses the defaults.
func Save(filename string, opts *WriteOptions, cols ...Column) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	if strings.HasSuffix(filename, ".gz") {
		gz := gzip.NewWriter(fp)
		err = Write(gz, opts, cols...)
		if cerr := gz.Close(); err == nil {
			err = cerr
		}
		return err
	}
	bw := bufio.NewWriter(fp)
	err = Write(bw, opts, cols...)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return err
}

// Write writes the given columns to the writer, one row per index.
// All columns must have the same length. A nil opts uses the
// defaults. Header and footer lines that already start with the
// comments prefix are written as is; lines starting with enough
// spaces have their beginning overwritten by the prefix, so that
// column labels stay aligned with the data below them; all other
// lines get the prefix prepended.
func Write(w io.Writer, opts *WriteOptions, cols ...Column) error {
	wo := WriteOptions{}
	if opts != nil {
		wo = *opts
	}
	wo.defaults()

	rowFmt, nRows, err := rowFormat(&wo, cols)
	if err != nil {
		return err
	}

	for _, ln := range wo.Header {
		if _, err := fmt.Fprintln(w, commentLine(ln, wo.Comments)); err != nil {
			return err
		}
	}

	row := make([]any, 0, len(cols)*2)
	for ri := 0; ri < nRows; ri++ {
		row = row[:0]
		for _, c := range cols {
			for j := 0; j < c.Width(); j++ {
				row = append(row, c.Value(ri, j))
			}
		}
		if _, err := fmt.Fprintf(w, rowFmt+"\n", row...); err != nil {
			return err
		}
	}

	for _, ln := range wo.Footer {
		if _, err := fmt.Fprintln(w, commentLine(ln, wo.Comments)); err != nil {
			return err
		}
	}
	return nil
}

// rowFormat builds the printf format for one row and returns it
// along with the common column length.
func rowFormat(wo *WriteOptions, cols []Column) (string, int, error) {
	nRows := 0
	nVals := 0
	for i, c := range cols {
		if i == 0 {
			nRows = c.Len()
		} else if c.Len() != nRows {
			return "", 0, errors.New("textdata.Write: all columns must have the same length")
		}
		nVals += c.Width()
	}

	rowFmt := ""
	switch {
	case wo.Formats != nil:
		rowFmt = strings.Join(wo.Formats, wo.Delimiter)
	case countVerbs(wo.Format) > 1:
		rowFmt = wo.Format
	default:
		var b strings.Builder
		for _, c := range cols {
			for j := 0; j < c.Width(); j++ {
				b.WriteString(wo.Format)
				b.WriteString(wo.Delimiter)
			}
		}
		rowFmt = strings.TrimSuffix(b.String(), wo.Delimiter)
	}

	if nv := countVerbs(rowFmt); nv != nVals {
		return "", 0, fmt.Errorf("textdata.Write: format has %d verbs for %d output columns: %s", nv, nVals, rowFmt)
	}
	return rowFmt, nRows, nil
}

// countVerbs counts printf verbs in the format, not counting
// literal %% escapes.
func countVerbs(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+1 < len(s) && s[i+1] == '%' {
			i++
			continue
		}
		n++
	}
	return n
}

// commentLine marks the given line as a comment.
// Lines already starting with the comments prefix pass through;
// lines starting with len(comments) spaces have their beginning
// overwritten to preserve the line length; anything else gets
// the prefix prepended.
func commentLine(line, comments string) string {
	if strings.HasPrefix(line, comments) {
		return line
	}
	if strings.HasPrefix(line, strings.Repeat(" ", len(comments))) {
		return comments + line[len(comments):]
	}
	return comments + line
}
