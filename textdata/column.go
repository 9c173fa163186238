// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textdata reads and writes numeric data as columns
// in plain text files, the standard interchange format for
// plotting data. Files ending in .gz are compressed and
// decompressed transparently.
package textdata

// Column is one logical column of data to write.
// Complex-valued columns produce two output columns
// (real and imaginary parts).
type Column interface {
	// Len returns the number of rows.
	Len() int

	// Width returns the number of output columns produced per row.
	Width() int

	// Value returns the value for the given row at the given
	// output column offset (0 <= j < Width), with a concrete
	// type suitable for printf formatting.
	Value(row, j int) any
}

// Float64s is a [Column] of float64 values.
type Float64s []float64

func (c Float64s) Len() int             { return len(c) }
func (c Float64s) Width() int           { return 1 }
func (c Float64s) Value(row, j int) any { return c[row] }

// Float32s is a [Column] of float32 values.
type Float32s []float32

func (c Float32s) Len() int             { return len(c) }
func (c Float32s) Width() int           { return 1 }
func (c Float32s) Value(row, j int) any { return c[row] }

// Ints is a [Column] of int values, for use with
// integer formats such as %d.
type Ints []int

func (c Ints) Len() int             { return len(c) }
func (c Ints) Width() int           { return 1 }
func (c Ints) Value(row, j int) any { return c[row] }

// Complex128s is a [Column] of complex128 values, written as
// two output columns holding the real and imaginary parts.
type Complex128s []complex128

func (c Complex128s) Len() int   { return len(c) }
func (c Complex128s) Width() int { return 2 }

func (c Complex128s) Value(row, j int) any {
	if j == 0 {
		return real(c[row])
	}
	return imag(c[row])
}
