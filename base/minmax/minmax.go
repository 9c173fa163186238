// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values,
// and a Range variant where either end can be fixed.
package minmax

const (
	MaxFloat64 float64 = 1.7976931348623158e+308
	MinFloat64 float64 = 2.2250738585072014e-308
)

// F64 represents a min / max range for float64 values.
// Supports clipping, renormalizing, etc.
type F64 struct {
	Min float64
	Max float64
}

// Set sets the min and max values.
func (mr *F64) Set(mn, mx float64) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets the Min to +MaxFloat, Max to -MaxFloat, suitable for
// iteratively calling FitValInRange.
func (mr *F64) SetInfinity() {
	mr.Min = MaxFloat64
	mr.Max = -MaxFloat64
}

// IsValid returns true if Min <= Max.
func (mr *F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// InRange tests whether value is within the range (>= Min and <= Max).
func (mr *F64) InRange(val float64) bool {
	return val >= mr.Min && val <= mr.Max
}

// Range returns Max - Min.
func (mr *F64) Range() float64 {
	return mr.Max - mr.Min
}

// Midpoint returns the point halfway between Min and Max.
func (mr *F64) Midpoint() float64 {
	return 0.5 * (mr.Max + mr.Min)
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range.
// Returns true if we had to adjust to fit.
func (mr *F64) FitValInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// ClipValue clips given value within Min / Max range.
// Note: a NaN will remain as a NaN.
func (mr *F64) ClipValue(val float64) float64 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}

// Range64 represents a range of values for plotting, where either
// end can optionally be fixed at its current value.
type Range64 struct {
	F64

	// FixMin means that the Min end of the range is fixed:
	// it is used as-is instead of any computed value.
	FixMin bool

	// FixMax means that the Max end of the range is fixed:
	// it is used as-is instead of any computed value.
	FixMax bool
}

// SetMin sets a fixed Min value.
func (rr *Range64) SetMin(mn float64) *Range64 {
	rr.FixMin = true
	rr.Min = mn
	return rr
}

// SetMax sets a fixed Max value.
func (rr *Range64) SetMax(mx float64) *Range64 {
	rr.FixMax = true
	rr.Max = mx
	return rr
}

// Clamp returns the given computed range values, replaced by
// our fixed Min or Max values where those ends are fixed.
func (rr *Range64) Clamp(mn, mx float64) (float64, float64) {
	if rr.FixMin {
		mn = rr.Min
	}
	if rr.FixMax {
		mx = rr.Max
	}
	return mn, mx
}
