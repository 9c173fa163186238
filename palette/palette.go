// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides a named set of print-friendly plot colors
// and color cycles for line plots.
package palette

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"cogentcore.org/plottools/base/errors"
)

// Map contains the named plot colors. The full-strength colors are
// based on the ColorBrewer Set1 scheme, and the light variants on
// the Paired scheme, selected to remain distinguishable in print.
var Map = map[string]color.RGBA{
	"blue":        {0x37, 0x7e, 0xb8, 0xff}, // rgb(55, 126, 184)
	"orange":      {0xff, 0x7f, 0x00, 0xff}, // rgb(255, 127, 0)
	"red":         {0xe4, 0x1a, 0x1c, 0xff}, // rgb(228, 26, 28)
	"green":       {0x4d, 0xaf, 0x4a, 0xff}, // rgb(77, 175, 74)
	"purple":      {0x98, 0x4e, 0xa3, 0xff}, // rgb(152, 78, 163)
	"brown":       {0xa6, 0x56, 0x28, 0xff}, // rgb(166, 86, 40)
	"pink":        {0xf7, 0x81, 0xbf, 0xff}, // rgb(247, 129, 191)
	"yellow":      {0xd2, 0xd2, 0x15, 0xff}, // rgb(210, 210, 21)
	"lightred":    {0xfb, 0x9a, 0x99, 0xff}, // rgb(251, 154, 153)
	"lightblue":   {0xa6, 0xce, 0xe3, 0xff}, // rgb(166, 206, 227)
	"lightorange": {0xfd, 0xbf, 0x6f, 0xff}, // rgb(253, 191, 111)
	"lightgreen":  {0xb2, 0xdf, 0x8a, 0xff}, // rgb(178, 223, 138)
	"lightpurple": {0xca, 0xb2, 0xd6, 0xff}, // rgb(202, 178, 214)
	"grey":        {0x99, 0x99, 0x99, 0xff}, // rgb(153, 153, 153)
	"white":       {0xff, 0xff, 0xff, 0xff}, // rgb(255, 255, 255)
	"black":       {0x00, 0x00, 0x00, 0xff}, // rgb(0, 0, 0)
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromName returns the color value specified
// by the given plot color name. It returns
// an error if the name is not found; see [MustFromName]
// and [LogFromName] for versions that do not return an error.
func FromName(name string) (color.RGBA, error) {
	c, ok := Map[name]
	if !ok {
		return color.RGBA{}, errors.New("palette.FromName: name not found: " + name)
	}
	return c, nil
}

// MustFromName returns the color value specified
// by the given plot color name. It panics
// if the name is not found; see [FromName]
// for a version that returns an error.
func MustFromName(name string) color.RGBA {
	c, err := FromName(name)
	if err != nil {
		panic("palette.MustFromName: " + err.Error())
	}
	return c
}

// LogFromName returns the color value specified
// by the given plot color name. It logs an error
// if the name is not found; see [FromName]
// for a version that returns an error.
func LogFromName(name string) color.RGBA {
	return errors.Log1(FromName(name))
}

// FromString returns a color value from the given string,
// which can be either a plot color name from [Map] or a
// hex value such as #e41a1c.
func FromString(str string) (color.RGBA, error) {
	if len(str) == 0 {
		return color.RGBA{}, errors.New("palette.FromString: string is empty")
	}
	if str[0] == '#' {
		return FromHex(str)
	}
	return FromName(strings.ToLower(str))
}

// FromHex parses the given hex color string
// and returns the resulting color. It returns any
// resulting error; see [MustFromHex] for a
// version that does not return an error.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	if len(hex) == 3 {
		format := "%1x%1x%1x"
		fmt.Sscanf(hex, format, &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	} else if len(hex) == 6 {
		format := "%02x%02x%02x"
		fmt.Sscanf(hex, format, &r, &g, &b)
	} else if len(hex) == 8 {
		format := "%02x%02x%02x%02x"
		fmt.Sscanf(hex, format, &r, &g, &b, &a)
	} else {
		return color.RGBA{}, errors.New("palette.FromHex: could not process: " + hex)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic("palette.MustFromHex: " + err.Error())
	}
	return c
}

// AsHex returns the color as a standard
// 2-hexadecimal-digits-per-component string
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// SetA returns the given color with the
// transparency (A) set to the given value
func SetA(c color.Color, a uint8) color.RGBA {
	rc := AsRGBA(c)
	rc.A = a
	return rc
}

// SetAF32 returns the given color with the
// transparency (A) set to the given float32 value
// between 0 and 1
func SetAF32(c color.Color, a float32) color.RGBA {
	rc := AsRGBA(c)
	a = min(max(a, 0), 1)
	rc.A = uint8(a * 255)
	return rc
}

// Uniform returns a new [image.Uniform] filled with the given color.
func Uniform(c color.Color) image.Image {
	return image.NewUniform(c)
}
