// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
)

// SizeMax computes the size of image where the largest
// dimension (X or Y) is set to maxSize, preserving the aspect ratio.
func SizeMax(sz image.Point, maxSize int) image.Point {
	tsz := sz
	if sz.X > sz.Y {
		tsz.X = maxSize
		tsz.Y = int(float32(sz.Y) * (float32(tsz.X) / float32(sz.X)))
	} else {
		tsz.Y = maxSize
		tsz.X = int(float32(sz.X) * (float32(tsz.Y) / float32(sz.Y)))
	}
	return tsz
}

// Resize returns a new image that has been resized to the given size,
// using a sensible default level of smoothing (Linear interpolation).
func Resize(img image.Image, szX, szY int) image.Image {
	return transform.Resize(img, szX, szY, transform.Linear)
}

// ResizeMax resizes the image so that the largest dimension (X or Y)
// is set to maxSize, preserving the aspect ratio.
func ResizeMax(img image.Image, maxSize int) image.Image {
	sz := img.Bounds().Size()
	tsz := SizeMax(sz, maxSize)
	if tsz != sz {
		img = transform.Resize(img, tsz.X, tsz.Y, transform.Linear)
	}
	return img
}
