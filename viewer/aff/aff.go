// Package aff derives immediate-mode drawing transforms from a viewer state.
package aff

import (
	"golang.org/x/image/math/f64"

	"dasa.cc/pz/viewer"
)

// Aff3 returns the image-to-viewer affine in the row-major src2dst form
// consumed by shiny's Window.Draw and the x/image/draw transformers:
// image point ip lands on viewer pixel v.Locate(ip).
func Aff3(v viewer.Viewer) f64.Aff3 {
	k := 1 / float64(v.Scale)
	return f64.Aff3{
		k, 0, -float64(v.Origin[0]) * k,
		0, k, -float64(v.Origin[1]) * k,
	}
}

// Prims returns the equivalent primitive sequence for canvas-style surfaces:
// apply scale first, then translate within the scaled space.
func Prims(v viewer.Viewer) (scale, tx, ty float64) {
	return 1 / float64(v.Scale), -float64(v.Origin[0]), -float64(v.Origin[1])
}
