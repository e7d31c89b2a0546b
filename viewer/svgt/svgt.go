// Package svgt formats a viewer state as SVG transform attributes.
//
// Applying either attribute to a group containing the content at its natural
// image-space coordinates renders image point ip at viewer pixel
// v.Locate(ip).
package svgt

import (
	"fmt"

	"dasa.cc/pz/viewer"
)

// Attr returns a transform-list of the form "scale(k) translate(tx ty)".
// SVG applies list entries right to left, so coordinates are shifted by
// -Origin first and scaled by 1/Scale second.
func Attr(v viewer.Viewer) string {
	return fmt.Sprintf("scale(%v) translate(%v %v)", 1/v.Scale, -v.Origin[0], -v.Origin[1])
}

// Matrix returns the equivalent "matrix(a b c d e f)" form.
func Matrix(v viewer.Viewer) string {
	k := 1 / v.Scale
	return fmt.Sprintf("matrix(%v 0 0 %v %v %v)", k, k, -v.Origin[0]*k, -v.Origin[1]*k)
}
