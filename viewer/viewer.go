// Package viewer models the affine mapping of a pan/zoom 2D surface.
//
// A Viewer relates two coordinate systems: viewer-space, the pixels of the
// on-screen surface with origin at top-left, and image-space, the coordinates
// of the content being displayed. Scale is the multiplier converting a
// viewer-space distance to an image-space distance, so Scale > 1 means the
// content is zoomed out relative to 1:1.
//
// Viewer is an immutable value; every method returns a new Viewer. The caller
// holds exactly one current Viewer per surface as part of its own state and
// replaces it on each resize, pan or zoom gesture. Scale must stay strictly
// positive; feeding a zero or negative scale is outside the contract.
package viewer

import "golang.org/x/image/math/f32"

// Zoom step coefficients. One step in followed by one step out returns scale
// to its original value up to rounding, and repeated steps give a
// constant-ratio progression.
const (
	ZoomInCoef  = 2.0 / 3
	ZoomOutCoef = 1 / ZoomInCoef
)

// ZV is the zero Viewer.
var ZV Viewer

type Viewer struct {
	Size   f32.Vec2 // surface dimensions in viewer-space units
	Origin f32.Vec2 // image-space point at viewer-space (0,0)
	Scale  float32  // image units per viewer unit; must be > 0
}

// New returns a Viewer of the given surface size with origin (0,0) and scale 1.
func New(size f32.Vec2) Viewer { return Viewer{Size: size, Scale: 1} }

// Pt is shorthand for f32.Vec2{x, y}.
func Pt(x, y float32) f32.Vec2 { return f32.Vec2{x, y} }

// Resize replaces size only, keeping origin and scale so the visible window
// grows or shrinks from the top-left instead of jumping.
func (v Viewer) Resize(size f32.Vec2) Viewer {
	v.Size = size
	return v
}

// At returns the image-space coordinates under viewer-space point p.
func (v Viewer) At(p f32.Vec2) f32.Vec2 {
	return add2fv(v.Origin, scale2fv(v.Scale, p))
}

// Center returns the image-space coordinates at the middle of the surface.
func (v Viewer) Center() f32.Vec2 { return v.At(scale2fv(0.5, v.Size)) }

// Locate returns the viewer-space position of image-space point ip, inverting
// At; Locate(At(p)) == p for any p.
func (v Viewer) Locate(ip f32.Vec2) f32.Vec2 {
	return scale2fv(1/v.Scale, sub2fv(ip, v.Origin))
}

// Translate shifts origin by image-space delta d.
func (v Viewer) Translate(d f32.Vec2) Viewer {
	v.Origin = add2fv(v.Origin, d)
	return v
}

// CenterAt recomputes origin so Center of the result equals ip.
func (v Viewer) CenterAt(ip f32.Vec2) Viewer {
	v.Origin = sub2fv(ip, scale2fv(0.5*v.Scale, v.Size))
	return v
}

// Pan translates by viewer-space drag delta d so the image point under the
// pointer stays under the pointer; equals Translate(-Scale*d).
func (v Viewer) Pan(d f32.Vec2) Viewer {
	return v.Translate(scale2fv(-v.Scale, d))
}

// Fit scales so content is fully contained by the surface, preserving aspect
// ratio, then centers on it. margin >= 1 adds breathing room around the
// binding axis; 1 is an exact fit. A zero surface axis is outside Fit's
// domain.
func (v Viewer) Fit(margin float32, content f32.Vec2) Viewer {
	s := content[0] / v.Size[0]
	if sy := content[1] / v.Size[1]; sy > s {
		s = sy
	}
	v.Scale = margin * s
	return v.CenterAt(scale2fv(0.5, content))
}

// Rescale sets scale, keeping the current center point fixed.
func (v Viewer) Rescale(s float32) Viewer {
	c := v.Center()
	v.Scale = s
	return v.CenterAt(c)
}

// RescaleAt sets scale, keeping image-space point ip stationary at its
// current viewer-space position.
func (v Viewer) RescaleAt(s float32, ip f32.Vec2) Viewer {
	p := v.Locate(ip)
	v.Scale = s
	v.Origin = sub2fv(ip, scale2fv(s, p))
	return v
}

// ZoomIn steps scale down by ZoomInCoef about the center.
func (v Viewer) ZoomIn() Viewer { return v.Rescale(v.Scale * ZoomInCoef) }

// ZoomOut steps scale up by ZoomOutCoef about the center.
func (v Viewer) ZoomOut() Viewer { return v.Rescale(v.Scale * ZoomOutCoef) }

// ZoomToward steps scale down by ZoomInCoef anchored at image-space point ip.
func (v Viewer) ZoomToward(ip f32.Vec2) Viewer {
	return v.RescaleAt(v.Scale*ZoomInCoef, ip)
}

// ZoomAwayFrom steps scale up by ZoomOutCoef anchored at image-space point ip.
func (v Viewer) ZoomAwayFrom(ip f32.Vec2) Viewer {
	return v.RescaleAt(v.Scale*ZoomOutCoef, ip)
}

func add2fv(a, b f32.Vec2) f32.Vec2 { return f32.Vec2{a[0] + b[0], a[1] + b[1]} }

func sub2fv(a, b f32.Vec2) f32.Vec2 { return f32.Vec2{a[0] - b[0], a[1] - b[1]} }

func scale2fv(s float32, a f32.Vec2) f32.Vec2 { return f32.Vec2{s * a[0], s * a[1]} }
