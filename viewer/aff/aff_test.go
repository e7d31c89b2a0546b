package aff

import (
	"testing"

	"dasa.cc/pz/viewer"
	"golang.org/x/image/math/f64"
)

const epsilon = 0.0001

func equals(a, b float64) bool { return (a-b) < epsilon && (b-a) < epsilon }

func apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

func TestAff3(t *testing.T) {
	v := viewer.Viewer{Size: viewer.Pt(800, 600), Origin: viewer.Pt(37, -11), Scale: 2.5}
	m := Aff3(v)
	for _, ip := range [][2]float32{{0, 0}, {37, -11}, {400, 300}, {-100, 1000}} {
		p := v.Locate(viewer.Pt(ip[0], ip[1]))
		x, y := apply(m, float64(ip[0]), float64(ip[1]))
		if !equals(x, float64(p[0])) || !equals(y, float64(p[1])) {
			t.Errorf("image %v: affine (%v,%v), Locate %v", ip, x, y, p)
		}
	}
}

func TestPrims(t *testing.T) {
	v := viewer.Viewer{Size: viewer.Pt(800, 600), Origin: viewer.Pt(12, 34), Scale: 0.5}
	m := Aff3(v)
	k, tx, ty := Prims(v)
	for _, ip := range [][2]float64{{0, 0}, {12, 34}, {640, 480}} {
		// scale then translate composes to k*(p+t)
		x, y := k*(ip[0]+tx), k*(ip[1]+ty)
		mx, my := apply(m, ip[0], ip[1])
		if !equals(x, mx) || !equals(y, my) {
			t.Errorf("image %v: prims (%v,%v), affine (%v,%v)", ip, x, y, mx, my)
		}
	}
}
