package viewer

import (
	"testing"

	"golang.org/x/image/math/f32"
)

const epsilon = 0.0001

func equals(a, b float32) bool { return equaleps(a, b, epsilon) }

func equaleps(a, b, eps float32) bool { return (a-b) < eps && (b-a) < eps }

func equals2fv(a, b f32.Vec2) bool { return equals(a[0], b[0]) && equals(a[1], b[1]) }

func TestNew(t *testing.T) {
	v := New(Pt(800, 600))
	if v.Origin != Pt(0, 0) {
		t.Errorf("expected zero origin, have %v", v.Origin)
	}
	if v.Scale != 1 {
		t.Errorf("expected scale 1, have %v", v.Scale)
	}
	if v.At(Pt(0, 0)) != v.Origin {
		t.Errorf("expected At(0,0) == Origin, have %v", v.At(Pt(0, 0)))
	}
}

func TestResize(t *testing.T) {
	v := Viewer{Size: Pt(800, 600), Origin: Pt(33, -7), Scale: 2.5}
	w := v.Resize(Pt(1024, 768))
	if w.Size != Pt(1024, 768) {
		t.Errorf("expected size (1024,768), have %v", w.Size)
	}
	if w.Origin != v.Origin || w.Scale != v.Scale {
		t.Errorf("expected origin and scale unchanged, have %v %v", w.Origin, w.Scale)
	}
}

// Locate must invert At even when origin is non-zero; a per-axis expression
// dividing only the origin term by scale satisfies the law only at the zero
// origin.
func TestRoundTrip(t *testing.T) {
	views := []Viewer{
		New(Pt(800, 600)),
		{Size: Pt(800, 600), Origin: Pt(37, -11), Scale: 2.5},
		{Size: Pt(640, 480), Origin: Pt(-250.5, 1024), Scale: 1. / 3},
		{Size: Pt(123, 457), Origin: Pt(0.25, 0.75), Scale: 0.01},
	}
	points := []f32.Vec2{
		Pt(0, 0), Pt(1, 1), Pt(-15, 27.5), Pt(400, 300), Pt(799, 599),
	}
	for _, v := range views {
		for _, p := range points {
			if q := v.Locate(v.At(p)); !equals2fv(q, p) {
				t.Errorf("%+v: Locate(At(%v)) = %v", v, p, q)
			}
			if q := v.At(v.Locate(p)); !equals2fv(q, p) {
				t.Errorf("%+v: At(Locate(%v)) = %v", v, p, q)
			}
		}
	}
}

func TestCenterAt(t *testing.T) {
	v := Viewer{Size: Pt(800, 600), Origin: Pt(5, 5), Scale: 0.75}
	for _, pt := range []f32.Vec2{Pt(0, 0), Pt(200, 150), Pt(-40, 900.25)} {
		w := v.CenterAt(pt)
		if c := w.Center(); !equals2fv(c, pt) {
			t.Errorf("expected center %v, have %v", pt, c)
		}
		if w.Scale != v.Scale || w.Size != v.Size {
			t.Errorf("expected scale and size unchanged, have %v %v", w.Scale, w.Size)
		}
	}
}

func TestTranslate(t *testing.T) {
	v := Viewer{Size: Pt(800, 600), Origin: Pt(10, 20), Scale: 3}
	w := v.Translate(Pt(-4, 8))
	if w.Origin != Pt(6, 28) {
		t.Errorf("expected origin (6,28), have %v", w.Origin)
	}
	if w.Scale != v.Scale || w.Size != v.Size {
		t.Errorf("expected scale and size unchanged, have %v %v", w.Scale, w.Size)
	}
}

func TestPan(t *testing.T) {
	v := Viewer{Size: Pt(800, 600), Origin: Pt(100, 100), Scale: 2}

	// drag of (10,0) viewer pixels shifts origin.x by -20 image units
	w := v.Pan(Pt(10, 0))
	if !equals(w.Origin[0], 80) || !equals(w.Origin[1], 100) {
		t.Errorf("expected origin (80,100), have %v", w.Origin)
	}

	for _, d := range []f32.Vec2{Pt(10, 0), Pt(-3.5, 12), Pt(0, -40)} {
		if p, q := v.Pan(d), v.Translate(scale2fv(-v.Scale, d)); p != q {
			t.Errorf("Pan(%v) = %+v, want %+v", d, p, q)
		}
	}
}

func TestFit(t *testing.T) {
	v0 := New(Pt(800, 600))

	v := v0.Fit(1, Pt(400, 300))
	if !equals(v.Scale, 0.5) {
		t.Errorf("expected scale 0.5, have %v", v.Scale)
	}
	if !equals2fv(v.Origin, Pt(0, 0)) {
		t.Errorf("expected origin (0,0), have %v", v.Origin)
	}
	if c := v.Center(); !equals2fv(c, Pt(200, 150)) {
		t.Errorf("expected center (200,150), have %v", c)
	}

	// width binds: visible window is (1000,750) centered on content
	v = v0.Fit(1, Pt(1000, 300))
	if !equals(v.Scale, 1.25) {
		t.Errorf("expected scale 1.25, have %v", v.Scale)
	}
	min, max := v.At(Pt(0, 0)), v.At(v.Size)
	if !equals(min[0], 0) || !equals(max[0], 1000) {
		t.Errorf("expected window to touch content left/right edges, have %v %v", min, max)
	}
	if !equals(max[1]-min[1], 750) {
		t.Errorf("expected window height 750, have %v", max[1]-min[1])
	}
	if c := v.Center(); !equals2fv(c, Pt(500, 150)) {
		t.Errorf("expected center (500,150), have %v", c)
	}

	// margin scales the binding axis exactly
	v = v0.Fit(1.1, Pt(1000, 300))
	min, max = v.At(Pt(0, 0)), v.At(v.Size)
	if w := max[0] - min[0]; !equals(w, 1100) {
		t.Errorf("expected window width 1100, have %v", w)
	}
}

func TestRescale(t *testing.T) {
	v := Viewer{Size: Pt(800, 600), Origin: Pt(64, -32), Scale: 2}
	c := v.Center()
	w := v.Rescale(0.5)
	if w.Scale != 0.5 {
		t.Errorf("expected scale 0.5, have %v", w.Scale)
	}
	if !equals2fv(w.Center(), c) {
		t.Errorf("expected center %v unchanged, have %v", c, w.Center())
	}
}

func TestRescaleAtAnchor(t *testing.T) {
	v := Viewer{Size: Pt(800, 600), Origin: Pt(-120, 45), Scale: 1.5}
	anchors := []f32.Vec2{Pt(0, 0), Pt(333, -100), Pt(1000.5, 2000)}
	scales := []float32{0.1, 2. / 3, 1, 4}
	// a hundredth of a pixel; division by small scales amplifies rounding
	eq := func(a, b f32.Vec2) bool {
		return equaleps(a[0], b[0], 0.01) && equaleps(a[1], b[1], 0.01)
	}
	for _, ip := range anchors {
		for _, s := range scales {
			before := v.Locate(ip)
			w := v.RescaleAt(s, ip)
			if w.Scale != s {
				t.Errorf("expected scale %v, have %v", s, w.Scale)
			}
			if after := w.Locate(ip); !eq(before, after) {
				t.Errorf("anchor %v moved from %v to %v", ip, before, after)
			}
		}
	}
}

func TestZoomSymmetry(t *testing.T) {
	if !equals(ZoomInCoef*ZoomOutCoef, 1) {
		t.Errorf("expected reciprocal coefficients, have %v %v", ZoomInCoef, ZoomOutCoef)
	}
	v := Viewer{Size: Pt(800, 600), Origin: Pt(12, 34), Scale: 0.8}
	if s := v.ZoomIn().ZoomOut().Scale; !equals(s, v.Scale) {
		t.Errorf("expected scale %v after in/out, have %v", v.Scale, s)
	}
	if s := v.ZoomToward(Pt(50, 50)).ZoomAwayFrom(Pt(50, 50)).Scale; !equals(s, v.Scale) {
		t.Errorf("expected scale %v after toward/away, have %v", v.Scale, s)
	}
}

func TestZoomIn(t *testing.T) {
	v := New(Pt(800, 600)).Fit(1, Pt(400, 300)).ZoomIn()
	if !equals(v.Scale, 1./3) {
		t.Errorf("expected scale 1/3, have %v", v.Scale)
	}
	if c := v.Center(); !equals2fv(c, Pt(200, 150)) {
		t.Errorf("expected center (200,150), have %v", c)
	}
	want := Pt(200-0.5*800/3, 150-0.5*600/3)
	if !equals2fv(v.Origin, want) {
		t.Errorf("expected origin %v, have %v", want, v.Origin)
	}
}

func TestZoomTowardAnchor(t *testing.T) {
	v := Viewer{Size: Pt(800, 600), Origin: Pt(20, 30), Scale: 1.25}
	ip := v.At(Pt(600, 120)) // image point under some viewer pixel
	w := v.ZoomToward(ip)
	if p := w.Locate(ip); !equaleps(p[0], 600, 0.01) || !equaleps(p[1], 120, 0.01) {
		t.Errorf("expected anchor to stay at (600,120), have %v", p)
	}
	if !equals(w.Scale, v.Scale*ZoomInCoef) {
		t.Errorf("expected scale %v, have %v", v.Scale*ZoomInCoef, w.Scale)
	}
}
