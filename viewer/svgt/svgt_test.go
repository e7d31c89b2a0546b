package svgt

import (
	"testing"

	"dasa.cc/pz/viewer"
)

func TestAttr(t *testing.T) {
	v := viewer.Viewer{Size: viewer.Pt(800, 600), Origin: viewer.Pt(10, 20), Scale: 2}
	if have, want := Attr(v), "scale(0.5) translate(-10 -20)"; have != want {
		t.Errorf("have %q, want %q", have, want)
	}
}

func TestMatrix(t *testing.T) {
	v := viewer.Viewer{Size: viewer.Pt(800, 600), Origin: viewer.Pt(10, 20), Scale: 2}
	if have, want := Matrix(v), "matrix(0.5 0 0 0.5 -5 -10)"; have != want {
		t.Errorf("have %q, want %q", have, want)
	}
}

func TestIdent(t *testing.T) {
	v := viewer.New(viewer.Pt(640, 480))
	if have, want := Attr(v), "scale(1) translate(-0 -0)"; have != want {
		t.Errorf("have %q, want %q", have, want)
	}
}
