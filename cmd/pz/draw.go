package main

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/math/fixed"
)

var (
	monobold = mustParseTTF(gomonobold.TTF)

	monobold16 = NewFace(monobold, Size(16), Hinting(font.HintingFull))
)

func mustParseTTF(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

func Size(x float64) func(*truetype.Options) {
	return func(a *truetype.Options) { a.Size = x }
}

func Hinting(x font.Hinting) func(*truetype.Options) {
	return func(a *truetype.Options) { a.Hinting = x }
}

func NewFace(fnt *truetype.Font, opts ...func(*truetype.Options)) font.Face {
	o := &truetype.Options{}
	for _, opt := range opts {
		opt(o)
	}
	return truetype.NewFace(fnt, o)
}

type Drawer struct {
	src  image.Image
	pos  image.Point
	face font.Face
}

func (d *Drawer) TranslateTo(pt image.Point) { d.pos = pt }
func (d *Drawer) SetColor(clr color.Color)   { d.src = image.NewUniform(clr) }
func (d *Drawer) SetFace(face font.Face)     { d.face = face }

func (d *Drawer) MeasureString(s string) image.Rectangle {
	adv := font.MeasureString(d.face, s).Ceil()
	asc := d.face.Metrics().Ascent.Ceil()
	return image.Rect(0, 0, adv, asc)
}

func (d *Drawer) DrawString(dst *image.RGBA, s string) {
	dr := font.Drawer{
		Dst:  dst,
		Src:  d.src,
		Face: d.face,
		Dot: fixed.Point26_6{
			X: fixed.I(d.pos.X),
			Y: fixed.I(d.pos.Y + d.face.Metrics().Ascent.Ceil()),
		},
	}
	dr.DrawString(s)
}

// drawLabel paints the status label into a fresh buffer and uploads it to the
// window's top-left corner.
func drawLabel(w screen.Window) {
	lbl := labelText()
	if lbl == "" {
		return
	}

	drw := &Drawer{}
	drw.SetFace(monobold16)
	r := drw.MeasureString(lbl).Inset(-7)

	buf, err := scr.NewBuffer(r.Size())
	if err != nil {
		log.Println(err)
		return
	}
	defer buf.Release()

	dst := buf.RGBA()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.NRGBA{0, 0, 0, 0x7f}), image.Point{}, draw.Src)
	drw.TranslateTo(image.Pt(7, 7))
	drw.SetColor(color.NRGBA{0xff, 0xff, 0xff, 0xd8})
	drw.DrawString(dst, lbl)

	w.Upload(image.Pt(14, 14), buf, buf.Bounds())
}
