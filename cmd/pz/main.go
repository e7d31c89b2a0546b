// Command pz is a pan/zoom image viewer.
//
// The window holds a single viewer.Viewer value describing the current
// mapping between window pixels and image coordinates; every gesture
// replaces it through one of the pure viewer operations.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log"
	"os"
	"path/filepath"

	"dasa.cc/pz/viewer"
	"dasa.cc/pz/viewer/aff"

	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/math/f32"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

const title = "pz"

var (
	store = NewStore()

	scr screen.Screen
	win screen.Window

	flagMargin  = flag.Float64("margin", 1, "breathing room factor when fitting, 1 is an exact fit")
	flagSort    = flag.Bool("sort", false, "sort by mod time")
	flagRev     = flag.Bool("rev", false, "when used with sort, reverse results")
	flagIndex   = flag.Int("index", 0, "initial index of image to view")
	flagLogfile = flag.String("logfile", "", "specify a file path to write log output to")
)

var background = color.RGBA{0x26, 0x32, 0x38, 0xff}

func init() {
	log.SetPrefix(title + ": ")
}

func AbsArgs() []string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal("Getwd failed:", err)
	}
	args := flag.Args()
	for i, p := range args {
		if !filepath.IsAbs(p) {
			args[i] = filepath.Join(wd, p)
		}
	}
	return args
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if *flagLogfile != "" {
		logfile, err := os.OpenFile(*flagLogfile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("error opening logfile: %v", err)
		}
		defer logfile.Close()
		log.SetOutput(logfile)
	}

	if err := store.Walk(*flagIndex, AbsArgs()...); err != nil {
		log.Println(err)
		os.Exit(1)
	}

	driver.Main(run)
}

var gallery struct {
	view   viewer.Viewer
	fitted bool

	rgba *image.RGBA
	tex  screen.Texture

	cursor f32.Vec2
	drag   struct {
		active bool
		last   f32.Vec2
	}

	labelState int
}

func run(s screen.Screen) {
	scr = s
	w, err := s.NewWindow(&screen.NewWindowOptions{Title: title})
	if err != nil {
		log.Fatal(err)
	}
	defer w.Release()
	win = w

	cycle(0)

	var sz size.Event
	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			sz = e
			gallery.view = gallery.view.Resize(viewer.Pt(float32(e.WidthPx), float32(e.HeightPx)))
			if !gallery.fitted {
				refit()
			}
		case paint.Event:
			render(w, sz)
		case mouse.Event:
			if handleMouse(e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			if handleKey(e) {
				w.Send(paint.Event{})
			}
		case error:
			log.Print(e)
		}
	}
}

func render(w screen.Window, sz size.Event) {
	w.Fill(sz.Bounds(), background, draw.Src)
	if gallery.tex != nil {
		w.Draw(aff.Aff3(gallery.view), gallery.tex, gallery.tex.Bounds(), screen.Over, nil)
	}
	drawLabel(w)
	w.Publish()
}

// refit recomputes scale and center for the current image; a no-op until the
// first size event arrives.
func refit() {
	if gallery.rgba == nil || gallery.view.Size == (f32.Vec2{}) {
		return
	}
	content := gallery.rgba.Bounds().Size()
	gallery.view = gallery.view.Fit(float32(*flagMargin), viewer.Pt(float32(content.X), float32(content.Y)))
	gallery.fitted = true
}

// cycle saves the displayed state, advances the store by stride and uploads
// the new image, restoring its last viewer state if it was shown before.
func cycle(stride int) {
	if gallery.tex != nil {
		store.Save(gallery.view)
	}
	view := store.Cycle(stride)

	rgba, err := store.Image(store.Index())
	if err != nil {
		log.Printf("%v: %s", err, view.name)
		return
	}
	gallery.rgba = rgba

	if gallery.tex != nil {
		gallery.tex.Release()
		gallery.tex = nil
	}
	r := rgba.Bounds()
	tex, err := scr.NewTexture(r.Size())
	if err != nil {
		log.Println(err)
		return
	}
	buf, err := scr.NewBuffer(r.Size())
	if err != nil {
		tex.Release()
		log.Println(err)
		return
	}
	draw.Draw(buf.RGBA(), buf.Bounds(), rgba, r.Min, draw.Src)
	tex.Upload(image.Point{}, buf, buf.Bounds())
	buf.Release()
	gallery.tex = tex

	if view.hasView {
		gallery.view = view.view.Resize(gallery.view.Size)
		gallery.fitted = true
	} else {
		refit()
	}
	win.Send(paint.Event{})
}

func handleMouse(e mouse.Event) bool {
	gallery.cursor = viewer.Pt(e.X, e.Y)
	switch e.Button {
	case mouse.ButtonLeft:
		switch e.Direction {
		case mouse.DirPress:
			gallery.drag.active = true
			gallery.drag.last = gallery.cursor
		case mouse.DirRelease:
			gallery.drag.active = false
		}
	case mouse.ButtonWheelUp:
		if e.Direction != mouse.DirRelease {
			gallery.view = gallery.view.ZoomToward(gallery.view.At(gallery.cursor))
			return true
		}
	case mouse.ButtonWheelDown:
		if e.Direction != mouse.DirRelease {
			gallery.view = gallery.view.ZoomAwayFrom(gallery.view.At(gallery.cursor))
			return true
		}
	case mouse.ButtonNone:
		if gallery.drag.active {
			d := viewer.Pt(gallery.cursor[0]-gallery.drag.last[0], gallery.cursor[1]-gallery.drag.last[1])
			gallery.drag.last = gallery.cursor
			gallery.view = gallery.view.Pan(d)
			return true
		}
	}
	return false
}

func labelText() string {
	switch gallery.labelState {
	case 1:
		return fmt.Sprintf("%s %s %.0f%%", title, store, 100/gallery.view.Scale)
	case 2:
		return fmt.Sprintf("%s %s %.0f%% %s", title, store, 100/gallery.view.Scale, filepath.Base(store.Current().name))
	}
	return ""
}
