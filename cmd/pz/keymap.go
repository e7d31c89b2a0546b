package main

import (
	"log"
	"os"

	"dasa.cc/pz/viewer"
	"golang.org/x/mobile/event/key"
)

type KeyProc struct {
	Func interface{}
	Cond func(key.Event) bool
}

func KeyPressed(ev key.Event) bool  { return ev.Direction != key.DirRelease }
func KeyReleased(ev key.Event) bool { return ev.Direction == key.DirRelease }

// panStep is a keyboard pan increment in viewer pixels.
const panStep = 40

func keymapPanLeft()  { gallery.view = gallery.view.Pan(viewer.Pt(+panStep, 0)) }
func keymapPanRight() { gallery.view = gallery.view.Pan(viewer.Pt(-panStep, 0)) }
func keymapPanUp()    { gallery.view = gallery.view.Pan(viewer.Pt(0, +panStep)) }
func keymapPanDown()  { gallery.view = gallery.view.Pan(viewer.Pt(0, -panStep)) }

func keymapZoomIn()  { gallery.view = gallery.view.ZoomIn() }
func keymapZoomOut() { gallery.view = gallery.view.ZoomOut() }

var keymap = map[key.Code]KeyProc{
	key.CodeA:          {Func: keymapPanLeft, Cond: KeyPressed},
	key.CodeD:          {Func: keymapPanRight, Cond: KeyPressed},
	key.CodeW:          {Func: keymapPanUp, Cond: KeyPressed},
	key.CodeS:          {Func: keymapPanDown, Cond: KeyPressed},
	key.CodeLeftArrow:  {Func: keymapPanLeft, Cond: KeyPressed},
	key.CodeRightArrow: {Func: keymapPanRight, Cond: KeyPressed},
	key.CodeUpArrow:    {Func: keymapPanUp, Cond: KeyPressed},
	key.CodeDownArrow:  {Func: keymapPanDown, Cond: KeyPressed},

	key.CodeEqualSign:   {Func: keymapZoomIn, Cond: KeyPressed},
	key.CodeHyphenMinus: {Func: keymapZoomOut, Cond: KeyPressed},

	key.CodeR: {
		Func: func() { refit() },
		Cond: KeyReleased,
	},

	key.CodeN: {Func: func() { cycle(1) }, Cond: KeyPressed},
	key.CodeP: {Func: func() { cycle(-1) }, Cond: KeyPressed},
	key.Code1: {Func: func() { cycle(-1) }, Cond: KeyPressed},
	key.Code2: {Func: func() { cycle(1) }, Cond: KeyPressed},
	key.Code3: {Func: func() { cycle(-5) }, Cond: KeyPressed},
	key.Code4: {Func: func() { cycle(5) }, Cond: KeyPressed},

	key.CodeL: {
		Func: func() { gallery.labelState = (gallery.labelState + 1) % 3 },
		Cond: KeyReleased,
	},

	key.CodeE: {
		Func: func() {
			if gallery.rgba == nil {
				return
			}
			content := gallery.rgba.Bounds().Size()
			out, err := exportSVG(gallery.view, store.Current().name, content)
			if err != nil {
				log.Println("export error:", err)
				return
			}
			log.Println("exported", out)
		},
		Cond: KeyReleased,
	},

	key.CodeEscape: {
		Func: func() { os.Exit(0) },
		Cond: KeyReleased,
	},
}

func handleKey(e key.Event) bool {
	if p, ok := keymap[e.Code]; ok {
		if p.Cond == nil || p.Cond(e) {
			switch fn := p.Func.(type) {
			case func():
				fn()
			case func(key.Event):
				fn(e)
			}
			return true
		}
	}
	return false
}
