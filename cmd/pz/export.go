package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"dasa.cc/pz/viewer"
	"dasa.cc/pz/viewer/svgt"
)

// exportSVG writes a standalone svg beside name reproducing the current
// view; the image file is referenced by relative path, not embedded.
func exportSVG(v viewer.Viewer, name string, content image.Point) (string, error) {
	out := name + ".pz.svg"
	f, err := os.Create(out)
	if err != nil {
		return "", err
	}

	_, err = fmt.Fprintf(f, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%v" height="%v">
  <g transform="%s">
    <image xlink:href="%s" width="%v" height="%v"/>
  </g>
</svg>
`, int(v.Size[0]), int(v.Size[1]), svgt.Attr(v), filepath.Base(name), content.X, content.Y)
	if err != nil {
		f.Close()
		return "", err
	}
	return out, f.Close()
}
