package main

import (
	"fmt"
	"image"
	"image/draw"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/nfnt/resize"
	"golang.org/x/exp/slices"

	"dasa.cc/pz/viewer"
)

// maxTexSize caps decoded images so uploads stay within common texture
// limits; larger images are downscaled on load.
const maxTexSize = 4096

// keep decoded neighbors within this distance of the current index.
const keep = 2

type View struct {
	name   string
	config image.Config
	info   fs.FileInfo

	view    viewer.Viewer // last displayed state, restored on revisit
	hasView bool
}

type Store struct {
	views []View
	index int

	mu    sync.Mutex
	cache map[int]*image.RGBA
}

func NewStore() *Store {
	return &Store{cache: make(map[int]*image.RGBA)}
}

func (st *Store) String() string {
	return fmt.Sprintf("%v/%v", st.index+1, len(st.views))
}

func (st *Store) Len() int { return len(st.views) }

func (st *Store) Index() int { return st.index }

func (st *Store) Current() *View { return &st.views[st.index] }

// Save records the displayed viewer state on the current view.
func (st *Store) Save(v viewer.Viewer) {
	st.views[st.index].view = v
	st.views[st.index].hasView = true
}

func decodeConfig(name string) (image.Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()
	config, _, err := image.DecodeConfig(f)
	return config, err
}

// Walk paths to locate images for display.
func (st *Store) Walk(i int, paths ...string) error {
	walked := make(map[string]bool)
	for _, path := range paths {
		filepath.Walk(path, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() || walked[path] {
				return nil
			}
			walked[path] = true
			if config, err := decodeConfig(path); err == nil {
				st.views = append(st.views, View{name: path, config: config, info: info})
			}
			return nil
		})
	}

	if len(st.views) == 0 {
		return fmt.Errorf("no images to display")
	}

	if *flagSort {
		slices.SortStableFunc(st.views, func(a, b View) bool {
			if *flagRev {
				a, b = b, a
			}
			return a.info.ModTime().Before(b.info.ModTime())
		})
	}

	st.index = clamp(i, 0, len(st.views)-1)
	return nil
}

// Cycle moves index by stride, wrapping around, and returns the current view.
func (st *Store) Cycle(stride int) *View {
	st.index = pmod(st.index+stride, len(st.views))
	go st.prefetch(st.index)
	return &st.views[st.index]
}

// Image returns decoded pixels for view i, loading on demand.
func (st *Store) Image(i int) (*image.RGBA, error) {
	st.mu.Lock()
	m, ok := st.cache[i]
	st.mu.Unlock()
	if ok {
		return m, nil
	}

	m, err := load(st.views[i].name)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	st.cache[i] = m
	st.mu.Unlock()
	return m, nil
}

// prefetch decodes the neighbors of i and evicts entries outside the keep
// window.
func (st *Store) prefetch(i int) {
	n := len(st.views)

	st.mu.Lock()
	for k := range st.cache {
		if d := pmod(k-i, n); d > keep && n-d > keep {
			delete(st.cache, k)
		}
	}
	st.mu.Unlock()

	for _, j := range []int{pmod(i+1, n), pmod(i-1, n)} {
		if j == i {
			continue
		}
		if _, err := st.Image(j); err != nil {
			log.Printf("%v: %s", err, st.views[j].name)
		}
	}
}

func load(name string) (*image.RGBA, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %s", err)
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("image.Decode: %s", err)
	}

	if r := m.Bounds(); r.Dx() > maxTexSize || r.Dy() > maxTexSize {
		m = resize.Thumbnail(maxTexSize, maxTexSize, m, resize.Bilinear)
	}

	if rgba, ok := m.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(m.Bounds())
	draw.Draw(rgba, rgba.Bounds(), m, m.Bounds().Min, draw.Src)
	return rgba, nil
}

func pmod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
