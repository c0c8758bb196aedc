// Package rendertest provides in-memory fakes for the render interfaces
// so game logic can be tested without a graphics backend.
package rendertest

import (
	"fmt"
	"image"
	"image/color"

	"github.com/Hector2242/pokeclone/internal/render"
)

// init registers the fake GeoM constructor so code under test can call
// render.NewGeoM without the ebiten backend linked in.
func init() {
	render.NewGeoM = func() render.GeoM {
		return &GeoM{}
	}
}

// Image is a fake render.Image that records operations instead of
// drawing pixels.
type Image struct {
	W, H     int
	Disposed bool
	Fills    []color.Color
	Draws    []DrawCall
}

// DrawCall records one DrawImage invocation.
type DrawCall struct {
	Src  render.Image
	Opts *render.DrawImageOptions
}

// NewImage creates a fake image of the given size.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h}
}

func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.W, i.H) }

func (i *Image) Size() (int, int) { return i.W, i.H }

func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{W: r.Dx(), H: r.Dy()}
}

func (i *Image) Fill(clr color.Color) { i.Fills = append(i.Fills, clr) }

func (i *Image) Clear() { i.Fills = append(i.Fills, color.Transparent) }

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	i.Draws = append(i.Draws, DrawCall{Src: src, Opts: opts})
}

func (i *Image) Dispose() { i.Disposed = true }

// GeoM is a fake transformation matrix that tracks the accumulated
// scale and translation.
type GeoM struct {
	Sx, Sy float64
	Tx, Ty float64
	set    bool
}

func (g *GeoM) Translate(tx, ty float64) {
	g.ensure()
	g.Tx += tx
	g.Ty += ty
}

func (g *GeoM) Scale(sx, sy float64) {
	g.ensure()
	g.Sx *= sx
	g.Sy *= sy
	g.Tx *= sx
	g.Ty *= sy
}

func (g *GeoM) Reset() {
	g.Sx, g.Sy = 1, 1
	g.Tx, g.Ty = 0, 0
	g.set = true
}

func (g *GeoM) ensure() {
	if !g.set {
		g.Reset()
	}
}

// Renderer is a fake render.Renderer.
type Renderer struct {
	Texts []string
}

func (r *Renderer) NewImage(w, h int) render.Image { return NewImage(w, h) }

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color) {
	r.Texts = append(r.Texts, text)
}

// Input is a fake render.InputManager driven by a settable key set.
type Input struct {
	Pressed map[render.Key]bool
}

// NewInput creates a fake input manager with the given keys held down.
func NewInput(keys ...render.Key) *Input {
	in := &Input{Pressed: map[render.Key]bool{}}
	for _, k := range keys {
		in.Pressed[k] = true
	}
	return in
}

func (in *Input) IsKeyPressed(key render.Key) bool { return in.Pressed[key] }

func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.Pressed[key] }

// Loader is a fake render.ResourceLoader serving fixed-size images for
// known paths and failing for anything else.
type Loader struct {
	Sizes  map[string][2]int // path -> (w, h)
	Loaded []*Image
}

// NewLoader creates a loader that serves w x h images for every path in
// paths.
func NewLoader(w, h int, paths ...string) *Loader {
	l := &Loader{Sizes: map[string][2]int{}}
	for _, p := range paths {
		l.Sizes[p] = [2]int{w, h}
	}
	return l
}

func (l *Loader) LoadImage(path string) (render.Image, error) {
	size, ok := l.Sizes[path]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file", path)
	}
	img := NewImage(size[0], size[1])
	l.Loaded = append(l.Loaded, img)
	return img, nil
}
