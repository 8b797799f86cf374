// Package truetypefonts implements the font driver boundary with freetype.
// Fonts are parsed with the truetype package, metrics and rasterization go
// through x/image/font faces, and rendered glyphs are adopted into the
// video driver's surface table through the pixel store.
package truetypefonts

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/user/mediakit/pkg/ports"
)

type loadedFont struct {
	face   font.Face
	ptsize int
	path   string
}

// Driver implements ports.FontDriver.
type Driver struct {
	mu    sync.Mutex
	fs    ports.FileSystem
	store ports.PixelStore
	log   ports.Logger

	initialized bool
	lastErr     string
	next        uint32
	fonts       map[ports.FontHandle]*loadedFont
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger enables driver-level debug logging.
func WithLogger(log ports.Logger) Option {
	return func(d *Driver) { d.log = log.WithComponent("truetypefonts") }
}

// New creates a font driver reading files through fs and handing rendered
// glyphs to store.
func New(fs ports.FileSystem, store ports.PixelStore, opts ...Option) *Driver {
	d := &Driver{fs: fs, store: store}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) setErr(format string, args ...interface{}) {
	d.lastErr = fmt.Sprintf(format, args...)
}

func (d *Driver) debugf(msg string, args ...interface{}) {
	if d.log != nil {
		d.log.Debug(msg, args...)
	}
}

// Init brings the driver up.
func (d *Driver) Init() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fs == nil || d.store == nil {
		d.setErr("font driver needs a filesystem and a pixel store")
		return -1
	}
	d.initialized = true
	d.fonts = make(map[ports.FontHandle]*loadedFont)
	d.debugf("Font subsystem initialized")
	return 0
}

// Quit shuts the driver down, closing every live face.
func (d *Driver) Quit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, f := range d.fonts {
		f.face.Close()
	}
	d.initialized = false
	d.fonts = nil
	d.debugf("Font subsystem shut down")
}

// LastError returns the most recent diagnostic.
func (d *Driver) LastError() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

// OpenFont parses a TrueType file and builds a face at the given point
// size.
func (d *Driver) OpenFont(path string, ptsize int) ports.FontHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		d.setErr("font subsystem not initialized")
		return 0
	}
	if ptsize <= 0 {
		d.setErr("invalid point size %d", ptsize)
		return 0
	}
	data, err := d.fs.ReadFile(path)
	if err != nil {
		d.setErr("read %s: %v", path, err)
		return 0
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		d.setErr("parse %s: %v", path, err)
		return 0
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(ptsize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	d.next++
	h := ports.FontHandle(d.next)
	d.fonts[h] = &loadedFont{face: face, ptsize: ptsize, path: path}
	d.debugf("Opened font %s at %dpt as %d", path, ptsize, h)
	return h
}

// CloseFont releases a font. Unknown handles are ignored.
func (d *Driver) CloseFont(f ports.FontHandle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lf, ok := d.fonts[f]
	if !ok {
		return
	}
	lf.face.Close()
	delete(d.fonts, f)
}

// Height returns ascent plus descent in pixels, zero for unknown handles.
func (d *Driver) Height(f ports.FontHandle) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	lf, ok := d.fonts[f]
	if !ok {
		return 0
	}
	m := lf.face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// GlyphMetrics reports the bounding box and advance of one glyph, with the
// Y axis pointing up from the baseline.
func (d *Driver) GlyphMetrics(f ports.FontHandle, ch rune) (ports.GlyphMetrics, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lf, ok := d.fonts[f]
	if !ok {
		d.setErr("invalid font %d", f)
		return ports.GlyphMetrics{}, -1
	}
	bounds, advance, ok := lf.face.GlyphBounds(ch)
	if !ok {
		d.setErr("font %s has no glyph for %q", lf.path, ch)
		return ports.GlyphMetrics{}, -1
	}
	// Face bounds grow downward; flip to baseline-up.
	return ports.GlyphMetrics{
		MinX:    bounds.Min.X.Floor(),
		MaxX:    bounds.Max.X.Ceil(),
		MinY:    (-bounds.Max.Y).Floor(),
		MaxY:    (-bounds.Min.Y).Ceil(),
		Advance: advance.Round(),
	}, 0
}

// RenderGlyphSolid rasterizes a single glyph in a solid color.
func (d *Driver) RenderGlyphSolid(f ports.FontHandle, ch rune, fg ports.Color) ports.SurfaceHandle {
	return d.render(f, string(ch), fg, "glyph")
}

// RenderTextSolid rasterizes a string in a solid color.
func (d *Driver) RenderTextSolid(f ports.FontHandle, text string, fg ports.Color) ports.SurfaceHandle {
	if text == "" {
		d.mu.Lock()
		d.setErr("empty text")
		d.mu.Unlock()
		return 0
	}
	return d.render(f, text, fg, "text")
}

func (d *Driver) render(f ports.FontHandle, text string, fg ports.Color, what string) ports.SurfaceHandle {
	d.mu.Lock()
	lf, ok := d.fonts[f]
	if !ok {
		d.setErr("invalid font %d", f)
		d.mu.Unlock()
		return 0
	}

	bounds, _ := font.BoundString(lf.face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		d.setErr("%s %q has no pixels", what, text)
		d.mu.Unlock()
		return 0
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: fg.R, G: fg.G, B: fg.B, A: fg.A}),
		Face: lf.face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	drawer.DrawString(text)
	d.mu.Unlock()

	// The store locks the video driver; adopt outside our own lock.
	return d.store.AdoptImage(img)
}

// Ensure Driver implements ports.FontDriver
var _ ports.FontDriver = (*Driver)(nil)
