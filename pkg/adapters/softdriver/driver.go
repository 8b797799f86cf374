// Package softdriver implements the video driver boundary in pure software.
// Surfaces and textures are plain RGBA images, renderers draw with the gg
// library, and presented frames go to an optional frame sink so headless
// runs keep their output.
package softdriver

import (
	"fmt"
	"sync"

	"image"

	"github.com/user/mediakit/pkg/adapters/nullsink"
	"github.com/user/mediakit/pkg/ports"
)

type surface struct {
	img    *image.RGBA
	locked bool
}

type window struct {
	title string
	w, h  int
	flags ports.WindowFlags

	// fb is the window's framebuffer surface, created on first request
	// and owned by the window.
	fb ports.SurfaceHandle

	presentSeq int
}

type renderer struct {
	win   ports.WindowHandle
	flags ports.RendererFlags

	drawColor          ports.Color
	viewport           *ports.Rect
	logicalW, logicalH int

	// target is the texture render operations go to; zero means the
	// renderer's own backbuffer.
	target ports.TextureHandle
	back   ports.SurfaceHandle
}

type texture struct {
	img    *image.RGBA
	format ports.PixelFormat
	access ports.TextureAccess
}

// Option configures a Driver.
type Option func(*Driver)

// WithFrameSink directs presented frames to a sink.
func WithFrameSink(sink ports.FrameSink) Option {
	return func(d *Driver) { d.sink = sink }
}

// WithLogger enables driver-level debug logging.
func WithLogger(log ports.Logger) Option {
	return func(d *Driver) { d.log = log.WithComponent("softdriver") }
}

// Driver implements ports.VideoDriver and ports.PixelStore in software.
type Driver struct {
	mu   sync.Mutex
	fs   ports.FileSystem
	log  ports.Logger
	sink ports.FrameSink

	initialized bool
	lastErr     string
	next        uint32

	surfaces  map[ports.SurfaceHandle]*surface
	windows   map[ports.WindowHandle]*window
	renderers map[ports.RendererHandle]*renderer
	textures  map[ports.TextureHandle]*texture
	hints     map[string]string
}

// New creates a software driver reading files through fs. Presented
// frames are discarded unless a sink is attached.
func New(fs ports.FileSystem, opts ...Option) *Driver {
	d := &Driver{fs: fs, sink: nullsink.New()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// setErr records a diagnostic and is used at every failing return.
func (d *Driver) setErr(format string, args ...interface{}) {
	d.lastErr = fmt.Sprintf(format, args...)
}

func (d *Driver) debugf(msg string, args ...interface{}) {
	if d.log != nil {
		d.log.Debug(msg, args...)
	}
}

func (d *Driver) handle() uint32 {
	d.next++
	return d.next
}

// Init brings the driver up.
func (d *Driver) Init() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fs == nil {
		d.setErr("software driver needs a filesystem")
		return -1
	}
	d.initialized = true
	d.surfaces = make(map[ports.SurfaceHandle]*surface)
	d.windows = make(map[ports.WindowHandle]*window)
	d.renderers = make(map[ports.RendererHandle]*renderer)
	d.textures = make(map[ports.TextureHandle]*texture)
	d.hints = make(map[string]string)
	d.debugf("Video subsystem initialized")
	return 0
}

// Quit shuts the driver down and drops every live resource.
func (d *Driver) Quit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.initialized = false
	d.surfaces = nil
	d.windows = nil
	d.renderers = nil
	d.textures = nil
	d.hints = nil
	d.debugf("Video subsystem shut down")
}

// SetHint stores a configuration hint.
func (d *Driver) SetHint(name, value string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized || name == "" {
		return false
	}
	d.hints[name] = value
	return true
}

// LastError returns the most recent diagnostic.
func (d *Driver) LastError() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

// AdoptImage registers an image as a new surface, converting to RGBA when
// needed. Implements ports.PixelStore for the extension drivers.
func (d *Driver) AdoptImage(img image.Image) ports.SurfaceHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		d.setErr("video subsystem not initialized")
		return 0
	}
	return d.adoptLocked(img)
}

func (d *Driver) adoptLocked(img image.Image) ports.SurfaceHandle {
	h := ports.SurfaceHandle(d.handle())
	d.surfaces[h] = &surface{img: toRGBA(img)}
	return h
}

// SurfaceImage returns the pixels behind a surface handle.
func (d *Driver) SurfaceImage(s ports.SurfaceHandle) (image.Image, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	sf, ok := d.surfaces[s]
	if !ok {
		return nil, false
	}
	return sf.img, true
}

// Ensure Driver implements the driver and pixel-store boundaries
var (
	_ ports.VideoDriver = (*Driver)(nil)
	_ ports.PixelStore  = (*Driver)(nil)
)
