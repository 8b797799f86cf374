// Package stdimaging implements the image driver boundary with the standard
// image decoders plus x/image's BMP support. Decoded pictures are adopted
// into the video driver's surface table through the pixel store.
package stdimaging

import (
	"bytes"
	"fmt"
	"image"
	"strings"
	"sync"

	// Registered decoders for image.Decode.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/user/mediakit/pkg/ports"
)

// Driver implements ports.ImageDriver.
type Driver struct {
	mu    sync.Mutex
	fs    ports.FileSystem
	store ports.PixelStore
	log   ports.Logger

	initialized ports.ImageInitFlags
	lastErr     string
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger enables driver-level debug logging.
func WithLogger(log ports.Logger) Option {
	return func(d *Driver) { d.log = log.WithComponent("stdimaging") }
}

// New creates an image driver reading files through fs and handing decoded
// pictures to store.
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

// Init reports the supported subset of the requested formats. All three
// known formats are compiled in, so the only failure mode is a missing
// collaborator.
func (d *Driver) Init(flags ports.ImageInitFlags) ports.ImageInitFlags {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fs == nil || d.store == nil {
		d.setErr("image driver needs a filesystem and a pixel store")
		return 0
	}
	supported := ports.ImageInitPNG | ports.ImageInitJPEG | ports.ImageInitBMP
	d.initialized = flags & supported
	if d.initialized != flags {
		d.setErr("unsupported image formats requested: %b", flags&^supported)
	}
	if d.log != nil {
		d.log.Debug("Image subsystem initialized")
	}
	return d.initialized
}

// Quit shuts the driver down.
func (d *Driver) Quit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.initialized = 0
	if d.log != nil {
		d.log.Debug("Image subsystem shut down")
	}
}

// LastError returns the most recent diagnostic.
func (d *Driver) LastError() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

// Load decodes an image file, sniffing the format from its contents, and
// adopts it as a new surface.
func (d *Driver) Load(path string) ports.SurfaceHandle {
	d.mu.Lock()
	if d.initialized == 0 {
		d.setErr("image subsystem not initialized")
		d.mu.Unlock()
		return 0
	}
	data, err := d.fs.ReadFile(path)
	if err != nil {
		d.setErr("read %s: %v", path, err)
		d.mu.Unlock()
		return 0
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		d.setErr("decode %s: %v", path, err)
		d.mu.Unlock()
		return 0
	}
	if !d.formatEnabled(format) {
		d.setErr("format %s was not requested at init", format)
		d.mu.Unlock()
		return 0
	}
	log := d.log
	d.mu.Unlock()

	h := d.store.AdoptImage(img)
	if log != nil {
		log.Debug("Loaded %s image %s into surface %d", format, path, h)
	}
	return h
}

// formatEnabled maps a sniffed format name onto the init flags. Caller
// holds the mutex.
func (d *Driver) formatEnabled(format string) bool {
	switch strings.ToLower(format) {
	case "png":
		return d.initialized&ports.ImageInitPNG != 0
	case "jpeg":
		return d.initialized&ports.ImageInitJPEG != 0
	case "bmp":
		return d.initialized&ports.ImageInitBMP != 0
	default:
		return false
	}
}

// Ensure Driver implements ports.ImageDriver
var _ ports.ImageDriver = (*Driver)(nil)
