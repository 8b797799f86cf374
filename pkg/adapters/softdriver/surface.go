package softdriver

import (
	"bytes"
	"image"
	"image/draw"

	"golang.org/x/image/bmp"

	"github.com/user/mediakit/pkg/ports"
)

// CreateSurface allocates a blank RGBA surface. The depth argument exists
// for boundary fidelity; anything but 0 or 32 bits is refused.
func (d *Driver) CreateSurface(w, h, depth int) ports.SurfaceHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		d.setErr("video subsystem not initialized")
		return 0
	}
	if w <= 0 || h <= 0 {
		d.setErr("invalid surface size %dx%d", w, h)
		return 0
	}
	if depth != 0 && depth != 32 {
		d.setErr("unsupported surface depth %d", depth)
		return 0
	}
	h2 := d.adoptLocked(image.NewRGBA(image.Rect(0, 0, w, h)))
	d.debugf("Created surface %d (%dx%d)", h2, w, h)
	return h2
}

// LoadBMP decodes a Windows BMP file into a new surface.
func (d *Driver) LoadBMP(path string) ports.SurfaceHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		d.setErr("video subsystem not initialized")
		return 0
	}
	data, err := d.fs.ReadFile(path)
	if err != nil {
		d.setErr("read %s: %v", path, err)
		return 0
	}
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		d.setErr("decode bmp %s: %v", path, err)
		return 0
	}
	h := d.adoptLocked(img)
	d.debugf("Loaded BMP %s into surface %d", path, h)
	return h
}

// FreeSurface releases a surface. Unknown handles are ignored, matching the
// terminal no-failure contract of native destroy routines.
func (d *Driver) FreeSurface(s ports.SurfaceHandle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.surfaces, s)
}

// BlitSurface copies the pixels of src onto dst at the origin, clipped to
// the destination bounds.
func (d *Driver) BlitSurface(src, dst ports.SurfaceHandle) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	from, ok := d.surfaces[src]
	if !ok {
		d.setErr("invalid source surface %d", src)
		return -1
	}
	to, ok := d.surfaces[dst]
	if !ok {
		d.setErr("invalid destination surface %d", dst)
		return -1
	}
	draw.Draw(to.img, from.img.Bounds(), from.img, image.Point{}, draw.Over)
	return 0
}

// LockSurface marks a surface for direct pixel access. Double-locking is a
// failure, matching the acquire/release discipline of the pass-through.
func (d *Driver) LockSurface(s ports.SurfaceHandle) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	sf, ok := d.surfaces[s]
	if !ok {
		d.setErr("invalid surface %d", s)
		return -1
	}
	if sf.locked {
		d.setErr("surface %d already locked", s)
		return -1
	}
	sf.locked = true
	return 0
}

// UnlockSurface releases a surface lock. Unconditional.
func (d *Driver) UnlockSurface(s ports.SurfaceHandle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if sf, ok := d.surfaces[s]; ok {
		sf.locked = false
	}
}

// toRGBA reuses the image when it already is RGBA.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
