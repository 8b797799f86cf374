package softdriver

import (
	"fmt"
	"image"

	"github.com/user/mediakit/pkg/ports"
)

// CreateWindow creates an off-screen window. The framebuffer behind it is
// allocated lazily on the first WindowSurface call.
func (d *Driver) CreateWindow(title string, w, h int, flags ports.WindowFlags) ports.WindowHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		d.setErr("video subsystem not initialized")
		return 0
	}
	if w <= 0 || h <= 0 {
		d.setErr("invalid window size %dx%d", w, h)
		return 0
	}
	hw := ports.WindowHandle(d.handle())
	d.windows[hw] = &window{title: title, w: w, h: h, flags: flags}
	d.debugf("Created window %d %q (%dx%d)", hw, title, w, h)
	return hw
}

// DestroyWindow releases a window and its framebuffer. Unknown handles are
// ignored.
func (d *Driver) DestroyWindow(win ports.WindowHandle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.windows[win]
	if !ok {
		return
	}
	if w.fb != 0 {
		delete(d.surfaces, w.fb)
	}
	delete(d.windows, win)
	d.debugf("Destroyed window %d", win)
}

// WindowSurface returns the window's framebuffer surface, creating it on
// first use. The window keeps ownership.
func (d *Driver) WindowSurface(win ports.WindowHandle) ports.SurfaceHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.windows[win]
	if !ok {
		d.setErr("invalid window %d", win)
		return 0
	}
	if w.fb == 0 {
		w.fb = d.adoptLocked(image.NewRGBA(image.Rect(0, 0, w.w, w.h)))
	}
	return w.fb
}

// UpdateWindowSurface presents the framebuffer, handing it to the frame
// sink when one is attached.
func (d *Driver) UpdateWindowSurface(win ports.WindowHandle) int {
	d.mu.Lock()
	w, ok := d.windows[win]
	if !ok {
		d.setErr("invalid window %d", win)
		d.mu.Unlock()
		return -1
	}
	if w.fb == 0 {
		d.setErr("window %d has no surface", win)
		d.mu.Unlock()
		return -1
	}
	fb := d.surfaces[w.fb].img
	name := d.frameName(win, w)
	sink := d.sink
	d.mu.Unlock()

	if sink != nil && sink.Enabled() {
		if err := sink.WriteFrame(name, fb); err != nil {
			d.mu.Lock()
			d.setErr("write frame: %v", err)
			d.mu.Unlock()
			return -1
		}
	}
	return 0
}

// WindowFramebuffer exposes a window's framebuffer pixels to presenting
// drivers layered on top of this one.
func (d *Driver) WindowFramebuffer(win ports.WindowHandle) (image.Image, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.windows[win]
	if !ok || w.fb == 0 {
		return nil, false
	}
	sf, ok := d.surfaces[w.fb]
	if !ok {
		return nil, false
	}
	return sf.img, true
}

// frameName numbers presented frames per window. Caller holds the mutex.
func (d *Driver) frameName(win ports.WindowHandle, w *window) string {
	w.presentSeq++
	return fmt.Sprintf("window-%d-frame-%04d", win, w.presentSeq)
}
