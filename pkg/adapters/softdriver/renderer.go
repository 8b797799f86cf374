package softdriver

import (
	"image"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/user/mediakit/pkg/ports"
)

// CreateRenderer creates a software renderer with a backbuffer sized to the
// window. The index argument exists for boundary fidelity; only -1 and 0
// select the software backend.
func (d *Driver) CreateRenderer(win ports.WindowHandle, index int, flags ports.RendererFlags) ports.RendererHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		d.setErr("video subsystem not initialized")
		return 0
	}
	w, ok := d.windows[win]
	if !ok {
		d.setErr("invalid window %d", win)
		return 0
	}
	if index > 0 {
		d.setErr("no render backend at index %d", index)
		return 0
	}
	if flags&ports.RendererAccelerated != 0 {
		d.setErr("software driver cannot accelerate")
		return 0
	}
	hr := ports.RendererHandle(d.handle())
	back := d.adoptLocked(image.NewRGBA(image.Rect(0, 0, w.w, w.h)))
	d.renderers[hr] = &renderer{
		win:       win,
		flags:     flags,
		drawColor: ports.Color{A: 255},
		back:      back,
	}
	d.debugf("Created renderer %d for window %d", hr, win)
	return hr
}

// DestroyRenderer releases a renderer and its backbuffer. Unknown handles
// are ignored.
func (d *Driver) DestroyRenderer(r ports.RendererHandle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rd, ok := d.renderers[r]
	if !ok {
		return
	}
	delete(d.surfaces, rd.back)
	delete(d.renderers, r)
	d.debugf("Destroyed renderer %d", r)
}

// BackbufferImage exposes a renderer's backbuffer pixels to presenting
// drivers layered on top of this one.
func (d *Driver) BackbufferImage(r ports.RendererHandle) (image.Image, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rd, ok := d.renderers[r]
	if !ok {
		return nil, false
	}
	sf, ok := d.surfaces[rd.back]
	if !ok {
		return nil, false
	}
	return sf.img, true
}

// targetImage resolves the pixels render operations currently go to.
// Caller holds the mutex.
func (d *Driver) targetImage(rd *renderer) *image.RGBA {
	if rd.target != 0 {
		if tx, ok := d.textures[rd.target]; ok {
			return tx.img
		}
	}
	if sf, ok := d.surfaces[rd.back]; ok {
		return sf.img
	}
	return nil
}

// drawContext builds a gg context over the current target with the
// renderer's viewport and logical scaling applied. Caller holds the mutex.
func (d *Driver) drawContext(rd *renderer) *gg.Context {
	img := d.targetImage(rd)
	if img == nil {
		return nil
	}
	dc := gg.NewContextForRGBA(img)
	if rd.logicalW > 0 && rd.logicalH > 0 {
		b := img.Bounds()
		dc.Scale(float64(b.Dx())/float64(rd.logicalW), float64(b.Dy())/float64(rd.logicalH))
	}
	if rd.viewport != nil {
		vp := rd.viewport
		dc.DrawRectangle(float64(vp.X), float64(vp.Y), float64(vp.W), float64(vp.H))
		dc.Clip()
		dc.Translate(float64(vp.X), float64(vp.Y))
	}
	dc.SetRGBA255(int(rd.drawColor.R), int(rd.drawColor.G), int(rd.drawColor.B), int(rd.drawColor.A))
	return dc
}

func (d *Driver) withRenderer(r ports.RendererHandle, op string, fn func(rd *renderer, dc *gg.Context)) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	rd, ok := d.renderers[r]
	if !ok {
		d.setErr("invalid renderer %d", r)
		return -1
	}
	dc := d.drawContext(rd)
	if dc == nil {
		d.setErr("%s: renderer %d lost its target", op, r)
		return -1
	}
	fn(rd, dc)
	return 0
}

// RenderClear fills the current target with the draw color.
func (d *Driver) RenderClear(r ports.RendererHandle) int {
	return d.withRenderer(r, "clear", func(rd *renderer, dc *gg.Context) {
		dc.Clear()
	})
}

// RenderPresent hands the backbuffer to the frame sink when one is
// attached.
func (d *Driver) RenderPresent(r ports.RendererHandle) {
	d.mu.Lock()
	rd, ok := d.renderers[r]
	if !ok {
		d.mu.Unlock()
		return
	}
	w, ok := d.windows[rd.win]
	if !ok {
		d.mu.Unlock()
		return
	}
	sf, ok := d.surfaces[rd.back]
	if !ok {
		d.mu.Unlock()
		return
	}
	name := d.frameName(rd.win, w)
	sink := d.sink
	img := sf.img
	d.mu.Unlock()

	if sink != nil && sink.Enabled() {
		if err := sink.WriteFrame(name, img); err != nil {
			d.mu.Lock()
			d.setErr("write frame: %v", err)
			d.mu.Unlock()
		}
	}
}

// SetRenderDrawColor sets the color for direct draw operations.
func (d *Driver) SetRenderDrawColor(r ports.RendererHandle, c ports.Color) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	rd, ok := d.renderers[r]
	if !ok {
		d.setErr("invalid renderer %d", r)
		return -1
	}
	rd.drawColor = c
	return 0
}

// RenderDrawLine draws a one pixel wide line.
func (d *Driver) RenderDrawLine(r ports.RendererHandle, x1, y1, x2, y2 int) int {
	return d.withRenderer(r, "draw line", func(rd *renderer, dc *gg.Context) {
		dc.SetLineWidth(1)
		dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
		dc.Stroke()
	})
}

// RenderDrawRect draws a one pixel wide rectangle outline.
func (d *Driver) RenderDrawRect(r ports.RendererHandle, rect ports.Rect) int {
	return d.withRenderer(r, "draw rect", func(rd *renderer, dc *gg.Context) {
		dc.SetLineWidth(1)
		dc.DrawRectangle(float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H))
		dc.Stroke()
	})
}

// RenderSetViewport restricts rendering to rect, or resets it when rect is
// nil.
func (d *Driver) RenderSetViewport(r ports.RendererHandle, rect *ports.Rect) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	rd, ok := d.renderers[r]
	if !ok {
		d.setErr("invalid renderer %d", r)
		return -1
	}
	if rect != nil && (rect.W <= 0 || rect.H <= 0) {
		d.setErr("invalid viewport %dx%d", rect.W, rect.H)
		return -1
	}
	rd.viewport = rect
	return 0
}

// RenderSetLogicalSize sets a virtual resolution for the target.
func (d *Driver) RenderSetLogicalSize(r ports.RendererHandle, w, h int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	rd, ok := d.renderers[r]
	if !ok {
		d.setErr("invalid renderer %d", r)
		return -1
	}
	if w < 0 || h < 0 {
		d.setErr("invalid logical size %dx%d", w, h)
		return -1
	}
	rd.logicalW, rd.logicalH = w, h
	return 0
}

// SetRenderTarget redirects render operations to a texture, or back to the
// backbuffer when t is zero.
func (d *Driver) SetRenderTarget(r ports.RendererHandle, t ports.TextureHandle) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	rd, ok := d.renderers[r]
	if !ok {
		d.setErr("invalid renderer %d", r)
		return -1
	}
	if t != 0 {
		tx, ok := d.textures[t]
		if !ok {
			d.setErr("invalid texture %d", t)
			return -1
		}
		if tx.access != ports.TextureAccessTarget {
			d.setErr("texture %d was not created with target access", t)
			return -1
		}
	}
	rd.target = t
	return 0
}

// RenderCopy draws a texture region onto the current target, scaling when
// the source and destination rectangles differ.
func (d *Driver) RenderCopy(r ports.RendererHandle, t ports.TextureHandle, src, dst *ports.Rect) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	rd, ok := d.renderers[r]
	if !ok {
		d.setErr("invalid renderer %d", r)
		return -1
	}
	tx, ok := d.textures[t]
	if !ok {
		d.setErr("invalid texture %d", t)
		return -1
	}
	target := d.targetImage(rd)
	if target == nil {
		d.setErr("renderer %d lost its target", r)
		return -1
	}

	srcRect := tx.img.Bounds()
	if src != nil {
		srcRect = image.Rect(src.X, src.Y, src.X+src.W, src.Y+src.H)
	}
	dstRect := target.Bounds()
	if dst != nil {
		dstRect = image.Rect(dst.X, dst.Y, dst.X+dst.W, dst.Y+dst.H)
	}
	if rd.viewport != nil {
		dstRect = dstRect.Add(image.Pt(rd.viewport.X, rd.viewport.Y))
	}
	xdraw.CatmullRom.Scale(target, dstRect, tx.img, srcRect, xdraw.Over, nil)
	return 0
}
