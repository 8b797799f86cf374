package media

import (
	"github.com/user/mediakit/pkg/ports"
)

// Renderer owns one native draw-command target bound to a window.
type Renderer struct {
	d ports.VideoDriver
	h ports.RendererHandle
}

// Clear fills the current render target with the draw color.
func (r *Renderer) Clear() error {
	return opError("render clear", r.d.RenderClear(r.h), r.d)
}

// Present flips the render buffer to the on-screen buffer.
func (r *Renderer) Present() {
	r.d.RenderPresent(r.h)
}

// SetDrawColor sets the color for direct draw operations.
func (r *Renderer) SetDrawColor(c ports.Color) error {
	return opError("set draw color", r.d.SetRenderDrawColor(r.h, c), r.d)
}

// DrawLine draws a line on the current render target.
func (r *Renderer) DrawLine(x1, y1, x2, y2 int) error {
	return opError("draw line", r.d.RenderDrawLine(r.h, x1, y1, x2, y2), r.d)
}

// DrawRect draws a rectangle outline on the current render target.
func (r *Renderer) DrawRect(rect ports.Rect) error {
	return opError("draw rect", r.d.RenderDrawRect(r.h, rect), r.d)
}

// SetViewport restricts rendering to rect, or resets the viewport when rect
// is nil.
func (r *Renderer) SetViewport(rect *ports.Rect) error {
	return opError("set viewport", r.d.RenderSetViewport(r.h, rect), r.d)
}

// SetLogicalSize sets a virtual resolution for the render target, useful for
// faking low resolutions.
func (r *Renderer) SetLogicalSize(w, h int) error {
	return opError("set logical size", r.d.RenderSetLogicalSize(r.h, w, h), r.d)
}

// SetTarget redirects render operations to a texture.
func (r *Renderer) SetTarget(t *Texture) error {
	return opError("set render target", r.d.SetRenderTarget(r.h, t.h), r.d)
}

// ResetTarget points render operations back at the renderer's own target.
func (r *Renderer) ResetTarget() error {
	return opError("reset render target", r.d.SetRenderTarget(r.h, 0), r.d)
}

// CreateTexture creates an uninitialized texture owned by the caller.
func (r *Renderer) CreateTexture(format ports.PixelFormat, access ports.TextureAccess, w, h int) (*Texture, error) {
	ht := r.d.CreateTexture(r.h, format, access, w, h)
	if ht == 0 {
		return nil, &CreateError{Op: "create texture", Reason: r.d.LastError()}
	}
	return &Texture{d: r.d, h: ht}, nil
}

// CreateTextureFromSurface uploads a surface into a new texture owned by
// the caller.
func (r *Renderer) CreateTextureFromSurface(s *Surface) (*Texture, error) {
	ht := r.d.CreateTextureFromSurface(r.h, s.h)
	if ht == 0 {
		return nil, &CreateError{Op: "create texture from surface", Reason: r.d.LastError()}
	}
	return &Texture{d: r.d, h: ht}, nil
}

// DrawTexture draws a texture region onto the current render target. A nil
// src means the whole texture; a nil dst means the whole target.
func (r *Renderer) DrawTexture(t *Texture, src, dst *ports.Rect) error {
	return opError("draw texture", r.d.RenderCopy(r.h, t.h, src, dst), r.d)
}

// Handle is the raw escape hatch. The renderer keeps ownership.
func (r *Renderer) Handle() ports.RendererHandle {
	return r.h
}

// Detach transfers ownership of the native handle to the caller.
func (r *Renderer) Detach() ports.RendererHandle {
	h := r.h
	r.h = 0
	return h
}

// Close destroys the native renderer. Idempotent.
func (r *Renderer) Close() {
	if r.h == 0 {
		return
	}
	r.d.DestroyRenderer(r.h)
	r.h = 0
}
