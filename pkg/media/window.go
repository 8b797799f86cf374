package media

import (
	"github.com/user/mediakit/pkg/ports"
)

// Window owns one native on-screen window.
type Window struct {
	d ports.VideoDriver
	h ports.WindowHandle
}

// CreateWindow creates a window with the given title, client size and flags.
func (rt *Runtime) CreateWindow(title string, w, h int, flags ports.WindowFlags) (*Window, error) {
	hw := rt.d.CreateWindow(title, w, h, flags)
	if hw == 0 {
		return nil, &CreateError{Op: "create window", Reason: rt.d.LastError()}
	}
	return &Window{d: rt.d, h: hw}, nil
}

// Surface returns the window's framebuffer as a borrowed surface: drawing
// and blitting work as usual, but closing it never frees the native surface,
// which the window owns. Don't use together with a renderer on the same
// window.
func (w *Window) Surface() (*Surface, error) {
	hs := w.d.WindowSurface(w.h)
	if hs == 0 {
		return nil, &CreateError{Op: "get window surface", Reason: w.d.LastError()}
	}
	return &Surface{d: w.d, h: hs, borrowed: true}, nil
}

// UpdateSurface copies the window surface to the screen, ending a round of
// software rendering.
func (w *Window) UpdateSurface() error {
	return opError("update window surface", w.d.UpdateWindowSurface(w.h), w.d)
}

// CreateRenderer creates the renderer associated with this window. The
// index selects a specific driver backend, -1 for the first matching the
// flags.
func (w *Window) CreateRenderer(index int, flags ports.RendererFlags) (*Renderer, error) {
	hr := w.d.CreateRenderer(w.h, index, flags)
	if hr == 0 {
		return nil, &CreateError{Op: "create renderer", Reason: w.d.LastError()}
	}
	return &Renderer{d: w.d, h: hr}, nil
}

// Handle is the raw escape hatch. The window keeps ownership.
func (w *Window) Handle() ports.WindowHandle {
	return w.h
}

// Detach transfers ownership of the native handle to the caller.
func (w *Window) Detach() ports.WindowHandle {
	h := w.h
	w.h = 0
	return h
}

// Close destroys the native window. Idempotent.
func (w *Window) Close() {
	if w.h == 0 {
		return
	}
	w.d.DestroyWindow(w.h)
	w.h = 0
}
