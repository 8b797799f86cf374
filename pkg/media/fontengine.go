package media

import (
	"github.com/user/mediakit/pkg/ports"
)

// FontEngine is the scoped guard for the font-extension subsystem. Surfaces
// it rasterizes live in the video driver's handle space, so it must be
// nested inside an active Runtime.
type FontEngine struct {
	video  ports.VideoDriver
	d      ports.FontDriver
	closed bool
}

// InitFonts brings the font extension up. On failure no teardown is
// performed and the guard is considered never constructed.
func InitFonts(video ports.VideoDriver, d ports.FontDriver) (*FontEngine, error) {
	if d.Init() < 0 {
		return nil, &InitError{Subsystem: "font", Reason: d.LastError()}
	}
	return &FontEngine{video: video, d: d}, nil
}

// OpenFont loads a TrueType font file at a fixed point size.
func (fe *FontEngine) OpenFont(path string, ptsize int) (*Font, error) {
	h := fe.d.OpenFont(path, ptsize)
	if h == 0 {
		return nil, &CreateError{Op: "open font", Reason: fe.d.LastError()}
	}
	return &Font{d: fe.d, video: fe.video, h: h}, nil
}

// Close shuts the font extension down. Idempotent.
func (fe *FontEngine) Close() {
	if fe.closed {
		return
	}
	fe.closed = true
	fe.d.Quit()
}
