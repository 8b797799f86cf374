package media

import (
	"github.com/user/mediakit/pkg/ports"
)

// Font owns one loaded typeface at a fixed point size.
type Font struct {
	d     ports.FontDriver
	video ports.VideoDriver
	h     ports.FontHandle
}

// Height returns the maximum pixel height of the font.
func (f *Font) Height() int {
	return f.d.Height(f.h)
}

// GlyphMetrics reports the bounding box and advance of one glyph.
func (f *Font) GlyphMetrics(ch rune) (ports.GlyphMetrics, error) {
	m, code := f.d.GlyphMetrics(f.h, ch)
	if code < 0 {
		return ports.GlyphMetrics{}, &OpError{Op: "glyph metrics", Reason: f.d.LastError()}
	}
	return m, nil
}

// RenderGlyph rasterizes a single glyph in a solid color onto an owned
// surface.
func (f *Font) RenderGlyph(ch rune, fg ports.Color) (*Surface, error) {
	hs := f.d.RenderGlyphSolid(f.h, ch, fg)
	if hs == 0 {
		return nil, &CreateError{Op: "render glyph", Reason: f.d.LastError()}
	}
	return &Surface{d: f.video, h: hs}, nil
}

// RenderText rasterizes a string in a solid color onto an owned surface.
func (f *Font) RenderText(text string, fg ports.Color) (*Surface, error) {
	hs := f.d.RenderTextSolid(f.h, text, fg)
	if hs == 0 {
		return nil, &CreateError{Op: "render text", Reason: f.d.LastError()}
	}
	return &Surface{d: f.video, h: hs}, nil
}

// Handle is the raw escape hatch. The font keeps ownership.
func (f *Font) Handle() ports.FontHandle {
	return f.h
}

// Detach transfers ownership of the native handle to the caller.
func (f *Font) Detach() ports.FontHandle {
	h := f.h
	f.h = 0
	return h
}

// Close releases the native font. Idempotent.
func (f *Font) Close() {
	if f.h == 0 {
		return
	}
	f.d.CloseFont(f.h)
	f.h = 0
}
