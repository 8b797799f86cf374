package mocks

import (
	"github.com/user/mediakit/pkg/ports"
)

// FontDriver is a mock implementation of ports.FontDriver.
type FontDriver struct {
	InitFunc             func() int
	QuitFunc             func()
	OpenFontFunc         func(path string, ptsize int) ports.FontHandle
	CloseFontFunc        func(f ports.FontHandle)
	HeightFunc           func(f ports.FontHandle) int
	GlyphMetricsFunc     func(f ports.FontHandle, ch rune) (ports.GlyphMetrics, int)
	RenderGlyphSolidFunc func(f ports.FontHandle, ch rune, fg ports.Color) ports.SurfaceHandle
	RenderTextSolidFunc  func(f ports.FontHandle, text string, fg ports.Color) ports.SurfaceHandle
	LastErrorFunc        func() string

	// Recorded calls for verification
	InitCalls     int
	QuitCalls     int
	OpenFontCalls []OpenFontCall
	ClosedFonts   []ports.FontHandle

	nextHandle uint32
}

// OpenFontCall records a call to OpenFont.
type OpenFontCall struct {
	Path   string
	Ptsize int
}

// NewFontDriver creates a new mock FontDriver.
func NewFontDriver() *FontDriver {
	return &FontDriver{}
}

func (m *FontDriver) Init() int {
	m.InitCalls++
	if m.InitFunc != nil {
		return m.InitFunc()
	}
	return 0
}

func (m *FontDriver) Quit() {
	m.QuitCalls++
	if m.QuitFunc != nil {
		m.QuitFunc()
	}
}

func (m *FontDriver) OpenFont(path string, ptsize int) ports.FontHandle {
	m.OpenFontCalls = append(m.OpenFontCalls, OpenFontCall{Path: path, Ptsize: ptsize})
	if m.OpenFontFunc != nil {
		return m.OpenFontFunc(path, ptsize)
	}
	m.nextHandle++
	return ports.FontHandle(m.nextHandle)
}

func (m *FontDriver) CloseFont(f ports.FontHandle) {
	m.ClosedFonts = append(m.ClosedFonts, f)
	if m.CloseFontFunc != nil {
		m.CloseFontFunc(f)
	}
}

func (m *FontDriver) Height(f ports.FontHandle) int {
	if m.HeightFunc != nil {
		return m.HeightFunc(f)
	}
	return 0
}

func (m *FontDriver) GlyphMetrics(f ports.FontHandle, ch rune) (ports.GlyphMetrics, int) {
	if m.GlyphMetricsFunc != nil {
		return m.GlyphMetricsFunc(f, ch)
	}
	return ports.GlyphMetrics{}, 0
}

func (m *FontDriver) RenderGlyphSolid(f ports.FontHandle, ch rune, fg ports.Color) ports.SurfaceHandle {
	if m.RenderGlyphSolidFunc != nil {
		return m.RenderGlyphSolidFunc(f, ch, fg)
	}
	m.nextHandle++
	return ports.SurfaceHandle(m.nextHandle)
}

func (m *FontDriver) RenderTextSolid(f ports.FontHandle, text string, fg ports.Color) ports.SurfaceHandle {
	if m.RenderTextSolidFunc != nil {
		return m.RenderTextSolidFunc(f, text, fg)
	}
	m.nextHandle++
	return ports.SurfaceHandle(m.nextHandle)
}

func (m *FontDriver) LastError() string {
	if m.LastErrorFunc != nil {
		return m.LastErrorFunc()
	}
	return ""
}

// Ensure FontDriver implements ports.FontDriver
var _ ports.FontDriver = (*FontDriver)(nil)
