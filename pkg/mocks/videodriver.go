// Package mocks provides mock implementations for testing.
package mocks

import (
	"github.com/user/mediakit/pkg/ports"
)

// VideoDriver is a mock implementation of ports.VideoDriver. Every method
// can be overridden through its Func field; the default behavior hands out
// sequential handles and succeeds. Destroy-family calls are recorded so
// tests can assert release counts.
type VideoDriver struct {
	InitFunc                     func() int
	QuitFunc                     func()
	SetHintFunc                  func(name, value string) bool
	LastErrorFunc                func() string
	CreateWindowFunc             func(title string, w, h int, flags ports.WindowFlags) ports.WindowHandle
	DestroyWindowFunc            func(win ports.WindowHandle)
	WindowSurfaceFunc            func(win ports.WindowHandle) ports.SurfaceHandle
	UpdateWindowSurfaceFunc      func(win ports.WindowHandle) int
	CreateRendererFunc           func(win ports.WindowHandle, index int, flags ports.RendererFlags) ports.RendererHandle
	DestroyRendererFunc          func(r ports.RendererHandle)
	RenderClearFunc              func(r ports.RendererHandle) int
	RenderPresentFunc            func(r ports.RendererHandle)
	SetRenderDrawColorFunc       func(r ports.RendererHandle, c ports.Color) int
	RenderDrawLineFunc           func(r ports.RendererHandle, x1, y1, x2, y2 int) int
	RenderDrawRectFunc           func(r ports.RendererHandle, rect ports.Rect) int
	RenderSetViewportFunc        func(r ports.RendererHandle, rect *ports.Rect) int
	RenderSetLogicalSizeFunc     func(r ports.RendererHandle, w, h int) int
	SetRenderTargetFunc          func(r ports.RendererHandle, t ports.TextureHandle) int
	RenderCopyFunc               func(r ports.RendererHandle, t ports.TextureHandle, src, dst *ports.Rect) int
	CreateTextureFunc            func(r ports.RendererHandle, format ports.PixelFormat, access ports.TextureAccess, w, h int) ports.TextureHandle
	CreateTextureFromSurfaceFunc func(r ports.RendererHandle, s ports.SurfaceHandle) ports.TextureHandle
	QueryTextureFunc             func(t ports.TextureHandle) (ports.TextureInfo, int)
	DestroyTextureFunc           func(t ports.TextureHandle)
	CreateSurfaceFunc            func(w, h, depth int) ports.SurfaceHandle
	LoadBMPFunc                  func(path string) ports.SurfaceHandle
	FreeSurfaceFunc              func(s ports.SurfaceHandle)
	BlitSurfaceFunc              func(src, dst ports.SurfaceHandle) int
	LockSurfaceFunc              func(s ports.SurfaceHandle) int
	UnlockSurfaceFunc            func(s ports.SurfaceHandle)

	// Recorded calls for verification
	InitCalls            int
	QuitCalls            int
	DestroyedWindows     []ports.WindowHandle
	DestroyedRenderers   []ports.RendererHandle
	DestroyedTextures    []ports.TextureHandle
	FreedSurfaces        []ports.SurfaceHandle
	LockedSurfaces       []ports.SurfaceHandle
	UnlockedSurfaces     []ports.SurfaceHandle
	UpdatedWindows       []ports.WindowHandle
	PresentedRenderers   []ports.RendererHandle
	BlitCalls            []BlitCall
	RenderCopyCalls      []RenderCopyCall
	SetRenderTargetCalls []ports.TextureHandle

	nextHandle uint32
}

// BlitCall records a call to BlitSurface.
type BlitCall struct {
	Src, Dst ports.SurfaceHandle
}

// RenderCopyCall records a call to RenderCopy.
type RenderCopyCall struct {
	Renderer ports.RendererHandle
	Texture  ports.TextureHandle
	Src, Dst *ports.Rect
}

// NewVideoDriver creates a new mock VideoDriver.
func NewVideoDriver() *VideoDriver {
	return &VideoDriver{}
}

func (m *VideoDriver) handle() uint32 {
	m.nextHandle++
	return m.nextHandle
}

func (m *VideoDriver) Init() int {
	m.InitCalls++
	if m.InitFunc != nil {
		return m.InitFunc()
	}
	return 0
}

func (m *VideoDriver) Quit() {
	m.QuitCalls++
	if m.QuitFunc != nil {
		m.QuitFunc()
	}
}

func (m *VideoDriver) SetHint(name, value string) bool {
	if m.SetHintFunc != nil {
		return m.SetHintFunc(name, value)
	}
	return true
}

func (m *VideoDriver) LastError() string {
	if m.LastErrorFunc != nil {
		return m.LastErrorFunc()
	}
	return ""
}

func (m *VideoDriver) CreateWindow(title string, w, h int, flags ports.WindowFlags) ports.WindowHandle {
	if m.CreateWindowFunc != nil {
		return m.CreateWindowFunc(title, w, h, flags)
	}
	return ports.WindowHandle(m.handle())
}

func (m *VideoDriver) DestroyWindow(win ports.WindowHandle) {
	m.DestroyedWindows = append(m.DestroyedWindows, win)
	if m.DestroyWindowFunc != nil {
		m.DestroyWindowFunc(win)
	}
}

func (m *VideoDriver) WindowSurface(win ports.WindowHandle) ports.SurfaceHandle {
	if m.WindowSurfaceFunc != nil {
		return m.WindowSurfaceFunc(win)
	}
	return ports.SurfaceHandle(m.handle())
}

func (m *VideoDriver) UpdateWindowSurface(win ports.WindowHandle) int {
	m.UpdatedWindows = append(m.UpdatedWindows, win)
	if m.UpdateWindowSurfaceFunc != nil {
		return m.UpdateWindowSurfaceFunc(win)
	}
	return 0
}

func (m *VideoDriver) CreateRenderer(win ports.WindowHandle, index int, flags ports.RendererFlags) ports.RendererHandle {
	if m.CreateRendererFunc != nil {
		return m.CreateRendererFunc(win, index, flags)
	}
	return ports.RendererHandle(m.handle())
}

func (m *VideoDriver) DestroyRenderer(r ports.RendererHandle) {
	m.DestroyedRenderers = append(m.DestroyedRenderers, r)
	if m.DestroyRendererFunc != nil {
		m.DestroyRendererFunc(r)
	}
}

func (m *VideoDriver) RenderClear(r ports.RendererHandle) int {
	if m.RenderClearFunc != nil {
		return m.RenderClearFunc(r)
	}
	return 0
}

func (m *VideoDriver) RenderPresent(r ports.RendererHandle) {
	m.PresentedRenderers = append(m.PresentedRenderers, r)
	if m.RenderPresentFunc != nil {
		m.RenderPresentFunc(r)
	}
}

func (m *VideoDriver) SetRenderDrawColor(r ports.RendererHandle, c ports.Color) int {
	if m.SetRenderDrawColorFunc != nil {
		return m.SetRenderDrawColorFunc(r, c)
	}
	return 0
}

func (m *VideoDriver) RenderDrawLine(r ports.RendererHandle, x1, y1, x2, y2 int) int {
	if m.RenderDrawLineFunc != nil {
		return m.RenderDrawLineFunc(r, x1, y1, x2, y2)
	}
	return 0
}

func (m *VideoDriver) RenderDrawRect(r ports.RendererHandle, rect ports.Rect) int {
	if m.RenderDrawRectFunc != nil {
		return m.RenderDrawRectFunc(r, rect)
	}
	return 0
}

func (m *VideoDriver) RenderSetViewport(r ports.RendererHandle, rect *ports.Rect) int {
	if m.RenderSetViewportFunc != nil {
		return m.RenderSetViewportFunc(r, rect)
	}
	return 0
}

func (m *VideoDriver) RenderSetLogicalSize(r ports.RendererHandle, w, h int) int {
	if m.RenderSetLogicalSizeFunc != nil {
		return m.RenderSetLogicalSizeFunc(r, w, h)
	}
	return 0
}

func (m *VideoDriver) SetRenderTarget(r ports.RendererHandle, t ports.TextureHandle) int {
	m.SetRenderTargetCalls = append(m.SetRenderTargetCalls, t)
	if m.SetRenderTargetFunc != nil {
		return m.SetRenderTargetFunc(r, t)
	}
	return 0
}

func (m *VideoDriver) RenderCopy(r ports.RendererHandle, t ports.TextureHandle, src, dst *ports.Rect) int {
	m.RenderCopyCalls = append(m.RenderCopyCalls, RenderCopyCall{Renderer: r, Texture: t, Src: src, Dst: dst})
	if m.RenderCopyFunc != nil {
		return m.RenderCopyFunc(r, t, src, dst)
	}
	return 0
}

func (m *VideoDriver) CreateTexture(r ports.RendererHandle, format ports.PixelFormat, access ports.TextureAccess, w, h int) ports.TextureHandle {
	if m.CreateTextureFunc != nil {
		return m.CreateTextureFunc(r, format, access, w, h)
	}
	return ports.TextureHandle(m.handle())
}

func (m *VideoDriver) CreateTextureFromSurface(r ports.RendererHandle, s ports.SurfaceHandle) ports.TextureHandle {
	if m.CreateTextureFromSurfaceFunc != nil {
		return m.CreateTextureFromSurfaceFunc(r, s)
	}
	return ports.TextureHandle(m.handle())
}

func (m *VideoDriver) QueryTexture(t ports.TextureHandle) (ports.TextureInfo, int) {
	if m.QueryTextureFunc != nil {
		return m.QueryTextureFunc(t)
	}
	return ports.TextureInfo{}, 0
}

func (m *VideoDriver) DestroyTexture(t ports.TextureHandle) {
	m.DestroyedTextures = append(m.DestroyedTextures, t)
	if m.DestroyTextureFunc != nil {
		m.DestroyTextureFunc(t)
	}
}

func (m *VideoDriver) CreateSurface(w, h, depth int) ports.SurfaceHandle {
	if m.CreateSurfaceFunc != nil {
		return m.CreateSurfaceFunc(w, h, depth)
	}
	return ports.SurfaceHandle(m.handle())
}

func (m *VideoDriver) LoadBMP(path string) ports.SurfaceHandle {
	if m.LoadBMPFunc != nil {
		return m.LoadBMPFunc(path)
	}
	return ports.SurfaceHandle(m.handle())
}

func (m *VideoDriver) FreeSurface(s ports.SurfaceHandle) {
	m.FreedSurfaces = append(m.FreedSurfaces, s)
	if m.FreeSurfaceFunc != nil {
		m.FreeSurfaceFunc(s)
	}
}

func (m *VideoDriver) BlitSurface(src, dst ports.SurfaceHandle) int {
	m.BlitCalls = append(m.BlitCalls, BlitCall{Src: src, Dst: dst})
	if m.BlitSurfaceFunc != nil {
		return m.BlitSurfaceFunc(src, dst)
	}
	return 0
}

func (m *VideoDriver) LockSurface(s ports.SurfaceHandle) int {
	m.LockedSurfaces = append(m.LockedSurfaces, s)
	if m.LockSurfaceFunc != nil {
		return m.LockSurfaceFunc(s)
	}
	return 0
}

func (m *VideoDriver) UnlockSurface(s ports.SurfaceHandle) {
	m.UnlockedSurfaces = append(m.UnlockedSurfaces, s)
	if m.UnlockSurfaceFunc != nil {
		m.UnlockSurfaceFunc(s)
	}
}

// Ensure VideoDriver implements ports.VideoDriver
var _ ports.VideoDriver = (*VideoDriver)(nil)
