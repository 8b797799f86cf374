// Package ports defines the boundary interfaces between the ownership layer
// and the native-style multimedia drivers that back it.
//
// The driver interfaces deliberately speak the conventions of a C multimedia
// library: a zero handle is the null/failure sentinel, a negative int is a
// failure code, and the textual diagnostic for the most recent failure is
// retrieved separately through LastError. Translating those sentinels into
// typed Go errors is the job of the media package, not of the drivers.
package ports

// WindowHandle identifies a native window. Zero is the null sentinel.
type WindowHandle uint32

// RendererHandle identifies a native renderer. Zero is the null sentinel.
type RendererHandle uint32

// SurfaceHandle identifies a native in-memory pixel buffer. Zero is the null
// sentinel.
type SurfaceHandle uint32

// TextureHandle identifies a native device-resident pixel buffer. Zero is
// the null sentinel.
type TextureHandle uint32

// FontHandle identifies a loaded typeface at a fixed point size. Zero is the
// null sentinel.
type FontHandle uint32

// WindowFlags selects window creation options.
type WindowFlags uint32

const (
	// WindowShown maps the window immediately on creation.
	WindowShown WindowFlags = 1 << iota
	// WindowHidden creates the window unmapped.
	WindowHidden
	// WindowBorderless requests a window without decorations.
	WindowBorderless
	// WindowResizable allows the user to resize the window.
	WindowResizable
)

// RendererFlags selects renderer creation options.
type RendererFlags uint32

const (
	// RendererSoftware requests a software fallback renderer.
	RendererSoftware RendererFlags = 1 << iota
	// RendererAccelerated requests hardware acceleration when available.
	RendererAccelerated
	// RendererPresentVSync synchronizes Present with the display refresh.
	RendererPresentVSync
	// RendererTargetTexture requires support for rendering to texture.
	RendererTargetTexture
)

// PixelFormat identifies the pixel layout of a texture.
type PixelFormat uint32

const (
	// PixelFormatRGBA8888 is 8 bits per channel, alpha last.
	PixelFormatRGBA8888 PixelFormat = iota + 1
	// PixelFormatARGB8888 is 8 bits per channel, alpha first.
	PixelFormatARGB8888
)

// TextureAccess describes how a texture may be used.
type TextureAccess int

const (
	// TextureAccessStatic is for textures that change rarely.
	TextureAccessStatic TextureAccess = iota
	// TextureAccessStreaming is for textures updated frequently.
	TextureAccessStreaming
	// TextureAccessTarget allows the texture to be a render target.
	TextureAccessTarget
)

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X, Y, W, H int
}

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// TextureInfo describes a texture as reported by QueryTexture.
type TextureInfo struct {
	Format PixelFormat
	Access TextureAccess
	W, H   int
}

// VideoDriver is the core subsystem boundary: windowing, renderers,
// surfaces and textures. All methods are synchronous forwarding calls.
//
// Failure reporting follows native conventions: creation methods return the
// zero handle on failure, operation methods return a negative int, and the
// diagnostic text is available from LastError until the next failing call.
type VideoDriver interface {
	// Init brings the subsystem up. Negative means failure.
	Init() int

	// Quit shuts the subsystem down. It has no failure signal and must
	// only be called after a successful Init.
	Quit()

	// SetHint sets a driver configuration hint. Reports whether the hint
	// was accepted.
	SetHint(name, value string) bool

	// LastError returns the diagnostic text of the most recent failure.
	LastError() string

	// CreateWindow creates a window with the given title, client size and
	// flags. Zero handle means failure.
	CreateWindow(title string, w, h int, flags WindowFlags) WindowHandle

	// DestroyWindow releases a window. Terminal, no failure signal.
	DestroyWindow(win WindowHandle)

	// WindowSurface returns the window's framebuffer surface. The surface
	// is owned by the window and must not be freed by the caller. Zero
	// handle means failure.
	WindowSurface(win WindowHandle) SurfaceHandle

	// UpdateWindowSurface copies the window surface to the screen.
	// Negative means failure.
	UpdateWindowSurface(win WindowHandle) int

	// CreateRenderer creates a renderer bound to a window. The index
	// selects a specific driver backend, -1 for the first that matches
	// the flags. Zero handle means failure.
	CreateRenderer(win WindowHandle, index int, flags RendererFlags) RendererHandle

	// DestroyRenderer releases a renderer. Terminal, no failure signal.
	DestroyRenderer(r RendererHandle)

	// RenderClear fills the current render target with the draw color.
	// Negative means failure.
	RenderClear(r RendererHandle) int

	// RenderPresent flips the back buffer to the screen. No failure
	// signal.
	RenderPresent(r RendererHandle)

	// SetRenderDrawColor sets the color for direct draw operations.
	// Negative means failure.
	SetRenderDrawColor(r RendererHandle, c Color) int

	// RenderDrawLine draws a line on the current render target. Negative
	// means failure.
	RenderDrawLine(r RendererHandle, x1, y1, x2, y2 int) int

	// RenderDrawRect draws a rectangle outline on the current render
	// target. Negative means failure.
	RenderDrawRect(r RendererHandle, rect Rect) int

	// RenderSetViewport restricts rendering to rect, or resets it when
	// rect is nil. Negative means failure.
	RenderSetViewport(r RendererHandle, rect *Rect) int

	// RenderSetLogicalSize sets a virtual resolution for the render
	// target. Negative means failure.
	RenderSetLogicalSize(r RendererHandle, w, h int) int

	// SetRenderTarget redirects render operations to a texture, or back
	// to the default target when t is zero. Negative means failure.
	SetRenderTarget(r RendererHandle, t TextureHandle) int

	// RenderCopy draws a texture region onto the current render target.
	// A nil src means the whole texture; a nil dst means the whole
	// target. Negative means failure.
	RenderCopy(r RendererHandle, t TextureHandle, src, dst *Rect) int

	// CreateTexture creates an uninitialized texture. Zero handle means
	// failure.
	CreateTexture(r RendererHandle, format PixelFormat, access TextureAccess, w, h int) TextureHandle

	// CreateTextureFromSurface uploads a surface into a new texture. Zero
	// handle means failure.
	CreateTextureFromSurface(r RendererHandle, s SurfaceHandle) TextureHandle

	// QueryTexture reports format, access and dimensions of a texture.
	// Negative second result means failure.
	QueryTexture(t TextureHandle) (TextureInfo, int)

	// DestroyTexture releases a texture. Terminal, no failure signal.
	DestroyTexture(t TextureHandle)

	// CreateSurface allocates a blank surface. Zero handle means failure.
	CreateSurface(w, h, depth int) SurfaceHandle

	// LoadBMP decodes a Windows BMP file into a new surface. Zero handle
	// means failure.
	LoadBMP(path string) SurfaceHandle

	// FreeSurface releases a surface. Terminal, no failure signal.
	FreeSurface(s SurfaceHandle)

	// BlitSurface copies the pixels of src onto dst. Negative means
	// failure.
	BlitSurface(src, dst SurfaceHandle) int

	// LockSurface prepares a surface for direct pixel access. Negative
	// means failure (including locking an already locked surface).
	LockSurface(s SurfaceHandle) int

	// UnlockSurface releases a surface lock. Unconditional.
	UnlockSurface(s SurfaceHandle)
}
