// Package x11driver implements the video driver boundary against a real X11
// display. Rasterization stays in the software core; this layer binds each
// window to an X11 window and pushes pixels to it on present.
package x11driver

import (
	"fmt"
	"image"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/user/mediakit/pkg/adapters/softdriver"
	"github.com/user/mediakit/pkg/ports"
)

// Driver implements ports.VideoDriver on X11. Everything that does not
// touch the display is promoted from the embedded software core, including
// the pixel-store accessors the extension drivers need.
type Driver struct {
	*softdriver.Driver

	log ports.Logger

	mu      sync.Mutex
	xu      *xgbutil.XUtil
	xwins   map[ports.WindowHandle]*xwindow.Window
	rwindow map[ports.RendererHandle]ports.WindowHandle
	lastErr string
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger enables driver-level debug logging.
func WithLogger(log ports.Logger) Option {
	return func(d *Driver) { d.log = log.WithComponent("x11driver") }
}

// New creates an X11 driver rasterizing through a software core that reads
// files via fs.
func New(fs ports.FileSystem, opts ...Option) *Driver {
	d := &Driver{Driver: softdriver.New(fs)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) setErr(format string, args ...interface{}) {
	d.mu.Lock()
	d.lastErr = fmt.Sprintf(format, args...)
	d.mu.Unlock()
}

func (d *Driver) debugf(msg string, args ...interface{}) {
	if d.log != nil {
		d.log.Debug(msg, args...)
	}
}

// LastError returns the display-side diagnostic when one is pending,
// falling back to the software core.
func (d *Driver) LastError() string {
	d.mu.Lock()
	last := d.lastErr
	d.mu.Unlock()
	if last != "" {
		return last
	}
	return d.Driver.LastError()
}

// Init connects to the X server and brings the software core up.
func (d *Driver) Init() int {
	xu, err := xgbutil.NewConn()
	if err != nil {
		d.setErr("connect to X server: %v", err)
		return -1
	}
	if d.Driver.Init() < 0 {
		xu.Conn().Close()
		return -1
	}
	d.mu.Lock()
	d.xu = xu
	d.xwins = make(map[ports.WindowHandle]*xwindow.Window)
	d.rwindow = make(map[ports.RendererHandle]ports.WindowHandle)
	d.lastErr = ""
	d.mu.Unlock()
	d.debugf("Connected to X server")
	return 0
}

// Quit tears the software core down and disconnects from the X server.
func (d *Driver) Quit() {
	d.Driver.Quit()
	d.mu.Lock()
	xu := d.xu
	d.xu = nil
	d.xwins = nil
	d.rwindow = nil
	d.mu.Unlock()
	if xu != nil {
		xu.Conn().Close()
	}
	d.debugf("Disconnected from X server")
}

// CreateWindow creates the software window plus a mapped X11 window of the
// same size.
func (d *Driver) CreateWindow(title string, w, h int, flags ports.WindowFlags) ports.WindowHandle {
	hw := d.Driver.CreateWindow(title, w, h, flags)
	if hw == 0 {
		return 0
	}

	d.mu.Lock()
	xu := d.xu
	d.mu.Unlock()
	if xu == nil {
		d.Driver.DestroyWindow(hw)
		d.setErr("not connected to X server")
		return 0
	}

	xwin, err := xwindow.Generate(xu)
	if err != nil {
		d.Driver.DestroyWindow(hw)
		d.setErr("allocate X window id: %v", err)
		return 0
	}
	err = xwin.CreateChecked(xu.RootWin(), 0, 0, w, h,
		xproto.CwBackPixel|xproto.CwEventMask,
		0x000000, xproto.EventMaskExposure)
	if err != nil {
		d.Driver.DestroyWindow(hw)
		d.setErr("create X window: %v", err)
		return 0
	}
	if err := ewmh.WmNameSet(xu, xwin.Id, title); err != nil {
		// Title is cosmetic, the window still works.
		d.debugf("Set window title: %v", err)
	}
	if flags&ports.WindowHidden == 0 {
		xwin.Map()
	}

	d.mu.Lock()
	d.xwins[hw] = xwin
	d.lastErr = ""
	d.mu.Unlock()
	d.debugf("Created X window %d for %d", xwin.Id, hw)
	return hw
}

// DestroyWindow destroys both the software window and its X11 twin.
func (d *Driver) DestroyWindow(win ports.WindowHandle) {
	d.mu.Lock()
	xwin := d.xwins[win]
	delete(d.xwins, win)
	d.mu.Unlock()
	if xwin != nil {
		xwin.Destroy()
	}
	d.Driver.DestroyWindow(win)
}

// CreateRenderer creates the software renderer and remembers which window
// its presents belong to.
func (d *Driver) CreateRenderer(win ports.WindowHandle, index int, flags ports.RendererFlags) ports.RendererHandle {
	hr := d.Driver.CreateRenderer(win, index, flags)
	if hr == 0 {
		return 0
	}
	d.mu.Lock()
	d.rwindow[hr] = win
	d.mu.Unlock()
	return hr
}

// DestroyRenderer releases the software renderer and its present mapping.
func (d *Driver) DestroyRenderer(r ports.RendererHandle) {
	d.mu.Lock()
	delete(d.rwindow, r)
	d.mu.Unlock()
	d.Driver.DestroyRenderer(r)
}

// UpdateWindowSurface presents the framebuffer onto the X11 window.
func (d *Driver) UpdateWindowSurface(win ports.WindowHandle) int {
	if code := d.Driver.UpdateWindowSurface(win); code < 0 {
		return code
	}
	img, ok := d.Driver.WindowFramebuffer(win)
	if !ok {
		d.setErr("window %d has no framebuffer", win)
		return -1
	}
	return d.paint(win, img)
}

// RenderPresent presents the renderer's backbuffer onto its X11 window.
func (d *Driver) RenderPresent(r ports.RendererHandle) {
	d.Driver.RenderPresent(r)
	d.mu.Lock()
	win, ok := d.rwindow[r]
	d.mu.Unlock()
	if !ok {
		return
	}
	if img, ok := d.Driver.BackbufferImage(r); ok {
		d.paint(win, img)
	}
}

// paint converts a frame and copies it onto the X11 window.
func (d *Driver) paint(win ports.WindowHandle, img image.Image) int {
	d.mu.Lock()
	xu := d.xu
	xwin := d.xwins[win]
	d.mu.Unlock()
	if xu == nil || xwin == nil {
		d.setErr("window %d has no X window", win)
		return -1
	}

	ximg := xgraphics.NewConvert(xu, img)
	defer ximg.Destroy()
	if err := ximg.XSurfaceSet(xwin.Id); err != nil {
		d.setErr("bind pixmap to X window: %v", err)
		return -1
	}
	ximg.XDraw()
	ximg.XPaint(xwin.Id)
	return 0
}

// Ensure Driver implements the driver and pixel-store boundaries
var (
	_ ports.VideoDriver = (*Driver)(nil)
	_ ports.PixelStore  = (*Driver)(nil)
)
