package softdriver

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/user/mediakit/pkg/mocks"
	"github.com/user/mediakit/pkg/ports"
)

// captureSink keeps presented frames for verification.
type captureSink struct {
	frames map[string]image.Image
	order  []string
}

func newCaptureSink() *captureSink {
	return &captureSink{frames: make(map[string]image.Image)}
}

func (s *captureSink) Enabled() bool { return true }

func (s *captureSink) WriteFrame(name string, img image.Image) error {
	s.frames[name] = img
	s.order = append(s.order, name)
	return nil
}

func newTestDriver(t *testing.T, opts ...Option) *Driver {
	t.Helper()
	d := New(mocks.NewFileSystem(), opts...)
	if d.Init() < 0 {
		t.Fatalf("init failed: %s", d.LastError())
	}
	t.Cleanup(d.Quit)
	return d
}

func TestDriver_RequiresInit(t *testing.T) {
	d := New(mocks.NewFileSystem())

	if h := d.CreateWindow("demo", 100, 100, 0); h != 0 {
		t.Error("create window must fail before init")
	}
	if h := d.CreateSurface(10, 10, 32); h != 0 {
		t.Error("create surface must fail before init")
	}
	if !strings.Contains(d.LastError(), "not initialized") {
		t.Errorf("unexpected diagnostic: %q", d.LastError())
	}
}

func TestDriver_InitWithoutFilesystemFails(t *testing.T) {
	d := New(nil)
	if d.Init() >= 0 {
		t.Fatal("expected init to fail without a filesystem")
	}
}

func TestCreateWindow_RejectsInvalidSize(t *testing.T) {
	d := newTestDriver(t)
	if h := d.CreateWindow("demo", 0, 100, 0); h != 0 {
		t.Error("expected zero handle for zero width")
	}
	if h := d.CreateWindow("demo", 100, -1, 0); h != 0 {
		t.Error("expected zero handle for negative height")
	}
}

func TestSurface_LockDiscipline(t *testing.T) {
	d := newTestDriver(t)
	s := d.CreateSurface(8, 8, 32)
	if s == 0 {
		t.Fatalf("create surface: %s", d.LastError())
	}

	if d.LockSurface(s) != 0 {
		t.Fatalf("first lock should succeed: %s", d.LastError())
	}
	if d.LockSurface(s) >= 0 {
		t.Fatal("double lock must fail")
	}
	d.UnlockSurface(s)
	if d.LockSurface(s) != 0 {
		t.Fatalf("relock after unlock should succeed: %s", d.LastError())
	}
}

func TestLoadBMP_RoundTrip(t *testing.T) {
	fs := mocks.NewFileSystem()
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatalf("encode bmp: %v", err)
	}
	if err := fs.WriteFile("img/pic.bmp", buf.Bytes()); err != nil {
		t.Fatalf("write file: %v", err)
	}

	d := New(fs)
	if d.Init() < 0 {
		t.Fatalf("init failed: %s", d.LastError())
	}
	defer d.Quit()

	s := d.LoadBMP("img/pic.bmp")
	if s == 0 {
		t.Fatalf("load bmp: %s", d.LastError())
	}
	img, ok := d.SurfaceImage(s)
	if !ok {
		t.Fatal("expected surface pixels")
	}
	b := img.Bounds()
	if b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("expected 3x2, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestLoadBMP_MissingFile(t *testing.T) {
	d := newTestDriver(t)
	if s := d.LoadBMP("nope.bmp"); s != 0 {
		t.Fatal("expected zero handle for missing file")
	}
	if !strings.Contains(d.LastError(), "nope.bmp") {
		t.Errorf("diagnostic should name the file: %q", d.LastError())
	}
}

func TestBlitSurface(t *testing.T) {
	d := newTestDriver(t)

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{G: 255, A: 255})
		}
	}
	from := d.AdoptImage(src)
	to := d.CreateSurface(8, 8, 32)

	if d.BlitSurface(from, to) != 0 {
		t.Fatalf("blit: %s", d.LastError())
	}
	img, _ := d.SurfaceImage(to)
	if c := img.(*image.RGBA).RGBAAt(1, 1); c.G != 255 {
		t.Errorf("expected green pixel after blit, got %+v", c)
	}
	if c := img.(*image.RGBA).RGBAAt(6, 6); c.G != 0 {
		t.Errorf("blit must clip to source bounds, got %+v", c)
	}
}

func TestRenderer_ClearAndPresent(t *testing.T) {
	sink := newCaptureSink()
	d := newTestDriver(t, WithFrameSink(sink))

	win := d.CreateWindow("demo", 16, 16, 0)
	r := d.CreateRenderer(win, -1, ports.RendererSoftware)
	if r == 0 {
		t.Fatalf("create renderer: %s", d.LastError())
	}

	if d.SetRenderDrawColor(r, ports.Color{R: 255, A: 255}) != 0 {
		t.Fatalf("set color: %s", d.LastError())
	}
	if d.RenderClear(r) != 0 {
		t.Fatalf("clear: %s", d.LastError())
	}
	d.RenderPresent(r)

	if len(sink.order) != 1 {
		t.Fatalf("expected 1 presented frame, got %d", len(sink.order))
	}
	frame := sink.frames[sink.order[0]].(*image.RGBA)
	if c := frame.RGBAAt(8, 8); c.R != 255 || c.A != 255 {
		t.Errorf("expected red frame, got %+v", c)
	}
}

func TestCreateRenderer_RejectsAcceleration(t *testing.T) {
	d := newTestDriver(t)
	win := d.CreateWindow("demo", 16, 16, 0)

	if r := d.CreateRenderer(win, -1, ports.RendererAccelerated); r != 0 {
		t.Fatal("software driver must refuse accelerated renderers")
	}
	if !strings.Contains(d.LastError(), "accelerate") {
		t.Errorf("unexpected diagnostic: %q", d.LastError())
	}
}

func TestTexture_UploadQueryCopy(t *testing.T) {
	sink := newCaptureSink()
	d := newTestDriver(t, WithFrameSink(sink))

	win := d.CreateWindow("demo", 32, 32, 0)
	r := d.CreateRenderer(win, -1, 0)

	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	s := d.AdoptImage(src)

	tex := d.CreateTextureFromSurface(r, s)
	if tex == 0 {
		t.Fatalf("upload: %s", d.LastError())
	}
	info, code := d.QueryTexture(tex)
	if code != 0 {
		t.Fatalf("query: %s", d.LastError())
	}
	if info.W != 8 || info.H != 8 {
		t.Errorf("expected 8x8, got %dx%d", info.W, info.H)
	}

	dst := &ports.Rect{X: 16, Y: 16, W: 8, H: 8}
	if d.RenderCopy(r, tex, nil, dst) != 0 {
		t.Fatalf("copy: %s", d.LastError())
	}
	d.RenderPresent(r)

	frame := sink.frames[sink.order[len(sink.order)-1]].(*image.RGBA)
	if c := frame.RGBAAt(20, 20); c.B != 255 {
		t.Errorf("expected blue pixel inside destination rect, got %+v", c)
	}
	if c := frame.RGBAAt(2, 2); c.B != 0 {
		t.Errorf("expected untouched pixel outside destination rect, got %+v", c)
	}
}

func TestSetRenderTarget_RequiresTargetAccess(t *testing.T) {
	d := newTestDriver(t)
	win := d.CreateWindow("demo", 16, 16, 0)
	r := d.CreateRenderer(win, -1, 0)

	static := d.CreateTexture(r, ports.PixelFormatRGBA8888, ports.TextureAccessStatic, 8, 8)
	if d.SetRenderTarget(r, static) >= 0 {
		t.Fatal("static texture must not become a render target")
	}

	target := d.CreateTexture(r, ports.PixelFormatRGBA8888, ports.TextureAccessTarget, 8, 8)
	if d.SetRenderTarget(r, target) != 0 {
		t.Fatalf("set target: %s", d.LastError())
	}
	if d.SetRenderTarget(r, 0) != 0 {
		t.Fatalf("reset target: %s", d.LastError())
	}
}

func TestRenderTarget_ReceivesDrawOps(t *testing.T) {
	d := newTestDriver(t)
	win := d.CreateWindow("demo", 16, 16, 0)
	r := d.CreateRenderer(win, -1, 0)

	target := d.CreateTexture(r, ports.PixelFormatRGBA8888, ports.TextureAccessTarget, 8, 8)
	if d.SetRenderTarget(r, target) != 0 {
		t.Fatalf("set target: %s", d.LastError())
	}
	d.SetRenderDrawColor(r, ports.Color{G: 255, A: 255})
	if d.RenderClear(r) != 0 {
		t.Fatalf("clear: %s", d.LastError())
	}

	info, _ := d.QueryTexture(target)
	if info.W != 8 {
		t.Fatalf("query after draw: %s", d.LastError())
	}
	// The backbuffer must stay untouched while the texture is the target.
	fb := d.WindowSurface(win)
	img, _ := d.SurfaceImage(fb)
	if c := img.(*image.RGBA).RGBAAt(4, 4); c.G != 0 {
		t.Errorf("backbuffer touched while texture was target: %+v", c)
	}
}

func TestUpdateWindowSurface(t *testing.T) {
	sink := newCaptureSink()
	d := newTestDriver(t, WithFrameSink(sink))

	win := d.CreateWindow("demo", 16, 16, 0)
	if d.UpdateWindowSurface(win) >= 0 {
		t.Fatal("update must fail before the window surface exists")
	}

	if fb := d.WindowSurface(win); fb == 0 {
		t.Fatalf("window surface: %s", d.LastError())
	}
	if d.UpdateWindowSurface(win) != 0 {
		t.Fatalf("update: %s", d.LastError())
	}
	if len(sink.order) != 1 {
		t.Errorf("expected 1 presented frame, got %d", len(sink.order))
	}
}
