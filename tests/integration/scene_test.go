// Package integration contains integration tests wiring the real adapters
// together: software video driver, image and font drivers, and the PNG
// frame sink.
package integration

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/mediakit/pkg/adapters/filesink"
	"github.com/user/mediakit/pkg/adapters/logger"
	"github.com/user/mediakit/pkg/adapters/osfilesystem"
	"github.com/user/mediakit/pkg/adapters/softdriver"
	"github.com/user/mediakit/pkg/adapters/stdimaging"
	"github.com/user/mediakit/pkg/adapters/truetypefonts"
	"github.com/user/mediakit/pkg/media"
	"github.com/user/mediakit/pkg/scene"
)

// writePNG saves a solid-colored test picture.
func writePNG(t *testing.T, path string, w, h int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write png: %v", err)
	}
}

// TestSceneRenderToDisk renders a full scene headlessly and checks the
// presented frame on disk.
func TestSceneRenderToDisk(t *testing.T) {
	tmpDir := t.TempDir()
	frameDir := filepath.Join(tmpDir, "frames")

	imagePath := filepath.Join(tmpDir, "pic.png")
	writePNG(t, imagePath, 64, 48, color.RGBA{R: 200, G: 50, B: 50, A: 255})

	fontPath := filepath.Join(tmpDir, "regular.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0644); err != nil {
		t.Fatalf("write font: %v", err)
	}

	fs := osfilesystem.New()
	if err := fs.MkdirAll(frameDir); err != nil {
		t.Fatalf("create frame dir: %v", err)
	}
	sink := filesink.New(frameDir, fs)

	video := softdriver.New(fs, softdriver.WithFrameSink(sink))
	images := stdimaging.New(fs, video)
	fonts := truetypefonts.New(fs, video)

	cfg := scene.DefaultConfig()
	cfg.Title = "integration"
	cfg.Width = 320
	cfg.Height = 240
	cfg.Hidden = true
	cfg.ImagePath = imagePath
	cfg.Text = "mediakit"
	cfg.FontPath = fontPath
	cfg.FontSize = 16

	result, err := scene.New(video, images, fonts, logger.NewNoop()).Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("scene run failed: %v", err)
	}
	if result.Width != 320 || result.Height != 240 {
		t.Errorf("unexpected result dimensions: %+v", result)
	}

	entries, err := os.ReadDir(frameDir)
	if err != nil {
		t.Fatalf("read frame dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 presented frame, got %d", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(frameDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	frame, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("frame is not valid PNG: %v", err)
	}
	if frame.Bounds().Dx() != 320 || frame.Bounds().Dy() != 240 {
		t.Errorf("expected 320x240 frame, got %v", frame.Bounds())
	}

	// Background color shows through in the top-left corner outside the
	// accent frame.
	r, g, b, _ := frame.At(1, 1).RGBA()
	bg := scene.DefaultConfig().BackgroundColor
	if uint8(r>>8) != bg.R || uint8(g>>8) != bg.G || uint8(b>>8) != bg.B {
		t.Errorf("expected background color at (1,1), got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}

	// The picture is drawn inside the content area; its red shows up near
	// the center.
	r, _, _, _ = frame.At(160, 100).RGBA()
	if r>>8 < 100 {
		t.Errorf("expected picture pixels near the center, got r=%d", r>>8)
	}
}

// TestSurfacePipelineOnDisk exercises the BMP load, blit and lock paths
// against the real filesystem.
func TestSurfacePipelineOnDisk(t *testing.T) {
	tmpDir := t.TempDir()
	bmpPath := filepath.Join(tmpDir, "pic.bmp")

	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatalf("encode bmp: %v", err)
	}
	if err := os.WriteFile(bmpPath, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write bmp: %v", err)
	}

	fs := osfilesystem.New()
	video := softdriver.New(fs)

	rt, err := media.Init(video)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	defer rt.Close()

	loaded, err := rt.LoadBMP(bmpPath)
	if err != nil {
		t.Fatalf("LoadBMP failed: %v", err)
	}
	defer loaded.Close()

	dst, err := rt.NewSurface(16, 16, 32)
	if err != nil {
		t.Fatalf("NewSurface failed: %v", err)
	}
	defer dst.Close()

	if err := loaded.BlitTo(dst); err != nil {
		t.Fatalf("BlitTo failed: %v", err)
	}

	if err := dst.Lock(); err != nil {
		t.Fatalf("Lock failed: %v", err)
	}
	img, ok := video.SurfaceImage(dst.Handle())
	if !ok {
		t.Fatal("destination surface has no pixels")
	}
	_, _, b, _ := img.At(2, 2).RGBA()
	if b>>8 != 255 {
		t.Errorf("expected blitted blue pixel, got b=%d", b>>8)
	}
	dst.Unlock()
}

// TestSceneMissingFont ensures driver diagnostics travel up through the
// wrapper errors when content files are absent.
func TestSceneMissingFont(t *testing.T) {
	fs := osfilesystem.New()
	video := softdriver.New(fs)
	fonts := truetypefonts.New(fs, video)

	cfg := scene.DefaultConfig()
	cfg.Hidden = true
	cfg.Text = "caption"
	cfg.FontPath = filepath.Join(t.TempDir(), "missing.ttf")

	_, err := scene.New(video, nil, fonts, logger.NewNoop()).Run(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error for missing font file")
	}
	var createErr *media.CreateError
	if !errors.As(err, &createErr) {
		t.Fatalf("expected a resource creation error, got %T: %v", err, err)
	}
}
