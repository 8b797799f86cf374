package scene

import (
	"context"
	"testing"

	"github.com/user/mediakit/pkg/adapters/logger"
	"github.com/user/mediakit/pkg/mocks"
	"github.com/user/mediakit/pkg/ports"
)

func TestRenderer_Run_Minimal(t *testing.T) {
	video := mocks.NewVideoDriver()
	s := New(video, nil, nil, logger.NewNoop())

	result, err := s.Run(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Width != 640 || result.Height != 480 {
		t.Errorf("unexpected result dimensions: %+v", result)
	}
	if len(video.PresentedRenderers) != 1 {
		t.Errorf("expected 1 present, got %d", len(video.PresentedRenderers))
	}
	if len(video.DestroyedRenderers) != 1 || len(video.DestroyedWindows) != 1 {
		t.Error("expected renderer and window to be released")
	}
	if video.QuitCalls != 1 {
		t.Errorf("expected 1 quit, got %d", video.QuitCalls)
	}
}

func TestRenderer_Run_WithContent(t *testing.T) {
	video := mocks.NewVideoDriver()
	images := mocks.NewImageDriver()
	fonts := mocks.NewFontDriver()
	s := New(video, images, fonts, logger.NewNoop())

	config := DefaultConfig()
	config.ImagePath = "pics/logo.png"
	config.Text = "hello"
	config.FontPath = "fonts/regular.ttf"

	if _, err := s.Run(context.Background(), config); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(images.LoadCalls) != 1 || images.LoadCalls[0] != "pics/logo.png" {
		t.Errorf("expected one image load, got %v", images.LoadCalls)
	}
	if len(fonts.OpenFontCalls) != 1 || fonts.OpenFontCalls[0].Path != "fonts/regular.ttf" {
		t.Errorf("expected one font open, got %v", fonts.OpenFontCalls)
	}
	// Picture plus caption each copy a texture onto the target.
	if len(video.RenderCopyCalls) != 2 {
		t.Errorf("expected 2 texture copies, got %d", len(video.RenderCopyCalls))
	}
	// The image and text surfaces are transient; both get freed.
	if len(video.FreedSurfaces) != 2 {
		t.Errorf("expected 2 freed surfaces, got %d", len(video.FreedSurfaces))
	}
	if images.QuitCalls != 1 || fonts.QuitCalls != 1 {
		t.Error("expected image and font subsystems to be shut down")
	}
	if video.QuitCalls != 1 {
		t.Errorf("expected 1 video quit, got %d", video.QuitCalls)
	}
}

func TestRenderer_Run_VideoInitFails(t *testing.T) {
	video := mocks.NewVideoDriver()
	video.InitFunc = func() int { return -1 }
	video.LastErrorFunc = func() string { return "no display" }
	s := New(video, nil, nil, logger.NewNoop())

	if _, err := s.Run(context.Background(), DefaultConfig()); err == nil {
		t.Fatal("expected error when video init fails")
	}
	if video.QuitCalls != 0 {
		t.Error("failed init must not be followed by quit")
	}
}

func TestRenderer_Run_ImageLoadFails(t *testing.T) {
	video := mocks.NewVideoDriver()
	images := mocks.NewImageDriver()
	images.LoadFunc = func(path string) ports.SurfaceHandle { return 0 }
	images.LastErrorFunc = func() string { return "corrupt file" }
	s := New(video, images, nil, logger.NewNoop())

	config := DefaultConfig()
	config.ImagePath = "broken.png"

	if _, err := s.Run(context.Background(), config); err == nil {
		t.Fatal("expected error when image load fails")
	}
	// Teardown still runs for everything acquired before the failure.
	if video.QuitCalls != 1 {
		t.Errorf("expected 1 video quit, got %d", video.QuitCalls)
	}
	if images.QuitCalls != 1 {
		t.Errorf("expected 1 image quit, got %d", images.QuitCalls)
	}
}

func TestRenderer_Run_NoImageDriver(t *testing.T) {
	video := mocks.NewVideoDriver()
	s := New(video, nil, nil, logger.NewNoop())

	config := DefaultConfig()
	config.ImagePath = "pics/logo.png"

	if _, err := s.Run(context.Background(), config); err == nil {
		t.Fatal("expected error when an image is requested without a driver")
	}
}

func TestRenderer_Run_CanceledContext(t *testing.T) {
	video := mocks.NewVideoDriver()
	s := New(video, nil, nil, logger.NewNoop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Run(ctx, DefaultConfig()); err == nil {
		t.Fatal("expected error for canceled context")
	}
	if video.QuitCalls != 1 {
		t.Errorf("expected teardown after cancellation, got %d quits", video.QuitCalls)
	}
}

func TestRenderer_Start_KeepsSceneAlive(t *testing.T) {
	video := mocks.NewVideoDriver()
	s := New(video, nil, nil, logger.NewNoop())

	handle, err := s.Start(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if video.QuitCalls != 0 {
		t.Fatal("scene torn down before Close")
	}
	handle.Close()
	if video.QuitCalls != 1 {
		t.Errorf("expected 1 quit after Close, got %d", video.QuitCalls)
	}
	// Close is idempotent.
	handle.Close()
	if video.QuitCalls != 1 {
		t.Errorf("expected Close to be idempotent, got %d quits", video.QuitCalls)
	}
}

func TestFitRect(t *testing.T) {
	area := ports.Rect{X: 10, Y: 10, W: 100, H: 100}

	tests := []struct {
		name string
		w, h int
		want ports.Rect
	}{
		{"wide image", 200, 100, ports.Rect{X: 10, Y: 35, W: 100, H: 50}},
		{"tall image", 100, 200, ports.Rect{X: 35, Y: 10, W: 50, H: 100}},
		{"small image stays put", 50, 40, ports.Rect{X: 35, Y: 40, W: 50, H: 40}},
		{"zero size falls back to area", 0, 0, area},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitRect(tt.w, tt.h, area)
			if got != tt.want {
				t.Errorf("fitRect(%d, %d) = %+v, want %+v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}
