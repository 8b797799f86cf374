package media

import (
	"errors"
	"strings"
	"testing"

	"github.com/user/mediakit/pkg/mocks"
	"github.com/user/mediakit/pkg/ports"
)

func TestInitImaging_Success(t *testing.T) {
	video := mocks.NewVideoDriver()
	d := mocks.NewImageDriver()

	im, err := InitImaging(video, d, ports.ImageInitPNG|ports.ImageInitJPEG)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	im.Close()
	im.Close()
	if d.QuitCalls != 1 {
		t.Errorf("expected exactly 1 quit call, got %d", d.QuitCalls)
	}
}

func TestInitImaging_PartialSupportIsFailure(t *testing.T) {
	video := mocks.NewVideoDriver()
	d := mocks.NewImageDriver()
	d.InitFunc = func(flags ports.ImageInitFlags) ports.ImageInitFlags {
		// PNG came up, JPEG did not.
		return flags &^ ports.ImageInitJPEG
	}
	d.LastErrorFunc = func() string { return "jpeg decoder unavailable" }

	im, err := InitImaging(video, d, ports.ImageInitPNG|ports.ImageInitJPEG)
	if im != nil {
		t.Fatal("expected no guard on failed init")
	}
	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected InitError, got %T", err)
	}
	if initErr.Subsystem != "image" {
		t.Errorf("expected image subsystem, got %q", initErr.Subsystem)
	}
	if d.QuitCalls != 0 {
		t.Errorf("failed init must not trigger quit, got %d calls", d.QuitCalls)
	}
}

func TestImaging_Load_WrapsReturnedHandle(t *testing.T) {
	video := mocks.NewVideoDriver()
	d := mocks.NewImageDriver()
	d.LoadFunc = func(path string) ports.SurfaceHandle {
		if path != "sprite.png" {
			t.Errorf("unexpected path %q", path)
		}
		return 21
	}

	im, err := InitImaging(video, d, ports.ImageInitPNG)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer im.Close()

	s, err := im.Load("sprite.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Handle() != 21 {
		t.Errorf("expected handle 21, got %d", s.Handle())
	}

	// The surface is owned and freed through the video driver.
	s.Close()
	if len(video.FreedSurfaces) != 1 || video.FreedSurfaces[0] != 21 {
		t.Errorf("expected surface 21 freed through video driver, got %v", video.FreedSurfaces)
	}
}

func TestImaging_Load_Failure(t *testing.T) {
	video := mocks.NewVideoDriver()
	d := mocks.NewImageDriver()
	d.LoadFunc = func(string) ports.SurfaceHandle { return 0 }
	d.LastErrorFunc = func() string { return "file not found" }

	im, err := InitImaging(video, d, ports.ImageInitPNG)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer im.Close()

	s, err := im.Load("missing.png")
	if s != nil {
		t.Fatal("no wrapper must escape a failed load")
	}
	var createErr *CreateError
	if !errors.As(err, &createErr) {
		t.Fatalf("expected CreateError, got %T", err)
	}
	if !strings.Contains(err.Error(), "file not found") {
		t.Errorf("expected native diagnostic in message, got %q", err.Error())
	}
}
