package media

import (
	"github.com/user/mediakit/pkg/ports"
)

// Imaging is the scoped guard for the image-extension subsystem. Surfaces it
// loads live in the video driver's handle space, so it must be nested inside
// an active Runtime.
type Imaging struct {
	video  ports.VideoDriver
	d      ports.ImageDriver
	closed bool
}

// InitImaging brings the image extension up for the requested formats. A
// driver that supports only a subset of the requested flags counts as a
// failed init, and no teardown is performed.
func InitImaging(video ports.VideoDriver, d ports.ImageDriver, flags ports.ImageInitFlags) (*Imaging, error) {
	if got := d.Init(flags); got&flags != flags {
		return nil, &InitError{Subsystem: "image", Reason: d.LastError()}
	}
	return &Imaging{video: video, d: d}, nil
}

// Load decodes an image file of any supported format into an owned surface.
func (im *Imaging) Load(path string) (*Surface, error) {
	h := im.d.Load(path)
	if h == 0 {
		return nil, &CreateError{Op: "load image", Reason: im.d.LastError()}
	}
	return &Surface{d: im.video, h: h}, nil
}

// Close shuts the image extension down. Idempotent.
func (im *Imaging) Close() {
	if im.closed {
		return
	}
	im.closed = true
	im.d.Quit()
}
