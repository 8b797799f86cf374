package media

import (
	"github.com/user/mediakit/pkg/ports"
)

// Texture owns one native device-resident pixel buffer.
type Texture struct {
	d ports.VideoDriver
	h ports.TextureHandle
}

// Query reports format, access and dimensions of the texture.
func (t *Texture) Query() (ports.TextureInfo, error) {
	info, code := t.d.QueryTexture(t.h)
	if code < 0 {
		return ports.TextureInfo{}, &OpError{Op: "query texture", Reason: t.d.LastError()}
	}
	return info, nil
}

// Handle is the raw escape hatch. The texture keeps ownership.
func (t *Texture) Handle() ports.TextureHandle {
	return t.h
}

// Detach transfers ownership of the native handle to the caller.
func (t *Texture) Detach() ports.TextureHandle {
	h := t.h
	t.h = 0
	return h
}

// Close destroys the native texture. Idempotent.
func (t *Texture) Close() {
	if t.h == 0 {
		return
	}
	t.d.DestroyTexture(t.h)
	t.h = 0
}
