package softdriver

import (
	"image"
	"image/draw"

	"github.com/user/mediakit/pkg/ports"
)

// CreateTexture allocates an uninitialized texture.
func (d *Driver) CreateTexture(r ports.RendererHandle, format ports.PixelFormat, access ports.TextureAccess, w, h int) ports.TextureHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.renderers[r]; !ok {
		d.setErr("invalid renderer %d", r)
		return 0
	}
	if w <= 0 || h <= 0 {
		d.setErr("invalid texture size %dx%d", w, h)
		return 0
	}
	switch format {
	case ports.PixelFormatRGBA8888, ports.PixelFormatARGB8888:
	default:
		d.setErr("unsupported pixel format %d", format)
		return 0
	}
	ht := ports.TextureHandle(d.handle())
	d.textures[ht] = &texture{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		format: format,
		access: access,
	}
	d.debugf("Created texture %d (%dx%d)", ht, w, h)
	return ht
}

// CreateTextureFromSurface copies a surface into a new static texture.
func (d *Driver) CreateTextureFromSurface(r ports.RendererHandle, s ports.SurfaceHandle) ports.TextureHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.renderers[r]; !ok {
		d.setErr("invalid renderer %d", r)
		return 0
	}
	sf, ok := d.surfaces[s]
	if !ok {
		d.setErr("invalid surface %d", s)
		return 0
	}
	b := sf.img.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), sf.img, b.Min, draw.Src)

	ht := ports.TextureHandle(d.handle())
	d.textures[ht] = &texture{
		img:    img,
		format: ports.PixelFormatRGBA8888,
		access: ports.TextureAccessStatic,
	}
	d.debugf("Uploaded surface %d into texture %d", s, ht)
	return ht
}

// QueryTexture reports format, access and dimensions of a texture.
func (d *Driver) QueryTexture(t ports.TextureHandle) (ports.TextureInfo, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	tx, ok := d.textures[t]
	if !ok {
		d.setErr("invalid texture %d", t)
		return ports.TextureInfo{}, -1
	}
	b := tx.img.Bounds()
	return ports.TextureInfo{
		Format: tx.format,
		Access: tx.access,
		W:      b.Dx(),
		H:      b.Dy(),
	}, 0
}

// DestroyTexture releases a texture. Unknown handles are ignored.
func (d *Driver) DestroyTexture(t ports.TextureHandle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.textures, t)
}
