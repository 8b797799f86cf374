package ports

import "image"

// PixelStore is the narrow accessor the extension drivers use to hand
// decoded pixels back into the video driver's surface table. It replaces
// direct coupling between drivers: an image or font driver never reaches
// into the video driver's internals, it only adopts finished images.
type PixelStore interface {
	// AdoptImage registers an image as a new surface and returns its
	// handle. The store takes ownership of the image.
	AdoptImage(img image.Image) SurfaceHandle

	// SurfaceImage returns the pixels behind a surface handle, reporting
	// false for an unknown handle.
	SurfaceImage(s SurfaceHandle) (image.Image, bool)
}
