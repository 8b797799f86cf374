package ports

// ImageInitFlags selects which image formats an ImageDriver should prepare
// decoders for.
type ImageInitFlags uint32

const (
	// ImageInitPNG enables PNG decoding.
	ImageInitPNG ImageInitFlags = 1 << iota
	// ImageInitJPEG enables JPEG decoding.
	ImageInitJPEG
	// ImageInitBMP enables Windows BMP decoding.
	ImageInitBMP
)

// ImageDriver is the image-extension subsystem boundary. It decodes image
// files into surfaces that live in the video driver's handle space.
//
// Init mirrors native image-extension semantics: it returns the subset of
// the requested flags that could actually be initialized, and the caller
// treats a missing bit as failure.
type ImageDriver interface {
	// Init prepares decoders for the requested formats and returns the
	// subset that is supported.
	Init(flags ImageInitFlags) ImageInitFlags

	// Quit shuts the subsystem down. It has no failure signal and must
	// only be called after a successful Init.
	Quit()

	// Load decodes an image file of any supported format into a new
	// surface. Zero handle means failure.
	Load(path string) SurfaceHandle

	// LastError returns the diagnostic text of the most recent failure.
	LastError() string
}
