package ports

import (
	"image"
)

// FrameSink abstracts where presented frames go when no real display is
// attached. The software driver hands every presented frame to a sink so
// headless runs can keep the rendered output.
type FrameSink interface {
	// Enabled returns true if the sink keeps frames at all.
	Enabled() bool

	// WriteFrame stores one presented frame under the given name.
	WriteFrame(name string, img image.Image) error
}
