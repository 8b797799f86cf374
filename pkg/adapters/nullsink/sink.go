// Package nullsink provides a no-op frame sink implementation.
package nullsink

import (
	"image"

	"github.com/user/mediakit/pkg/ports"
)

// Sink is a no-op implementation of ports.FrameSink.
// It discards all presented frames.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// WriteFrame does nothing.
func (s *Sink) WriteFrame(name string, img image.Image) error {
	return nil
}

// Ensure Sink implements ports.FrameSink
var _ ports.FrameSink = (*Sink)(nil)
