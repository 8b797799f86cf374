package mocks

import (
	"image"
	"sync"

	"github.com/user/mediakit/pkg/ports"
)

// FrameSink is a mock implementation of ports.FrameSink that records
// every frame handed to it.
type FrameSink struct {
	mu sync.RWMutex

	enabled bool

	WriteFrameFunc func(name string, img image.Image) error

	Frames map[string]image.Image
	Order  []string
}

// NewFrameSink creates a new mock FrameSink.
func NewFrameSink(enabled bool) *FrameSink {
	return &FrameSink{
		enabled: enabled,
		Frames:  make(map[string]image.Image),
	}
}

func (m *FrameSink) Enabled() bool {
	return m.enabled
}

func (m *FrameSink) WriteFrame(name string, img image.Image) error {
	if m.WriteFrameFunc != nil {
		return m.WriteFrameFunc(name, img)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Frames[name] = img
	m.Order = append(m.Order, name)
	return nil
}

var _ ports.FrameSink = (*FrameSink)(nil)
