package mocks

import (
	"image"
	"sync"

	"github.com/user/mediakit/pkg/ports"
)

// PixelStore is a mock implementation of ports.PixelStore backed by a
// plain map.
type PixelStore struct {
	mu   sync.Mutex
	next uint32

	AdoptImageFunc func(img image.Image) ports.SurfaceHandle

	Images map[ports.SurfaceHandle]image.Image
}

// NewPixelStore creates a new mock PixelStore.
func NewPixelStore() *PixelStore {
	return &PixelStore{
		Images: make(map[ports.SurfaceHandle]image.Image),
	}
}

func (m *PixelStore) AdoptImage(img image.Image) ports.SurfaceHandle {
	if m.AdoptImageFunc != nil {
		return m.AdoptImageFunc(img)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	h := ports.SurfaceHandle(m.next)
	m.Images[h] = img
	return h
}

func (m *PixelStore) SurfaceImage(h ports.SurfaceHandle) (image.Image, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	img, ok := m.Images[h]
	return img, ok
}

var _ ports.PixelStore = (*PixelStore)(nil)
