package mocks

import (
	"github.com/user/mediakit/pkg/ports"
)

// ImageDriver is a mock implementation of ports.ImageDriver.
type ImageDriver struct {
	InitFunc      func(flags ports.ImageInitFlags) ports.ImageInitFlags
	QuitFunc      func()
	LoadFunc      func(path string) ports.SurfaceHandle
	LastErrorFunc func() string

	// Recorded calls for verification
	InitCalls int
	QuitCalls int
	LoadCalls []string

	nextHandle uint32
}

// NewImageDriver creates a new mock ImageDriver.
func NewImageDriver() *ImageDriver {
	return &ImageDriver{}
}

func (m *ImageDriver) Init(flags ports.ImageInitFlags) ports.ImageInitFlags {
	m.InitCalls++
	if m.InitFunc != nil {
		return m.InitFunc(flags)
	}
	return flags
}

func (m *ImageDriver) Quit() {
	m.QuitCalls++
	if m.QuitFunc != nil {
		m.QuitFunc()
	}
}

func (m *ImageDriver) Load(path string) ports.SurfaceHandle {
	m.LoadCalls = append(m.LoadCalls, path)
	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	m.nextHandle++
	return ports.SurfaceHandle(m.nextHandle)
}

func (m *ImageDriver) LastError() string {
	if m.LastErrorFunc != nil {
		return m.LastErrorFunc()
	}
	return ""
}

// Ensure ImageDriver implements ports.ImageDriver
var _ ports.ImageDriver = (*ImageDriver)(nil)
