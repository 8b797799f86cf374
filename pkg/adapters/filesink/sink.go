// Package filesink provides a file-based frame sink implementation.
package filesink

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	"github.com/user/mediakit/pkg/ports"
)

// Sink saves presented frames as PNG files.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new Sink writing under baseDir.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true as this sink keeps frames.
func (s *Sink) Enabled() bool {
	return true
}

// WriteFrame encodes a frame as PNG and writes it under the base
// directory.
func (s *Sink) WriteFrame(name string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode frame %s: %w", name, err)
	}
	path := filepath.Join(s.baseDir, name+".png")
	if err := s.fs.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write frame %s: %w", name, err)
	}
	return nil
}

// Ensure Sink implements ports.FrameSink
var _ ports.FrameSink = (*Sink)(nil)
