package media

import (
	"github.com/user/mediakit/pkg/ports"
)

// Surface owns one native in-memory pixel buffer. The zero handle marks a
// surface that no longer owns anything (closed or detached); operations on
// it reach the driver with the null sentinel, matching direct misuse of the
// raw handle in a native program.
type Surface struct {
	d ports.VideoDriver
	h ports.SurfaceHandle

	// borrowed surfaces (a window's framebuffer) are freed by their real
	// owner, never by Close.
	borrowed bool
}

// NewSurface allocates a blank surface with the given dimensions and depth.
func (rt *Runtime) NewSurface(w, h, depth int) (*Surface, error) {
	hs := rt.d.CreateSurface(w, h, depth)
	if hs == 0 {
		return nil, &CreateError{Op: "create surface", Reason: rt.d.LastError()}
	}
	return &Surface{d: rt.d, h: hs}, nil
}

// LoadBMP decodes a Windows BMP file into an owned surface.
func (rt *Runtime) LoadBMP(path string) (*Surface, error) {
	hs := rt.d.LoadBMP(path)
	if hs == 0 {
		return nil, &CreateError{Op: "load bmp", Reason: rt.d.LastError()}
	}
	return &Surface{d: rt.d, h: hs}, nil
}

// BlitTo copies this surface's pixels onto the destination surface.
func (s *Surface) BlitTo(dst *Surface) error {
	return opError("blit surface", s.d.BlitSurface(s.h, dst.h), s.d)
}

// Lock prepares the surface for direct pixel access. Pair with Unlock on
// every exit path; never double-acquire without an intervening Unlock.
func (s *Surface) Lock() error {
	if s.d.LockSurface(s.h) < 0 {
		return &LockError{Reason: s.d.LastError()}
	}
	return nil
}

// TryLock attempts the lock and reports success instead of failing.
func (s *Surface) TryLock() bool {
	return s.d.LockSurface(s.h) >= 0
}

// Unlock releases the surface lock. Unconditional.
func (s *Surface) Unlock() {
	s.d.UnlockSurface(s.h)
}

// Handle is the raw escape hatch. The surface keeps ownership.
func (s *Surface) Handle() ports.SurfaceHandle {
	return s.h
}

// Detach transfers ownership of the native handle to the caller. The
// surface is left empty and a later Close releases nothing.
func (s *Surface) Detach() ports.SurfaceHandle {
	h := s.h
	s.h = 0
	return h
}

// Close releases the native surface. Idempotent, a no-op for empty and
// borrowed surfaces.
func (s *Surface) Close() {
	if s.h == 0 {
		return
	}
	if !s.borrowed {
		s.d.FreeSurface(s.h)
	}
	s.h = 0
}
