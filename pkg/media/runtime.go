// Package media pairs native multimedia resources with Go-side owners.
//
// Every type in this package wraps exactly one native handle obtained from a
// driver (see the ports package) and guarantees the matching release call
// runs at most once, via Close. Factories validate the driver's sentinel and
// translate failures into typed errors carrying the driver's own diagnostic;
// nothing is retried or suppressed at this layer.
//
// Lifetimes nest strictly: construct a subsystem guard first, create
// resources through it, close resources in reverse order of acquisition, and
// close the guard last. The package does not enforce the nesting at runtime.
package media

import (
	"github.com/user/mediakit/pkg/ports"
)

// Runtime is the scoped guard for the core video subsystem. Constructing it
// initializes the driver; Close shuts the driver down. It must outlive every
// window, renderer, surface and texture created through it.
type Runtime struct {
	d      ports.VideoDriver
	closed bool
}

// Init brings the video subsystem up and returns its guard. On failure no
// teardown is performed and the guard is considered never constructed.
func Init(d ports.VideoDriver) (*Runtime, error) {
	if d.Init() < 0 {
		return nil, &InitError{Subsystem: "video", Reason: d.LastError()}
	}
	return &Runtime{d: d}, nil
}

// SetHint forwards a driver configuration hint. Reports whether the hint
// was accepted.
func (rt *Runtime) SetHint(name, value string) bool {
	return rt.d.SetHint(name, value)
}

// Driver exposes the underlying video driver so extension guards can hand
// surfaces back into its handle space.
func (rt *Runtime) Driver() ports.VideoDriver {
	return rt.d
}

// Close shuts the video subsystem down. Idempotent; only the first call
// reaches the driver.
func (rt *Runtime) Close() {
	if rt.closed {
		return
	}
	rt.closed = true
	rt.d.Quit()
}
