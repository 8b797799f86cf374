package media

import "fmt"

// InitError reports that a subsystem failed to start. The guard for the
// subsystem is considered never constructed and its Quit is not called.
type InitError struct {
	Subsystem string
	Reason    string
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s subsystem failed: %s", e.Subsystem, e.Reason)
}

// CreateError reports that a resource factory call returned the null
// sentinel. No wrapper is produced.
type CreateError struct {
	Op     string
	Reason string
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Op, e.Reason)
}

// OpError reports that a forwarded operation on an already valid resource
// returned a failure code.
type OpError struct {
	Op     string
	Reason string
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Op, e.Reason)
}

// LockError reports that a pixel-buffer lock could not be acquired.
type LockError struct {
	Reason string
}

func (e *LockError) Error() string {
	return fmt.Sprintf("lock surface failed: %s", e.Reason)
}

// lastErrer is the slice of the driver interfaces the checked-call helpers
// need: every driver exposes its most recent diagnostic this way.
type lastErrer interface {
	LastError() string
}

// opError translates a negative native code into an OpError carrying the
// driver's diagnostic. A non-negative code is success.
func opError(op string, code int, d lastErrer) error {
	if code < 0 {
		return &OpError{Op: op, Reason: d.LastError()}
	}
	return nil
}
