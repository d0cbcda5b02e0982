package vg

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by backends.
var (
	// ErrUnsupported is returned by operations a backend cannot provide
	// (for example capturing pixels from a canvas surface).
	ErrUnsupported = errors.New("vg: operation not supported by this backend")

	// ErrTextNotImplemented is returned by the svg backend's text
	// subsystem, which has no implementation yet.
	ErrTextNotImplemented = errors.New("vg: text is not implemented for this backend")
)

// BackendError wraps a failure reported by the native drawing surface.
// The abstraction layer sees only the operation name and the native
// error's message.
type BackendError struct {
	// Op is the native operation that failed, e.g. "fillText".
	Op string
	// Err is the underlying native error.
	Err error
}

// Error implements error.
func (e *BackendError) Error() string {
	return fmt.Sprintf("vg: backend error in %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying native error.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// WrapBackend boxes a native-surface failure into a BackendError.
// Returns nil if err is nil.
func WrapBackend(op string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Op: op, Err: err}
}
