package plan

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRealToReal is returned for a real input paired with a real output.
	ErrRealToReal = errors.New("fft: real to real transform is invalid")

	// ErrDirectionMismatch is returned when a real-to-complex transform is
	// not forward or a complex-to-real transform is not backward.
	ErrDirectionMismatch = errors.New("fft: direction does not match transition")

	// ErrInvalidShape is returned for empty dims or non-positive axes.
	ErrInvalidShape = errors.New("fft: invalid shape")

	// ErrInvalidBatch is returned for a batch count below one.
	ErrInvalidBatch = errors.New("fft: invalid batch count")

	// ErrPrecisionMismatch is returned when buffer element types disagree
	// with the plan's precision or domains.
	ErrPrecisionMismatch = errors.New("fft: element type does not match plan")

	// ErrNilBuffer is returned when a required buffer is missing.
	ErrNilBuffer = errors.New("fft: nil buffer")

	// ErrBufferTooSmall is returned when a buffer is shorter than the plan
	// layout requires.
	ErrBufferTooSmall = errors.New("fft: buffer too small")

	// ErrPlacementNotHonored is returned for an in-place call on a plan
	// whose effective placement is out of place.
	ErrPlacementNotHonored = errors.New("fft: in-place transform not supported by plan")

	// ErrNoBoundBuffers is returned when Transform is called without
	// buffers on a plan that has none bound.
	ErrNoBoundBuffers = errors.New("fft: no buffers bound to plan")

	// ErrClosed is returned when a closed plan is used.
	ErrClosed = errors.New("fft: plan is closed")

	// ErrNotCommitted is returned when a descriptor is used before commit.
	ErrNotCommitted = errors.New("fft: descriptor not committed")
)

// Error is a backend failure with the context needed to diagnose it.
type Error struct {
	Op      string // Backend call that failed, e.g. "Commit".
	Backend string // "descriptor" or "directed".
	Spec    Spec   // Requested shape, domains and placement.
	Status  int    // Native status code, 0 when the failure is not native.
	Err     error  // Cause.
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fft %s: %s", e.Backend, e.Op)
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	fmt.Fprintf(&b, " [%s]", e.Spec)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap returns err wrapped in an *Error unless it is nil or already one.
func Wrap(backend, op string, spec Spec, status int, err error) error {
	if err == nil {
		return nil
	}
	var pe *Error
	if errors.As(err, &pe) {
		return err
	}
	return &Error{Op: op, Backend: backend, Spec: spec, Status: status, Err: err}
}
