package plan

import (
	"fmt"

	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// Plan is a committed transform from I elements to O elements.
//
// Transform(from, to) runs out of place when both buffers are given and in
// place on from when to is nil (or aliases from). Backends that bind
// buffers at creation run on them when both arguments are nil. A plan is
// owned by one goroutine at a time.
type Plan[I, O scalar.Scalar] interface {
	// Spec returns the requested transform.
	Spec() Spec
	// Placement returns the placement the plan actually honors.
	Placement() Placement
	Transform(from []I, to []O) error
	// Close releases the plan. Closing twice is a no-op.
	Close() error
}

// CheckTypes verifies that I and O are the element types of s.
func CheckTypes[I, O scalar.Scalar](s Spec) error {
	in, out := scalar.KindOf[I](), scalar.KindOf[O]()
	if in != s.InKind() || out != s.OutKind() {
		return fmt.Errorf("%w: %v -> %v for %s %s", ErrPrecisionMismatch, in, out, s.Precision, s.Transition)
	}
	return nil
}

// Call classifies a Transform call and checks buffer lengths against s
// for all s.Batch transforms. It reports whether the call is in place.
func Call[I, O scalar.Scalar](s Spec, from []I, to []O) (inPlace bool, err error) {
	switch {
	case from == nil && to == nil:
		return false, ErrNoBoundBuffers
	case from == nil:
		return false, fmt.Errorf("%w: input", ErrNilBuffer)
	}
	inPlace = to == nil || layout.Aliases(from, to)

	placement := OutOfPlace
	if inPlace {
		placement = InPlace
	}
	in, out := s.LensFor(placement)
	in *= s.Batch
	out *= s.Batch
	if inPlace {
		// The output lives in from's memory.
		need := max(in*s.InKind().Size(), out*s.OutKind().Size())
		if have := len(from) * s.InKind().Size(); have < need {
			return true, fmt.Errorf("%w: in-place buffer holds %d bytes, need %d", ErrBufferTooSmall, have, need)
		}
		return true, nil
	}
	if len(from) < in {
		return false, fmt.Errorf("%w: input has %d elements, need %d", ErrBufferTooSmall, len(from), in)
	}
	if len(to) < out {
		return false, fmt.Errorf("%w: output has %d elements, need %d", ErrBufferTooSmall, len(to), out)
	}
	return false, nil
}

// Distances returns the element distance between consecutive batch
// entries in the input and output buffers.
func (s Spec) Distances(inPlace bool) (in, out int) {
	p := OutOfPlace
	if inPlace {
		p = InPlace
	}
	return s.LensFor(p)
}
