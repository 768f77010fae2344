package plan

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// Direction is the sign of the transform exponent.
type Direction int

const (
	// Forward uses exp(-2*pi*i*k*n/N).
	Forward Direction = iota
	// Backward uses exp(+2*pi*i*k*n/N).
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Placement tells whether output overwrites input.
type Placement int

const (
	// OutOfPlace writes to a separate output buffer.
	OutOfPlace Placement = iota
	// InPlace overwrites the input buffer.
	InPlace
)

func (p Placement) String() string {
	if p == InPlace {
		return "in-place"
	}
	return "out-of-place"
}

// Transition is the (input domain, output domain, direction) triple of a
// transform.
type Transition int

const (
	// RealToComplex is a forward transform of real input.
	RealToComplex Transition = iota
	// ComplexToReal is a backward transform producing real output.
	ComplexToReal
	// ComplexForward is a forward complex transform.
	ComplexForward
	// ComplexBackward is a backward complex transform.
	ComplexBackward
)

// For derives the transition of a transform between the given domains.
func For(in, out scalar.Domain, dir Direction) (Transition, error) {
	switch {
	case in == scalar.RealDomain && out == scalar.RealDomain:
		return 0, ErrRealToReal
	case in == scalar.RealDomain:
		if dir != Forward {
			return 0, fmt.Errorf("%w: real to complex must be forward", ErrDirectionMismatch)
		}
		return RealToComplex, nil
	case out == scalar.RealDomain:
		if dir != Backward {
			return 0, fmt.Errorf("%w: complex to real must be backward", ErrDirectionMismatch)
		}
		return ComplexToReal, nil
	case dir == Backward:
		return ComplexBackward, nil
	default:
		return ComplexForward, nil
	}
}

// Direction returns the transform direction.
func (t Transition) Direction() Direction {
	if t == ComplexToReal || t == ComplexBackward {
		return Backward
	}
	return Forward
}

// In returns the input domain.
func (t Transition) In() scalar.Domain {
	if t == RealToComplex {
		return scalar.RealDomain
	}
	return scalar.ComplexDomain
}

// Out returns the output domain.
func (t Transition) Out() scalar.Domain {
	if t == ComplexToReal {
		return scalar.RealDomain
	}
	return scalar.ComplexDomain
}

// IsReal reports whether one side of the transform is real.
func (t Transition) IsReal() bool {
	return t == RealToComplex || t == ComplexToReal
}

func (t Transition) String() string {
	switch t {
	case RealToComplex:
		return "r2c"
	case ComplexToReal:
		return "c2r"
	case ComplexForward:
		return "c2c-forward"
	case ComplexBackward:
		return "c2c-backward"
	default:
		return fmt.Sprintf("Transition(%d)", int(t))
	}
}

// Normalization selects the backward scale factor. 0 scales by 1/N, 1
// disables scaling, any other value is used as the factor itself.
type Normalization float64

const (
	// NormalizeAuto scales backward transforms by 1/N.
	NormalizeAuto Normalization = 0
	// NormalizeNone leaves backward transforms unscaled.
	NormalizeNone Normalization = 1
)

// Factor resolves n for a transform of the given dims.
func (n Normalization) Factor(dims layout.Shape) float64 {
	if n == NormalizeAuto {
		return 1 / float64(dims.NumElements())
	}
	return float64(n)
}

// Spec describes one plan. Dims are in native order (outermost first).
type Spec struct {
	Dims          layout.Shape
	Precision     scalar.Precision
	Transition    Transition
	Placement     Placement
	Batch         int
	Normalization Normalization
}

// Validate checks the spec for shape, batch, transition and scale errors.
func (s Spec) Validate() error {
	if err := s.Dims.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidShape, err)
	}
	if s.Batch < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBatch, s.Batch)
	}
	if s.Transition < RealToComplex || s.Transition > ComplexBackward {
		return fmt.Errorf("fft: invalid transition %v", s.Transition)
	}
	if s.Precision != scalar.Single && s.Precision != scalar.Double {
		return fmt.Errorf("fft: invalid precision %v", s.Precision)
	}
	if f := float64(s.Normalization); math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("fft: invalid normalization %v", f)
	}
	return nil
}

// InKind returns the element kind of the input buffer.
func (s Spec) InKind() scalar.Kind {
	return scalar.KindFor(s.Precision, s.Transition.In())
}

// OutKind returns the element kind of the output buffer.
func (s Spec) OutKind() scalar.Kind {
	return scalar.KindFor(s.Precision, s.Transition.Out())
}

// Scale returns the factor applied to the output: the resolved
// normalization for backward transforms, 1 for forward ones.
func (s Spec) Scale() float64 {
	if s.Transition.Direction() == Forward {
		return 1
	}
	return s.Normalization.Factor(s.Dims)
}

// Len returns the logical element count of one transform.
func (s Spec) Len() int {
	return s.Dims.NumElements()
}

// Lens returns the buffer lengths of one transform, in input and output
// elements, for the spec's placement. In-place real transforms report the
// padded real length on the real side.
func (s Spec) Lens() (in, out int) {
	return s.LensFor(s.Placement)
}

// LensFor is [Spec.Lens] for an explicit placement.
func (s Spec) LensFor(p Placement) (in, out int) {
	n := s.Len()
	if !s.Transition.IsReal() {
		return n, n
	}
	last := s.Dims[len(s.Dims)-1]
	outer := n / last
	half := outer * layout.SpectrumLen(last)
	spatial := n
	if p == InPlace {
		spatial = outer * layout.RealPitch(last)
	}
	if s.Transition == RealToComplex {
		return spatial, half
	}
	return half, spatial
}

func (s Spec) String() string {
	return fmt.Sprintf("%s %s %s %s batch=%d norm=%g",
		s.Dims, s.Precision, s.Transition, s.Placement, s.Batch, float64(s.Normalization))
}
