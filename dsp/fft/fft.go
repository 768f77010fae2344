package fft

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-ndfft/dsp/fft/descriptor"
	"github.com/cwbudde/algo-ndfft/dsp/fft/directed"
	"github.com/cwbudde/algo-ndfft/dsp/fft/plan"
	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// ErrBufferType is returned when buffers given to [WithBuffers] do not
// have the transform's element types.
var ErrBufferType = errors.New("fft: bound buffer type differs from transform")

// Backend selects the transform implementation.
type Backend int

const (
	// Descriptor configures, commits and computes descriptors backed by
	// algo-fft kernels in the caller's precision.
	Descriptor Backend = iota
	// Directed makes per-direction plans backed by gonum kernels in
	// double precision.
	Directed
)

func (b Backend) String() string {
	switch b {
	case Descriptor:
		return "descriptor"
	case Directed:
		return "directed"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend parses "descriptor" or "directed".
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "descriptor":
		return Descriptor, nil
	case "directed":
		return Directed, nil
	}
	return 0, fmt.Errorf("fft: unknown backend %q", s)
}

// NativeDims converts image-order dims (fastest first) into the native
// order the backends use (outermost first). A trailing axis of size one
// is dropped when another axis remains.
func NativeDims(dims layout.Shape) layout.Shape {
	return dims.TrimTrailing().Reverse()
}

// Transform is a planned N-D transform from I elements to O elements.
type Transform[I, O scalar.Scalar] struct {
	backend Backend
	dims    layout.Shape
	plan    plan.Plan[I, O]
}

// New plans a transform over dims (image order) on the given backend.
// The transition follows from I and O: real to complex is forward,
// complex to real backward, complex to complex forward unless
// [WithDirection] says otherwise. Real to real fails with
// plan.ErrRealToReal.
func New[I, O scalar.Scalar](backend Backend, dims layout.Shape, opts ...Option) (*Transform[I, O], error) {
	cfg := applyOptions(opts...)
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", plan.ErrInvalidShape, err)
	}

	in, out := scalar.Dispatch[I](), scalar.Dispatch[O]()
	if in.Precision != out.Precision {
		return nil, fmt.Errorf("%w: %v -> %v", plan.ErrPrecisionMismatch, in.Kind, out.Kind)
	}
	dir := plan.Forward
	if out.Domain == scalar.RealDomain {
		dir = plan.Backward
	}
	if cfg.hasDirection {
		dir = cfg.direction
	}
	t, err := plan.For(in.Domain, out.Domain, dir)
	if err != nil {
		return nil, err
	}

	spec := plan.Spec{
		Dims:          NativeDims(dims),
		Precision:     in.Precision,
		Transition:    t,
		Placement:     cfg.placement,
		Batch:         cfg.batch,
		Normalization: cfg.norm,
	}

	var (
		from []I
		to   []O
	)
	if cfg.bound {
		var okFrom, okTo bool
		from, okFrom = cfg.from.([]I)
		to, okTo = cfg.to.([]O)
		if !okFrom || !okTo {
			return nil, fmt.Errorf("%w: %T -> %T for %v -> %v", ErrBufferType, cfg.from, cfg.to, in.Kind, out.Kind)
		}
		spec.Placement = plan.OutOfPlace
		if to == nil || layout.Aliases(from, to) {
			spec.Placement = plan.InPlace
		}
	}

	var p plan.Plan[I, O]
	switch backend {
	case Descriptor:
		if cfg.bound {
			return nil, plan.Wrap("descriptor", "MakePlan", spec,
				int(descriptor.StatusOf(plan.ErrNoBoundBuffers)), plan.ErrNoBoundBuffers)
		}
		p, err = descriptor.MakePlan[I, O](spec)
	case Directed:
		p, err = directed.NewSpec(spec, from, to)
	default:
		return nil, fmt.Errorf("fft: unknown backend %v", backend)
	}
	if err != nil {
		return nil, err
	}
	return &Transform[I, O]{backend: backend, dims: dims.Clone(), plan: p}, nil
}

// Backend returns the backend the transform runs on.
func (t *Transform[I, O]) Backend() Backend { return t.backend }

// Dims returns the image-order dims the transform was created with.
func (t *Transform[I, O]) Dims() layout.Shape { return t.dims.Clone() }

// Spec returns the backend Spec, with native-order dims.
func (t *Transform[I, O]) Spec() plan.Spec { return t.plan.Spec() }

// Placement returns the placement the backend honors.
func (t *Transform[I, O]) Placement() plan.Placement { return t.plan.Placement() }

// Plan exposes the backend plan.
func (t *Transform[I, O]) Plan() plan.Plan[I, O] { return t.plan }

// InputLen returns the number of I elements one call reads, batch
// included, for the honored placement.
func (t *Transform[I, O]) InputLen() int {
	in, _ := t.lens()
	return in
}

// OutputLen returns the number of O elements one call writes. For in-place
// transforms the output lives in the input buffer.
func (t *Transform[I, O]) OutputLen() int {
	_, out := t.lens()
	return out
}

func (t *Transform[I, O]) lens() (in, out int) {
	spec := t.plan.Spec()
	in, out = spec.LensFor(t.plan.Placement())
	return in * spec.Batch, out * spec.Batch
}

// Layout returns the row pitch and row count of the spatial side of the
// transform in its padded in-place storage, as layout.MemoryLayout
// computes it for the trimmed dims.
func (t *Transform[I, O]) Layout() (pitch, rows int) {
	spec := t.plan.Spec()
	kind := spec.InKind()
	if spec.Transition == plan.ComplexToReal {
		kind = spec.OutKind()
	}
	return layout.MemoryLayout(kind, spec.Dims.Reverse())
}

// Transform runs the transform. to == nil runs in place on from; both nil
// runs on the buffers given to [WithBuffers], which only directed plans
// hold.
func (t *Transform[I, O]) Transform(from []I, to []O) error {
	return t.plan.Transform(from, to)
}

// Close releases the plan. Closing twice is a no-op.
func (t *Transform[I, O]) Close() error {
	return t.plan.Close()
}
