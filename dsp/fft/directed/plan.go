package directed

import (
	"fmt"

	"github.com/cwbudde/algo-ndfft/dsp/fft/internal/ndfft"
	"github.com/cwbudde/algo-ndfft/dsp/fft/plan"
	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

const backendName = "directed"

// Plan transforms I elements to O elements in one direction.
type Plan[I, O scalar.Scalar] struct {
	spec    plan.Spec
	scale   float64
	kernels kernels
	from    []I
	to      []O
	bound   bool
	closed  bool
}

var _ plan.Plan[complex128, float64] = (*Plan[complex128, float64])(nil)

// New makes a plan for the native-order dims. The transition follows from
// the element domains of I and O: real input must go forward and real
// output backward. When from is non-nil the buffers are bound to the plan
// and [Plan.Execute] runs on them; a nil to (or one aliasing from) makes
// the plan in place. Plans made by New are unnormalized; use
// [Plan.SetScale] or [NewSpec] to scale backward results.
func New[I, O scalar.Scalar](dims layout.Shape, dir plan.Direction, from []I, to []O) (*Plan[I, O], error) {
	in, out := scalar.Dispatch[I](), scalar.Dispatch[O]()
	if in.Precision != out.Precision {
		err := fmt.Errorf("%w: %v -> %v", plan.ErrPrecisionMismatch, in.Kind, out.Kind)
		return nil, plan.Wrap(backendName, "New", plan.Spec{Dims: dims, Precision: in.Precision}, 0, err)
	}
	t, err := plan.For(in.Domain, out.Domain, dir)
	if err != nil {
		return nil, plan.Wrap(backendName, "New", plan.Spec{Dims: dims, Precision: in.Precision}, 0, err)
	}
	spec := plan.Spec{
		Dims:          dims,
		Precision:     in.Precision,
		Transition:    t,
		Batch:         1,
		Normalization: plan.NormalizeNone,
	}
	if from != nil && (to == nil || layout.Aliases(from, to)) {
		spec.Placement = plan.InPlace
	}
	return NewSpec(spec, from, to)
}

// NewR2C makes a forward real-to-complex plan.
func NewR2C[F scalar.Float, C scalar.Complex](dims layout.Shape, from []F, to []C) (*Plan[F, C], error) {
	return New(dims, plan.Forward, from, to)
}

// NewC2R makes a backward complex-to-real plan.
func NewC2R[C scalar.Complex, F scalar.Float](dims layout.Shape, from []C, to []F) (*Plan[C, F], error) {
	return New(dims, plan.Backward, from, to)
}

// NewC2C makes a complex plan in the given direction.
func NewC2C[C scalar.Complex](dims layout.Shape, dir plan.Direction, from, to []C) (*Plan[C, C], error) {
	return New(dims, dir, from, to)
}

// NewSpec makes a plan from a complete Spec. Bound buffers are
// optional and are checked against the spec's layout.
func NewSpec[I, O scalar.Scalar](spec plan.Spec, from []I, to []O) (*Plan[I, O], error) {
	if err := spec.Validate(); err != nil {
		return nil, plan.Wrap(backendName, "New", spec, 0, err)
	}
	if err := plan.CheckTypes[I, O](spec); err != nil {
		return nil, plan.Wrap(backendName, "New", spec, 0, err)
	}
	p := &Plan[I, O]{
		spec:    spec,
		scale:   spec.Scale(),
		kernels: newKernels(spec.Dims, spec.Transition.IsReal()),
	}
	if from != nil {
		if _, err := plan.Call(spec, from, to); err != nil {
			return nil, plan.Wrap(backendName, "New", spec, 0, err)
		}
		p.from, p.to, p.bound = from, to, true
	}
	return p, nil
}

// Spec returns the plan's Spec.
func (p *Plan[I, O]) Spec() plan.Spec { return p.spec }

// Placement returns the plan's placement; it is always honored.
func (p *Plan[I, O]) Placement() plan.Placement { return p.spec.Placement }

// SetScale replaces the factor applied to the output.
func (p *Plan[I, O]) SetScale(s float64) {
	p.scale = s
}

// Scale returns the factor applied to the output.
func (p *Plan[I, O]) Scale() float64 { return p.scale }

// Execute runs the plan on its bound buffers.
func (p *Plan[I, O]) Execute() error {
	if p.closed {
		return p.fail("Execute", plan.ErrClosed)
	}
	if !p.bound {
		return p.fail("Execute", plan.ErrNoBoundBuffers)
	}
	return p.run("Execute", p.from, p.to)
}

// ExecuteWith runs the plan on new buffers with the plan's layout. The
// placement of the call must match the plan's.
func (p *Plan[I, O]) ExecuteWith(from []I, to []O) error {
	if p.closed {
		return p.fail("ExecuteWith", plan.ErrClosed)
	}
	inPlace := from != nil && (to == nil || layout.Aliases(from, to))
	if inPlace != (p.spec.Placement == plan.InPlace) {
		return p.fail("ExecuteWith", fmt.Errorf("%w: call placement differs from plan", plan.ErrPlacementNotHonored))
	}
	return p.run("ExecuteWith", from, to)
}

// Transform runs on from and to, or on the bound buffers when both are nil.
func (p *Plan[I, O]) Transform(from []I, to []O) error {
	if from == nil && to == nil {
		return p.Execute()
	}
	if p.closed {
		return p.fail("Transform", plan.ErrClosed)
	}
	return p.run("Transform", from, to)
}

// Destroy releases the kernels and bound buffers. Destroying twice is a
// no-op.
func (p *Plan[I, O]) Destroy() {
	p.kernels = kernels{}
	p.from, p.to = nil, nil
	p.bound = false
	p.closed = true
}

// Close is [Plan.Destroy].
func (p *Plan[I, O]) Close() error {
	p.Destroy()
	return nil
}

// Describe returns a one-line summary of the plan.
func (p *Plan[I, O]) Describe() string {
	return fmt.Sprintf("(dft-%s-%dd %s %s %s batch=%d scale=%g bound=%t)",
		p.spec.Transition, len(p.spec.Dims), p.spec.Dims, p.spec.InKind(), p.spec.Placement, p.spec.Batch, p.scale, p.bound)
}

func (p *Plan[I, O]) fail(op string, err error) error {
	return plan.Wrap(backendName, op, p.spec, 0, err)
}

func (p *Plan[I, O]) run(op string, from []I, to []O) error {
	inPlace, err := plan.Call(p.spec, from, to)
	if err != nil {
		return p.fail(op, err)
	}
	if err := p.execute(from, to, inPlace); err != nil {
		return p.fail(op, err)
	}
	return nil
}

// execute widens the buffers to double precision where needed, runs the
// N-D engine batch by batch and narrows the result into the caller's
// output (or into from when in place).
func (p *Plan[I, O]) execute(from []I, to []O, inPlace bool) error {
	placement := plan.OutOfPlace
	if inPlace {
		placement = plan.InPlace
	}
	inLen, outLen := p.spec.LensFor(placement)
	batch := p.spec.Batch
	from = from[:inLen*batch]

	spatial := ndfft.Compact(p.spec.Dims)
	if inPlace && p.spec.Transition.IsReal() {
		spatial.Pitch = layout.RealPitch(spatial.Width())
	}
	half := spatial.Half()
	k := p.kernels

	var (
		result  any
		narrow  bool
		runErr  error
		forward = p.spec.Transition.Direction() == plan.Forward
	)
	switch p.spec.Transition {
	case plan.RealToComplex:
		src, copied := widenReal(from)
		var dst []complex128
		if inPlace {
			dst = layout.Reinterpret[float64, complex128](src)
			narrow = copied
		} else {
			dst, narrow = complexTarget(to[:outLen*batch])
		}
		runErr = ndfft.Batches(batch, inLen, outLen, func(i, o int) error {
			return ndfft.RealForward(k.real, k.complex, src[i:i+inLen], spatial, dst[o:o+outLen], half)
		})
		ndfft.Scale(dst, len(dst), p.scale)
		result = dst

	case plan.ComplexToReal:
		src, copied := widenComplex(from)
		var dst []float64
		if inPlace {
			dst = layout.Reinterpret[complex128, float64](src)
			narrow = copied
		} else {
			dst, narrow = realTarget(to[:outLen*batch])
		}
		runErr = ndfft.Batches(batch, inLen, outLen, func(i, o int) error {
			return ndfft.RealBackward(k.real, k.complex, src[i:i+inLen], half, dst[o:o+outLen], spatial)
		})
		ndfft.Scale(dst, len(dst), p.scale)
		result = dst

	default:
		src, copied := widenComplex(from)
		dst := src
		if inPlace {
			narrow = copied
		} else {
			dst, narrow = complexTarget(to[:outLen*batch])
			copy(dst, src)
		}
		grid := ndfft.Compact(p.spec.Dims)
		runErr = ndfft.Batches(batch, inLen, outLen, func(_, o int) error {
			return ndfft.Complex(k.complex, dst[o:o+outLen], grid, !forward)
		})
		ndfft.Scale(dst, len(dst), p.scale)
		result = dst
	}
	if runErr != nil {
		return runErr
	}
	if !narrow {
		return nil
	}

	out := to
	if inPlace {
		out = layout.Reinterpret[I, O](from)
	}
	switch r := result.(type) {
	case []complex128:
		scalar.Demote(out[:len(r)], r)
	case []float64:
		storeReal(out[:len(r)], r)
	}
	return nil
}
