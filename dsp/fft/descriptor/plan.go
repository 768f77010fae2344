package descriptor

import (
	"github.com/cwbudde/algo-ndfft/dsp/fft/plan"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// Plan is a committed descriptor bound to the element types I and O.
type Plan[I, O scalar.Scalar] struct {
	d    *Descriptor
	spec plan.Spec
}

var _ plan.Plan[float32, complex64] = (*Plan[float32, complex64])(nil)

// MakePlan creates and commits a descriptor for spec. Dims are native
// order. Multi-dimensional real transforms requested in place are planned
// out of place; [Plan.Placement] reports the downgrade. The backward scale
// is resolved from spec.Normalization.
func MakePlan[I, O scalar.Scalar](spec plan.Spec) (*Plan[I, O], error) {
	if err := spec.Validate(); err != nil {
		return nil, plan.Wrap(backendName, "MakePlan", spec, int(StatusOf(err)), err)
	}
	if err := plan.CheckTypes[I, O](spec); err != nil {
		return nil, plan.Wrap(backendName, "MakePlan", spec, int(StatusOf(err)), err)
	}

	domain := scalar.ComplexDomain
	if spec.Transition.IsReal() {
		domain = scalar.RealDomain
	}
	d, err := Create(spec.Precision, domain, spec.Dims)
	if err != nil {
		return nil, err
	}
	if spec.Batch > 1 {
		if err := d.SetBatch(spec.Batch); err != nil {
			return nil, err
		}
	}
	placement := spec.Placement
	if placement == plan.InPlace && domain == scalar.RealDomain && len(spec.Dims) > 1 {
		placement = plan.OutOfPlace
	}
	if err := d.SetPlacement(placement); err != nil {
		return nil, err
	}
	if err := d.SetBackwardScale(spec.Normalization.Factor(spec.Dims)); err != nil {
		return nil, err
	}
	if err := d.Commit(); err != nil {
		return nil, err
	}
	return &Plan[I, O]{d: d, spec: spec}, nil
}

// Spec returns the requested transform.
func (p *Plan[I, O]) Spec() plan.Spec { return p.spec }

// Placement returns the placement the descriptor honors.
func (p *Plan[I, O]) Placement() plan.Placement { return p.d.Placement() }

// Descriptor exposes the underlying descriptor.
func (p *Plan[I, O]) Descriptor() *Descriptor { return p.d }

// Transform runs the plan. to == nil runs in place on from. Descriptors
// hold no buffers, so from must be given.
func (p *Plan[I, O]) Transform(from []I, to []O) error {
	if p.spec.Transition.Direction() == plan.Forward {
		return ComputeForward(p.d, from, to)
	}
	return ComputeBackward(p.d, from, to)
}

// Close frees the descriptor.
func (p *Plan[I, O]) Close() error {
	return p.d.Free()
}
