package descriptor

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-ndfft/dsp/fft/plan"
	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

const backendName = "descriptor"

// Descriptor is the configuration and committed state of one transform.
// Dims are in native order, outermost first. Changing any value after
// Commit requires committing again.
type Descriptor struct {
	precision     scalar.Precision
	domain        scalar.Domain
	dims          layout.Shape
	batch         int
	placement     plan.Placement
	forwardScale  float64
	backwardScale float64

	committed bool
	freed     bool
	exec      executor
}

// Create returns an uncommitted descriptor for a transform of the given
// precision, forward domain and native-order lengths.
func Create(precision scalar.Precision, domain scalar.Domain, dims layout.Shape) (*Descriptor, error) {
	d := &Descriptor{
		precision:     precision,
		domain:        domain,
		dims:          dims.Clone(),
		batch:         1,
		forwardScale:  1,
		backwardScale: 1,
	}
	if err := d.spec(plan.Forward).Validate(); err != nil {
		return nil, d.fail("Create", err)
	}
	return d, nil
}

// SetBatch sets the number of transforms computed per call. Consecutive
// transforms are laid out back to back.
func (d *Descriptor) SetBatch(n int) error {
	if err := d.usable("SetBatch"); err != nil {
		return err
	}
	if n < 1 {
		return d.fail("SetBatch", fmt.Errorf("%w: %d", plan.ErrInvalidBatch, n))
	}
	d.batch = n
	d.committed = false
	return nil
}

// SetPlacement selects in-place or out-of-place computation.
func (d *Descriptor) SetPlacement(p plan.Placement) error {
	if err := d.usable("SetPlacement"); err != nil {
		return err
	}
	if p == plan.InPlace && d.domain == scalar.RealDomain && len(d.dims) > 1 {
		return d.fail("SetPlacement", fmt.Errorf("%w: %d-D real transform", plan.ErrPlacementNotHonored, len(d.dims)))
	}
	d.placement = p
	d.committed = false
	return nil
}

// SetForwardScale sets the factor applied to forward results.
func (d *Descriptor) SetForwardScale(s float64) error {
	return d.setScale("SetForwardScale", &d.forwardScale, s)
}

// SetBackwardScale sets the factor applied to backward results.
func (d *Descriptor) SetBackwardScale(s float64) error {
	return d.setScale("SetBackwardScale", &d.backwardScale, s)
}

func (d *Descriptor) setScale(op string, dst *float64, s float64) error {
	if err := d.usable(op); err != nil {
		return err
	}
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return d.fail(op, fmt.Errorf("fft: invalid scale %v", s))
	}
	*dst = s
	d.committed = false
	return nil
}

// Commit builds the kernels for the current configuration.
func (d *Descriptor) Commit() error {
	if err := d.usable("Commit"); err != nil {
		return err
	}
	var (
		exec executor
		err  error
	)
	switch d.precision {
	case scalar.Single:
		exec, err = newEngine[float32, complex64](d.dims, d.domain)
	case scalar.Double:
		exec, err = newEngine[float64, complex128](d.dims, d.domain)
	default:
		scalar.Unreachable(scalar.KindFor(d.precision, d.domain))
	}
	if err != nil {
		return d.fail("Commit", err)
	}
	d.exec = exec
	d.committed = true
	return nil
}

// Placement returns the configured placement.
func (d *Descriptor) Placement() plan.Placement {
	return d.placement
}

// Free releases the kernels. Freeing twice is a no-op.
func (d *Descriptor) Free() error {
	d.exec = nil
	d.committed = false
	d.freed = true
	return nil
}

// ComputeForward runs the forward transform from in to out, or in place
// on in when out is nil.
func ComputeForward[I, O scalar.Scalar](d *Descriptor, in []I, out []O) error {
	return compute(d, "ComputeForward", plan.Forward, in, out)
}

// ComputeBackward runs the backward transform from in to out, or in place
// on in when out is nil.
func ComputeBackward[I, O scalar.Scalar](d *Descriptor, in []I, out []O) error {
	return compute(d, "ComputeBackward", plan.Backward, in, out)
}

func compute[I, O scalar.Scalar](d *Descriptor, op string, dir plan.Direction, in []I, out []O) error {
	if d.freed {
		return d.failDir(op, dir, plan.ErrClosed)
	}
	if !d.committed {
		return d.failDir(op, dir, plan.ErrNotCommitted)
	}
	spec := d.spec(dir)
	if err := plan.CheckTypes[I, O](spec); err != nil {
		return d.failDir(op, dir, err)
	}
	inPlace, err := plan.Call(spec, in, out)
	if err != nil {
		return d.failDir(op, dir, err)
	}
	if inPlace && d.placement != plan.InPlace {
		return d.failDir(op, dir, plan.ErrPlacementNotHonored)
	}

	var dst any
	if !inPlace {
		dst = out
	}
	scale := d.forwardScale
	if dir == plan.Backward {
		// Kernels return results already divided by N.
		scale = d.backwardScale * float64(d.dims.NumElements())
		if math.Abs(scale-1) < 1e-12 {
			scale = 1
		}
	}
	if err := d.exec.run(dir, in, dst, inPlace, d.batch, scale); err != nil {
		return d.failDir(op, dir, err)
	}
	return nil
}

// Describe returns a multi-line dump of the configuration.
func (d *Descriptor) Describe() string {
	var b strings.Builder
	b.WriteString("==== FFT Descriptor Info ====\n")
	fmt.Fprintf(&b, "Precision          : %s\n", d.precision)
	fmt.Fprintf(&b, "Domain             : %s\n", d.domain)
	fmt.Fprintf(&b, "Dimension          : %d\n", len(d.dims))
	lengths := make([]string, len(d.dims))
	for i, n := range d.dims {
		lengths[i] = fmt.Sprint(n)
	}
	fmt.Fprintf(&b, "Lengths            : [%s]\n", strings.Join(lengths, ", "))
	fmt.Fprintf(&b, "Batch (Transforms) : %d\n", d.batch)
	fmt.Fprintf(&b, "Forward scale      : %g\n", d.forwardScale)
	fmt.Fprintf(&b, "Backward scale     : %g\n", d.backwardScale)
	if d.domain == scalar.ComplexDomain && d.placement == plan.InPlace {
		b.WriteString("Conjugate-even storage : complex-complex\n")
	}
	placement := "not-inplace"
	if d.placement == plan.InPlace {
		placement = "inplace"
	}
	fmt.Fprintf(&b, "Placement          : %s\n", placement)
	fmt.Fprintf(&b, "Committed          : %t\n", d.committed)
	b.WriteString("=============================\n")
	return b.String()
}

func (d *Descriptor) spec(dir plan.Direction) plan.Spec {
	t := plan.ComplexForward
	switch {
	case d.domain == scalar.RealDomain && dir == plan.Forward:
		t = plan.RealToComplex
	case d.domain == scalar.RealDomain:
		t = plan.ComplexToReal
	case dir == plan.Backward:
		t = plan.ComplexBackward
	}
	return plan.Spec{
		Dims:          d.dims,
		Precision:     d.precision,
		Transition:    t,
		Placement:     d.placement,
		Batch:         d.batch,
		Normalization: plan.Normalization(d.backwardScale),
	}
}

func (d *Descriptor) usable(op string) error {
	if d.freed {
		return d.fail(op, plan.ErrClosed)
	}
	return nil
}

func (d *Descriptor) fail(op string, err error) error {
	return d.failDir(op, plan.Forward, err)
}

// failDir reports err against the transition of the failing call.
func (d *Descriptor) failDir(op string, dir plan.Direction, err error) error {
	return plan.Wrap(backendName, op, d.spec(dir), int(StatusOf(err)), err)
}
