package descriptor

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ndfft/dsp/fft/plan"
	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
	"github.com/cwbudde/algo-ndfft/internal/testutil"
)

var nativeShapes = []layout.Shape{{7}, {8}, {5, 7}, {6, 8}, {3, 5, 7}, {4, 6, 8}}

func widen[T scalar.Scalar](x []T) []complex128 {
	out := make([]complex128, len(x))
	scalar.Promote(out, x)
	return out
}

func realRoundTrip[F scalar.Float, C scalar.Complex](t *testing.T, dims layout.Shape) {
	t.Helper()
	n := dims.NumElements()
	spec := plan.Spec{Dims: dims, Precision: scalar.KindOf[F]().Precision(), Transition: plan.RealToComplex, Batch: 1}
	fwd, err := MakePlan[F, C](spec)
	require.NoError(t, err)
	defer fwd.Close()
	spec.Transition = plan.ComplexToReal
	bwd, err := MakePlan[C, F](spec)
	require.NoError(t, err)
	defer bwd.Close()

	in := testutil.DeterministicNoise[F](11, 1, n)
	_, halfLen := fwd.Spec().Lens()
	mid := make([]C, halfLen)
	require.NoError(t, fwd.Transform(in, mid))

	want := testutil.HalfSpectrum(dims, testutil.ReferenceFFT(dims, in, false))
	testutil.RequireSliceNearlyEqual(t, widen(mid), want, testutil.Tolerance[F](n, float64(n)))

	out := make([]F, n)
	require.NoError(t, bwd.Transform(mid, out))
	testutil.RequireSliceNearlyEqual(t, out, in, testutil.Tolerance[F](n, 1))
}

func complexRoundTrip[C scalar.Complex](t *testing.T, dims layout.Shape) {
	t.Helper()
	n := dims.NumElements()
	spec := plan.Spec{Dims: dims, Precision: scalar.KindOf[C]().Precision(), Transition: plan.ComplexForward, Batch: 1}
	fwd, err := MakePlan[C, C](spec)
	require.NoError(t, err)
	defer fwd.Close()
	spec.Transition = plan.ComplexBackward
	bwd, err := MakePlan[C, C](spec)
	require.NoError(t, err)
	defer bwd.Close()

	in := testutil.DeterministicNoise[C](12, 1, n)
	mid := make([]C, n)
	require.NoError(t, fwd.Transform(in, mid))
	want := testutil.ReferenceFFT(dims, in, false)
	testutil.RequireSliceNearlyEqual(t, widen(mid), want, testutil.Tolerance[C](n, float64(n)))

	out := make([]C, n)
	require.NoError(t, bwd.Transform(mid, out))
	testutil.RequireSliceNearlyEqual(t, out, in, testutil.Tolerance[C](n, 1))
}

func TestRoundTripAllKinds(t *testing.T) {
	t.Parallel()

	for _, dims := range nativeShapes {
		t.Run(fmt.Sprintf("float32/%s", dims), func(t *testing.T) { realRoundTrip[float32, complex64](t, dims) })
		t.Run(fmt.Sprintf("float64/%s", dims), func(t *testing.T) { realRoundTrip[float64, complex128](t, dims) })
		t.Run(fmt.Sprintf("complex64/%s", dims), func(t *testing.T) { complexRoundTrip[complex64](t, dims) })
		t.Run(fmt.Sprintf("complex128/%s", dims), func(t *testing.T) { complexRoundTrip[complex128](t, dims) })
	}
}

func TestInPlaceComplexMatchesOutOfPlace(t *testing.T) {
	t.Parallel()

	dims := layout.Shape{6, 5}
	n := dims.NumElements()
	spec := plan.Spec{Dims: dims, Precision: scalar.Double, Transition: plan.ComplexForward, Batch: 1}
	oop, err := MakePlan[complex128, complex128](spec)
	require.NoError(t, err)
	spec.Placement = plan.InPlace
	ip, err := MakePlan[complex128, complex128](spec)
	require.NoError(t, err)
	assert.Equal(t, plan.InPlace, ip.Placement())

	in := testutil.DeterministicNoise[complex128](13, 1, n)
	want := make([]complex128, n)
	require.NoError(t, oop.Transform(in, want))

	buf := append([]complex128(nil), in...)
	require.NoError(t, ip.Transform(buf, nil))
	testutil.RequireSliceNearlyEqual(t, buf, want, 1e-9)
}

func TestInPlaceReal1D(t *testing.T) {
	t.Parallel()

	for _, n := range []int{7, 8} {
		dims := layout.Shape{n}
		spec := plan.Spec{Dims: dims, Precision: scalar.Single, Transition: plan.RealToComplex, Placement: plan.InPlace, Batch: 1}
		fwd, err := MakePlan[float32, complex64](spec)
		require.NoError(t, err)
		assert.Equal(t, plan.InPlace, fwd.Placement())

		in := testutil.DeterministicNoise[float32](14, 1, n)
		buf := make([]float32, layout.RealPitch(n))
		copy(buf, in)
		require.NoError(t, fwd.Transform(buf, nil))

		want := testutil.HalfSpectrum(dims, testutil.ReferenceFFT(dims, in, false))
		got := widen(layout.Reinterpret[float32, complex64](buf))
		testutil.RequireSliceNearlyEqual(t, got, want, testutil.Tolerance[float32](n, float64(n)))

		spec.Transition = plan.ComplexToReal
		bwd, err := MakePlan[complex64, float32](spec)
		require.NoError(t, err)
		require.NoError(t, bwd.Transform(layout.Reinterpret[float32, complex64](buf), nil))
		testutil.RequireSliceNearlyEqual(t, buf[:n], in, testutil.Tolerance[float32](n, 1))
	}
}

func TestMultiDimRealInPlaceIsDowngraded(t *testing.T) {
	t.Parallel()

	dims := layout.Shape{5, 7}
	spec := plan.Spec{Dims: dims, Precision: scalar.Double, Transition: plan.RealToComplex, Placement: plan.InPlace, Batch: 1}
	p, err := MakePlan[float64, complex128](spec)
	require.NoError(t, err)
	assert.Equal(t, plan.OutOfPlace, p.Placement())
	assert.Equal(t, plan.InPlace, p.Spec().Placement)

	buf := make([]float64, layout.PaddedLen(dims.Reverse()))
	err = p.Transform(buf, nil)
	require.ErrorIs(t, err, plan.ErrPlacementNotHonored)

	var pe *plan.Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, int(StatusInconsistentConfiguration), pe.Status)
	assert.Equal(t, "descriptor", pe.Backend)
	assert.Equal(t, "ComputeForward", pe.Op)

	out := make([]complex128, 5*4)
	require.NoError(t, p.Transform(buf[:35], out))
}

func TestBatch(t *testing.T) {
	t.Parallel()

	dims := layout.Shape{4, 5}
	n := dims.NumElements()
	spec := plan.Spec{Dims: dims, Precision: scalar.Double, Transition: plan.ComplexForward, Batch: 3}
	p, err := MakePlan[complex128, complex128](spec)
	require.NoError(t, err)

	in := testutil.DeterministicNoise[complex128](15, 1, 3*n)
	out := make([]complex128, 3*n)
	require.NoError(t, p.Transform(in, out))
	for b := 0; b < 3; b++ {
		want := testutil.ReferenceFFT(dims, in[b*n:(b+1)*n], false)
		testutil.RequireSliceNearlyEqual(t, out[b*n:(b+1)*n], want, 1e-9)
	}

	require.ErrorIs(t, p.Transform(in[:2*n], out), plan.ErrBufferTooSmall)
}

func TestRealBatch(t *testing.T) {
	t.Parallel()

	dims := layout.Shape{3, 6}
	n := dims.NumElements()
	spec := plan.Spec{Dims: dims, Precision: scalar.Double, Transition: plan.RealToComplex, Batch: 2}
	p, err := MakePlan[float64, complex128](spec)
	require.NoError(t, err)

	in := testutil.DeterministicNoise[float64](16, 1, 2*n)
	half := 3 * 4
	out := make([]complex128, 2*half)
	require.NoError(t, p.Transform(in, out))
	for b := 0; b < 2; b++ {
		want := testutil.HalfSpectrum(dims, testutil.ReferenceFFT(dims, in[b*n:(b+1)*n], false))
		testutil.RequireSliceNearlyEqual(t, out[b*half:(b+1)*half], want, 1e-9)
	}
}

func TestBackwardNormalization(t *testing.T) {
	t.Parallel()

	dims := layout.Shape{4, 3}
	n := dims.NumElements()
	in := testutil.DeterministicNoise[complex128](17, 1, n)

	tests := []struct {
		norm   plan.Normalization
		factor float64
	}{
		{plan.NormalizeAuto, 1},
		{plan.NormalizeNone, float64(n)},
		{0.5, 0.5 * float64(n)},
	}
	for _, tt := range tests {
		spec := plan.Spec{Dims: dims, Precision: scalar.Double, Transition: plan.ComplexForward, Batch: 1}
		fwd, err := MakePlan[complex128, complex128](spec)
		require.NoError(t, err)
		spec.Transition = plan.ComplexBackward
		spec.Normalization = tt.norm
		bwd, err := MakePlan[complex128, complex128](spec)
		require.NoError(t, err)

		mid := make([]complex128, n)
		out := make([]complex128, n)
		require.NoError(t, fwd.Transform(in, mid))
		require.NoError(t, bwd.Transform(mid, out))

		want := append([]complex128(nil), in...)
		scalar.Scale(want, tt.factor)
		testutil.RequireSliceNearlyEqual(t, out, want, 1e-9*tt.factor)
	}
}

func TestDescriptorLifecycle(t *testing.T) {
	t.Parallel()

	d, err := Create(scalar.Single, scalar.RealDomain, layout.Shape{5, 7})
	require.NoError(t, err)

	in := make([]float32, 35)
	out := make([]complex64, 20)
	require.ErrorIs(t, ComputeForward(d, in, out), plan.ErrNotCommitted)

	require.NoError(t, d.Commit())
	require.NoError(t, ComputeForward(d, in, out))

	require.NoError(t, d.SetBatch(2))
	require.ErrorIs(t, ComputeForward(d, in, out), plan.ErrNotCommitted)

	desc := d.Describe()
	assert.Contains(t, desc, "Lengths            : [5, 7]")
	assert.Contains(t, desc, "Batch (Transforms) : 2")
	assert.Contains(t, desc, "Placement          : not-inplace")
	assert.True(t, strings.HasPrefix(desc, "===="))

	require.NoError(t, d.Free())
	require.NoError(t, d.Free())
	err = ComputeForward(d, in, out)
	require.ErrorIs(t, err, plan.ErrClosed)
	assert.Equal(t, StatusBadDescriptor, StatusOf(err))
	require.ErrorIs(t, d.Commit(), plan.ErrClosed)
}

func TestDescriptorValidation(t *testing.T) {
	t.Parallel()

	_, err := Create(scalar.Double, scalar.ComplexDomain, layout.Shape{4, 0})
	require.ErrorIs(t, err, plan.ErrInvalidShape)
	assert.Equal(t, StatusInvalidConfiguration, StatusOf(err))

	d, err := Create(scalar.Double, scalar.RealDomain, layout.Shape{4, 4})
	require.NoError(t, err)
	require.ErrorIs(t, d.SetBatch(0), plan.ErrInvalidBatch)
	require.ErrorIs(t, d.SetPlacement(plan.InPlace), plan.ErrPlacementNotHonored)
	require.Error(t, d.SetBackwardScale(math.NaN()))

	require.NoError(t, d.Commit())
	err = ComputeForward(d, make([]float32, 16), make([]complex64, 12))
	require.ErrorIs(t, err, plan.ErrPrecisionMismatch)
	require.ErrorIs(t, ComputeForward[float64, complex128](d, nil, nil), plan.ErrNoBoundBuffers)
}

func TestComputeErrorTransition(t *testing.T) {
	t.Parallel()

	d, err := Create(scalar.Double, scalar.RealDomain, layout.Shape{4, 4})
	require.NoError(t, err)
	require.NoError(t, d.Commit())

	tests := []struct {
		name string
		err  error
		want plan.Transition
	}{
		{"forward", ComputeForward(d, make([]float64, 3), make([]complex128, 12)), plan.RealToComplex},
		{"backward", ComputeBackward(d, make([]complex128, 3), make([]float64, 16)), plan.ComplexToReal},
	}
	for _, tt := range tests {
		var perr *plan.Error
		require.ErrorAs(t, tt.err, &perr, tt.name)
		assert.ErrorIs(t, tt.err, plan.ErrBufferTooSmall, tt.name)
		assert.Equal(t, tt.want, perr.Spec.Transition, tt.name)
		assert.Equal(t, "ComputeBackward" == perr.Op, tt.want == plan.ComplexToReal, tt.name)
	}

	c, err := Create(scalar.Single, scalar.ComplexDomain, layout.Shape{8})
	require.NoError(t, err)
	err = ComputeBackward[complex64, complex64](c, make([]complex64, 8), nil)
	var perr *plan.Error
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, plan.ErrNotCommitted)
	assert.Equal(t, plan.ComplexBackward, perr.Spec.Transition)
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "no error", StatusOK.String())
	assert.Equal(t, "descriptor is invalid or freed", StatusBadDescriptor.String())
	assert.Equal(t, "status 42", Status(42).String())
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	p, err := MakePlan[complex64, complex64](plan.Spec{Dims: layout.Shape{8}, Precision: scalar.Single, Transition: plan.ComplexForward, Batch: 1})
	require.NoError(t, err)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	require.ErrorIs(t, p.Transform(make([]complex64, 8), nil), plan.ErrClosed)
}
