package conv

import (
	"math/cmplx"

	"github.com/cwbudde/algo-ndfft/dsp/fft"
	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
	"github.com/cwbudde/algo-ndfft/dsp/vec"
)

// spectralOp combines the half spectra of two inputs into a.
type spectralOp int

const (
	spectralMul spectralOp = iota
	spectralCorrelate
	spectralPhase
)

// phaseFloor keeps the normalized cross-power finite where both spectra
// vanish.
const phaseFloor = 1e-300

// product transforms a and b, combines their spectra and transforms back.
// The result has the dims of the inputs.
func product[F scalar.Float](a, b []F, dims layout.Shape, op spectralOp) ([]F, error) {
	switch x := any(a).(type) {
	case []float32:
		out, err := productT[float32, complex64](x, any(b).([]float32), dims, op)
		return any(out).([]F), err
	case []float64:
		out, err := productT[float64, complex128](x, any(b).([]float64), dims, op)
		return any(out).([]F), err
	}
	scalar.Unreachable(scalar.KindOf[F]())
	return nil, nil
}

func productT[F scalar.Float, C scalar.Complex](a, b []F, dims layout.Shape, op spectralOp) ([]F, error) {
	fwd, err := fft.New[F, C](fft.Descriptor, dims)
	if err != nil {
		return nil, err
	}
	defer fwd.Close()
	bwd, err := fft.New[C, F](fft.Descriptor, dims)
	if err != nil {
		return nil, err
	}
	defer bwd.Close()

	n := fwd.OutputLen()
	sa := make([]C, n)
	sb := make([]C, n)
	if err := fwd.Transform(a, sa); err != nil {
		return nil, err
	}
	if err := fwd.Transform(b, sb); err != nil {
		return nil, err
	}

	if op != spectralMul {
		scalar.Conj(sb)
	}
	vec.SelfMul(n, sb, sa)
	if op == spectralPhase {
		normalize(sa)
	}

	out := make([]F, bwd.OutputLen())
	if err := bwd.Transform(sa, out); err != nil {
		return nil, err
	}
	return out, nil
}

// normalize scales every bin of x to unit magnitude.
func normalize[C scalar.Complex](x []C) {
	wide := make([]complex128, len(x))
	scalar.Promote(wide, x)
	for i, v := range wide {
		wide[i] = v / complex(cmplx.Abs(v)+phaseFloor, 0)
	}
	scalar.Demote(x, wide)
}
