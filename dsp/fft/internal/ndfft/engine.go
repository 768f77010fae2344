package ndfft

import (
	"github.com/cwbudde/algo-ndfft/dsp/buffer"
	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// Kernel computes a 1-D complex DFT of len(dst) points from src into dst.
// dst and src do not overlap. inverse selects the positive exponent.
type Kernel[C scalar.Complex] func(dst, src []C, inverse bool) error

// RealKernel transforms one real line of N points to and from its N/2+1
// complex bins.
type RealKernel[F scalar.Float, C scalar.Complex] struct {
	N        int
	Forward  func(dst []C, src []F) error
	Backward func(dst []F, src []C) error
}

// Complex runs kernels[axis] along every axis of the complex grid, in
// place on data. Axes with a nil kernel or length one are skipped.
func Complex[C scalar.Complex](kernels []Kernel[C], data []C, g Grid, inverse bool) error {
	strides := g.Strides()
	for axis, k := range kernels {
		n := g.Dims[axis]
		if k == nil || n == 1 {
			continue
		}
		scratch := buffer.Scratch[C](2 * n)
		line, spec := scratch.Data()[:n], scratch.Data()[n:]
		stride := strides[axis]

		var err error
		g.Lines(axis, func(base int) bool {
			layout.CopyBatchStrided(n, data[base:], stride, 0, line, 1, 0, 1)
			if err = k(spec, line, inverse); err != nil {
				return false
			}
			layout.CopyBatchStrided(n, spec, 1, 0, data[base:], stride, 0, 1)
			return true
		})
		buffer.Release(scratch)
		if err != nil {
			return err
		}
	}
	return nil
}

// RealForward transforms the real grid in into its half spectrum out. The
// two may share memory when in is the padded layout of out (in-place).
// kernels cover the outer axes; the fastest axis uses rk.
func RealForward[F scalar.Float, C scalar.Complex](rk RealKernel[F, C], kernels []Kernel[C], in []F, inGrid Grid, out []C, outGrid Grid) error {
	n := inGrid.Width()
	h := outGrid.Width()
	row := make([]F, n)
	for r := 0; r < inGrid.Rows(); r++ {
		copy(row, in[r*inGrid.Pitch:r*inGrid.Pitch+n])
		if err := rk.Forward(out[r*outGrid.Pitch:r*outGrid.Pitch+h], row); err != nil {
			return err
		}
	}
	return Complex(outerOnly(kernels), out, outGrid, false)
}

// RealBackward transforms the half spectrum in back to the real grid out.
// inGrid has the n/2+1 bins of out's fastest axis. The input is left
// untouched unless it shares memory with out.
func RealBackward[F scalar.Float, C scalar.Complex](rk RealKernel[F, C], kernels []Kernel[C], in []C, inGrid Grid, out []F, outGrid Grid) error {
	half := Compact(inGrid.Dims)
	h := half.Width()
	work := buffer.Scratch[C](half.Len())
	defer buffer.Release(work)

	w := work.Data()
	layout.CopyBatchStrided(h, in, 1, inGrid.Pitch, w, 1, h, half.Rows())
	if err := Complex(outerOnly(kernels), w, half, true); err != nil {
		return err
	}
	n := outGrid.Width()
	for r := 0; r < outGrid.Rows(); r++ {
		if err := rk.Backward(out[r*outGrid.Pitch:r*outGrid.Pitch+n], w[r*h:(r+1)*h]); err != nil {
			return err
		}
	}
	return nil
}

func outerOnly[C scalar.Complex](kernels []Kernel[C]) []Kernel[C] {
	if len(kernels) == 0 {
		return nil
	}
	outer := make([]Kernel[C], len(kernels))
	copy(outer, kernels[:len(kernels)-1])
	return outer
}

// RealFromComplex builds a real kernel of length n on top of a complex
// kernel of the same length. The forward pass keeps the first n/2+1 bins;
// the backward pass completes the spectrum by Hermitian symmetry and keeps
// the real part. The returned kernel owns its scratch and is not safe for
// concurrent use.
func RealFromComplex[F scalar.Float, C scalar.Complex](n int, k Kernel[C]) RealKernel[F, C] {
	a := make([]C, n)
	b := make([]C, n)
	h := layout.SpectrumLen(n)
	return RealKernel[F, C]{
		N: n,
		Forward: func(dst []C, src []F) error {
			scalar.ToComplex(a, src[:n])
			if err := k(b, a, false); err != nil {
				return err
			}
			copy(dst[:h], b[:h])
			return nil
		},
		Backward: func(dst []F, src []C) error {
			copy(b[:h], src[:h])
			for j := h; j < n; j++ {
				b[j] = src[n-j]
			}
			scalar.Conj(b[h:])
			if err := k(a, b, true); err != nil {
				return err
			}
			scalar.RealParts(dst[:n], a)
			return nil
		},
	}
}

// Identity is the kernel of a length-one transform.
func Identity[C scalar.Complex]() Kernel[C] {
	return func(dst, src []C, _ bool) error {
		copy(dst, src)
		return nil
	}
}

// Scale multiplies the first n elements of x by s unless s is one.
func Scale[T scalar.Scalar](x []T, n int, s float64) {
	if s == 1 {
		return
	}
	scalar.Scale(x[:n], s)
}
