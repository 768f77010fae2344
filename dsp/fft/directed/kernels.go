package directed

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-ndfft/dsp/fft/internal/ndfft"
	"github.com/cwbudde/algo-ndfft/dsp/layout"
)

type kernels struct {
	complex []ndfft.Kernel[complex128]
	real    ndfft.RealKernel[float64, complex128]
}

// newKernels builds one complex kernel per axis of the native-order dims.
// For real transforms the fastest axis gets a real kernel instead.
func newKernels(dims layout.Shape, isReal bool) kernels {
	cache := make(map[int]ndfft.Kernel[complex128])
	k := kernels{complex: make([]ndfft.Kernel[complex128], len(dims))}
	last := len(dims) - 1
	for axis, n := range dims {
		if isReal && axis == last {
			k.real = realKernel(n)
			continue
		}
		if c, ok := cache[n]; ok {
			k.complex[axis] = c
			continue
		}
		c := complexKernel(n)
		cache[n] = c
		k.complex[axis] = c
	}
	return k
}

func complexKernel(n int) ndfft.Kernel[complex128] {
	if n == 1 {
		return ndfft.Identity[complex128]()
	}
	f := fourier.NewCmplxFFT(n)
	return func(dst, src []complex128, inverse bool) error {
		if inverse {
			f.Sequence(dst, src)
			return nil
		}
		f.Coefficients(dst, src)
		return nil
	}
}

func realKernel(n int) ndfft.RealKernel[float64, complex128] {
	if n == 1 {
		return ndfft.RealFromComplex[float64](1, ndfft.Identity[complex128]())
	}
	f := fourier.NewFFT(n)
	return ndfft.RealKernel[float64, complex128]{
		N: n,
		Forward: func(dst []complex128, src []float64) error {
			f.Coefficients(dst[:n/2+1], src[:n])
			return nil
		},
		Backward: func(dst []float64, src []complex128) error {
			f.Sequence(dst[:n], src[:n/2+1])
			return nil
		},
	}
}
