package testutil

import (
	dspfft "github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// ReferenceFFT returns the N-D DFT of data, computed axis by axis with
// go-dsp. dims are outermost first and data is compact row-major. The
// inverse transform is normalized by 1/N.
func ReferenceFFT[T scalar.Scalar](dims layout.Shape, data []T, inverse bool) []complex128 {
	out := make([]complex128, dims.NumElements())
	scalar.Promote(out, data[:len(out)])
	strides := dims.Strides(layout.RowMajor)

	for axis, n := range dims {
		stride := strides[axis]
		line := make([]complex128, n)
		for base := 0; base < len(out); base++ {
			// base is the start of a line when its coordinate on axis is 0.
			if (base/stride)%n != 0 {
				continue
			}
			for i := range line {
				line[i] = out[base+i*stride]
			}
			var res []complex128
			if inverse {
				res = dspfft.IFFT(line)
			} else {
				res = dspfft.FFT(line)
			}
			for i, v := range res {
				out[base+i*stride] = v
			}
		}
	}
	return out
}

// HalfSpectrum keeps the first n/2+1 bins of every fastest-axis row of a
// full spectrum.
func HalfSpectrum(dims layout.Shape, full []complex128) []complex128 {
	width := dims[len(dims)-1]
	h := layout.SpectrumLen(width)
	rows := len(full) / width
	out := make([]complex128, rows*h)
	for r := 0; r < rows; r++ {
		copy(out[r*h:(r+1)*h], full[r*width:r*width+h])
	}
	return out
}
