package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// ErrLengthMismatch is returned when a spectrum does not match its dims.
var ErrLengthMismatch = errors.New("spectrum: length mismatch")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func split[C scalar.Complex](re, im []float64, src []C) {
	switch s := any(src).(type) {
	case []complex64:
		for i, c := range s {
			re[i] = float64(real(c))
			im[i] = float64(imag(c))
		}
	case []complex128:
		for i, c := range s {
			re[i] = real(c)
			im[i] = imag(c)
		}
	}
}

// Magnitude writes |X[k]| for every bin of src into dst.
//
// Scratch buffers are pooled, so in steady state this does not allocate.
func Magnitude[C scalar.Complex](dst []float64, src []C) {
	n := min(len(dst), len(src))
	if n == 0 {
		return
	}
	re, im, buf := getScratch(n)
	split(re, im, src[:n])
	vecmath.Magnitude(dst[:n], re, im)
	putScratch(buf)
}

// Power writes |X[k]|^2 for every bin of src into dst.
func Power[C scalar.Complex](dst []float64, src []C) {
	n := min(len(dst), len(src))
	if n == 0 {
		return
	}
	re, im, buf := getScratch(n)
	split(re, im, src[:n])
	vecmath.Power(dst[:n], re, im)
	putScratch(buf)
}

// Phase writes arg(X[k]) in radians for every bin of src into dst.
func Phase[C scalar.Complex](dst []float64, src []C) {
	n := min(len(dst), len(src))
	full := make([]complex128, n)
	scalar.Promote(full, src[:n])
	for i, c := range full {
		dst[i] = cmplx.Phase(c)
	}
}

// HalfDims returns the image-order dims of the half spectrum a real
// transform of dims produces.
func HalfDims(dims layout.Shape) layout.Shape {
	out := dims.Clone()
	if len(out) > 0 {
		out[0] = layout.SpectrumLen(out[0])
	}
	return out
}

// Expand rebuilds the full spectrum of a real transform from its half
// spectrum, using X[-k] = conj(X[k]) on every axis.
func Expand[C scalar.Complex](dims layout.Shape, half []C) ([]C, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	width := dims[0]
	h := layout.SpectrumLen(width)
	outer := layout.Shape(dims[1:])
	rows := outer.NumElements()
	if len(half) < rows*h {
		return nil, fmt.Errorf("%w: half spectrum has %d bins, need %d", ErrLengthMismatch, len(half), rows*h)
	}

	full := make([]C, rows*width)
	for r := range rows {
		mr := mirrorRow(outer, r)
		row := full[r*width : (r+1)*width]
		copy(row, half[r*h:r*h+h])
		src := half[mr*h : mr*h+h]
		for k := h; k < width; k++ {
			row[k] = conj(src[width-k])
		}
	}
	return full, nil
}

// mirrorRow returns the row index of -coords for the row r of the given
// image-order outer dims.
func mirrorRow(outer layout.Shape, r int) int {
	m, stride := 0, 1
	for _, d := range outer {
		c := r % d
		r /= d
		m += ((d - c) % d) * stride
		stride *= d
	}
	return m
}

func conj[C scalar.Complex](c C) C {
	switch v := any(c).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(C)
	case complex128:
		return any(cmplx.Conj(v)).(C)
	}
	return c
}

// Energy returns the spatial-domain energy sum |x|^2 of a signal from its
// spectrum over dims, by Parseval. With half set, spectrum is the half
// spectrum of a real transform and the bins it omits are counted through
// their conjugates.
func Energy[C scalar.Complex](dims layout.Shape, spectrum []C, half bool) (float64, error) {
	if err := dims.Validate(); err != nil {
		return 0, err
	}
	n := dims.NumElements()
	width := dims[0]
	cols := width
	if half {
		cols = layout.SpectrumLen(width)
	}
	rows := n / width
	if len(spectrum) < rows*cols {
		return 0, fmt.Errorf("%w: spectrum has %d bins, need %d", ErrLengthMismatch, len(spectrum), rows*cols)
	}

	p := make([]float64, rows*cols)
	Power(p, spectrum[:rows*cols])
	sum := 0.0
	for r := range rows {
		for k, v := range p[r*cols : (r+1)*cols] {
			if half && k != 0 && 2*k != width {
				v *= 2
			}
			sum += v
		}
	}
	return sum / float64(n), nil
}

// Peak returns the image-order coordinates and value of the largest entry
// of values laid out over dims.
func Peak(dims layout.Shape, values []float64) (coords []int, value float64, err error) {
	if err := dims.Validate(); err != nil {
		return nil, 0, err
	}
	n := dims.NumElements()
	if len(values) < n {
		return nil, 0, fmt.Errorf("%w: %d values, need %d", ErrLengthMismatch, len(values), n)
	}
	best := 0
	for i, v := range values[:n] {
		if v > values[best] {
			best = i
		}
	}
	coords = make([]int, len(dims))
	idx := best
	for axis, d := range dims {
		coords[axis] = idx % d
		idx /= d
	}
	return coords, values[best], nil
}

// Centered returns the log magnitude 20*log10(|X|+floor) of a full 2-D
// spectrum with the DC bin moved to the center, the usual way spectra of
// images are displayed.
func Centered[C scalar.Complex](shape layout.Vec2, full []C, floor float64) ([]float64, error) {
	n := shape.X * shape.Y
	if len(full) < n {
		return nil, fmt.Errorf("%w: spectrum has %d bins, need %d", ErrLengthMismatch, len(full), n)
	}
	out := make([]float64, n)
	Magnitude(out, full[:n])
	for i, m := range out {
		out[i] = 20 * math.Log10(m+floor)
	}
	layout.FFTShift(out, shape.X, shape.Y)
	return out, nil
}
