package descriptor

import (
	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-ndfft/dsp/fft/internal/ndfft"
	"github.com/cwbudde/algo-ndfft/dsp/fft/plan"
	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// executor runs a committed configuration on untyped buffers. The
// descriptor has already checked element types and lengths.
type executor interface {
	run(dir plan.Direction, in, out any, inPlace bool, batch int, scale float64) error
}

type engine[F scalar.Float, C scalar.Complex] struct {
	dims    layout.Shape
	isReal  bool
	kernels []ndfft.Kernel[C]
	rk      ndfft.RealKernel[F, C]
}

func newEngine[F scalar.Float, C scalar.Complex](dims layout.Shape, domain scalar.Domain) (*engine[F, C], error) {
	e := &engine[F, C]{
		dims:    dims,
		isReal:  domain == scalar.RealDomain,
		kernels: make([]ndfft.Kernel[C], len(dims)),
	}
	cache := make(map[int]ndfft.Kernel[C])
	kernel := func(n int) (ndfft.Kernel[C], error) {
		if k, ok := cache[n]; ok {
			return k, nil
		}
		k, err := newKernel[C](n)
		if err != nil {
			return nil, err
		}
		cache[n] = k
		return k, nil
	}

	last := len(dims) - 1
	for axis, n := range dims {
		k, err := kernel(n)
		if err != nil {
			return nil, err
		}
		if e.isReal && axis == last {
			e.rk = ndfft.RealFromComplex[F](n, k)
			continue
		}
		e.kernels[axis] = k
	}
	return e, nil
}

// newKernel wraps an algo-fft plan of length n. algo-fft's inverse is
// normalized by 1/n.
func newKernel[C scalar.Complex](n int) (ndfft.Kernel[C], error) {
	if n == 1 {
		return ndfft.Identity[C](), nil
	}
	var k any
	switch kind := scalar.KindOf[C](); kind {
	case scalar.ComplexSingle:
		p, err := algofft.NewPlan32(n)
		if err != nil {
			return nil, err
		}
		k = ndfft.Kernel[complex64](func(dst, src []complex64, inverse bool) error {
			if inverse {
				return p.Inverse(dst, src)
			}
			return p.Forward(dst, src)
		})
	case scalar.ComplexDouble:
		p, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, err
		}
		k = ndfft.Kernel[complex128](func(dst, src []complex128, inverse bool) error {
			if inverse {
				return p.Inverse(dst, src)
			}
			return p.Forward(dst, src)
		})
	default:
		scalar.Unreachable(kind)
	}
	return k.(ndfft.Kernel[C]), nil
}

func (e *engine[F, C]) run(dir plan.Direction, in, out any, inPlace bool, batch int, scale float64) error {
	if !e.isReal {
		return e.runComplex(dir, in.([]C), out, inPlace, batch, scale)
	}

	width := e.dims[len(e.dims)-1]
	spatial := ndfft.Compact(e.dims)
	if inPlace {
		spatial.Pitch = layout.RealPitch(width)
	}
	half := spatial.Half()

	if dir == plan.Forward {
		src := in.([]F)[:batch*spatial.Len()]
		var dst []C
		if inPlace {
			dst = layout.Reinterpret[F, C](src)
		} else {
			dst = out.([]C)
		}
		return ndfft.Batches(batch, spatial.Len(), half.Len(), func(inOff, outOff int) error {
			o := dst[outOff : outOff+half.Len()]
			if err := ndfft.RealForward(e.rk, e.kernels, src[inOff:inOff+spatial.Len()], spatial, o, half); err != nil {
				return err
			}
			ndfft.Scale(o, len(o), scale)
			return nil
		})
	}

	src := in.([]C)[:batch*half.Len()]
	var dst []F
	if inPlace {
		dst = layout.Reinterpret[C, F](src)
	} else {
		dst = out.([]F)
	}
	return ndfft.Batches(batch, half.Len(), spatial.Len(), func(inOff, outOff int) error {
		o := dst[outOff : outOff+spatial.Len()]
		if err := ndfft.RealBackward(e.rk, e.kernels, src[inOff:inOff+half.Len()], half, o, spatial); err != nil {
			return err
		}
		ndfft.Scale(o, len(o), scale)
		return nil
	})
}

func (e *engine[F, C]) runComplex(dir plan.Direction, src []C, out any, inPlace bool, batch int, scale float64) error {
	dst := src
	if !inPlace {
		dst = out.([]C)
	}
	grid := ndfft.Compact(e.dims)
	n := grid.Len()
	return ndfft.Batches(batch, n, n, func(inOff, outOff int) error {
		o := dst[outOff : outOff+n]
		if !inPlace {
			copy(o, src[inOff:inOff+n])
		}
		if err := ndfft.Complex(e.kernels, o, grid, dir == plan.Backward); err != nil {
			return err
		}
		ndfft.Scale(o, n, scale)
		return nil
	})
}
