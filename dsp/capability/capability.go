package capability

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-ndfft/dsp/fft"
	"github.com/cwbudde/algo-ndfft/dsp/fft/plan"
	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
	"github.com/cwbudde/algo-ndfft/dsp/vec"
)

// Record lists the operations available for elements of type T.
type Record[T scalar.Scalar] struct {
	Name    string
	Enabled bool
	SIMD    cpu.SIMDLevel

	Add       func(n int, a, b, y []T)
	IntegralX func(shape layout.Vec2, img []T)
	IntegralY func(shape layout.Vec2, img []T)

	// SelfFFT transforms buf in place. Real buffers use padded rows
	// (layout.MemoryLayout) and hold the interleaved half spectrum after a
	// forward transform.
	SelfFFT func(dims layout.Shape, buf []T, dir plan.Direction) error
	// CrossFFT transforms from into to. The complex side of a real
	// transform is passed as interleaved real and imaginary parts.
	CrossFFT func(dims layout.Shape, from, to []T, dir plan.Direction) error
}

var (
	once    [len(scalar.Kinds)]sync.Once
	records [len(scalar.Kinds)]any
)

// CPU returns the process-wide record for T.
func CPU[T scalar.Scalar]() *Record[T] {
	k := scalar.KindOf[T]()
	once[k].Do(func() {
		records[k] = build[T](k, cpu.DetectFeatures())
	})
	return records[k].(*Record[T])
}

func build[T scalar.Scalar](k scalar.Kind, features cpu.Features) *Record[T] {
	var r any
	switch k {
	case scalar.RealSingle:
		r = realRecord[float32, complex64]()
	case scalar.RealDouble:
		r = realRecord[float64, complex128]()
	case scalar.ComplexSingle:
		r = complexRecord[complex64]()
	case scalar.ComplexDouble:
		r = complexRecord[complex128]()
	default:
		scalar.Unreachable(k)
	}

	rec := r.(*Record[T])
	rec.Name = fmt.Sprintf("cpu-%s", k.Suffix())
	rec.Enabled = true
	rec.SIMD = Level(features)
	rec.Add = vec.Add[T]
	rec.IntegralX = vec.IntegralX[T]
	rec.IntegralY = vec.IntegralY[T]
	return rec
}

// Level returns the widest SIMD level the vector kernels can use with
// the given features.
func Level(f cpu.Features) cpu.SIMDLevel {
	switch {
	case f.ForceGeneric:
		return cpu.SIMDNone
	case f.HasAVX2:
		return cpu.SIMDAVX2
	case f.HasSSE2:
		return cpu.SIMDSSE2
	case f.HasNEON:
		return cpu.SIMDNEON
	default:
		return cpu.SIMDNone
	}
}

func realRecord[F scalar.Float, C scalar.Complex]() *Record[F] {
	return &Record[F]{
		SelfFFT: func(dims layout.Shape, buf []F, dir plan.Direction) error {
			if dir == plan.Forward {
				t, err := fft.New[F, C](fft.Directed, dims, fft.WithInPlace())
				if err != nil {
					return err
				}
				defer t.Close()
				return t.Transform(buf, nil)
			}
			t, err := fft.New[C, F](fft.Directed, dims, fft.WithInPlace())
			if err != nil {
				return err
			}
			defer t.Close()
			return t.Transform(layout.Reinterpret[F, C](buf), nil)
		},
		CrossFFT: func(dims layout.Shape, from, to []F, dir plan.Direction) error {
			if dir == plan.Forward {
				t, err := fft.New[F, C](fft.Directed, dims)
				if err != nil {
					return err
				}
				defer t.Close()
				return t.Transform(from, layout.Reinterpret[F, C](to))
			}
			t, err := fft.New[C, F](fft.Directed, dims)
			if err != nil {
				return err
			}
			defer t.Close()
			return t.Transform(layout.Reinterpret[F, C](from), to)
		},
	}
}

func complexRecord[C scalar.Complex]() *Record[C] {
	return &Record[C]{
		SelfFFT: func(dims layout.Shape, buf []C, dir plan.Direction) error {
			t, err := fft.New[C, C](fft.Directed, dims, fft.WithDirection(dir), fft.WithInPlace())
			if err != nil {
				return err
			}
			defer t.Close()
			return t.Transform(buf, nil)
		},
		CrossFFT: func(dims layout.Shape, from, to []C, dir plan.Direction) error {
			t, err := fft.New[C, C](fft.Directed, dims, fft.WithDirection(dir))
			if err != nil {
				return err
			}
			defer t.Close()
			return t.Transform(from, to)
		},
	}
}
