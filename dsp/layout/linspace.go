package layout

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// Linspace fills p[:num] with start + i*step. Complex element types get a
// zero imaginary part.
func Linspace[T scalar.Scalar](p []T, num int, start, step float64) {
	if num <= 0 {
		return
	}
	idx := make([]float64, num)
	line := make([]float64, num)
	for i := range idx {
		idx[i] = float64(i)
		line[i] = start
	}
	vecmath.ScaleBlockInPlace(idx, step)
	vecmath.AddBlockInPlace(line, idx)

	switch dst := any(p).(type) {
	case []float64:
		copy(dst[:num], line)
	case []float32:
		scalar.DemoteReal(dst[:num], line)
	case []complex64:
		scalar.ToComplex(dst[:num], line)
	case []complex128:
		scalar.ToComplex(dst[:num], line)
	default:
		panic(fmt.Sprintf("layout: unreachable slice %T", p))
	}
}

// LinspaceND writes one line per axis back to back: num[0] samples of axis
// 0, then num[1] samples of axis 1, and so on. p must hold the sum of num.
func LinspaceND[T scalar.Scalar](p []T, num []int, start, step []float64) error {
	if len(start) != len(num) || len(step) != len(num) {
		return fmt.Errorf("%w: %d axes, %d starts, %d steps", ErrInvalidShape, len(num), len(start), len(step))
	}
	total := 0
	for _, n := range num {
		total += n
	}
	if len(p) < total {
		return fmt.Errorf("%w: need %d elements", ErrBufferTooSmall, total)
	}
	off := 0
	for i, n := range num {
		Linspace(p[off:], n, start[i], step[i])
		off += n
	}
	return nil
}

// Meshgrid writes the coordinates of every point of an N-D grid. Points are
// enumerated with axis 0 varying fastest and each point stores its N
// coordinates consecutively, so p must hold N*prod(num) values.
func Meshgrid[F scalar.Float](p []F, num []int, start, step []float64) error {
	shape := Shape(num)
	if err := shape.Validate(); err != nil {
		return err
	}
	ndim := len(num)
	total := shape.NumElements()
	if len(p) < ndim*total {
		return fmt.Errorf("%w: need %d elements", ErrBufferTooSmall, ndim*total)
	}

	sum := 0
	for _, n := range num {
		sum += n
	}
	lines := make([]F, sum)
	if err := LinspaceND(lines, num, start, step); err != nil {
		return err
	}
	axis := make([][]F, ndim)
	off := 0
	for d, n := range num {
		axis[d] = lines[off : off+n]
		off += n
	}

	out := 0
	for linear := 0; linear < total; linear++ {
		t := linear
		for d := 0; d < ndim; d++ {
			p[out] = axis[d][t%num[d]]
			t /= num[d]
			out++
		}
	}
	return nil
}
