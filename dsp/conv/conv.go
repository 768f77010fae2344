package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
	"github.com/cwbudde/algo-ndfft/dsp/vec"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
	ErrRankMismatch   = errors.New("conv: rank mismatch")
)

// Mode specifies the output shape of a convolution.
type Mode int

const (
	// ModeFull returns every overlap, a+b-1 along each axis.
	ModeFull Mode = iota

	// ModeSame returns the shape of the first input, centered.
	ModeSame

	// ModeValid returns only positions where the kernel fits entirely,
	// a-b+1 along each axis.
	ModeValid
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func check[F scalar.Float](a []F, aDims layout.Shape, b []F, bDims layout.Shape) error {
	if len(a) == 0 {
		return ErrEmptyInput
	}
	if len(b) == 0 {
		return ErrEmptyKernel
	}
	if err := aDims.Validate(); err != nil {
		return err
	}
	if err := bDims.Validate(); err != nil {
		return err
	}
	if len(aDims) != len(bDims) {
		return fmt.Errorf("%w: %d vs %d axes", ErrRankMismatch, len(aDims), len(bDims))
	}
	if len(a) < aDims.NumElements() || len(b) < bDims.NumElements() {
		return fmt.Errorf("%w: %d and %d elements for %s and %s", ErrLengthMismatch, len(a), len(b), aDims, bDims)
	}
	return nil
}

// FullDims returns the dims of a full linear convolution.
func FullDims(aDims, bDims layout.Shape) layout.Shape {
	out := make(layout.Shape, len(aDims))
	for i := range out {
		out[i] = aDims[i] + bDims[i] - 1
	}
	return out
}

// Direct performs direct linear convolution of a and b in ModeFull.
func Direct[F scalar.Float](a []F, aDims layout.Shape, b []F, bDims layout.Shape) ([]F, layout.Shape, error) {
	if err := check(a, aDims, b, bDims); err != nil {
		return nil, nil, err
	}
	outDims := FullDims(aDims, bDims)
	out := make([]F, outDims.NumElements())
	outStrides := outDims.Strides(layout.ColMajor)

	// Each row of b is scaled into a contiguous run of out.
	bw := bDims[0]
	bRows := bDims.NumElements() / bw
	bOuter := layout.Shape(bDims[1:])
	tmp := make([]F, bw)
	for i, av := range a[:aDims.NumElements()] {
		if av == 0 {
			continue
		}
		base := offset(aDims, i, outStrides)
		for r := range bRows {
			dst := base + offset(bOuter, r, outStrides[1:])
			copy(tmp, b[r*bw:(r+1)*bw])
			vec.MulScalar(bw, av, tmp)
			vec.SelfAdd(bw, tmp, out[dst:dst+bw])
		}
	}
	return out, outDims, nil
}

// offset maps a linear index over dims (image order) onto strides.
func offset(dims layout.Shape, idx int, strides []int) int {
	off := 0
	for axis, d := range dims {
		off += (idx % d) * strides[axis]
		idx /= d
	}
	return off
}

// Convolve performs linear convolution through real FFTs of the padded
// inputs and returns the part of the result selected by mode.
func Convolve[F scalar.Float](a []F, aDims layout.Shape, b []F, bDims layout.Shape, mode Mode) ([]F, layout.Shape, error) {
	if err := check(a, aDims, b, bDims); err != nil {
		return nil, nil, err
	}
	fullDims := FullDims(aDims, bDims)
	pa := make([]F, fullDims.NumElements())
	pb := make([]F, len(pa))
	Embed(pa, fullDims, a, aDims, nil)
	Embed(pb, fullDims, b, bDims, nil)

	full, err := product(pa, pb, fullDims, spectralMul)
	if err != nil {
		return nil, nil, err
	}
	return Trim(full, aDims, bDims, mode)
}

// Trim extracts the mode's region of a full convolution of aDims with
// bDims.
func Trim[F scalar.Float](full []F, aDims, bDims layout.Shape, mode Mode) ([]F, layout.Shape, error) {
	fullDims := FullDims(aDims, bDims)
	start := make([]int, len(aDims))
	outDims := make(layout.Shape, len(aDims))
	switch mode {
	case ModeFull:
		return full, fullDims, nil
	case ModeSame:
		for i := range aDims {
			start[i] = (bDims[i] - 1) / 2
			outDims[i] = aDims[i]
		}
	case ModeValid:
		for i := range aDims {
			if aDims[i] < bDims[i] {
				return nil, nil, fmt.Errorf("%w: kernel %s larger than input %s", ErrLengthMismatch, bDims, aDims)
			}
			start[i] = bDims[i] - 1
			outDims[i] = aDims[i] - bDims[i] + 1
		}
	default:
		return nil, nil, fmt.Errorf("conv: unknown mode %v", mode)
	}
	out := make([]F, outDims.NumElements())
	Embed(out, outDims, full, fullDims, start)
	return out, outDims, nil
}

// Embed copies the overlap of src, shifted by -from, into dst. A nil from
// places src at the origin of dst. Elements of dst outside the overlap are
// left untouched.
func Embed[T any](dst []T, dstDims layout.Shape, src []T, srcDims layout.Shape, from []int) {
	if from == nil {
		from = make([]int, len(srcDims))
	}
	w := min(dstDims[0], srcDims[0]-from[0])
	if w <= 0 {
		return
	}
	dstOuter := layout.Shape(dstDims[1:])
	srcStrides := srcDims.Strides(layout.ColMajor)
	rows := dstOuter.NumElements()
	for r := range rows {
		off := from[0]
		idx := r
		inside := true
		for axis, d := range dstOuter {
			c := idx%d + from[axis+1]
			idx /= d
			if c >= srcDims[axis+1] {
				inside = false
				break
			}
			off += c * srcStrides[axis+1]
		}
		if !inside {
			continue
		}
		copy(dst[r*dstDims[0]:r*dstDims[0]+w], src[off:off+w])
	}
}

// CircularConvolve performs circular convolution of equally shaped a and
// b.
func CircularConvolve[F scalar.Float](a, b []F, dims layout.Shape) ([]F, error) {
	if err := check(a, dims, b, dims); err != nil {
		return nil, err
	}
	return product(a, b, dims, spectralMul)
}
