package layout

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// CopyBatchStrided copies batch runs of n elements. Run b reads
// x[b*strideX + i*incX] and writes y[b*strideY + i*incY] for i in [0, n).
// Non-positive n or batch copy nothing.
func CopyBatchStrided[T any](n int, x []T, incX, strideX int, y []T, incY, strideY int, batch int) {
	if n <= 0 || batch <= 0 {
		return
	}
	if incX == 1 && incY == 1 {
		for b := 0; b < batch; b++ {
			copy(y[b*strideY:b*strideY+n], x[b*strideX:b*strideX+n])
		}
		return
	}
	for b := 0; b < batch; b++ {
		xs := x[b*strideX:]
		ys := y[b*strideY:]
		for i := 0; i < n; i++ {
			ys[i*incY] = xs[i*incX]
		}
	}
}

// CropImage copies the rectangle starting at inOffset of the input image
// into the output image at outOffset. The copied extent is the smaller of
// the remaining columns (and rows) on either side.
//
// Copying a smaller image into a larger one is always safe. Copying a
// larger image into a smaller one copies only what fits from the offset
// onward; the caller must size the destination region to match when the
// whole input matters. Nothing reports the elements left out.
func CropImage[T any](out []T, outShape, outOffset Vec2, in []T, inShape, inOffset Vec2) {
	cropStep(out, outShape, outOffset, 1, in, inShape, inOffset, 1)
}

func cropStep[T any](out []T, outShape, outOffset Vec2, stepOut int, in []T, inShape, inOffset Vec2, stepIn int) {
	cols := min(ceilDiv(inShape.X-inOffset.X, stepIn), ceilDiv(outShape.X-outOffset.X, stepOut))
	rows := min(inShape.Y-inOffset.Y, outShape.Y-outOffset.Y)
	if cols <= 0 || rows <= 0 {
		return
	}
	pIn := inOffset.Y*inShape.X + inOffset.X
	pOut := outOffset.Y*outShape.X + outOffset.X
	CopyBatchStrided(cols, in[pIn:], stepIn, inShape.X, out[pOut:], stepOut, outShape.X, rows)
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// CropTo is [CropImage] between buffers of different element types. Both
// types are viewed as runs of the smaller type; the X extents and offsets
// are scaled by the element-size ratio and the larger type is read or
// written with a matching step. Extracting the real plane of a complex
// image is CropTo[complex64, float32].
//
// One element size must be a whole multiple of the other, and only one of
// the two may be the larger type; anything else panics.
func CropTo[From, To any](out []To, outShape, outOffset Vec2, in []From, inShape, inOffset Vec2) {
	fromSize := int(unsafe.Sizeof(*new(From)))
	toSize := int(unsafe.Sizeof(*new(To)))
	unit := min(fromSize, toSize)
	countFrom, countTo := fromSize/unit, toSize/unit
	if countFrom*unit != fromSize || countTo*unit != toSize || (countFrom != 1 && countTo != 1) {
		panic(fmt.Sprintf("layout: cannot crop %T into %T", *new(From), *new(To)))
	}

	outShape.X *= countTo
	outOffset.X *= countTo
	inShape.X *= countFrom
	inOffset.X *= countFrom

	switch unit {
	case 4:
		cropAs[float32](out, outShape, outOffset, countTo, in, inShape, inOffset, countFrom)
	case 8:
		cropAs[float64](out, outShape, outOffset, countTo, in, inShape, inOffset, countFrom)
	case 16:
		cropAs[complex128](out, outShape, outOffset, countTo, in, inShape, inOffset, countFrom)
	default:
		panic(fmt.Sprintf("layout: unsupported element size %d", unit))
	}
}

func cropAs[U, From, To any](out []To, outShape, outOffset Vec2, stepOut int, in []From, inShape, inOffset Vec2, stepIn int) {
	cropStep(Reinterpret[To, U](out), outShape, outOffset, stepOut, Reinterpret[From, U](in), inShape, inOffset, stepIn)
}

// Part selects a component of complex data.
type Part int

const (
	// RealPart selects the real component.
	RealPart Part = iota
	// ImagPart selects the imaginary component.
	ImagPart
)

// Component copies one component of a complex image of the given shape into
// the real image dst.
func Component[C scalar.Complex, F scalar.Float](dst []F, src []C, shape Vec2, part Part) error {
	if err := scalar.Pair[F, C](); err != nil {
		return err
	}
	n := shape.X * shape.Y
	if len(dst) < n || len(src) < n {
		return fmt.Errorf("%w: need %d elements", ErrBufferTooSmall, n)
	}
	if n == 0 {
		return nil
	}
	planes := Reinterpret[C, F](src)
	offset := 0
	if part == ImagPart {
		offset = 1
	}
	CopyBatchStrided(shape.X, planes[offset:], 2, 2*shape.X, dst, 1, shape.X, shape.Y)
	return nil
}
