package layout

import (
	"fmt"

	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// SpectrumLen returns the number of complex bins a real transform of
// length n produces along its fastest axis.
func SpectrumLen(n int) int {
	return n/2 + 1
}

// RealPitch returns the padded row length, in real elements, that lets a
// real row of length n hold its own half spectrum in place.
func RealPitch(n int) int {
	return 2 * SpectrumLen(n)
}

// MemoryLayout returns the row pitch and row count of an array of the given
// kind in image order (fastest axis first). Real kinds are padded to
// [RealPitch] so the buffer can host an in-place real transform; the
// elements past dims[0] in each row are reserved, not live data.
func MemoryLayout(kind scalar.Kind, dims Shape) (pitch, rows int) {
	if len(dims) == 0 {
		return 0, 0
	}
	rows = Shape(dims[1:]).NumElements()
	if kind.Domain() == scalar.RealDomain {
		return RealPitch(dims[0]), rows
	}
	return dims[0], rows
}

// PaddedLen returns the element count of a padded real buffer for dims in
// image order.
func PaddedLen(dims Shape) int {
	pitch, rows := MemoryLayout(scalar.RealDouble, dims)
	return pitch * rows
}

// PadRows copies rows of width elements from the compact src into dst
// whose rows are pitch elements apart. The reserved tail of every dst row
// is left untouched.
func PadRows[T any](dst, src []T, width, pitch, rows int) error {
	if pitch < width {
		return fmt.Errorf("%w: pitch %d < width %d", ErrInvalidShape, pitch, width)
	}
	if len(src) < width*rows || len(dst) < pitch*rows {
		return fmt.Errorf("%w: need %d compact and %d padded elements", ErrBufferTooSmall, width*rows, pitch*rows)
	}
	CropImage(dst, Vec2{X: pitch, Y: rows}, Vec2{}, src, Vec2{X: width, Y: rows}, Vec2{})
	return nil
}

// UnpadRows is the inverse of [PadRows].
func UnpadRows[T any](dst, src []T, width, pitch, rows int) error {
	if pitch < width {
		return fmt.Errorf("%w: pitch %d < width %d", ErrInvalidShape, pitch, width)
	}
	if len(dst) < width*rows || len(src) < pitch*rows {
		return fmt.Errorf("%w: need %d compact and %d padded elements", ErrBufferTooSmall, width*rows, pitch*rows)
	}
	CropImage(dst, Vec2{X: width, Y: rows}, Vec2{}, src, Vec2{X: pitch, Y: rows}, Vec2{})
	return nil
}
