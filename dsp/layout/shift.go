package layout

import "slices"

// FFTShift swaps the quadrants of a width x height row-major image so the
// zero-frequency element moves to (height/2, width/2). It matches numpy's
// fftshift on both axes, including odd sizes.
//
// Even sizes swap quadrants in place. Odd sizes have unequal quadrants, so
// the left ceil(width/2) columns are parked in a temporary buffer first.
// 1xN and Nx1 images reduce to rotating the single axis by half its length.
func FFTShift[T any](img []T, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width%2 == 0 && height%2 == 0 {
		fftShiftEven(img, width, height)
		return
	}

	halfX := (width + 1) / 2
	halfY := (height + 1) / 2

	a := 0
	b := halfX
	c := (height - halfY) * width
	d := halfY*width + halfX

	temp := make([]T, halfX*height)
	copyBlock(halfX, img, a, width, temp, 0, halfX, height)

	copyBlock(width-halfX, img, b, width, img, c, width, halfY)
	copyBlock(width-halfX, img, d, width, img, a, width, height-halfY)

	b = width - halfX
	d = (height-halfY)*width + (width - halfX)
	copyBlock(halfX, temp, 0, halfX, img, d, width, halfY)
	copyBlock(halfX, temp, halfX*halfY, halfX, img, b, width, height-halfY)
}

// copyBlock copies a cols x rows block between offsets of two row-major
// buffers. Empty blocks touch nothing, so offsets past the end are allowed.
func copyBlock[T any](cols int, src []T, srcOff, srcStride int, dst []T, dstOff, dstStride, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	CopyBatchStrided(cols, src[srcOff:], 1, srcStride, dst[dstOff:], 1, dstStride, rows)
}

func fftShiftEven[T any](img []T, width, height int) {
	halfX := width / 2
	halfY := height / 2

	a := 0
	b := halfX
	c := halfY * width
	d := halfY*width + halfX
	for i := 0; i < halfY; i++ {
		swapRun(img[a:a+halfX], img[d:d+halfX])
		swapRun(img[b:b+halfX], img[c:c+halfX])
		a += width
		b += width
		c += width
		d += width
	}
}

func swapRun[T any](x, y []T) {
	for i := range x {
		x[i], y[i] = y[i], x[i]
	}
}

// IFFTShift undoes [FFTShift] for any size. For even sizes it is the same
// swap; for odd sizes two forward shifts do not restore the input, this does.
func IFFTShift[T any](img []T, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width%2 == 0 && height%2 == 0 {
		fftShiftEven(img, width, height)
		return
	}
	// Reversing the flat buffer mirrors both axes; fftshift under that
	// mirror shifts by floor(n/2) instead of ceil(n/2).
	n := width * height
	slices.Reverse(img[:n])
	FFTShift(img, width, height)
	slices.Reverse(img[:n])
}

// CenterCornerFlip swaps the four floor(width/2) x floor(height/2) corner
// quadrants diagonally. For odd sizes the middle row and column stay put.
func CenterCornerFlip[T any](img []T, width, height int) {
	halfX := width / 2
	halfY := height / 2

	a := 0
	b := halfX + width%2
	c := (halfY + height%2) * width
	d := (halfY+height%2)*width + halfX + width%2
	for i := 0; i < halfY; i++ {
		swapRun(img[a:a+halfX], img[d:d+halfX])
		swapRun(img[b:b+halfX], img[c:c+halfX])
		a += width
		b += width
		c += width
		d += width
	}
}
