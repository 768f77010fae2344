package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestCopyBatchStrided(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	y := make([]float64, 8)
	// Two runs of two elements, every other input, packed contiguously.
	CopyBatchStrided(2, x, 2, 4, y, 1, 2, 2)
	assert.Equal(t, []float64{1, 3, 5, 7, 0, 0, 0, 0}, y)
}

func TestCopyBatchStridedNothingToCopy(t *testing.T) {
	t.Parallel()

	y := []float64{9}
	CopyBatchStrided(0, []float64{1}, 1, 1, y, 1, 1, 1)
	CopyBatchStrided(1, []float64{1}, 1, 1, y, 1, 1, 0)
	assert.Equal(t, []float64{9}, y)
}

func TestCropImageSmallIntoLarge(t *testing.T) {
	t.Parallel()

	in := seq(16)
	out := filled(36, -1)
	CropImage(out, Vec2{X: 6, Y: 6}, Vec2{X: 1, Y: 1}, in, Vec2{X: 4, Y: 4}, Vec2{})

	want := []float64{
		-1, -1, -1, -1, -1, -1,
		-1, 1, 2, 3, 4, -1,
		-1, 5, 6, 7, 8, -1,
		-1, 9, 10, 11, 12, -1,
		-1, 13, 14, 15, 16, -1,
		-1, -1, -1, -1, -1, -1,
	}
	assert.Equal(t, want, out)
}

func TestCropImageLargeIntoSmall(t *testing.T) {
	t.Parallel()

	in := seq(36)
	out := make([]float64, 16)
	CropImage(out, Vec2{X: 4, Y: 4}, Vec2{}, in, Vec2{X: 6, Y: 6}, Vec2{X: 2, Y: 2})

	want := []float64{
		15, 16, 17, 18,
		21, 22, 23, 24,
		27, 28, 29, 30,
		33, 34, 35, 36,
	}
	assert.Equal(t, want, out)
}

func TestCropImageClipsToOverlap(t *testing.T) {
	t.Parallel()

	in := seq(36)
	out := filled(4, -1)
	CropImage(out, Vec2{X: 2, Y: 2}, Vec2{X: 1, Y: 1}, in, Vec2{X: 6, Y: 6}, Vec2{})
	assert.Equal(t, []float64{-1, -1, -1, 1}, out)
}

func TestCropToRealPlane(t *testing.T) {
	t.Parallel()

	in := []complex64{1 + 10i, 2 + 20i, 3 + 30i, 4 + 40i, 5 + 50i, 6 + 60i}
	out := make([]float32, 6)
	CropTo(out, Vec2{X: 3, Y: 2}, Vec2{}, in, Vec2{X: 3, Y: 2}, Vec2{})
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, out)
}

func TestCropToRealIntoComplex(t *testing.T) {
	t.Parallel()

	in := []float64{1, 2, 3, 4}
	out := make([]complex128, 4)
	CropTo(out, Vec2{X: 2, Y: 2}, Vec2{}, in, Vec2{X: 2, Y: 2}, Vec2{})
	assert.Equal(t, []complex128{1, 2, 3, 4}, out)
}

func TestCropToPanicsOnIncompatibleSizes(t *testing.T) {
	t.Parallel()

	type triple [3]float32
	assert.Panics(t, func() {
		CropTo(make([]triple, 1), Vec2{X: 1, Y: 1}, Vec2{}, make([]complex64, 1), Vec2{X: 1, Y: 1}, Vec2{})
	})
}

func TestComponent(t *testing.T) {
	t.Parallel()

	src := []complex128{1 + 2i, 3 + 4i, 5 + 6i, 7 + 8i}
	re := make([]float64, 4)
	im := make([]float64, 4)
	require.NoError(t, Component(re, src, Vec2{X: 2, Y: 2}, RealPart))
	require.NoError(t, Component(im, src, Vec2{X: 2, Y: 2}, ImagPart))
	assert.Equal(t, []float64{1, 3, 5, 7}, re)
	assert.Equal(t, []float64{2, 4, 6, 8}, im)
}

func TestComponentErrors(t *testing.T) {
	t.Parallel()

	err := Component(make([]float32, 1), make([]complex64, 4), Vec2{X: 2, Y: 2}, RealPart)
	require.ErrorIs(t, err, ErrBufferTooSmall)

	err = Component(make([]float64, 4), make([]complex64, 4), Vec2{X: 2, Y: 2}, RealPart)
	require.Error(t, err)
}
