package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-ndfft/dsp/layout"
)

func TestBinaryOpsDouble(t *testing.T) {
	t.Parallel()

	a := []float64{1, 2, 3, 4}
	b := []float64{4, 3, 2, 1}
	y := make([]float64, 4)

	Add(4, a, b, y)
	assert.Equal(t, []float64{5, 5, 5, 5}, y)
	Sub(4, a, b, y)
	assert.Equal(t, []float64{-3, -1, 1, 3}, y)
	Mul(4, a, b, y)
	assert.Equal(t, []float64{4, 6, 6, 4}, y)
	Div(4, a, b, y)
	assert.InDeltaSlice(t, []float64{0.25, 2.0 / 3, 1.5, 4}, y, 1e-15)
}

func TestBinaryOpsComplex(t *testing.T) {
	t.Parallel()

	a := []complex128{1 + 1i, 2 - 1i, 3}
	b := []complex128{1i, 1, 2 + 2i}
	y := make([]complex128, 3)

	Add(3, a, b, y)
	assert.Equal(t, []complex128{1 + 2i, 3 - 1i, 5 + 2i}, y)
	Mul(3, a, b, y)
	assert.Equal(t, []complex128{-1 + 1i, 2 - 1i, 6 + 6i}, y)

	s := []complex64{1 + 1i, 2}
	ys := make([]complex64, 2)
	Sub(2, s, s, ys)
	assert.Equal(t, []complex64{0, 0}, ys)
}

func TestPartialLength(t *testing.T) {
	t.Parallel()

	y := []float32{9, 9, 9}
	Add(2, []float32{1, 1, 1}, []float32{1, 1, 1}, y)
	assert.Equal(t, []float32{2, 2, 9}, y)

	Add(0, nil, nil, y)
	assert.Equal(t, []float32{2, 2, 9}, y)
}

func TestSelfOps(t *testing.T) {
	t.Parallel()

	y := []float64{1, 2, 3}
	SelfAdd(3, []float64{1, 1, 1}, y)
	assert.Equal(t, []float64{2, 3, 4}, y)
	SelfSub(3, []float64{2, 2, 2}, y)
	assert.Equal(t, []float64{0, 1, 2}, y)
	SelfMul(3, []float64{5, 5, 5}, y)
	assert.Equal(t, []float64{0, 5, 10}, y)
	SelfDiv(3, []float64{1, 5, 2}, y)
	assert.Equal(t, []float64{0, 1, 5}, y)

	c := []complex128{1, 1i}
	SelfAdd(2, []complex128{1i, 1}, c)
	assert.Equal(t, []complex128{1 + 1i, 1 + 1i}, c)
}

func TestScalarOps(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2, 3}
	AddScalar(3, 1.0, x)
	assert.Equal(t, []float64{2, 3, 4}, x)
	SubScalar(3, 2.0, x)
	assert.Equal(t, []float64{0, 1, 2}, x)
	MulScalar(3, 3.0, x)
	assert.Equal(t, []float64{0, 3, 6}, x)
	DivScalar(3, 3.0, x)
	assert.InDeltaSlice(t, []float64{0, 1, 2}, x, 1e-15)

	c := []complex128{1 + 2i, 2i}
	MulScalar(2, complex128(2), c)
	assert.Equal(t, []complex128{2 + 4i, 4i}, c)
	MulScalar(2, complex128(1i), c)
	assert.Equal(t, []complex128{-4 + 2i, -4}, c)

	f := []complex64{2, 4i}
	DivScalar(2, complex64(2), f)
	assert.Equal(t, []complex64{1, 2i}, f)
}

func TestIntegralY(t *testing.T) {
	t.Parallel()

	img := []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	IntegralY(layout.Vec2{X: 3, Y: 3}, img)
	assert.Equal(t, []float64{1, 2, 3, 5, 7, 9, 12, 15, 18}, img)
}

func TestIntegralX(t *testing.T) {
	t.Parallel()

	img := []complex64{
		1, 2, 3,
		1i, 1i, 1i,
	}
	IntegralX(layout.Vec2{X: 3, Y: 2}, img)
	assert.Equal(t, []complex64{1, 3, 6, 1i, 2i, 3i}, img)
}

func TestIntegralXManyRows(t *testing.T) {
	t.Parallel()

	const width, height = 5, 2000
	img := make([]float32, width*height)
	for i := range img {
		img[i] = 1
	}
	IntegralX(layout.Vec2{X: width, Y: height}, img)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if img[y*width+x] != float32(x+1) {
				t.Fatalf("img[%d][%d] = %v, want %d", y, x, img[y*width+x], x+1)
			}
		}
	}
}

func TestIntegralImage(t *testing.T) {
	t.Parallel()

	img := make([]float64, 12)
	for i := range img {
		img[i] = 1
	}
	shape := layout.Vec2{X: 4, Y: 3}
	IntegralX(shape, img)
	IntegralY(shape, img)
	// Each entry counts the ones above and to the left, inclusive.
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, float64((x+1)*(y+1)), img[y*4+x])
		}
	}
}
