package vec

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// Add stores a[i] + b[i] into y[i] for i in [0, n).
func Add[T scalar.Scalar](n int, a, b, y []T) {
	if n <= 0 {
		return
	}
	a, b, y = a[:n], b[:n], y[:n]
	if fa, fb, fy, ok := doubleView(a, b, y); ok {
		vecmath.AddBlock(fy, fa, fb)
		return
	}
	for i := range y {
		y[i] = a[i] + b[i]
	}
}

// Sub stores a[i] - b[i] into y[i].
func Sub[T scalar.Scalar](n int, a, b, y []T) {
	if n <= 0 {
		return
	}
	a, b, y = a[:n], b[:n], y[:n]
	for i := range y {
		y[i] = a[i] - b[i]
	}
}

// Mul stores a[i] * b[i] into y[i].
func Mul[T scalar.Scalar](n int, a, b, y []T) {
	if n <= 0 {
		return
	}
	a, b, y = a[:n], b[:n], y[:n]
	if fy, ok := any(y).([]float64); ok {
		vecmath.MulBlock(fy, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range y {
		y[i] = a[i] * b[i]
	}
}

// Div stores a[i] / b[i] into y[i].
func Div[T scalar.Scalar](n int, a, b, y []T) {
	if n <= 0 {
		return
	}
	a, b, y = a[:n], b[:n], y[:n]
	for i := range y {
		y[i] = a[i] / b[i]
	}
}

// SelfAdd accumulates y[i] += x[i].
func SelfAdd[T scalar.Scalar](n int, x, y []T) {
	if n <= 0 {
		return
	}
	x, y = x[:n], y[:n]
	if fx, _, fy, ok := doubleView(x, x, y); ok {
		vecmath.AddBlockInPlace(fy, fx)
		return
	}
	for i := range y {
		y[i] += x[i]
	}
}

// SelfSub computes y[i] -= x[i].
func SelfSub[T scalar.Scalar](n int, x, y []T) {
	Sub(n, y, x, y)
}

// SelfMul computes y[i] *= x[i].
func SelfMul[T scalar.Scalar](n int, x, y []T) {
	if n <= 0 {
		return
	}
	x, y = x[:n], y[:n]
	if fy, ok := any(y).([]float64); ok {
		vecmath.MulBlockInPlace(fy, any(x).([]float64))
		return
	}
	for i := range y {
		y[i] *= x[i]
	}
}

// SelfDiv computes y[i] /= x[i].
func SelfDiv[T scalar.Scalar](n int, x, y []T) {
	Div(n, y, x, y)
}

// AddScalar adds a to the first n elements of x.
func AddScalar[T scalar.Scalar](n int, a T, x []T) {
	for i := range x[:max(n, 0)] {
		x[i] += a
	}
}

// SubScalar subtracts a from the first n elements of x.
func SubScalar[T scalar.Scalar](n int, a T, x []T) {
	AddScalar(n, -a, x)
}

// MulScalar multiplies the first n elements of x by a.
func MulScalar[T scalar.Scalar](n int, a T, x []T) {
	if n <= 0 {
		return
	}
	x = x[:n]
	switch v := any(x).(type) {
	case []float64:
		vecmath.ScaleBlockInPlace(v, any(a).(float64))
		return
	case []complex128:
		if c := any(a).(complex128); imag(c) == 0 {
			vecmath.ScaleBlockInPlace(layout.Reinterpret[complex128, float64](v), real(c))
			return
		}
	}
	for i := range x {
		x[i] *= a
	}
}

// DivScalar divides the first n elements of x by a.
func DivScalar[T scalar.Scalar](n int, a T, x []T) {
	MulScalar(n, 1/a, x)
}

// doubleView returns float64 views of three double-precision slices, with
// complex128 data viewed as interleaved real and imaginary parts.
func doubleView[T scalar.Scalar](a, b, y []T) (fa, fb, fy []float64, ok bool) {
	switch v := any(y).(type) {
	case []float64:
		return any(a).([]float64), any(b).([]float64), v, true
	case []complex128:
		return layout.Reinterpret[complex128, float64](any(a).([]complex128)),
			layout.Reinterpret[complex128, float64](any(b).([]complex128)),
			layout.Reinterpret[complex128, float64](v), true
	}
	return nil, nil, nil, false
}
