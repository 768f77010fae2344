package directed

import (
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// widenReal returns x as float64, copying only when x is single precision.
func widenReal[T scalar.Scalar](x []T) ([]float64, bool) {
	switch v := any(x).(type) {
	case []float64:
		return v, false
	case []float32:
		w := make([]float64, len(v))
		scalar.PromoteReal(w, v)
		return w, true
	}
	scalar.Unreachable(scalar.KindOf[T]())
	return nil, false
}

// widenComplex returns x as complex128, copying only when x is single
// precision.
func widenComplex[T scalar.Scalar](x []T) ([]complex128, bool) {
	switch v := any(x).(type) {
	case []complex128:
		return v, false
	case []complex64:
		w := make([]complex128, len(v))
		scalar.Promote(w, v)
		return w, true
	}
	scalar.Unreachable(scalar.KindOf[T]())
	return nil, false
}

// complexTarget returns x itself when it is complex128, otherwise a new
// buffer of the same length that must be narrowed into x afterwards.
func complexTarget[T scalar.Scalar](x []T) ([]complex128, bool) {
	if v, ok := any(x).([]complex128); ok {
		return v, false
	}
	return make([]complex128, len(x)), true
}

// realTarget is [complexTarget] for real output.
func realTarget[T scalar.Scalar](x []T) ([]float64, bool) {
	if v, ok := any(x).([]float64); ok {
		return v, false
	}
	return make([]float64, len(x)), true
}

func storeReal[T scalar.Scalar](dst []T, src []float64) {
	switch d := any(dst).(type) {
	case []float32:
		scalar.DemoteReal(d, src)
	case []float64:
		copy(d, src)
	default:
		scalar.Unreachable(scalar.KindOf[T]())
	}
}
