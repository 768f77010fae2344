package scalar

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ToComplex widens real samples into complex elements with zero imaginary
// part. dst must hold at least len(src) elements.
func ToComplex[F Float, C Complex](dst []C, src []F) {
	switch d := any(dst).(type) {
	case []complex64:
		for i, v := range src {
			d[i] = complex(float32(v), 0)
		}
	case []complex128:
		for i, v := range src {
			d[i] = complex(float64(v), 0)
		}
	default:
		panic(fmt.Sprintf("scalar: unreachable complex slice %T", dst))
	}
}

// RealParts stores real(src[i]) into dst[i].
func RealParts[C Complex, F Float](dst []F, src []C) {
	switch s := any(src).(type) {
	case []complex64:
		for i, v := range s {
			dst[i] = F(real(v))
		}
	case []complex128:
		for i, v := range s {
			dst[i] = F(real(v))
		}
	default:
		panic(fmt.Sprintf("scalar: unreachable complex slice %T", src))
	}
}

// Conj conjugates x in place.
func Conj[C Complex](x []C) {
	switch s := any(x).(type) {
	case []complex64:
		for i, v := range s {
			s[i] = complex(real(v), -imag(v))
		}
	case []complex128:
		for i, v := range s {
			s[i] = cmplx.Conj(v)
		}
	default:
		panic(fmt.Sprintf("scalar: unreachable complex slice %T", x))
	}
}

// Promote widens any scalar slice to complex128, the native element type of
// double-precision complex kernels.
func Promote[T Scalar](dst []complex128, src []T) {
	switch s := any(src).(type) {
	case []float32:
		for i, v := range s {
			dst[i] = complex(float64(v), 0)
		}
	case []float64:
		for i, v := range s {
			dst[i] = complex(v, 0)
		}
	case []complex64:
		for i, v := range s {
			dst[i] = complex128(v)
		}
	case []complex128:
		copy(dst, s)
	default:
		panic(fmt.Sprintf("scalar: unreachable slice %T", src))
	}
}

// Demote narrows complex128 values into dst. Real destinations keep the
// real part only.
func Demote[T Scalar](dst []T, src []complex128) {
	switch d := any(dst).(type) {
	case []float32:
		for i, v := range src {
			d[i] = float32(real(v))
		}
	case []float64:
		for i, v := range src {
			d[i] = real(v)
		}
	case []complex64:
		for i, v := range src {
			d[i] = complex64(v)
		}
	case []complex128:
		copy(d, src)
	default:
		panic(fmt.Sprintf("scalar: unreachable slice %T", dst))
	}
}

// PromoteReal widens real samples to float64.
func PromoteReal[F Float](dst []float64, src []F) {
	for i, v := range src {
		dst[i] = float64(v)
	}
}

// DemoteReal narrows float64 samples into dst.
func DemoteReal[F Float](dst []F, src []float64) {
	for i, v := range src {
		dst[i] = F(v)
	}
}

// Scale multiplies every element of x by s.
func Scale[T Scalar](x []T, s float64) {
	switch v := any(x).(type) {
	case []float32:
		f := float32(s)
		for i := range v {
			v[i] *= f
		}
	case []float64:
		for i := range v {
			v[i] *= s
		}
	case []complex64:
		c := complex(float32(s), 0)
		for i := range v {
			v[i] *= c
		}
	case []complex128:
		c := complex(s, 0)
		for i := range v {
			v[i] *= c
		}
	default:
		panic(fmt.Sprintf("scalar: unreachable slice %T", x))
	}
}

// Abs returns |v| in double precision.
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	panic(fmt.Sprintf("scalar: unreachable element %T", v))
}

// Epsilon returns the machine epsilon of T's precision.
func Epsilon[T Scalar]() float64 {
	if KindOf[T]().Precision() == Single {
		return float64(math.Nextafter32(1, 2) - 1)
	}
	return math.Nextafter(1, 2) - 1
}
