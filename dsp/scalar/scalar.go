package scalar

import (
	"fmt"
	"unsafe"
)

// Float is the constraint for real element types.
type Float interface {
	float32 | float64
}

// Complex is the constraint for complex element types.
type Complex interface {
	complex64 | complex128
}

// Scalar is the union of all supported element types.
type Scalar interface {
	Float | Complex
}

// Precision is the floating-point width of a scalar kind.
type Precision int

const (
	// Single is IEEE-754 binary32 (float32, complex64).
	Single Precision = iota
	// Double is IEEE-754 binary64 (float64, complex128).
	Double
)

// String returns "single" or "double".
func (p Precision) String() string {
	switch p {
	case Single:
		return "single"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// Domain tells real from complex element types.
type Domain int

const (
	// RealDomain elements carry one component.
	RealDomain Domain = iota
	// ComplexDomain elements carry a real and an imaginary component.
	ComplexDomain
)

// String returns "real" or "complex".
func (d Domain) String() string {
	switch d {
	case RealDomain:
		return "real"
	case ComplexDomain:
		return "complex"
	default:
		return fmt.Sprintf("Domain(%d)", int(d))
	}
}

// Kind identifies one of the four supported scalar types.
type Kind int

const (
	// RealSingle is float32.
	RealSingle Kind = iota
	// RealDouble is float64.
	RealDouble
	// ComplexSingle is complex64.
	ComplexSingle
	// ComplexDouble is complex128.
	ComplexDouble
)

// Kinds lists every supported kind in dispatch order (s, d, c, z).
var Kinds = [...]Kind{RealSingle, RealDouble, ComplexSingle, ComplexDouble}

// Precision returns the precision of k.
func (k Kind) Precision() Precision {
	switch k {
	case RealSingle, ComplexSingle:
		return Single
	case RealDouble, ComplexDouble:
		return Double
	}
	Unreachable(k)
	return 0
}

// Domain returns the domain of k.
func (k Kind) Domain() Domain {
	switch k {
	case RealSingle, RealDouble:
		return RealDomain
	case ComplexSingle, ComplexDouble:
		return ComplexDomain
	}
	Unreachable(k)
	return 0
}

// Real returns the real kind with the same precision as k.
func (k Kind) Real() Kind {
	return KindFor(k.Precision(), RealDomain)
}

// Complex returns the complex kind with the same precision as k.
func (k Kind) Complex() Kind {
	return KindFor(k.Precision(), ComplexDomain)
}

// Size returns the element size in bytes.
func (k Kind) Size() int {
	switch k {
	case RealSingle:
		return 4
	case RealDouble, ComplexSingle:
		return 8
	case ComplexDouble:
		return 16
	}
	Unreachable(k)
	return 0
}

// Suffix returns the BLAS-style letter of the native entry point
// (s, d, c or z).
func (k Kind) Suffix() string {
	switch k {
	case RealSingle:
		return "s"
	case RealDouble:
		return "d"
	case ComplexSingle:
		return "c"
	case ComplexDouble:
		return "z"
	}
	Unreachable(k)
	return ""
}

// String returns the Go type name of k.
func (k Kind) String() string {
	switch k {
	case RealSingle:
		return "float32"
	case RealDouble:
		return "float64"
	case ComplexSingle:
		return "complex64"
	case ComplexDouble:
		return "complex128"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindFor combines a precision and a domain into a kind.
func KindFor(p Precision, d Domain) Kind {
	switch {
	case p == Single && d == RealDomain:
		return RealSingle
	case p == Double && d == RealDomain:
		return RealDouble
	case p == Single && d == ComplexDomain:
		return ComplexSingle
	case p == Double && d == ComplexDomain:
		return ComplexDouble
	}
	panic(fmt.Sprintf("scalar: unreachable precision/domain pair (%v, %v)", p, d))
}

// KindOf returns the kind of T.
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return RealSingle
	case float64:
		return RealDouble
	case complex64:
		return ComplexSingle
	case complex128:
		return ComplexDouble
	}
	panic(fmt.Sprintf("scalar: unreachable element type %T", zero))
}

// Info is the dispatch record of one scalar type.
type Info struct {
	Kind      Kind
	Precision Precision
	Domain    Domain
	Size      int
	Suffix    string
}

// Dispatch returns the dispatch record of T. It is pure and cannot fail for
// a type admitted by [Scalar].
func Dispatch[T Scalar]() Info {
	k := KindOf[T]()
	return Info{
		Kind:      k,
		Precision: k.Precision(),
		Domain:    k.Domain(),
		Size:      int(unsafe.Sizeof(*new(T))),
		Suffix:    k.Suffix(),
	}
}

// IsReal reports whether T is a real type.
func IsReal[T Scalar]() bool {
	return KindOf[T]().Domain() == RealDomain
}

// Pair checks that F and C have the same precision.
func Pair[F Float, C Complex]() error {
	f, c := KindOf[F](), KindOf[C]()
	if f.Precision() != c.Precision() {
		return fmt.Errorf("scalar: %v and %v differ in precision", f, c)
	}
	return nil
}

// Unreachable panics for a kind outside the closed set.
func Unreachable(k Kind) {
	panic(fmt.Sprintf("scalar: unreachable kind %v", k))
}
