package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// DeterministicNoise returns n uniform samples in [-amplitude, amplitude)
// from a fixed seed. Complex types get independent real and imaginary
// parts.
func DeterministicNoise[T scalar.Scalar](seed int64, amplitude float64, n int) []T {
	rng := rand.New(rand.NewSource(seed))
	wide := make([]complex128, n)
	complexKind := scalar.KindOf[T]().Domain() == scalar.ComplexDomain
	for i := range wide {
		re := (rng.Float64()*2 - 1) * amplitude
		im := 0.0
		if complexKind {
			im = (rng.Float64()*2 - 1) * amplitude
		}
		wide[i] = complex(re, im)
	}
	out := make([]T, n)
	scalar.Demote(out, wide)
	return out
}

// Ramp returns i/n for i in [0, n), the test image the round-trip checks use.
func Ramp[T scalar.Scalar](n int) []T {
	wide := make([]complex128, n)
	for i := range wide {
		wide[i] = complex(float64(i)/float64(n), 0)
	}
	out := make([]T, n)
	scalar.Demote(out, wide)
	return out
}

// Sequence returns 0, 1, ..., n-1.
func Sequence[T scalar.Scalar](n int) []T {
	wide := make([]complex128, n)
	for i := range wide {
		wide[i] = complex(float64(i), 0)
	}
	out := make([]T, n)
	scalar.Demote(out, wide)
	return out
}

// Filled returns n copies of v.
func Filled[T any](n int, v T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}
