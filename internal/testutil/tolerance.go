package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance, |got-want| for complex
// elements).
func RequireSliceNearlyEqual[T scalar.Scalar](t *testing.T, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := scalar.Abs(got[i] - want[i])
		if diff > eps || math.IsNaN(diff) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[T scalar.Scalar](t *testing.T, data []T) {
	t.Helper()
	for i, v := range data {
		a := scalar.Abs(v)
		if math.IsNaN(a) || math.IsInf(a, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T scalar.Scalar](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := scalar.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// Tolerance returns the round-trip error bound for a transform of n
// elements in T's precision: epsilon scaled by n*log2(n) with headroom,
// times the magnitude of the data.
func Tolerance[T scalar.Scalar](n int, magnitude float64) float64 {
	if n < 2 {
		n = 2
	}
	if magnitude < 1 {
		magnitude = 1
	}
	return 64 * scalar.Epsilon[T]() * float64(n) * math.Log2(float64(n)) * magnitude
}
