package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffComplex(t *testing.T) {
	a := []complex128{1 + 1i, 2}
	b := []complex128{1 + 1i, 2 + 3i}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if d != 3 {
		t.Fatalf("MaxAbsDiff = %v, want 3", d)
	}
}

func TestToleranceScalesWithPrecision(t *testing.T) {
	single := Tolerance[float32](64, 1)
	double := Tolerance[complex128](64, 1)
	if single <= double {
		t.Fatalf("single tolerance %v should exceed double tolerance %v", single, double)
	}
	if Tolerance[float64](1024, 1) <= Tolerance[float64](8, 1) {
		t.Fatal("tolerance should grow with transform size")
	}
}
