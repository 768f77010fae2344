package testutil

import "testing"

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise[complex64](42, 1.0, 64)
	b := DeterministicNoise[complex64](42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if imag(a[i]) == 0 && real(a[i]) == 0 {
			t.Fatalf("index %d is exactly zero", i)
		}
	}
}

func TestDeterministicNoiseRange(t *testing.T) {
	for i, v := range DeterministicNoise[float32](7, 0.5, 256) {
		if v < -0.5 || v >= 0.5 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestRamp(t *testing.T) {
	r := Ramp[float64](4)
	want := []float64{0, 0.25, 0.5, 0.75}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("r[%d] = %v, want %v", i, r[i], want[i])
		}
	}
}

func TestSequence(t *testing.T) {
	s := Sequence[complex128](3)
	if s[2] != 2 {
		t.Fatalf("s[2] = %v, want 2", s[2])
	}
}
