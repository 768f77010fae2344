package buffer

import "testing"

func TestPoolReuseIsZeroed(t *testing.T) {
	p := NewPool[float64]()

	b := p.Get(4)
	b.Data()[0] = 42
	b.Data()[1] = 43
	p.Put(b)

	b2 := p.Get(4)
	for i, v := range b2.Data() {
		if v != 0 {
			t.Fatalf("reused Data()[%d] = %v, want 0", i, v)
		}
	}
	p.Put(b2)
}

func TestPoolPutNilSafe(_ *testing.T) {
	p := NewPool[complex64]()
	p.Put(nil) // must not panic
}

func TestScratchPerPrecision(t *testing.T) {
	s := Scratch[complex64](16)
	if s.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", s.Len())
	}
	s.Data()[3] = 1
	Release(s)

	d := Scratch[complex128](16)
	for i, v := range d.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %v, want 0", i, v)
		}
	}
	Release(d)
}
