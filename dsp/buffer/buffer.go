package buffer

import (
	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// Buffer holds transform data of one scalar type. Real buffers can be
// allocated with the padded row pitch an in-place real transform needs.
type Buffer[T scalar.Scalar] struct {
	data  []T
	dims  layout.Shape
	pitch int
}

// New returns a zero-filled, compact Buffer of the given length.
func New[T scalar.Scalar](length int) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	return &Buffer[T]{data: make([]T, length), pitch: length}
}

// ForShape returns a zero-filled Buffer laid out for dims in image order
// (fastest axis first). Real types get a row pitch of
// [layout.RealPitch](dims[0]) so the buffer can take an in-place transform.
func ForShape[T scalar.Scalar](dims layout.Shape) (*Buffer[T], error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	pitch, rows := layout.MemoryLayout(scalar.KindOf[T](), dims)
	return &Buffer[T]{data: make([]T, pitch*rows), dims: dims.Clone(), pitch: pitch}, nil
}

// FromSlice wraps an existing slice without copying.
func FromSlice[T scalar.Scalar](s []T) *Buffer[T] {
	return &Buffer[T]{data: s, pitch: len(s)}
}

// Data returns the underlying slice, padding included.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Dims returns the image-order shape the buffer was laid out for, or nil.
func (b *Buffer[T]) Dims() layout.Shape {
	return b.dims
}

// Pitch returns the distance between rows in elements.
func (b *Buffer[T]) Pitch() int {
	return b.pitch
}

// Row returns the live elements of row i (padding excluded).
func (b *Buffer[T]) Row(i int) []T {
	width := b.pitch
	if len(b.dims) > 0 {
		width = b.dims[0]
	}
	return b.data[i*b.pitch : i*b.pitch+width]
}

// Len returns the current number of elements.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer[T]) Cap() int {
	return cap(b.data)
}

// Grow ensures capacity is at least n, preserving existing data.
func (b *Buffer[T]) Grow(n int) {
	if n <= cap(b.data) {
		return
	}
	grown := make([]T, len(b.data), n)
	copy(grown, b.data)
	b.data = grown
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed. The buffer becomes
// compact.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.data)
	if n <= cap(b.data) {
		b.data = b.data[:n]
	} else {
		s := make([]T, n)
		copy(s, b.data)
		b.data = s
	}
	if n > oldLen {
		clear(b.data[oldLen:])
	}
	b.dims = nil
	b.pitch = n
}

// Zero sets all elements to 0.
func (b *Buffer[T]) Zero() {
	clear(b.data)
}

// Copy returns a deep copy of the buffer.
func (b *Buffer[T]) Copy() *Buffer[T] {
	s := make([]T, len(b.data))
	copy(s, b.data)
	return &Buffer[T]{data: s, dims: b.dims.Clone(), pitch: b.pitch}
}
