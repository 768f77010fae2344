package buffer

import (
	"sync"

	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

// Pool provides sync.Pool-based Buffer reuse for transform scratch space.
type Pool[T scalar.Scalar] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T scalar.Scalar]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[T]{}
			},
		},
	}
}

// Get returns a zeroed, compact Buffer with the requested length.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(length int) *Buffer[T] {
	b := p.pool.Get().(*Buffer[T])
	b.Resize(length)
	b.Zero()
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

var (
	pool64  = NewPool[complex64]()
	pool128 = NewPool[complex128]()
)

// Scratch returns a zeroed complex scratch buffer from a process-wide pool
// shared by all transforms of that precision.
func Scratch[C scalar.Complex](length int) *Buffer[C] {
	return sharedPool[C]().Get(length)
}

// Release returns a buffer obtained from [Scratch].
func Release[C scalar.Complex](b *Buffer[C]) {
	sharedPool[C]().Put(b)
}

func sharedPool[C scalar.Complex]() *Pool[C] {
	if p, ok := any(pool64).(*Pool[C]); ok {
		return p
	}
	if p, ok := any(pool128).(*Pool[C]); ok {
		return p
	}
	scalar.Unreachable(scalar.KindOf[C]())
	return nil
}
