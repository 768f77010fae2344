// Package ndfft composes 1-D transform kernels into N-D transforms over
// strided grids. Both FFT backends drive it; they only differ in the
// kernels they supply and in the element precision they run at.
package ndfft

import "github.com/cwbudde/algo-ndfft/dsp/layout"

// Grid is the storage of one transform. Dims are outermost first; Pitch is
// the distance in elements between consecutive rows of the fastest axis.
type Grid struct {
	Dims  layout.Shape
	Pitch int
}

// Compact returns a grid whose pitch equals its fastest axis.
func Compact(dims layout.Shape) Grid {
	return Grid{Dims: dims, Pitch: dims[len(dims)-1]}
}

// Width returns the length of the fastest axis.
func (g Grid) Width() int {
	return g.Dims[len(g.Dims)-1]
}

// Rows returns the number of fastest-axis rows.
func (g Grid) Rows() int {
	return g.Dims[:len(g.Dims)-1].NumElements()
}

// Len returns the number of elements the grid spans, padding included.
func (g Grid) Len() int {
	return g.Rows() * g.Pitch
}

// Strides returns the element stride of every axis.
func (g Grid) Strides() []int {
	k := len(g.Dims)
	strides := make([]int, k)
	strides[k-1] = 1
	if k >= 2 {
		strides[k-2] = g.Pitch
	}
	for j := k - 3; j >= 0; j-- {
		strides[j] = strides[j+1] * g.Dims[j+1]
	}
	return strides
}

// Lines calls fn with the offset of the first element of every 1-D line
// along axis. It stops early when fn returns false.
func (g Grid) Lines(axis int, fn func(base int) bool) {
	strides := g.Strides()
	idx := make([]int, len(g.Dims))
	for {
		base := 0
		for j, v := range idx {
			base += v * strides[j]
		}
		if !fn(base) {
			return
		}

		j := len(idx) - 1
		for ; j >= 0; j-- {
			if j == axis {
				continue
			}
			idx[j]++
			if idx[j] < g.Dims[j] {
				break
			}
			idx[j] = 0
		}
		if j < 0 {
			return
		}
	}
}

// Half returns the grid of the half spectrum of a real transform over g:
// the fastest axis shrinks to n/2+1 complex bins, stored compactly.
func (g Grid) Half() Grid {
	dims := g.Dims.Clone()
	dims[len(dims)-1] = layout.SpectrumLen(g.Width())
	return Compact(dims)
}

// Batches calls fn for count consecutive transforms whose input and output
// start inDist and outDist elements apart.
func Batches(count, inDist, outDist int, fn func(inOff, outOff int) error) error {
	for b := 0; b < count; b++ {
		if err := fn(b*inDist, b*outDist); err != nil {
			return err
		}
	}
	return nil
}
