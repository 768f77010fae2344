package layout

import "fmt"

// Permute writes the array in (with the given shape and memory order) into
// out with its axes reordered: output axis i is input axis perm[i]. Every
// element passes through convert on the way. Output strides follow the
// same memory order as the input.
//
// Each output linear index is decoded into coordinates, mapped back through
// perm to the source coordinate, and read from there.
func Permute[From, To any](in []From, out []To, shape Shape, perm []int, order Order, convert func(From) To) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if err := validatePermutation(perm, len(shape)); err != nil {
		return err
	}
	total := shape.NumElements()
	if len(in) < total || len(out) < total {
		return fmt.Errorf("%w: need %d elements", ErrBufferTooSmall, total)
	}

	ndim := len(shape)
	inStride := shape.Strides(order)

	outShape := make(Shape, ndim)
	for i := range outShape {
		outShape[i] = shape[perm[i]]
	}
	outStride := outShape.Strides(order)

	outCoord := make([]int, ndim)
	for outIndex := 0; outIndex < total; outIndex++ {
		idx := outIndex
		if order == RowMajor {
			for i := 0; i < ndim; i++ {
				outCoord[i] = idx / outStride[i]
				idx %= outStride[i]
			}
		} else {
			for i := ndim - 1; i >= 0; i-- {
				outCoord[i] = idx / outStride[i]
				idx %= outStride[i]
			}
		}

		inIndex := 0
		for i := 0; i < ndim; i++ {
			inIndex += outCoord[i] * inStride[perm[i]]
		}
		out[outIndex] = convert(in[inIndex])
	}
	return nil
}

// PermutedShape returns the shape Permute produces.
func PermutedShape(shape Shape, perm []int) (Shape, error) {
	if err := validatePermutation(perm, len(shape)); err != nil {
		return nil, err
	}
	out := make(Shape, len(shape))
	for i := range out {
		out[i] = shape[perm[i]]
	}
	return out, nil
}

func validatePermutation(perm []int, ndim int) error {
	if len(perm) != ndim {
		return fmt.Errorf("%w: %d entries for %d axes", ErrInvalidPermutation, len(perm), ndim)
	}
	seen := make([]bool, ndim)
	for _, p := range perm {
		if p < 0 || p >= ndim || seen[p] {
			return fmt.Errorf("%w: %v", ErrInvalidPermutation, perm)
		}
		seen[p] = true
	}
	return nil
}

// Identity returns v unchanged; it is the convert callback of a plain
// permutation.
func Identity[T any](v T) T { return v }

// Transpose2D writes the transpose of the rows x cols matrix in into out.
// With RowMajor the input rows are cols elements apart and the output rows
// rows elements apart; ColMajor swaps the roles of the leading dimensions.
func Transpose2D[T any](in, out []T, rows, cols int, order Order) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	if len(in) < rows*cols || len(out) < rows*cols {
		return fmt.Errorf("%w: need %d elements", ErrBufferTooSmall, rows*cols)
	}
	if order == RowMajor {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				out[j*rows+i] = in[i*cols+j]
			}
		}
		return nil
	}
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			out[j+i*cols] = in[i+j*rows]
		}
	}
	return nil
}
