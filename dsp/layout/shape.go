package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Order selects how axes map to memory.
type Order int

const (
	// RowMajor (C order): the last axis varies fastest.
	RowMajor Order = iota
	// ColMajor (Fortran order): the first axis varies fastest.
	ColMajor
)

// String returns "row-major" or "col-major".
func (o Order) String() string {
	if o == ColMajor {
		return "col-major"
	}
	return "row-major"
}

// Vec2 is a 2-D extent or offset. X is the fastest axis (width).
type Vec2 struct {
	X, Y int
}

// Shape lists axis sizes.
type Shape []int

// NumElements returns the product of all axes. An empty shape has one element.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Validate checks that s has at least one axis and every axis is positive.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no axes", ErrInvalidShape)
	}
	for i, d := range s {
		if d <= 0 {
			return fmt.Errorf("%w: axis %d has size %d", ErrInvalidShape, i, d)
		}
	}
	return nil
}

// Clone returns a copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Equal reports whether s and other list the same axes.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Reverse returns a reversed copy of s, converting between image order and
// native order.
func (s Shape) Reverse() Shape {
	out := make(Shape, len(s))
	for i, d := range s {
		out[len(s)-1-i] = d
	}
	return out
}

// TrimTrailing returns a copy of s without its last axis when that axis has
// size <= 1 and at least one other axis remains.
func (s Shape) TrimTrailing() Shape {
	out := s.Clone()
	if len(out) > 1 && out[len(out)-1] <= 1 {
		out = out[:len(out)-1]
	}
	return out
}

// Strides returns the element stride of every axis for the given order.
func (s Shape) Strides(order Order) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	if order == RowMajor {
		strides[len(s)-1] = 1
		for i := len(s) - 2; i >= 0; i-- {
			strides[i] = strides[i+1] * s[i+1]
		}
		return strides
	}
	strides[0] = 1
	for i := 1; i < len(s); i++ {
		strides[i] = strides[i-1] * s[i-1]
	}
	return strides
}

// String formats s as "7x5x3".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}

// ParseShape parses "7x5x3" or "7,5,3".
func ParseShape(text string) (Shape, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == 'x' || r == ',' || r == ' '
	})
	s := make(Shape, 0, len(fields))
	for _, f := range fields {
		d, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidShape, text, err)
		}
		s = append(s, d)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
