package layout

import "errors"

var (
	// ErrInvalidShape is returned for empty shapes or non-positive axes.
	ErrInvalidShape = errors.New("layout: invalid shape")

	// ErrInvalidPermutation is returned when a permutation does not name
	// every axis exactly once.
	ErrInvalidPermutation = errors.New("layout: invalid permutation")

	// ErrBufferTooSmall is returned when a buffer cannot hold the shape.
	ErrBufferTooSmall = errors.New("layout: buffer too small")
)
