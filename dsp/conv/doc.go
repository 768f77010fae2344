// Package conv provides N-dimensional convolution and correlation of real
// arrays.
//
// Dims are in image order (fastest axis first), as in package fft. Two
// strategies are available:
//
//   - [Direct]: O(N*M) accumulation, best for small kernels
//   - [Convolve]: zero-padded real FFTs and a spectral product
//
// [Correlate] returns the circular cross-correlation of equally shaped
// arrays and [PhaseCorrelate] estimates the translation between two
// images from their normalized cross-power spectrum:
//
//	shift, err := conv.PhaseCorrelate(moved, ref, layout.Shape{w, h})
//
// Results of FFT-based functions are exact up to rounding; both share the
// output shapes selected by [Mode].
package conv
