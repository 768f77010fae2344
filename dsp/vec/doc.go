// Package vec provides elementwise arithmetic over the four scalar types
// and the running-sum (integral image) passes built on it.
//
// Double-precision real and complex data run on the algo-vecmath block
// kernels; complex128 addition, subtraction and real scaling go through
// the interleaved float64 view of the data. Single precision and the
// remaining complex operations use plain loops.
//
// Binary operations follow the y = a op b convention; the Self variants
// accumulate into y (y = y op x).
package vec
