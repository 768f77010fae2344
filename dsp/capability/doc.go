// Package capability describes what the process can do for each scalar
// kind: which element-wise kernels and transforms are available and which
// SIMD level the vector kernels run at.
//
// Records are built once per kind and shared. Their transform entries run
// on the directed backend, the only one that keeps multi-dimensional real
// transforms in place, and normalize backward transforms by 1/N.
package capability
