// Package fft is the entry point for N-dimensional transforms. It picks a
// backend, derives the transition from the element types, reconciles axis
// order and applies the normalization contract.
//
// Dims are given in image order, fastest axis first ({x, y, z}), the same
// order the layout package uses. A trailing axis of size one is dropped
// and the rest is reversed into the outermost-first order the backends
// consume; see [NativeDims].
//
// Backward transforms are scaled by 1/N unless [WithNormalization] says
// otherwise, so a forward transform followed by a backward one reproduces
// the input on both backends.
//
// Real transforms store n/2+1 complex bins along the fastest axis. In-place
// real transforms need rows padded to 2*(n/2+1) elements; size such
// buffers with [Transform.InputLen] or layout.MemoryLayout. The descriptor
// backend runs multi-dimensional real transforms out of place only and
// reports it through [Transform.Placement].
package fft
