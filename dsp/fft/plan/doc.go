// Package plan defines the contract shared by the FFT backends: the
// transition and placement vocabulary, normalization rules, the plan
// description ([Spec]), buffer-length arithmetic and the error type backends
// report failures with.
//
// Dims in a [Spec] are in native order: outermost axis first, fastest axis
// last. Real transforms store n/2+1 complex bins along the fastest axis.
// In-place real transforms use padded real rows of 2*(n/2+1) elements so
// the half spectrum fits in the same memory.
//
// Forward transforms are never scaled. Backward transforms are scaled by
// the factor a [Normalization] resolves to.
package plan
