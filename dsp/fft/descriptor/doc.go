// Package descriptor is the descriptor-style FFT backend. A transform is
// configured on a [Descriptor] (precision, domain, lengths, batch count,
// placement and scale factors), committed, computed any number of times
// and freed.
//
// One-dimensional kernels come from algo-fft plans in the caller's
// precision and are composed over all axes. Real transforms of more than
// one dimension are always out of place: [MakePlan] downgrades an in-place
// request and reports the placement it honors.
package descriptor
