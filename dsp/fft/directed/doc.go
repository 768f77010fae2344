// Package directed is the plan-per-direction FFT backend. A plan is made
// for one direction and transition, optionally bound to input and output
// buffers, executed any number of times and destroyed.
//
// Kernels come from gonum's dsp/fourier package and always run in double
// precision; single-precision buffers are widened on the way in and
// narrowed on the way out. Kernels are unnormalized, so backward plans
// apply their scale factor after the transform. Real transforms of any rank
// may run in place on padded storage.
package directed
