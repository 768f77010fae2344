// Package scalar maps the four scalar element types understood by the FFT
// layer (float32, float64, complex64, complex128) to their precision, domain
// and native entry-point suffix.
//
// Every dispatch in this module is a closed four-way switch over [Kind].
// The switch always ends in [Unreachable], so a fifth type can never be
// silently ignored.
package scalar
