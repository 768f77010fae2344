// Package spectrum inspects the output of N-D transforms: per-bin
// magnitude, power and phase, expansion of real-transform half spectra to
// the full Hermitian spectrum, Parseval energy, peak search and a centered
// log-magnitude view for images.
//
// Dims are in image order (fastest axis first), as in package fft. A half
// spectrum of dims {w, h, ...} has layout.SpectrumLen(w) bins per row.
package spectrum
