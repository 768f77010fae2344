package conv

import (
	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
	"github.com/cwbudde/algo-ndfft/dsp/spectrum"
)

// Correlate computes the circular cross-correlation
// c[k] = sum_n a[n+k] * b[n] of equally shaped a and b. When a is b
// translated by s, c peaks at k = s.
func Correlate[F scalar.Float](a, b []F, dims layout.Shape) ([]F, error) {
	if err := check(a, dims, b, dims); err != nil {
		return nil, err
	}
	return product(a, b, dims, spectralCorrelate)
}

// PhaseCorrelate estimates the circular translation of a relative to b
// from the peak of their normalized cross-power spectrum. The shift is
// returned in image order with lags in (-d/2, d/2].
func PhaseCorrelate[F scalar.Float](a, b []F, dims layout.Shape) ([]int, error) {
	if err := check(a, dims, b, dims); err != nil {
		return nil, err
	}
	surface, err := product(a, b, dims, spectralPhase)
	if err != nil {
		return nil, err
	}
	shift, _, err := FindPeak(surface, dims)
	return shift, err
}

// FindPeak returns the signed lags and the value of the maximum of a
// circular correlation surface.
func FindPeak[F scalar.Float](corr []F, dims layout.Shape) (lags []int, value F, err error) {
	wide := make([]float64, len(corr))
	scalar.PromoteReal(wide, corr)
	coords, _, err := spectrum.Peak(dims, wide)
	if err != nil {
		return nil, 0, err
	}
	idx := 0
	strides := dims.Strides(layout.ColMajor)
	for axis, c := range coords {
		idx += c * strides[axis]
	}
	return LagsFromCoords(coords, dims), corr[idx], nil
}

// LagsFromCoords maps circular coordinates to signed lags.
func LagsFromCoords(coords []int, dims layout.Shape) []int {
	lags := make([]int, len(coords))
	for i, c := range coords {
		if c > dims[i]/2 {
			c -= dims[i]
		}
		lags[i] = c
	}
	return lags
}
