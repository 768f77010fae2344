package fft_test

import (
	"fmt"

	"github.com/cwbudde/algo-ndfft/dsp/fft"
	"github.com/cwbudde/algo-ndfft/dsp/layout"
)

func ExampleNew() {
	// A 4x2 image, x fastest.
	img := []float64{
		1, 0, 1, 0,
		1, 0, 1, 0,
	}
	tr, err := fft.New[float64, complex128](fft.Directed, layout.Shape{4, 2})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer tr.Close()

	spectrum := make([]complex128, tr.OutputLen())
	if err := tr.Transform(img, spectrum); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(spectrum))
	fmt.Printf("%.0f %.0f\n", real(spectrum[0]), real(spectrum[2]))
	// Output:
	// 6
	// 4 4
}

func ExampleNativeDims() {
	fmt.Println(fft.NativeDims(layout.Shape{640, 480, 1}))
	// Output: 480x640
}
