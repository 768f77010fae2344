package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-ndfft/dsp/conv"
	"github.com/cwbudde/algo-ndfft/dsp/layout"
)

func ExampleConvolve() {
	out, dims, err := conv.Convolve([]float64{1, 2, 3}, layout.Shape{3}, []float64{1, 1}, layout.Shape{2}, conv.ModeFull)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(dims, ":")
	for _, v := range out {
		fmt.Printf(" %.0f", v)
	}
	fmt.Println()
	// Output: 4: 1 3 5 3
}
