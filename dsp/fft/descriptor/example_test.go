package descriptor_test

import (
	"fmt"

	"github.com/cwbudde/algo-ndfft/dsp/fft/descriptor"
	"github.com/cwbudde/algo-ndfft/dsp/fft/plan"
	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
)

func ExampleMakePlan() {
	spec := plan.Spec{
		Dims:       layout.Shape{4},
		Precision:  scalar.Double,
		Transition: plan.RealToComplex,
		Batch:      1,
	}
	p, err := descriptor.MakePlan[float64, complex128](spec)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer p.Close()

	out := make([]complex128, 3)
	if err := p.Transform([]float64{1, 1, 1, 1}, out); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.1f\n", real(out[0]))
	// Output: 4.0
}
