package vec

import (
	"github.com/cwbudde/algo-ndfft/dsp/layout"
	"github.com/cwbudde/algo-ndfft/dsp/scalar"
	"github.com/cwbudde/algo-ndfft/internal/parallel"
)

// rowGrain is the number of elements one goroutine should at least own.
const rowGrain = 4096

// IntegralY turns every column of the shape.X x shape.Y row-major image
// into its running sum: row i accumulates row i-1 for i >= 1.
func IntegralY[T scalar.Scalar](shape layout.Vec2, img []T) {
	for y := 1; y < shape.Y; y++ {
		SelfAdd(shape.X, img[(y-1)*shape.X:], img[y*shape.X:])
	}
}

// IntegralX turns every row of the image into its running sum. Rows are
// independent and are processed in parallel.
func IntegralX[T scalar.Scalar](shape layout.Vec2, img []T) {
	if shape.X < 2 || shape.Y <= 0 {
		return
	}
	cfg := parallel.DefaultConfig().ForWork(shape.X, rowGrain)
	parallel.ForRange(shape.Y, func(start, end int) {
		for y := start; y < end; y++ {
			row := img[y*shape.X : (y+1)*shape.X]
			for x := 1; x < len(row); x++ {
				row[x] += row[x-1]
			}
		}
	}, cfg)
}
