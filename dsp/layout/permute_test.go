package layout

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermute2DRowMajor(t *testing.T) {
	t.Parallel()

	in := []float64{1, 2, 3, 4, 5, 6}
	out := make([]float64, 6)
	require.NoError(t, Permute(in, out, Shape{2, 3}, []int{1, 0}, RowMajor, Identity[float64]))
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, out)
}

func TestPermute3DColMajorWithConversion(t *testing.T) {
	t.Parallel()

	in := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	out := make([]float32, 8)
	convert := func(v float64) float32 { return float32(v + 0.5) }
	require.NoError(t, Permute(in, out, Shape{2, 2, 2}, []int{2, 1, 0}, ColMajor, convert))
	assert.Equal(t, []float32{0.5, 4.5, 2.5, 6.5, 1.5, 5.5, 3.5, 7.5}, out)
}

func TestPermuteIdentityPermutation(t *testing.T) {
	t.Parallel()

	in := seq(24)
	out := make([]float64, 24)
	require.NoError(t, Permute(in, out, Shape{2, 3, 4}, []int{0, 1, 2}, RowMajor, Identity[float64]))
	assert.Equal(t, in, out)
}

func TestPermute4DPreservesElements(t *testing.T) {
	t.Parallel()

	shape := Shape{2, 3, 4, 5}
	perm := []int{3, 0, 2, 1}
	in := seq(shape.NumElements())
	out := make([]float64, len(in))
	require.NoError(t, Permute(in, out, shape, perm, RowMajor, Identity[float64]))

	sorted := slices.Clone(out)
	slices.Sort(sorted)
	assert.Equal(t, in, sorted)

	// Output coordinate (a, b, c, d) reads input coordinate (b, d, c, a).
	outShape, err := PermutedShape(shape, perm)
	require.NoError(t, err)
	assert.Equal(t, Shape{5, 2, 4, 3}, outShape)
	inStride := shape.Strides(RowMajor)
	outStride := outShape.Strides(RowMajor)
	a, b, c, d := 4, 1, 3, 2
	got := out[a*outStride[0]+b*outStride[1]+c*outStride[2]+d*outStride[3]]
	want := in[b*inStride[0]+d*inStride[1]+c*inStride[2]+a*inStride[3]]
	assert.Equal(t, want, got)
}

func TestPermuteInvalid(t *testing.T) {
	t.Parallel()

	in := make([]float64, 6)
	out := make([]float64, 6)
	tests := []struct {
		name  string
		shape Shape
		perm  []int
		want  error
	}{
		{"duplicate axis", Shape{2, 3}, []int{0, 0}, ErrInvalidPermutation},
		{"out of range", Shape{2, 3}, []int{0, 2}, ErrInvalidPermutation},
		{"wrong length", Shape{2, 3}, []int{0}, ErrInvalidPermutation},
		{"zero axis", Shape{0, 3}, []int{1, 0}, ErrInvalidShape},
		{"too large", Shape{3, 3}, []int{1, 0}, ErrBufferTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Permute(in, out, tt.shape, tt.perm, RowMajor, Identity[float64])
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTranspose2D(t *testing.T) {
	t.Parallel()

	in := []int{1, 2, 3, 4, 5, 6}
	out := make([]int, 6)
	require.NoError(t, Transpose2D(in, out, 2, 3, RowMajor))
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, out)

	back := make([]int, 6)
	require.NoError(t, Transpose2D(out, back, 3, 2, RowMajor))
	assert.Equal(t, in, back)
}

func TestTranspose2DColMajor(t *testing.T) {
	t.Parallel()

	// 2x3 column-major matrix [[1 3 5] [2 4 6]].
	in := []int{1, 2, 3, 4, 5, 6}
	out := make([]int, 6)
	require.NoError(t, Transpose2D(in, out, 2, 3, ColMajor))
	// 3x2 column-major transpose [[1 2] [3 4] [5 6]].
	assert.Equal(t, []int{1, 3, 5, 2, 4, 6}, out)
}

func TestTranspose2DErrors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, Transpose2D([]int{1}, []int{1}, 0, 1, RowMajor), ErrInvalidShape)
	assert.ErrorIs(t, Transpose2D([]int{1}, []int{1}, 2, 2, RowMajor), ErrBufferTooSmall)
}
