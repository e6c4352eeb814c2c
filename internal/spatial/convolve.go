package spatial

import (
	"github.com/anthonynsimon/bild/parallel"
)

// Kernel is a dense correlation kernel stored row-major.
type Kernel struct {
	Width   int
	Height  int
	Weights []float64
}

// NewKernel builds a kernel from rows of equal length.
func NewKernel(rows [][]float64) Kernel {
	k := Kernel{Width: len(rows[0]), Height: len(rows)}
	for _, row := range rows {
		k.Weights = append(k.Weights, row...)
	}
	return k
}

// Outer returns the separable kernel col ⊗ row, scaled by 1/div.
func Outer(col, row []float64, div float64) Kernel {
	k := Kernel{Width: len(row), Height: len(col), Weights: make([]float64, len(row)*len(col))}
	for y, cv := range col {
		for x, rv := range row {
			k.Weights[y*k.Width+x] = cv * rv / div
		}
	}
	return k
}

// Correlate applies k to a row-major field of size width x height with
// replicate padding.
func Correlate(field []float64, width, height int, k Kernel) []float64 {
	out := make([]float64, len(field))
	ax, ay := k.Width/2, k.Height/2

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				var sum float64
				for ky := 0; ky < k.Height; ky++ {
					py := clamp(y+ky-ay, 0, height-1)
					row := field[py*width:]
					for kx := 0; kx < k.Width; kx++ {
						w := k.Weights[ky*k.Width+kx]
						if w == 0 {
							continue
						}
						sum += row[clamp(x+kx-ax, 0, width-1)] * w
					}
				}
				out[y*width+x] = sum
			}
		}
	})
	return out
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func channelField(pix []uint8, channels, c int) []float64 {
	out := make([]float64, len(pix)/channels)
	for i := range out {
		out[i] = float64(pix[i*channels+c])
	}
	return out
}
