package spatial

import (
	"math"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// Default Canny hysteresis thresholds on the 0-255 gradient scale.
const (
	DefaultCannyLow  = 100
	DefaultCannyHigh = 200
)

// Canny produces a binary edge map of the luma: 255 on edges, 0 elsewhere.
//
// # Algorithm
//
//  1. Gradient: Sobel operators on the luma (0-255 scale),
//     magnitude = sqrt(Gx² + Gy²), direction = atan2(Gy, Gx)
//
//  2. Non-maximum suppression: keep a pixel only if its magnitude is a
//     local maximum along the gradient direction, quantized to four
//     sectors. The outermost pixel ring is suppressed.
//
//  3. Hysteresis: pixels at or above high seed edges; pixels at or above
//     low are kept when 8-connected to a seed, transitively.
//
// low and high must satisfy 0 <= low <= high.
func Canny(im *raster.Image, low, high float64) (*raster.Image, error) {
	if low < 0 || high < low {
		return nil, raster.RangeErrorf("canny thresholds must satisfy 0 <= low <= high, got %g and %g", low, high)
	}
	width, height := im.Width, im.Height
	gx, gy := Gradient(im.Intensity(), width, height)

	magnitude := make([]float64, len(gx))
	for i := range gx {
		magnitude[i] = math.Hypot(gx[i], gy[i])
	}

	suppressed := make([]float64, len(gx))
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			i := y*width + x
			angle := math.Atan2(gy[i], gx[i])
			mag := magnitude[i]

			// Determine neighbors to compare based on gradient direction
			var n1, n2 float64
			if (angle >= -math.Pi/8 && angle < math.Pi/8) || (angle >= 7*math.Pi/8 || angle < -7*math.Pi/8) {
				n1 = magnitude[i-1]
				n2 = magnitude[i+1]
			} else if (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8) {
				n1 = magnitude[i-width-1]
				n2 = magnitude[i+width+1]
			} else if (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8) {
				n1 = magnitude[i-width]
				n2 = magnitude[i+width]
			} else {
				n1 = magnitude[i-width+1]
				n2 = magnitude[i+width-1]
			}

			if mag >= n1 && mag >= n2 {
				suppressed[i] = mag
			}
		}
	}

	out := raster.MustNew(width, height, 1)
	var stack []int
	for i, v := range suppressed {
		if v >= high && v > 0 {
			out.Pix[i] = 255
			stack = append(stack, i)
		}
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%width, i/width
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if nx < 0 || ny < 0 || nx >= width || ny >= height {
					continue
				}
				j := ny*width + nx
				if out.Pix[j] == 0 && suppressed[j] >= low && suppressed[j] > 0 {
					out.Pix[j] = 255
					stack = append(stack, j)
				}
			}
		}
	}
	return out, nil
}
