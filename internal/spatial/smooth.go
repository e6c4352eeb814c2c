package spatial

import (
	"math"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// Kernel size limits for BoxBlur and Median.
const (
	MinKernelSize = 1
	MaxKernelSize = 31
)

var (
	gaussian3 = Outer([]float64{1, 2, 1}, []float64{1, 2, 1}, 16)
	gaussian5 = Outer([]float64{1, 4, 6, 4, 1}, []float64{1, 4, 6, 4, 1}, 256)

	sharpenKernel = NewKernel([][]float64{
		{-1, -1, -1},
		{-1, 9, -1},
		{-1, -1, -1},
	})
	laplace8Kernel = NewKernel([][]float64{
		{-1, -1, -1},
		{-1, 8, -1},
		{-1, -1, -1},
	})
)

// KernelSize rounds k to an integer and bumps even sizes to the next odd
// one. k must lie in [MinKernelSize, MaxKernelSize].
func KernelSize(k float64) (int, error) {
	if math.IsNaN(k) || k < MinKernelSize || k > MaxKernelSize {
		return 0, raster.RangeErrorf("kernel size %g outside [%d, %d]", k, MinKernelSize, MaxKernelSize)
	}
	n := int(math.Round(k))
	if n%2 == 0 {
		n++
	}
	return n, nil
}

// BoxBlur averages each channel over a k x k window.
func BoxBlur(im *raster.Image, k float64) (*raster.Image, error) {
	n, err := KernelSize(k)
	if err != nil {
		return nil, err
	}
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	horizontal := Kernel{Width: n, Height: 1, Weights: ones}
	vertical := Kernel{Width: 1, Height: n, Weights: ones}
	area := float64(n * n)

	out := raster.MustNew(im.Width, im.Height, im.Channels)
	for c := 0; c < im.Channels; c++ {
		field := channelField(im.Pix, im.Channels, c)
		field = Correlate(Correlate(field, im.Width, im.Height, horizontal), im.Width, im.Height, vertical)
		for i, v := range field {
			out.Pix[i*im.Channels+c] = raster.Quantize(v / area)
		}
	}
	return out, nil
}

// Median replaces each sample by the median of its k x k neighborhood in
// the same channel.
func Median(im *raster.Image, k float64) (*raster.Image, error) {
	n, err := KernelSize(k)
	if err != nil {
		return nil, err
	}
	out := raster.MustNew(im.Width, im.Height, im.Channels)
	r := n / 2
	mid := n * n / 2
	w, h, ch := im.Width, im.Height, im.Channels

	parallel.Line(h, func(start, end int) {
		var hist [256]int
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				for c := 0; c < ch; c++ {
					hist = [256]int{}
					for dy := -r; dy <= r; dy++ {
						py := clamp(y+dy, 0, h-1)
						for dx := -r; dx <= r; dx++ {
							px := clamp(x+dx, 0, w-1)
							hist[im.Pix[(py*w+px)*ch+c]]++
						}
					}
					seen := 0
					for v, count := range hist {
						seen += count
						if seen > mid {
							out.Pix[(y*w+x)*ch+c] = uint8(v)
							break
						}
					}
				}
			}
		}
	})
	return out, nil
}

// Sharpen applies the fixed 3x3 enhancement kernel
//
//	-1 -1 -1
//	-1  9 -1
//	-1 -1 -1
//
// to the luma.
func Sharpen(im *raster.Image) *raster.Image {
	return raster.FromField(Correlate(im.Intensity(), im.Width, im.Height, sharpenKernel), im.Width, im.Height)
}

// Laplace8 convolves the luma with the 8-neighbor Laplacian
//
//	-1 -1 -1
//	-1  8 -1
//	-1 -1 -1
//
// and clamps the signed response, so only bright-side edges survive.
func Laplace8(im *raster.Image) *raster.Image {
	return raster.FromField(Correlate(im.Intensity(), im.Width, im.Height, laplace8Kernel), im.Width, im.Height)
}

// HighBoost computes out = L + (A-1)(L - G*L) on the luma L, where G is the
// 3x3 Gaussian. A must be in [1, 3]; A = 1 returns the luma unchanged.
func HighBoost(im *raster.Image, a float64) (*raster.Image, error) {
	if a < 1 || a > 3 {
		return nil, raster.RangeErrorf("boost factor %g outside [1, 3]", a)
	}
	luma := im.Intensity()
	blurred := Correlate(luma, im.Width, im.Height, gaussian3)
	out := make([]float64, len(luma))
	for i, v := range luma {
		out[i] = v + (a-1)*(v-blurred[i])
	}
	return raster.FromField(out, im.Width, im.Height), nil
}

// GaussianBlur smooths the luma with the 5x5 binomial kernel.
func GaussianBlur(im *raster.Image) *raster.Image {
	return raster.FromField(Correlate(im.Intensity(), im.Width, im.Height, gaussian5), im.Width, im.Height)
}
