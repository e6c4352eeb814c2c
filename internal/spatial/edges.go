package spatial

import (
	"math"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

var (
	sobelX = NewKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
	sobelY = NewKernel([][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})
	prewittX = NewKernel([][]float64{
		{-1, 0, 1},
		{-1, 0, 1},
		{-1, 0, 1},
	})
	prewittY = NewKernel([][]float64{
		{1, 1, 1},
		{0, 0, 0},
		{-1, -1, -1},
	})
	robertsX = NewKernel([][]float64{
		{1, 0},
		{0, -1},
	})
	robertsY = NewKernel([][]float64{
		{0, 1},
		{-1, 0},
	})
	laplacian = NewKernel([][]float64{
		{0, 1, 0},
		{1, -4, 1},
		{0, 1, 0},
	})

	// Four compass directions: east, north-east, north, north-west.
	compass = []Kernel{
		NewKernel([][]float64{{-1, -1, 2}, {-1, -1, 2}, {-1, -1, 2}}),
		NewKernel([][]float64{{-1, 2, 2}, {-1, -1, 2}, {-1, -1, -1}}),
		NewKernel([][]float64{{2, 2, 2}, {-1, -1, -1}, {-1, -1, -1}}),
		NewKernel([][]float64{{2, 2, -1}, {2, -1, -1}, {-1, -1, -1}}),
	}
)

// Sobel returns the normalized Sobel gradient magnitude of the luma.
func Sobel(im *raster.Image) *raster.Image {
	return gradientPair(im, sobelX, sobelY)
}

// Prewitt returns the normalized Prewitt gradient magnitude of the luma.
func Prewitt(im *raster.Image) *raster.Image {
	return gradientPair(im, prewittX, prewittY)
}

// Roberts returns the normalized Roberts cross gradient magnitude.
func Roberts(im *raster.Image) *raster.Image {
	return gradientPair(im, robertsX, robertsY)
}

// Compass returns, per pixel, the largest absolute response among the four
// directional compass kernels, normalized.
func Compass(im *raster.Image) *raster.Image {
	luma := im.Intensity()
	mag := make([]float64, len(luma))
	for _, k := range compass {
		for i, v := range Correlate(luma, im.Width, im.Height, k) {
			if a := math.Abs(v); a > mag[i] {
				mag[i] = a
			}
		}
	}
	return normalize(mag, im.Width, im.Height)
}

// Laplacian returns the normalized absolute 4-neighbor Laplacian of the luma.
func Laplacian(im *raster.Image) *raster.Image {
	return secondDerivative(im.Intensity(), im.Width, im.Height)
}

// LoG blurs the luma with the 5x5 binomial Gaussian before taking the
// normalized absolute Laplacian.
func LoG(im *raster.Image) *raster.Image {
	blurred := Correlate(im.Intensity(), im.Width, im.Height, gaussian5)
	return secondDerivative(blurred, im.Width, im.Height)
}

// Gradient returns the raw Sobel components of a field.
func Gradient(field []float64, width, height int) (gx, gy []float64) {
	return Correlate(field, width, height, sobelX), Correlate(field, width, height, sobelY)
}

func gradientPair(im *raster.Image, kx, ky Kernel) *raster.Image {
	luma := im.Intensity()
	gx := Correlate(luma, im.Width, im.Height, kx)
	gy := Correlate(luma, im.Width, im.Height, ky)
	mag := make([]float64, len(luma))
	for i := range mag {
		mag[i] = math.Hypot(gx[i], gy[i])
	}
	return normalize(mag, im.Width, im.Height)
}

func secondDerivative(field []float64, width, height int) *raster.Image {
	lap := Correlate(field, width, height, laplacian)
	for i, v := range lap {
		lap[i] = math.Abs(v)
	}
	return normalize(lap, width, height)
}

// normalize scales a non-negative field so its maximum maps to 255.
func normalize(mag []float64, width, height int) *raster.Image {
	max := 0.0
	for _, v := range mag {
		if v > max {
			max = v
		}
	}
	out := raster.MustNew(width, height, 1)
	if max == 0 {
		return out
	}
	for i, v := range mag {
		out.Pix[i] = raster.Quantize(v / max * 255)
	}
	return out
}
