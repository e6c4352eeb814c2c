package transform

import (
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/histogram"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// AutoContrastEpsilon keeps the stretch finite when the percentiles coincide.
const AutoContrastEpsilon = 1e-6

// Enhancement factor limits for Brightness and Contrast. A factor of 1
// leaves the image unchanged.
const (
	MinEnhance = 0.1
	MaxEnhance = 3.0
)

// Brightness scales every sample by factor, so black stays black.
func Brightness(im *raster.Image, factor float64) (*raster.Image, error) {
	if factor < MinEnhance || factor > MaxEnhance {
		return nil, raster.RangeErrorf("brightness factor %g outside [%g, %g]", factor, MinEnhance, MaxEnhance)
	}
	return enhance(im, func(v uint8) uint8 {
		return raster.Quantize(float64(v) * factor)
	}), nil
}

// Contrast blends every sample with the mean luma of the image:
// mean + factor*(v-mean). Factors below 1 pull samples toward the mean,
// factors above 1 push them away. A uniform image is unchanged.
func Contrast(im *raster.Image, factor float64) (*raster.Image, error) {
	if factor < MinEnhance || factor > MaxEnhance {
		return nil, raster.RangeErrorf("contrast factor %g outside [%g, %g]", factor, MinEnhance, MaxEnhance)
	}
	mean := math.Round(meanLuma(im))
	return enhance(im, func(v uint8) uint8 {
		return raster.Quantize(mean + factor*(float64(v)-mean))
	}), nil
}

func enhance(im *raster.Image, fn func(uint8) uint8) *raster.Image {
	adjusted := imaging.AdjustFunc(im.ToImage(), func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{R: fn(c.R), G: fn(c.G), B: fn(c.B), A: c.A}
	})
	return raster.FromImageAs(adjusted, im.Channels)
}

func meanLuma(im *raster.Image) float64 {
	var sum float64
	luma := im.Intensity()
	for _, v := range luma {
		sum += v
	}
	return sum / float64(len(luma))
}

// Equalize performs histogram equalization on the luma and returns a
// single-channel image. A uniform image is returned unchanged.
func Equalize(im *raster.Image) *raster.Image {
	gray := im.Gray()
	bins := Histogram(gray)

	total := len(gray.Pix)
	lo := 0
	for bins[lo] == 0 {
		lo++
	}
	if bins[lo] == total {
		return gray
	}

	var lut [256]uint8
	scale := 255 / float64(total-bins[lo])
	cum := 0
	for v := lo; v < 256; v++ {
		cum += bins[v]
		lut[v] = raster.Quantize(float64(cum-bins[lo]) * scale)
	}
	for i, v := range gray.Pix {
		gray.Pix[i] = lut[v]
	}
	return gray
}

// AutoContrast linearly stretches the samples so that the 2nd percentile
// maps to 0 and the 98th percentile maps to 255. Percentiles are taken over
// every sample of every channel and interpolate linearly between ranks.
func AutoContrast(im *raster.Image) *raster.Image {
	bins := Histogram(im)
	n := 0
	for _, c := range bins {
		n += c
	}
	p2 := percentile(bins, n, 2)
	p98 := percentile(bins, n, 98)
	span := p98 - p2 + AutoContrastEpsilon

	return mapSamples(im, func(s float64) float64 {
		return (s - p2) * 255 / span
	})
}

// Histogram counts sample values over all channels.
func Histogram(im *raster.Image) [256]int {
	h := histogram.NewRGBAHistogram(im.ToImage())

	var bins [256]int
	for v := 0; v < 256; v++ {
		bins[v] = h.R.Bins[v]
		if im.Channels == 3 {
			bins[v] += h.G.Bins[v] + h.B.Bins[v]
		}
	}
	return bins
}

// percentile returns the p-th percentile of n samples summarized by bins,
// interpolating linearly between the two nearest ranks.
func percentile(bins [256]int, n int, p float64) float64 {
	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	a := float64(valueAtRank(bins, lo))
	b := float64(valueAtRank(bins, hi))
	return a + (b-a)*(rank-float64(lo))
}

func valueAtRank(bins [256]int, rank int) int {
	cum := 0
	for v, c := range bins {
		cum += c
		if cum > rank {
			return v
		}
	}
	return 255
}
