package segment

import (
	"github.com/anthonynsimon/bild/histogram"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// OtsuLevel returns the threshold t that maximizes the between-class
// variance of the luma when the classes are {v <= t} and {v > t}. Ties keep
// the smallest t. A uniform image yields 0.
func OtsuLevel(im *raster.Image) uint8 {
	gray := im.Gray()
	bins := histogram.NewRGBAHistogram(gray.ToImage()).R.Bins
	total := float64(len(gray.Pix))

	var sum float64
	for i, c := range bins {
		sum += float64(i * c)
	}

	var sumB, wB, best float64
	var level uint8
	for t := 0; t < 256; t++ {
		wB += float64(bins[t])
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}
		sumB += float64(t * bins[t])
		mB := sumB / wB
		mF := (sum - sumB) / wF

		between := wB * wF * (mB - mF) * (mB - mF)
		if between > best {
			best = between
			level = uint8(t)
		}
	}
	return level
}

// Otsu binarizes the luma at OtsuLevel: 255 above the level, 0 at or below.
func Otsu(im *raster.Image) (*raster.Image, uint8) {
	level := OtsuLevel(im)
	out := im.Gray()
	for i, v := range out.Pix {
		if v > level {
			out.Pix[i] = 255
		} else {
			out.Pix[i] = 0
		}
	}
	return out, level
}
