package segment

import (
	"image"

	"github.com/anthonynsimon/bild/effect"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// Erode replaces each sample by the minimum of its 3x3 neighborhood,
// repeated iterations times. The border is edge-extended, so pixels outside
// the image never win.
func Erode(mask *raster.Image, iterations int) *raster.Image {
	return morph(mask, iterations, effect.Erode)
}

// Dilate replaces each sample by the maximum of its 3x3 neighborhood,
// repeated iterations times. The border is edge-extended.
func Dilate(mask *raster.Image, iterations int) *raster.Image {
	return morph(mask, iterations, effect.Dilate)
}

// Open erodes then dilates, each iterations times.
func Open(mask *raster.Image, iterations int) *raster.Image {
	return Dilate(Erode(mask, iterations), iterations)
}

func morph(mask *raster.Image, iterations int, op func(image.Image, float64) *image.RGBA) *raster.Image {
	gray := mask.Gray()
	if iterations <= 0 {
		return gray
	}
	var img image.Image = gray.ToImage()
	for it := 0; it < iterations; it++ {
		img = op(img, 1)
	}
	return raster.FromImageAs(img, 1)
}
