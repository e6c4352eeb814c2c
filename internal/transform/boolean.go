package transform

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// Not inverts the single-channel reduction of im with the same blend as
// Negative. The result always has one channel.
func Not(im *raster.Image, s float64) (*raster.Image, error) {
	return Negative(im.Gray(), s)
}

// And combines a and b with a bitwise AND. See binaryOp for the operand
// contract.
func And(a, b *raster.Image) (*raster.Image, error) {
	return binaryOp(a, b, func(x, y uint8) uint8 { return x & y })
}

// Or combines a and b with a bitwise OR.
func Or(a, b *raster.Image) (*raster.Image, error) {
	return binaryOp(a, b, func(x, y uint8) uint8 { return x | y })
}

// Xor combines a and b with a bitwise XOR.
func Xor(a, b *raster.Image) (*raster.Image, error) {
	return binaryOp(a, b, func(x, y uint8) uint8 { return x ^ y })
}

// binaryOp reduces both operands to one channel, resamples b onto a's
// geometry and applies op per pixel. b is only read.
func binaryOp(a, b *raster.Image, op func(x, y uint8) uint8) (*raster.Image, error) {
	if a == nil || b == nil {
		return nil, raster.RangeErrorf("boolean operation needs two images")
	}
	out := a.Gray()
	other := Resample(b.Gray(), out.Width, out.Height)
	for i := range out.Pix {
		out.Pix[i] = op(out.Pix[i], other.Pix[i])
	}
	return out, nil
}

// Resample scales im to exactly width x height with Catmull-Rom
// interpolation. An image that already has that geometry is cloned.
func Resample(im *raster.Image, width, height int) *raster.Image {
	if im.Width == width && im.Height == height {
		return im.Clone()
	}
	src := im.ToImage()
	rect := image.Rect(0, 0, width, height)

	var dst draw.Image
	if im.Channels == 1 {
		dst = image.NewGray(rect)
	} else {
		dst = image.NewNRGBA(rect)
	}
	draw.CatmullRom.Scale(dst, rect, src, src.Bounds(), draw.Src, nil)
	return raster.FromImageAs(dst, im.Channels)
}
