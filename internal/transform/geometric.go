package transform

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// Zoom limits.
const (
	MinZoom = 0.1
	MaxZoom = 5.0
)

// MaxShift bounds the translation offsets accepted by Translate.
const MaxShift = 10000

// Translate shifts the image by (tx, ty) on a canvas of the same size:
// output pixel (x, y) takes the source pixel (x+tx, y+ty), so positive tx
// moves content left and positive ty moves it up. Pixels sampled from
// outside the source are black.
func Translate(im *raster.Image, tx, ty int) (*raster.Image, error) {
	if tx < -MaxShift || tx > MaxShift || ty < -MaxShift || ty > MaxShift {
		return nil, raster.RangeErrorf("translation (%d,%d) outside ±%d", tx, ty, MaxShift)
	}
	out := raster.MustNew(im.Width, im.Height, im.Channels)
	for y := 0; y < im.Height; y++ {
		sy := y + ty
		if sy < 0 || sy >= im.Height {
			continue
		}
		for x := 0; x < im.Width; x++ {
			sx := x + tx
			if sx < 0 || sx >= im.Width {
				continue
			}
			copy(out.Pix[out.Offset(x, y):out.Offset(x, y)+im.Channels],
				im.Pix[im.Offset(sx, sy):im.Offset(sx, sy)+im.Channels])
		}
	}
	return out, nil
}

// Rotate turns the image counter-clockwise by angle degrees about its
// center. The canvas grows to hold every rotated pixel and the uncovered
// corners are black. Multiples of 90 are exact.
func Rotate(im *raster.Image, angle float64) (*raster.Image, error) {
	if angle < -360 || angle > 360 {
		return nil, raster.RangeErrorf("rotation angle %g outside [-360, 360]", angle)
	}
	rotated := imaging.Rotate(im.ToImage(), angle, color.Black)
	return raster.FromImageAs(rotated, im.Channels), nil
}

// Zoom rescales the image by factor using a Lanczos filter. The output
// dimensions are truncated and never smaller than 1x1.
func Zoom(im *raster.Image, factor float64) (*raster.Image, error) {
	if factor < MinZoom || factor > MaxZoom {
		return nil, raster.RangeErrorf("zoom factor %g outside [%g, %g]", factor, MinZoom, MaxZoom)
	}
	return Scale(im, factor), nil
}

// Scale resizes without range checks. Used for view zoom as well.
func Scale(im *raster.Image, factor float64) *raster.Image {
	w := int(float64(im.Width) * factor)
	h := int(float64(im.Height) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == im.Width && h == im.Height {
		return im.Clone()
	}
	resized := imaging.Resize(im.ToImage(), w, h, imaging.Lanczos)
	return raster.FromImageAs(resized, im.Channels)
}

// FlipHorizontal mirrors the image left to right.
func FlipHorizontal(im *raster.Image) *raster.Image {
	return raster.FromImageAs(imaging.FlipH(im.ToImage()), im.Channels)
}

// FlipVertical mirrors the image top to bottom.
func FlipVertical(im *raster.Image) *raster.Image {
	return raster.FromImageAs(imaging.FlipV(im.ToImage()), im.Channels)
}

// Crop extracts the rectangle with inclusive top-left (x1, y1) and exclusive
// bottom-right (x2, y2).
//
// The rectangle must be non-empty and lie entirely inside the image;
// otherwise the error wraps raster.ErrRange. Coordinates are never clamped.
func Crop(im *raster.Image, x1, y1, x2, y2 int) (*raster.Image, error) {
	if x2 <= x1 || y2 <= y1 {
		return nil, raster.RangeErrorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}
	if x1 < 0 || y1 < 0 || x2 > im.Width || y2 > im.Height {
		return nil, raster.RangeErrorf("crop region (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
			x1, y1, x2, y2, im.Width, im.Height)
	}
	cropped := imaging.Crop(im.ToImage(), image.Rect(x1, y1, x2, y2))
	return raster.FromImageAs(cropped, im.Channels), nil
}
