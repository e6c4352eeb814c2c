package raster

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Image is an 8-bit raster with one or three interleaved channels.
//
// Pix holds Width*Height*Channels samples in row-major order. The sample for
// channel c of pixel (x, y) lives at Pix[(y*Width+x)*Channels+c].
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// New allocates a zeroed image. Channels must be 1 or 3.
func New(width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, RangeErrorf("invalid dimensions %dx%d", width, height)
	}
	if channels != 1 && channels != 3 {
		return nil, RangeErrorf("unsupported channel count %d", channels)
	}
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}, nil
}

// MustNew is New for dimensions already known to be valid.
func MustNew(width, height, channels int) *Image {
	im, err := New(width, height, channels)
	if err != nil {
		panic(err)
	}
	return im
}

// Filled returns an image with every sample set to v.
func Filled(width, height, channels int, v uint8) *Image {
	im := MustNew(width, height, channels)
	for i := range im.Pix {
		im.Pix[i] = v
	}
	return im
}

// Clone returns a deep copy.
func (im *Image) Clone() *Image {
	pix := make([]uint8, len(im.Pix))
	copy(pix, im.Pix)
	return &Image{Width: im.Width, Height: im.Height, Channels: im.Channels, Pix: pix}
}

// Offset returns the index of the first sample of pixel (x, y).
func (im *Image) Offset(x, y int) int {
	return (y*im.Width + x) * im.Channels
}

// At returns channel c of pixel (x, y).
func (im *Image) At(x, y, c int) uint8 {
	return im.Pix[im.Offset(x, y)+c]
}

// Set writes channel c of pixel (x, y).
func (im *Image) Set(x, y, c int, v uint8) {
	im.Pix[im.Offset(x, y)+c] = v
}

// Contains reports whether (x, y) lies inside the image.
func (im *Image) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < im.Width && y < im.Height
}

// SameShape reports whether both images have identical geometry and channels.
func (im *Image) SameShape(other *Image) bool {
	return im.Width == other.Width && im.Height == other.Height && im.Channels == other.Channels
}

// Equal reports whether both images are bit-identical.
func (im *Image) Equal(other *Image) bool {
	if im == nil || other == nil {
		return im == other
	}
	if !im.SameShape(other) {
		return false
	}
	for i, v := range im.Pix {
		if other.Pix[i] != v {
			return false
		}
	}
	return true
}

func (im *Image) String() string {
	return fmt.Sprintf("raster.Image(%dx%dx%d)", im.Width, im.Height, im.Channels)
}

// Luma returns the ITU-R 601-2 luma of an RGB triple.
func Luma(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// Gray reduces the image to a single channel. A grayscale image is cloned.
func (im *Image) Gray() *Image {
	if im.Channels == 1 {
		return im.Clone()
	}
	out := MustNew(im.Width, im.Height, 1)
	for i := range out.Pix {
		j := i * 3
		out.Pix[i] = Quantize(Luma(im.Pix[j], im.Pix[j+1], im.Pix[j+2]))
	}
	return out
}

// RGB expands the image to three channels. An RGB image is cloned.
func (im *Image) RGB() *Image {
	if im.Channels == 3 {
		return im.Clone()
	}
	out := MustNew(im.Width, im.Height, 3)
	for i, v := range im.Pix {
		out.Pix[i*3] = v
		out.Pix[i*3+1] = v
		out.Pix[i*3+2] = v
	}
	return out
}

// Intensity returns the luma of every pixel as float64, row-major.
func (im *Image) Intensity() []float64 {
	out := make([]float64, im.Width*im.Height)
	if im.Channels == 1 {
		for i, v := range im.Pix {
			out[i] = float64(v)
		}
		return out
	}
	for i := range out {
		j := i * 3
		out[i] = float64(Quantize(Luma(im.Pix[j], im.Pix[j+1], im.Pix[j+2])))
	}
	return out
}

// Quantize rounds v to the nearest integer and clamps it to [0, 255].
func Quantize(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// FromField builds a single-channel image from a row-major float field,
// quantizing each value.
func FromField(field []float64, width, height int) *Image {
	out := MustNew(width, height, 1)
	for i, v := range field {
		out.Pix[i] = Quantize(v)
	}
	return out
}

// FromImage converts a decoded image into a raster. Grayscale sources keep a
// single channel; all other color models become RGB with alpha dropped.
func FromImage(img image.Image) *Image {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return FromImageAs(img, 1)
	}
	return FromImageAs(img, 3)
}

// FromImageAs converts a decoded image into a raster with the requested
// channel count. Used when a library returns NRGBA for a grayscale input.
func FromImageAs(img image.Image, channels int) *Image {
	b := img.Bounds()
	out := MustNew(b.Dx(), b.Dy(), channels)

	if g, ok := img.(*image.Gray); ok && channels == 1 {
		for y := 0; y < out.Height; y++ {
			row := g.Pix[(y+b.Min.Y-g.Rect.Min.Y)*g.Stride+(b.Min.X-g.Rect.Min.X):]
			copy(out.Pix[y*out.Width:(y+1)*out.Width], row[:out.Width])
		}
		return out
	}

	src := imaging.Clone(img)
	for i := 0; i < out.Width*out.Height; i++ {
		j := i * 4
		if channels == 1 {
			out.Pix[i] = src.Pix[j]
			continue
		}
		out.Pix[i*3] = src.Pix[j]
		out.Pix[i*3+1] = src.Pix[j+1]
		out.Pix[i*3+2] = src.Pix[j+2]
	}
	return out
}

// ToImage exposes the raster as a standard library image. Single-channel
// rasters become *image.Gray, RGB rasters become opaque *image.NRGBA.
func (im *Image) ToImage() image.Image {
	rect := image.Rect(0, 0, im.Width, im.Height)
	if im.Channels == 1 {
		g := image.NewGray(rect)
		copy(g.Pix, im.Pix)
		return g
	}
	n := image.NewNRGBA(rect)
	for i := 0; i < im.Width*im.Height; i++ {
		n.Pix[i*4] = im.Pix[i*3]
		n.Pix[i*4+1] = im.Pix[i*3+1]
		n.Pix[i*4+2] = im.Pix[i*3+2]
		n.Pix[i*4+3] = 0xff
	}
	return n
}
