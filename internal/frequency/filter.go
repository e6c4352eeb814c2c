package frequency

import (
	"math"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// Apply filters the luma of im with the given transfer function and returns
// a single-channel image of the same size.
func Apply(im *raster.Image, kind Kind, cutoff float64, order int) (*raster.Image, error) {
	field, err := Response(im, kind, cutoff, order)
	if err != nil {
		return nil, err
	}
	return raster.FromField(field, im.Width, im.Height), nil
}

// Response runs the filter pipeline and returns the real part of the
// filtered field before quantization.
func Response(im *raster.Image, kind Kind, cutoff float64, order int) ([]float64, error) {
	rows, cols := im.Height, im.Width
	mask, err := NewMask(kind, rows, cols, cutoff, order)
	if err != nil {
		return nil, err
	}

	spectrum := Shift(FFT2(im.Intensity(), rows, cols), rows, cols)
	for i, h := range mask.H {
		spectrum[i] *= complex(h, 0)
	}
	back := IFFT2(Unshift(spectrum, rows, cols), rows, cols)

	out := make([]float64, len(back))
	for i, v := range back {
		out[i] = real(v)
	}
	return out, nil
}

// Spectrum renders the centered log-magnitude spectrum 20·ln(|F|+1) of the
// luma, clamped to [0, 255].
func Spectrum(im *raster.Image) *raster.Image {
	rows, cols := im.Height, im.Width
	shifted := Shift(FFT2(im.Intensity(), rows, cols), rows, cols)

	field := make([]float64, len(shifted))
	for i, v := range shifted {
		mag := math.Hypot(real(v), imag(v))
		field[i] = 20 * math.Log(mag+1)
	}
	return raster.FromField(field, cols, rows)
}
