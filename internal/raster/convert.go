package raster

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorModel names a target representation for Convert.
type ColorModel string

// Supported color models.
const (
	ModelGrayscale ColorModel = "grayscale"
	ModelRGB       ColorModel = "rgb"
	ModelHSV       ColorModel = "hsv"
	ModelCMY       ColorModel = "cmy"
	ModelYUV       ColorModel = "yuv"
	ModelYIQ       ColorModel = "yiq"
	ModelPseudo    ColorModel = "pseudo"
)

// ColorModels lists every model accepted by Convert.
var ColorModels = []ColorModel{
	ModelGrayscale, ModelRGB, ModelHSV, ModelCMY, ModelYUV, ModelYIQ, ModelPseudo,
}

// Convert re-encodes im in the given color model and returns a new image.
//
// The three-channel models pack their components into 8-bit samples so the
// result can be displayed and saved like any RGB raster:
//   - hsv: H in [0,180) (degrees halved), S and V in [0,255]
//   - cmy: 255 - c per channel
//   - yuv: Y luma, U = 0.492(B-Y)+128, V = 0.877(R-Y)+128
//   - yiq: NTSC matrix on normalized RGB, scaled by 255 and clamped
//   - pseudo: jet colormap applied to the luma
func Convert(im *Image, model ColorModel) (*Image, error) {
	switch model {
	case ModelGrayscale:
		return im.Gray(), nil
	case ModelRGB:
		return im.RGB(), nil
	case ModelHSV:
		return mapRGB(im, rgbToHSV), nil
	case ModelCMY:
		return mapRGB(im, func(r, g, b uint8) (uint8, uint8, uint8) {
			return 255 - r, 255 - g, 255 - b
		}), nil
	case ModelYUV:
		return mapRGB(im, rgbToYUV), nil
	case ModelYIQ:
		return mapRGB(im, rgbToYIQ), nil
	case ModelPseudo:
		gray := im.Gray()
		out := MustNew(im.Width, im.Height, 3)
		for i, v := range gray.Pix {
			out.Pix[i*3], out.Pix[i*3+1], out.Pix[i*3+2] = Jet(v)
		}
		return out, nil
	}
	return nil, RangeErrorf("unknown color model %q", string(model))
}

// ParseColorModel validates a model name.
func ParseColorModel(name string) (ColorModel, error) {
	for _, m := range ColorModels {
		if string(m) == name {
			return m, nil
		}
	}
	return "", RangeErrorf("unknown color model %q", name)
}

func mapRGB(im *Image, fn func(r, g, b uint8) (uint8, uint8, uint8)) *Image {
	src := im.RGB()
	for i := 0; i < len(src.Pix); i += 3 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2] = fn(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
	}
	return src
}

func rgbToHSV(r, g, b uint8) (uint8, uint8, uint8) {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, v := c.Hsv()
	hue := math.Round(h / 2)
	if hue >= 180 {
		hue -= 180
	}
	return uint8(hue), Quantize(s * 255), Quantize(v * 255)
}

func rgbToYUV(r, g, b uint8) (uint8, uint8, uint8) {
	y := Luma(r, g, b)
	u := 0.492*(float64(b)-y) + 128
	v := 0.877*(float64(r)-y) + 128
	return Quantize(y), Quantize(u), Quantize(v)
}

func rgbToYIQ(r, g, b uint8) (uint8, uint8, uint8) {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	y := 0.299*rf + 0.587*gf + 0.114*bf
	i := 0.596*rf - 0.275*gf - 0.321*bf
	q := 0.212*rf - 0.523*gf + 0.311*bf
	return Quantize(y * 255), Quantize(i * 255), Quantize(q * 255)
}

// Jet maps an intensity onto the jet colormap (dark blue → red).
func Jet(v uint8) (uint8, uint8, uint8) {
	t := float64(v) / 255
	c := colorful.Color{
		R: 1.5 - math.Abs(4*t-3),
		G: 1.5 - math.Abs(4*t-2),
		B: 1.5 - math.Abs(4*t-1),
	}
	return c.Clamped().RGB255()
}
