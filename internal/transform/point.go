package transform

import (
	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// DivideEpsilon replaces a zero divisor in Divide.
const DivideEpsilon = 1e-3

// Factor limits for Multiply; Divide accepts [0, MaxFactor].
const (
	MinFactor = 0.1
	MaxFactor = 5.0
)

// Add adds v to every sample. v must be in [0, 255].
func Add(im *raster.Image, v float64) (*raster.Image, error) {
	if v < 0 || v > 255 {
		return nil, raster.RangeErrorf("add value %g outside [0, 255]", v)
	}
	return mapSamples(im, func(s float64) float64 { return s + v }), nil
}

// Subtract subtracts v from every sample. v must be in [0, 255].
func Subtract(im *raster.Image, v float64) (*raster.Image, error) {
	if v < 0 || v > 255 {
		return nil, raster.RangeErrorf("subtract value %g outside [0, 255]", v)
	}
	return mapSamples(im, func(s float64) float64 { return s - v }), nil
}

// Multiply scales every sample by f. f must be in [0.1, 5].
func Multiply(im *raster.Image, f float64) (*raster.Image, error) {
	if f < MinFactor || f > MaxFactor {
		return nil, raster.RangeErrorf("multiply factor %g outside [%g, %g]", f, MinFactor, MaxFactor)
	}
	return mapSamples(im, func(s float64) float64 { return s * f }), nil
}

// Divide divides every sample by f. f must be in [0, 5]; a zero divisor is
// replaced by DivideEpsilon, which saturates every non-zero sample.
func Divide(im *raster.Image, f float64) (*raster.Image, error) {
	if f < 0 || f > MaxFactor {
		return nil, raster.RangeErrorf("divide factor %g outside [0, %g]", f, MaxFactor)
	}
	if f == 0 {
		f = DivideEpsilon
	}
	return mapSamples(im, func(s float64) float64 { return s / f }), nil
}

// Negative blends each sample toward its inverse:
//
//	out = in + s*(255 - 2*in)
//
// s = 0 returns an identical copy and s = 1 yields exactly 255 - in. The
// channel count is preserved.
func Negative(im *raster.Image, s float64) (*raster.Image, error) {
	if s < 0 || s > 1 {
		return nil, raster.RangeErrorf("negative strength %g outside [0, 1]", s)
	}
	return mapSamples(im, func(v float64) float64 { return v + s*(255-2*v) }), nil
}

// Threshold produces a binary single-channel image: 255 where the luma is
// strictly greater than t, 0 elsewhere.
func Threshold(im *raster.Image, t float64) (*raster.Image, error) {
	if t < 0 || t > 255 {
		return nil, raster.RangeErrorf("threshold %g outside [0, 255]", t)
	}
	out := im.Gray()
	for i, v := range out.Pix {
		if float64(v) > t {
			out.Pix[i] = 255
		} else {
			out.Pix[i] = 0
		}
	}
	return out, nil
}

func mapSamples(im *raster.Image, fn func(float64) float64) *raster.Image {
	out := im.Clone()
	for i, v := range out.Pix {
		out.Pix[i] = raster.Quantize(fn(float64(v)))
	}
	return out
}
