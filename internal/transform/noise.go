package transform

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// Erlang noise uses a fixed scale; only the shape is adjustable.
const ErlangScale = 10.0

// GaussianNoise adds zero-mean normal noise of the given variance to every
// sample. variance must be in [0, 2000].
func GaussianNoise(im *raster.Image, variance float64, seed uint64) (*raster.Image, error) {
	if variance < 0 || variance > 2000 {
		return nil, raster.RangeErrorf("gaussian variance %g outside [0, 2000]", variance)
	}
	src := rand.NewSource(seed)
	return addNoise(im, distuv.Normal{Mu: 0, Sigma: math.Sqrt(variance), Src: src}), nil
}

// RayleighNoise adds Rayleigh-distributed noise with mode scale, scale in
// [0.1, 100].
func RayleighNoise(im *raster.Image, scale float64, seed uint64) (*raster.Image, error) {
	if scale < 0.1 || scale > 100 {
		return nil, raster.RangeErrorf("rayleigh scale %g outside [0.1, 100]", scale)
	}
	// Rayleigh(σ) is Weibull with k=2 and λ=σ√2.
	d := distuv.Weibull{K: 2, Lambda: scale * math.Sqrt2, Src: rand.NewSource(seed)}
	return addNoise(im, d), nil
}

// ErlangNoise adds Erlang noise of integer shape k in [1, 10] with scale
// ErlangScale. Non-integer shapes are rounded.
func ErlangNoise(im *raster.Image, shape float64, seed uint64) (*raster.Image, error) {
	if shape < 1 || shape > 10 {
		return nil, raster.RangeErrorf("erlang shape %g outside [1, 10]", shape)
	}
	d := distuv.Gamma{Alpha: math.Round(shape), Beta: 1 / ErlangScale, Src: rand.NewSource(seed)}
	return addNoise(im, d), nil
}

// ExponentialNoise adds exponential noise with mean scale, scale in
// [0.1, 50].
func ExponentialNoise(im *raster.Image, scale float64, seed uint64) (*raster.Image, error) {
	if scale < 0.1 || scale > 50 {
		return nil, raster.RangeErrorf("exponential scale %g outside [0.1, 50]", scale)
	}
	return addNoise(im, distuv.Exponential{Rate: 1 / scale, Src: rand.NewSource(seed)}), nil
}

// UniformNoise adds noise drawn uniformly from [-r, r], r in [0, 200].
func UniformNoise(im *raster.Image, r float64, seed uint64) (*raster.Image, error) {
	if r < 0 || r > 200 {
		return nil, raster.RangeErrorf("uniform range %g outside [0, 200]", r)
	}
	if r == 0 {
		return im.Clone(), nil
	}
	return addNoise(im, distuv.Uniform{Min: -r, Max: r, Src: rand.NewSource(seed)}), nil
}

// ImpulseNoise sets whole pixels to black with probability p/2 and to white
// with probability p/2 (salt and pepper), p in [0, 1].
func ImpulseNoise(im *raster.Image, p float64, seed uint64) (*raster.Image, error) {
	if p < 0 || p > 1 {
		return nil, raster.RangeErrorf("impulse probability %g outside [0, 1]", p)
	}
	rng := rand.New(rand.NewSource(seed))
	out := im.Clone()
	for i := 0; i < im.Width*im.Height; i++ {
		r := rng.Float64()
		var v uint8
		switch {
		case r < p/2:
			v = 0
		case r < p:
			v = 255
		default:
			continue
		}
		off := i * im.Channels
		for c := 0; c < im.Channels; c++ {
			out.Pix[off+c] = v
		}
	}
	return out, nil
}

func addNoise(im *raster.Image, d distuv.Rander) *raster.Image {
	return mapSamples(im, func(s float64) float64 { return s + d.Rand() })
}
