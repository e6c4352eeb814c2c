package transform

import (
	"errors"
	"testing"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

type noiseFunc func(*raster.Image, float64, uint64) (*raster.Image, error)

func TestNoise_Reproducible(t *testing.T) {
	tests := []struct {
		name  string
		fn    noiseFunc
		param float64
	}{
		{"gaussian", GaussianNoise, 200},
		{"rayleigh", RayleighNoise, 10},
		{"erlang", ErlangNoise, 2},
		{"exponential", ExponentialNoise, 5},
		{"uniform", UniformNoise, 20},
		{"impulse", ImpulseNoise, 0.3},
	}

	im := raster.Filled(16, 16, 3, 128)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.fn(im, tt.param, 7)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			b, err := tt.fn(im, tt.param, 7)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !a.Equal(b) {
				t.Error("same seed produced different images")
			}
			if a.Equal(im) {
				t.Error("noise left the image unchanged")
			}
			if !a.SameShape(im) {
				t.Errorf("shape changed: got %v", a)
			}
		})
	}
}

func TestNoise_ZeroStrengthIsIdentity(t *testing.T) {
	im := gradientImage(8, 8, 1)

	for name, fn := range map[string]noiseFunc{
		"gaussian": GaussianNoise,
		"uniform":  UniformNoise,
		"impulse":  ImpulseNoise,
	} {
		out, err := fn(im, 0, 1)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !out.Equal(im) {
			t.Errorf("%s: zero strength changed the image", name)
		}
	}
}

func TestNoise_AdditivePositiveDistributions(t *testing.T) {
	im := raster.Filled(16, 16, 1, 50)
	for name, fn := range map[string]noiseFunc{
		"rayleigh":    RayleighNoise,
		"exponential": ExponentialNoise,
		"erlang":      ErlangNoise,
	} {
		out, err := fn(im, 3, 11)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		for i, v := range out.Pix {
			if v < 50 {
				t.Fatalf("%s pixel %d: got %d, positive noise must not darken", name, i, v)
			}
		}
	}
}

func TestNoise_OutOfRange(t *testing.T) {
	im := raster.Filled(2, 2, 1, 0)
	tests := []struct {
		name  string
		fn    noiseFunc
		param float64
	}{
		{"gaussian", GaussianNoise, 2001},
		{"rayleigh", RayleighNoise, 0},
		{"erlang", ErlangNoise, 11},
		{"exponential", ExponentialNoise, 60},
		{"uniform", UniformNoise, -1},
		{"impulse", ImpulseNoise, 1.5},
	}
	for _, tt := range tests {
		if _, err := tt.fn(im, tt.param, 0); !errors.Is(err, raster.ErrRange) {
			t.Errorf("%s(%g): got %v, want ErrRange", tt.name, tt.param, err)
		}
	}
}
