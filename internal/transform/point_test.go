package transform

import (
	"errors"
	"testing"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// gradientImage fills an image with a deterministic pattern covering the
// full sample range.
func gradientImage(w, h, channels int) *raster.Image {
	im := raster.MustNew(w, h, channels)
	for i := range im.Pix {
		im.Pix[i] = uint8((i * 37) % 256)
	}
	return im
}

func TestAdd_Scenario(t *testing.T) {
	original := raster.Filled(4, 4, 1, 100)

	plus50, err := Add(original, 50)
	if err != nil {
		t.Fatalf("Add(50) failed: %v", err)
	}
	for i, v := range plus50.Pix {
		if v != 150 {
			t.Fatalf("Add(50) pixel %d: got %d, want 150", i, v)
		}
	}

	plus200, err := Add(original, 200)
	if err != nil {
		t.Fatalf("Add(200) failed: %v", err)
	}
	for i, v := range plus200.Pix {
		if v != 255 {
			t.Fatalf("Add(200) pixel %d: got %d, want 255", i, v)
		}
	}

	for i, v := range original.Pix {
		if v != 100 {
			t.Fatalf("original mutated at %d: got %d", i, v)
		}
	}
}

func TestAddSubtract_InverseWithoutClamping(t *testing.T) {
	im := raster.MustNew(16, 1, 1)
	for i := range im.Pix {
		im.Pix[i] = uint8(i * 10)
	}

	added, err := Add(im, 40)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	back, err := Subtract(added, 40)
	if err != nil {
		t.Fatalf("Subtract failed: %v", err)
	}
	if !back.Equal(im) {
		t.Errorf("subtract(add(I, 40), 40) != I: got %v, want %v", back.Pix, im.Pix)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		fn   func(*raster.Image, float64) (*raster.Image, error)
		in   uint8
		arg  float64
		want uint8
	}{
		{"subtract clamps at zero", Subtract, 30, 50, 0},
		{"multiply", Multiply, 40, 2.5, 100},
		{"multiply saturates", Multiply, 200, 2, 255},
		{"multiply rounds", Multiply, 3, 0.5, 2},
		{"divide", Divide, 200, 4, 50},
		{"divide by zero saturates", Divide, 1, 0, 255},
		{"divide zero by zero", Divide, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.fn(raster.Filled(2, 2, 3, tt.in), tt.arg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Pix[0] != tt.want {
				t.Errorf("got %d, want %d", out.Pix[0], tt.want)
			}
		})
	}
}

func TestArithmetic_OutOfRange(t *testing.T) {
	im := raster.Filled(2, 2, 1, 0)
	tests := []struct {
		name string
		fn   func(*raster.Image, float64) (*raster.Image, error)
		arg  float64
	}{
		{"add negative", Add, -1},
		{"add too large", Add, 256},
		{"subtract too large", Subtract, 300},
		{"multiply too small", Multiply, 0.05},
		{"multiply too large", Multiply, 6},
		{"divide negative", Divide, -0.5},
		{"negative above one", Negative, 1.5},
		{"threshold negative", Threshold, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.fn(im, tt.arg); !errors.Is(err, raster.ErrRange) {
				t.Errorf("got %v, want ErrRange", err)
			}
		})
	}
}

func TestNegative_Endpoints(t *testing.T) {
	for _, channels := range []int{1, 3} {
		im := gradientImage(9, 7, channels)

		same, err := Negative(im, 0)
		if err != nil {
			t.Fatalf("Negative(0) failed: %v", err)
		}
		if !same.Equal(im) {
			t.Errorf("channels=%d: Negative(I, 0) != I", channels)
		}

		inv, err := Negative(im, 1)
		if err != nil {
			t.Fatalf("Negative(1) failed: %v", err)
		}
		if inv.Channels != channels {
			t.Errorf("channels=%d: Negative changed channel count to %d", channels, inv.Channels)
		}
		for i, v := range im.Pix {
			if inv.Pix[i] != 255-v {
				t.Fatalf("channels=%d sample %d: got %d, want %d", channels, i, inv.Pix[i], 255-v)
			}
		}
	}
}

func TestNegative_HalfStrengthIsMidGray(t *testing.T) {
	out, err := Negative(gradientImage(5, 5, 1), 0.5)
	if err != nil {
		t.Fatalf("Negative failed: %v", err)
	}
	for i, v := range out.Pix {
		// in + 0.5*(255-2in) = 127.5 for every input
		if v != 128 {
			t.Fatalf("sample %d: got %d, want 128", i, v)
		}
	}
}

func TestThreshold(t *testing.T) {
	im := raster.MustNew(3, 1, 1)
	im.Pix[0], im.Pix[1], im.Pix[2] = 126, 127, 128

	out, err := Threshold(im, 127)
	if err != nil {
		t.Fatalf("Threshold failed: %v", err)
	}
	want := []uint8{0, 0, 255}
	for i, w := range want {
		if out.Pix[i] != w {
			t.Errorf("pixel %d: got %d, want %d", i, out.Pix[i], w)
		}
	}
}
