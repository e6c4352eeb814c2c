package transform

import (
	"errors"
	"testing"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

func TestBinaryOps(t *testing.T) {
	a := raster.Filled(4, 4, 1, 0xF0)
	b := raster.Filled(4, 4, 1, 0x3C)

	tests := []struct {
		name string
		fn   func(a, b *raster.Image) (*raster.Image, error)
		want uint8
	}{
		{"and", And, 0x30},
		{"or", Or, 0xFC},
		{"xor", Xor, 0xCC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.fn(a, b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Channels != 1 {
				t.Fatalf("Channels: got %d, want 1", out.Channels)
			}
			for i, v := range out.Pix {
				if v != tt.want {
					t.Fatalf("pixel %d: got %#x, want %#x", i, v, tt.want)
				}
			}
		})
	}
}

func TestBinaryOps_ResamplesSecondOperand(t *testing.T) {
	a := raster.Filled(10, 6, 3, 255)
	b := raster.Filled(3, 17, 1, 0x0F)

	out, err := And(a, b)
	if err != nil {
		t.Fatalf("And failed: %v", err)
	}
	if out.Width != 10 || out.Height != 6 {
		t.Fatalf("dimensions: got %dx%d, want 10x6", out.Width, out.Height)
	}
	for i, v := range out.Pix {
		if v != 0x0F {
			t.Fatalf("pixel %d: got %#x, want 0x0f", i, v)
		}
	}
	if b.Width != 3 || b.Height != 17 || b.Pix[0] != 0x0F {
		t.Error("second operand was modified")
	}
}

func TestBinaryOps_MissingOperand(t *testing.T) {
	_, err := Or(raster.Filled(2, 2, 1, 0), nil)
	if !errors.Is(err, raster.ErrRange) {
		t.Errorf("got %v, want ErrRange", err)
	}
}

func TestNot(t *testing.T) {
	im := raster.MustNew(1, 1, 3)
	im.Pix[0], im.Pix[1], im.Pix[2] = 100, 100, 100

	out, err := Not(im, 1)
	if err != nil {
		t.Fatalf("Not failed: %v", err)
	}
	if out.Channels != 1 || out.Pix[0] != 155 {
		t.Errorf("got %v %v, want single channel 155", out, out.Pix)
	}
}

func TestResample_SameSizeClones(t *testing.T) {
	im := gradientImage(5, 5, 1)
	out := Resample(im, 5, 5)
	if !out.Equal(im) {
		t.Error("same-size resample changed samples")
	}
	out.Pix[0]++
	if out.Pix[0] == im.Pix[0] {
		t.Error("same-size resample aliases source")
	}
}
