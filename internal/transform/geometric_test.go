package transform

import (
	"errors"
	"testing"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

func TestFlip_Involution(t *testing.T) {
	for _, channels := range []int{1, 3} {
		im := gradientImage(7, 5, channels)

		if twice := FlipHorizontal(FlipHorizontal(im)); !twice.Equal(im) {
			t.Errorf("channels=%d: FlipHorizontal twice changed the image", channels)
		}
		if twice := FlipVertical(FlipVertical(im)); !twice.Equal(im) {
			t.Errorf("channels=%d: FlipVertical twice changed the image", channels)
		}
	}
}

func TestFlipHorizontal_Mirrors(t *testing.T) {
	im := gradientImage(4, 3, 1)
	out := FlipHorizontal(im)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if out.At(x, y, 0) != im.At(3-x, y, 0) {
				t.Fatalf("pixel (%d,%d): got %d, want %d", x, y, out.At(x, y, 0), im.At(3-x, y, 0))
			}
		}
	}
}

func TestRotate_ZeroPreservesContent(t *testing.T) {
	for _, angle := range []float64{0, 360, -360} {
		im := gradientImage(6, 4, 3)
		out, err := Rotate(im, angle)
		if err != nil {
			t.Fatalf("Rotate(%g) failed: %v", angle, err)
		}
		if !out.Equal(im) {
			t.Errorf("Rotate(%g) changed content", angle)
		}
	}
}

func TestRotate_ExpandsCanvas(t *testing.T) {
	im := raster.Filled(40, 20, 1, 200)

	quarter, err := Rotate(im, 90)
	if err != nil {
		t.Fatalf("Rotate(90) failed: %v", err)
	}
	if quarter.Width != 20 || quarter.Height != 40 {
		t.Errorf("Rotate(90): got %dx%d, want 20x40", quarter.Width, quarter.Height)
	}

	diag, err := Rotate(im, 45)
	if err != nil {
		t.Fatalf("Rotate(45) failed: %v", err)
	}
	if diag.Width <= 40 || diag.Height <= 20 {
		t.Errorf("Rotate(45): canvas %dx%d did not expand", diag.Width, diag.Height)
	}
	if diag.At(0, 0, 0) != 0 {
		t.Errorf("Rotate(45): corner got %d, want black background", diag.At(0, 0, 0))
	}
	if diag.Channels != 1 {
		t.Errorf("Rotate(45): Channels got %d, want 1", diag.Channels)
	}
}

func TestRotate_OutOfRange(t *testing.T) {
	if _, err := Rotate(raster.Filled(2, 2, 1, 0), 400); !errors.Is(err, raster.ErrRange) {
		t.Errorf("got %v, want ErrRange", err)
	}
}

func TestTranslate(t *testing.T) {
	im := raster.MustNew(4, 4, 1)
	im.Set(3, 0, 0, 9)

	out, err := Translate(im, 2, -1)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if out.At(1, 1, 0) != 9 {
		t.Errorf("moved pixel: got %d at (1,1), want 9", out.At(1, 1, 0))
	}
	if out.At(3, 0, 0) != 0 {
		t.Errorf("vacated pixel: got %d, want 0", out.At(3, 0, 0))
	}

	gone, err := Translate(im, -10, 0)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	for i, v := range gone.Pix {
		if v != 0 {
			t.Fatalf("pixel %d: got %d, want 0 after shifting content off canvas", i, v)
		}
	}
}

func TestTranslate_SamplesAheadOfOutput(t *testing.T) {
	tests := []struct {
		tx   int
		want []uint8
	}{
		{1, []uint8{0, 200, 0, 0, 0}},
		{-1, []uint8{0, 0, 0, 200, 0}},
		{0, []uint8{0, 0, 200, 0, 0}},
	}

	for _, tt := range tests {
		row := raster.MustNew(5, 1, 1)
		row.Pix[2] = 200
		out, err := Translate(row, tt.tx, 0)
		if err != nil {
			t.Fatalf("Translate(%d) failed: %v", tt.tx, err)
		}
		for i, w := range tt.want {
			if out.Pix[i] != w {
				t.Errorf("tx=%d pixel %d: got %d, want %d", tt.tx, i, out.Pix[i], w)
			}
		}
	}
}

func TestZoom(t *testing.T) {
	tests := []struct {
		factor       float64
		wantW, wantH int
	}{
		{2, 20, 10},
		{0.5, 5, 2},
		{0.1, 1, 1},
		{1, 10, 5},
	}

	for _, tt := range tests {
		out, err := Zoom(raster.Filled(10, 5, 3, 80), tt.factor)
		if err != nil {
			t.Fatalf("Zoom(%g) failed: %v", tt.factor, err)
		}
		if out.Width != tt.wantW || out.Height != tt.wantH {
			t.Errorf("Zoom(%g): got %dx%d, want %dx%d", tt.factor, out.Width, out.Height, tt.wantW, tt.wantH)
		}
		if out.Channels != 3 {
			t.Errorf("Zoom(%g): Channels got %d, want 3", tt.factor, out.Channels)
		}
	}

	if _, err := Zoom(raster.Filled(10, 5, 3, 80), 5.5); !errors.Is(err, raster.ErrRange) {
		t.Errorf("Zoom(5.5): got %v, want ErrRange", err)
	}
}

func TestCrop(t *testing.T) {
	im := gradientImage(10, 8, 3)

	out, err := Crop(im, 2, 3, 6, 8)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if out.Width != 4 || out.Height != 5 {
		t.Fatalf("dimensions: got %dx%d, want 4x5", out.Width, out.Height)
	}
	for c := 0; c < 3; c++ {
		if out.At(0, 0, c) != im.At(2, 3, c) {
			t.Errorf("channel %d: got %d, want %d", c, out.At(0, 0, c), im.At(2, 3, c))
		}
	}
}

func TestCrop_Invalid(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"x2 equals x1", 3, 0, 3, 4},
		{"x2 below x1", 5, 0, 2, 4},
		{"y2 equals y1", 0, 2, 4, 2},
		{"y2 below y1", 0, 4, 4, 1},
		{"negative origin", -1, 0, 4, 4},
		{"beyond width", 0, 0, 11, 4},
		{"beyond height", 0, 0, 4, 9},
	}

	for _, size := range [][2]int{{1, 1}, {10, 8}, {64, 3}} {
		im := raster.Filled(size[0], size[1], 1, 0)
		for _, tt := range tests {
			if tt.x2 <= size[0] && tt.y2 <= size[1] && tt.x1 >= 0 && tt.x2 > tt.x1 && tt.y2 > tt.y1 {
				continue
			}
			if _, err := Crop(im, tt.x1, tt.y1, tt.x2, tt.y2); !errors.Is(err, raster.ErrRange) {
				t.Errorf("%dx%d %s: got %v, want ErrRange", size[0], size[1], tt.name, err)
			}
		}
	}
}
