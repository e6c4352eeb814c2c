package spatial

import (
	"errors"
	"testing"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

type detector struct {
	name string
	fn   func(*raster.Image) *raster.Image
}

var detectors = []detector{
	{"sobel", Sobel},
	{"prewitt", Prewitt},
	{"roberts", Roberts},
	{"compass", Compass},
	{"laplacian", Laplacian},
	{"log", LoG},
}

func TestDetectors_UniformImage(t *testing.T) {
	// Uniform image should have no edges
	im := raster.Filled(20, 20, 3, 128)
	for _, d := range detectors {
		t.Run(d.name, func(t *testing.T) {
			out := d.fn(im)
			if out.Channels != 1 || out.Width != 20 || out.Height != 20 {
				t.Fatalf("got %v, want 20x20x1", out)
			}
			for i, v := range out.Pix {
				if v != 0 {
					t.Fatalf("pixel %d: got %d, want 0", i, v)
				}
			}
		})
	}
}

func TestDetectors_StepEdge(t *testing.T) {
	im := createStepImage(20, 10, 10, 0, 255)
	for _, d := range detectors {
		t.Run(d.name, func(t *testing.T) {
			out := d.fn(im)
			max := uint8(0)
			for _, v := range out.Pix {
				if v > max {
					max = v
				}
			}
			if max != 255 {
				t.Errorf("strongest response: got %d, want 255", max)
			}
			if out.At(1, 5, 0) != 0 || out.At(18, 5, 0) != 0 {
				t.Errorf("flat regions: got %d and %d, want 0", out.At(1, 5, 0), out.At(18, 5, 0))
			}
		})
	}
}

func TestDetectors_NormalizedPerCall(t *testing.T) {
	faint := createStepImage(16, 8, 8, 0, 100)
	strong := createStepImage(16, 8, 8, 0, 200)
	for _, d := range detectors {
		if !d.fn(faint).Equal(d.fn(strong)) {
			t.Errorf("%s: output depends on absolute contrast", d.name)
		}
	}
}

func TestSobel_EdgeLocation(t *testing.T) {
	out := Sobel(createStepImage(10, 6, 5, 0, 255))
	for y := 0; y < 6; y++ {
		if out.At(4, y, 0) != 255 || out.At(5, y, 0) != 255 {
			t.Errorf("row %d: got %d %d at the step, want 255 255", y, out.At(4, y, 0), out.At(5, y, 0))
		}
	}
}

func TestCanny(t *testing.T) {
	im := createStepImage(20, 20, 10, 0, 255)

	out, err := Canny(im, DefaultCannyLow, DefaultCannyHigh)
	if err != nil {
		t.Fatalf("Canny failed: %v", err)
	}
	for y := 1; y < 19; y++ {
		if out.At(9, y, 0) != 255 {
			t.Errorf("row %d: edge missing at the step", y)
		}
		if out.At(3, y, 0) != 0 || out.At(16, y, 0) != 0 {
			t.Errorf("row %d: spurious edge in a flat region", y)
		}
	}
	for i, v := range out.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("pixel %d: got %d, output must be binary", i, v)
		}
	}
}

func TestCanny_WeakEdgesNeedStrongNeighbor(t *testing.T) {
	// A faint step whose Sobel magnitude (4*40=160) sits between the
	// thresholds is dropped; with a lower high threshold it is kept.
	im := createStepImage(12, 12, 6, 100, 140)

	dropped, err := Canny(im, 100, 200)
	if err != nil {
		t.Fatalf("Canny failed: %v", err)
	}
	for i, v := range dropped.Pix {
		if v != 0 {
			t.Fatalf("pixel %d: weak edge survived without a strong seed", i)
		}
	}

	kept, err := Canny(im, 100, 150)
	if err != nil {
		t.Fatalf("Canny failed: %v", err)
	}
	if kept.At(5, 6, 0) != 255 {
		t.Error("edge above the high threshold was not kept")
	}
}

func TestCanny_UniformImage(t *testing.T) {
	out, err := Canny(raster.Filled(16, 16, 1, 90), 100, 200)
	if err != nil {
		t.Fatalf("Canny failed: %v", err)
	}
	if !out.Equal(raster.Filled(16, 16, 1, 0)) {
		t.Error("uniform image produced edges")
	}
}

func TestCanny_InvalidThresholds(t *testing.T) {
	im := raster.Filled(4, 4, 1, 0)
	if _, err := Canny(im, 200, 100); !errors.Is(err, raster.ErrRange) {
		t.Errorf("low > high: got %v, want ErrRange", err)
	}
	if _, err := Canny(im, -1, 100); !errors.Is(err, raster.ErrRange) {
		t.Errorf("negative low: got %v, want ErrRange", err)
	}
}
