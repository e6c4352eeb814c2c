package frequency

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// patternImage returns a single-channel image with smooth and sharp content.
func patternImage(w, h int) *raster.Image {
	im := raster.MustNew(w, h, 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := 128 + 60*math.Sin(float64(x)/3) + 40*math.Cos(float64(y)/2)
			if (x/4+y/4)%2 == 0 {
				v += 20
			}
			im.Set(x, y, 0, raster.Quantize(v))
		}
	}
	return im
}

func maxRadius(rows, cols int) float64 {
	return math.Hypot(float64(rows), float64(cols))
}

func TestFFT2_RoundTrip(t *testing.T) {
	rows, cols := 6, 9
	field := make([]float64, rows*cols)
	for i := range field {
		field[i] = float64((i * 13) % 29)
	}

	back := IFFT2(FFT2(field, rows, cols), rows, cols)
	for i, v := range back {
		if math.Abs(real(v)-field[i]) > 1e-9 || math.Abs(imag(v)) > 1e-9 {
			t.Fatalf("sample %d: got %v, want %v", i, v, field[i])
		}
	}
}

func TestFFT2_DCTerm(t *testing.T) {
	field := []float64{1, 2, 3, 4, 5, 6}
	spec := FFT2(field, 2, 3)
	if cmplx.Abs(spec[0]-complex(21, 0)) > 1e-9 {
		t.Errorf("DC term: got %v, want 21", spec[0])
	}
}

func TestShift_CentersZeroFrequency(t *testing.T) {
	for _, dims := range [][2]int{{4, 6}, {5, 7}, {1, 3}} {
		rows, cols := dims[0], dims[1]
		data := make([]complex128, rows*cols)
		for i := range data {
			data[i] = complex(float64(i), 0)
		}

		shifted := Shift(data, rows, cols)
		if shifted[(rows/2)*cols+cols/2] != data[0] {
			t.Errorf("%dx%d: zero frequency not at center", rows, cols)
		}
		back := Unshift(shifted, rows, cols)
		for i := range data {
			if back[i] != data[i] {
				t.Fatalf("%dx%d: Unshift(Shift(x)) differs at %d", rows, cols, i)
			}
		}
	}
}

func TestMask_Symmetric(t *testing.T) {
	kinds := []Kind{IdealLowPass, IdealHighPass, ButterworthLowPass, ButterworthHighPass}
	rows, cols := 16, 20
	for _, kind := range kinds {
		m, err := NewMask(kind, rows, cols, 5, 2)
		if err != nil {
			t.Fatalf("%s: NewMask failed: %v", kind, err)
		}
		crow, ccol := rows/2, cols/2
		for dr := -crow + 1; dr < crow; dr++ {
			for dc := -ccol + 1; dc < ccol; dc++ {
				a := m.At(crow+dr, ccol+dc)
				b := m.At(crow-dr, ccol-dc)
				if a != b {
					t.Fatalf("%s: H(%d,%d)=%g but H(%d,%d)=%g", kind, dr, dc, a, -dr, -dc, b)
				}
			}
		}
	}
}

func TestMask_Values(t *testing.T) {
	tests := []struct {
		kind   Kind
		d      int
		want   float64
		cutoff float64
	}{
		{IdealLowPass, 3, 1, 3},
		{IdealLowPass, 4, 0, 3},
		{IdealHighPass, 3, 0, 3},
		{IdealHighPass, 4, 1, 3},
		{ButterworthLowPass, 4, 0.5, 4},
		{ButterworthHighPass, 4, 0.5, 4},
		{ButterworthHighPass, 0, 0, 4},
	}

	for _, tt := range tests {
		m, err := NewMask(tt.kind, 32, 32, tt.cutoff, 2)
		if err != nil {
			t.Fatalf("NewMask failed: %v", err)
		}
		got := m.At(16, 16+tt.d)
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("%s d0=%g D=%d: got %g, want %g", tt.kind, tt.cutoff, tt.d, got, tt.want)
		}
	}
}

func TestNewMask_CutoffClampedToOne(t *testing.T) {
	m, err := NewMask(IdealLowPass, 8, 8, 0, 1)
	if err != nil {
		t.Fatalf("NewMask failed: %v", err)
	}
	if m.Cutoff != 1 {
		t.Errorf("Cutoff: got %g, want 1", m.Cutoff)
	}
	if m.At(4, 4) != 1 || m.At(4, 5) != 1 {
		t.Error("clamped low-pass mask should pass the center and its neighbors")
	}
}

func TestNewMask_Invalid(t *testing.T) {
	if _, err := NewMask(ButterworthLowPass, 8, 8, 10, 0); !errors.Is(err, raster.ErrRange) {
		t.Errorf("order 0: got %v, want ErrRange", err)
	}
	if _, err := NewMask(Kind("bandpass"), 8, 8, 10, 1); !errors.Is(err, raster.ErrRange) {
		t.Errorf("unknown kind: got %v, want ErrRange", err)
	}
}

func TestLowPass_LargeCutoffIsIdentity(t *testing.T) {
	im := patternImage(24, 17)

	ideal, err := Apply(im, IdealLowPass, maxRadius(17, 24), 2)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !ideal.Equal(im) {
		t.Error("ideal low-pass beyond the maximum radius changed the image")
	}

	bw, err := Apply(im, ButterworthLowPass, 20*maxRadius(17, 24), 2)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	for i, v := range bw.Pix {
		if d := int(v) - int(im.Pix[i]); d < -1 || d > 1 {
			t.Fatalf("butterworth sample %d: got %d, want %d±1", i, v, im.Pix[i])
		}
	}
}

func TestLowPlusHighPass_Reconstructs(t *testing.T) {
	im := patternImage(20, 20)
	want := im.Intensity()

	for _, d0 := range []float64{1, 3, 7.5, 12} {
		lp, err := Response(im, IdealLowPass, d0, 1)
		if err != nil {
			t.Fatalf("low-pass failed: %v", err)
		}
		hp, err := Response(im, IdealHighPass, d0, 1)
		if err != nil {
			t.Fatalf("high-pass failed: %v", err)
		}
		for i := range want {
			if math.Abs(lp[i]+hp[i]-want[i]) > 1e-6 {
				t.Fatalf("d0=%g sample %d: lp+hp=%g, want %g", d0, i, lp[i]+hp[i], want[i])
			}
		}
	}
}

func TestApply_ColorInputBecomesGray(t *testing.T) {
	im := raster.Filled(8, 8, 3, 90)
	out, err := Apply(im, ButterworthLowPass, 30, 2)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if out.Channels != 1 || out.Width != 8 || out.Height != 8 {
		t.Fatalf("got %v, want 8x8x1", out)
	}
	// A constant image only has a DC term, which every low-pass keeps.
	for i, v := range out.Pix {
		if v != 90 {
			t.Fatalf("pixel %d: got %d, want 90", i, v)
		}
	}
}

func TestHighPass_RemovesDC(t *testing.T) {
	out, err := Apply(raster.Filled(8, 8, 1, 200), IdealHighPass, 1, 1)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	for i, v := range out.Pix {
		if v != 0 {
			t.Fatalf("pixel %d: got %d, want 0", i, v)
		}
	}
}

func TestSpectrum(t *testing.T) {
	im := raster.Filled(9, 6, 1, 10)
	out := Spectrum(im)
	if out.Width != 9 || out.Height != 6 || out.Channels != 1 {
		t.Fatalf("got %v, want 9x6x1", out)
	}
	// |F(0,0)| = 540, 20*ln(541) ≈ 125.8
	if got := out.At(9/2, 6/2, 0); got != 126 {
		t.Errorf("center: got %d, want 126", got)
	}
	if out.At(0, 0, 0) != 0 {
		t.Errorf("corner: got %d, want 0", out.At(0, 0, 0))
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("butterworth_highpass"); err != nil || k != ButterworthHighPass {
		t.Errorf("got %v, %v", k, err)
	}
	if _, err := ParseKind("notch"); !errors.Is(err, raster.ErrRange) {
		t.Errorf("got %v, want ErrRange", err)
	}
}
