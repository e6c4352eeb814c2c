package segment

import (
	"testing"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

func TestOtsu_Bimodal(t *testing.T) {
	im := raster.MustNew(10, 10, 1)
	for i := range im.Pix {
		if i%3 == 0 {
			im.Pix[i] = 200
		} else {
			im.Pix[i] = 50
		}
	}

	out, level := Otsu(im)
	if level < 50 || level >= 200 {
		t.Fatalf("level %d does not separate 50 from 200", level)
	}
	for i, v := range im.Pix {
		want := uint8(0)
		if v == 200 {
			want = 255
		}
		if out.Pix[i] != want {
			t.Fatalf("pixel %d: got %d, want %d", i, out.Pix[i], want)
		}
	}
}

func TestOtsuLevel_Uniform(t *testing.T) {
	if got := OtsuLevel(raster.Filled(4, 4, 1, 90)); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}
