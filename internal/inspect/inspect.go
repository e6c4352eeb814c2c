// Package inspect reads values back out of a raster: pixel samples in
// several color notations and per-channel statistics. It backs the
// image_inspect tool so a client can check what a transform did without
// decoding the PNG itself.
package inspect

import (
	"fmt"

	"github.com/anthonynsimon/bild/histogram"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// MaxPoints bounds the number of points sampled per call.
const MaxPoints = 256

// Point is a pixel coordinate with an optional label.
type Point struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

// HSL is a color in hue (degrees), saturation and lightness (percent).
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Sample is the value of one pixel.
type Sample struct {
	Label string `json:"label,omitempty"`
	X     int    `json:"x"`
	Y     int    `json:"y"`

	// Values holds the raw samples: one for grayscale, three for color.
	Values []uint8 `json:"values"`

	// Hex is "#RRGGBB"; grayscale pixels repeat their value.
	Hex string `json:"hex"`
	HSL HSL    `json:"hsl"`
}

// SamplePoints reads every point from im. Any point outside the image is a
// range error and no partial result is returned.
func SamplePoints(im *raster.Image, points []Point) ([]Sample, error) {
	if len(points) > MaxPoints {
		return nil, raster.RangeErrorf("%d points requested, at most %d allowed", len(points), MaxPoints)
	}
	out := make([]Sample, 0, len(points))
	for _, p := range points {
		if !im.Contains(p.X, p.Y) {
			return nil, raster.RangeErrorf("point (%d,%d) outside %dx%d image", p.X, p.Y, im.Width, im.Height)
		}
		off := im.Offset(p.X, p.Y)
		values := append([]uint8(nil), im.Pix[off:off+im.Channels]...)

		r, g, b := values[0], values[0], values[0]
		if im.Channels == 3 {
			g, b = values[1], values[2]
		}
		c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		h, s, l := c.Hsl()

		out = append(out, Sample{
			Label:  p.Label,
			X:      p.X,
			Y:      p.Y,
			Values: values,
			Hex:    fmt.Sprintf("#%02X%02X%02X", r, g, b),
			HSL:    HSL{H: int(h + 0.5), S: int(s*100 + 0.5), L: int(l*100 + 0.5)},
		})
	}
	return out, nil
}

// ChannelStats summarizes one channel.
type ChannelStats struct {
	Name      string   `json:"name"`
	Min       uint8    `json:"min"`
	Max       uint8    `json:"max"`
	Mean      float64  `json:"mean"`
	StdDev    float64  `json:"std_dev"`
	Histogram [256]int `json:"histogram"`
}

// Stats returns per-channel statistics: "gray" for single-channel images,
// "r", "g" and "b" otherwise. StdDev is the sample standard deviation and
// zero for a single pixel.
func Stats(im *raster.Image) []ChannelStats {
	h := histogram.NewRGBAHistogram(im.ToImage())
	if im.Channels == 1 {
		return []ChannelStats{channelStats("gray", h.R.Bins)}
	}
	return []ChannelStats{
		channelStats("r", h.R.Bins),
		channelStats("g", h.G.Bins),
		channelStats("b", h.B.Bins),
	}
}

func channelStats(name string, bins []int) ChannelStats {
	cs := ChannelStats{Name: name}
	values := make([]float64, 256)
	weights := make([]float64, 256)
	total := 0
	first := true
	for v := 0; v < 256 && v < len(bins); v++ {
		n := bins[v]
		cs.Histogram[v] = n
		values[v] = float64(v)
		weights[v] = float64(n)
		if n == 0 {
			continue
		}
		total += n
		if first {
			cs.Min = uint8(v)
			first = false
		}
		cs.Max = uint8(v)
	}
	if total == 0 {
		return cs
	}
	cs.Mean = stat.Mean(values, weights)
	if total > 1 {
		_, cs.StdDev = stat.MeanStdDev(values, weights)
	}
	return cs
}
