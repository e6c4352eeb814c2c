package frequency

import (
	"math"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// Kind selects a transfer function.
type Kind string

// Supported transfer functions.
const (
	IdealLowPass        Kind = "ideal_lowpass"
	IdealHighPass       Kind = "ideal_highpass"
	ButterworthLowPass  Kind = "butterworth_lowpass"
	ButterworthHighPass Kind = "butterworth_highpass"
)

// ButterworthEpsilon guards the high-pass denominator at D = 0.
const ButterworthEpsilon = 1e-6

// Mask is a real transfer function sampled on a rows x cols grid in shifted
// layout, so the zero frequency sits at (Rows/2, Cols/2).
type Mask struct {
	Kind   Kind
	Rows   int
	Cols   int
	Cutoff float64
	Order  int
	H      []float64
}

// NewMask samples the transfer function of kind over the grid.
//
// A cutoff below 1 is raised to 1. order only affects the Butterworth kinds
// but must be at least 1 for every kind.
func NewMask(kind Kind, rows, cols int, cutoff float64, order int) (*Mask, error) {
	if rows <= 0 || cols <= 0 {
		return nil, raster.RangeErrorf("invalid mask size %dx%d", rows, cols)
	}
	if order < 1 {
		return nil, raster.RangeErrorf("filter order %d must be at least 1", order)
	}
	if math.IsNaN(cutoff) || cutoff < 1 {
		cutoff = 1
	}

	h, err := transfer(kind, cutoff, order)
	if err != nil {
		return nil, err
	}

	m := &Mask{Kind: kind, Rows: rows, Cols: cols, Cutoff: cutoff, Order: order, H: make([]float64, rows*cols)}
	crow, ccol := rows/2, cols/2
	for r := 0; r < rows; r++ {
		dr := float64(r - crow)
		for c := 0; c < cols; c++ {
			dc := float64(c - ccol)
			m.H[r*cols+c] = h(math.Sqrt(dr*dr + dc*dc))
		}
	}
	return m, nil
}

// At returns H at shifted coordinates (r, c).
func (m *Mask) At(r, c int) float64 {
	return m.H[r*m.Cols+c]
}

func transfer(kind Kind, d0 float64, order int) (func(d float64) float64, error) {
	n2 := 2 * float64(order)
	switch kind {
	case IdealLowPass:
		return func(d float64) float64 {
			if d <= d0 {
				return 1
			}
			return 0
		}, nil
	case IdealHighPass:
		return func(d float64) float64 {
			if d <= d0 {
				return 0
			}
			return 1
		}, nil
	case ButterworthLowPass:
		return func(d float64) float64 {
			return 1 / (1 + math.Pow(d/d0, n2))
		}, nil
	case ButterworthHighPass:
		return func(d float64) float64 {
			return 1 / (1 + math.Pow(d0/(d+ButterworthEpsilon), n2))
		}, nil
	}
	return nil, raster.RangeErrorf("unknown filter kind %q", string(kind))
}

// ParseKind validates a filter kind name.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(name); k {
	case IdealLowPass, IdealHighPass, ButterworthLowPass, ButterworthHighPass:
		return k, nil
	}
	return "", raster.RangeErrorf("unknown filter kind %q", name)
}
