package catalog

import (
	"math"
	"sort"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
	"github.com/ironsheep/image-workbench-mcp/internal/segment"
	"github.com/ironsheep/image-workbench-mcp/internal/spatial"
)

// Category groups related transforms.
type Category string

// Transform categories.
const (
	CategoryArithmetic   Category = "arithmetic"
	CategoryBoolean      Category = "boolean"
	CategoryGeometric    Category = "geometric"
	CategoryColor        Category = "color"
	CategoryEnhancement  Category = "enhancement"
	CategoryThreshold    Category = "threshold"
	CategoryFrequency    Category = "frequency"
	CategorySpatial      Category = "spatial"
	CategoryEdge         Category = "edge"
	CategorySegmentation Category = "segmentation"
	CategoryNoise        Category = "noise"
)

// Parameter types.
const (
	TypeInt   = "int"
	TypeFloat = "float"
)

// Image-dependent defaults.
const (
	DefaultFromWidth   = "width"
	DefaultFromHeight  = "height"
	DefaultFromCenterX = "center_x"
	DefaultFromCenterY = "center_y"
)

// Param describes one numeric parameter of a transform.
type Param struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Default     float64 `json:"default"`
	DefaultFrom string  `json:"default_from,omitempty"`
	Description string  `json:"description"`
}

// Descriptor is the public description of a transform.
type Descriptor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Params      []Param  `json:"params,omitempty"`

	// Preview is true for transforms driven by a continuously adjusted
	// parameter. The others are applied in one shot.
	Preview bool `json:"preview"`

	// NeedsSecondary is true for boolean operators taking a second image.
	NeedsSecondary bool `json:"needs_secondary,omitempty"`
}

// Spec is a single transform request.
type Spec struct {
	ID     string
	Params map[string]float64

	// Secondary is the second operand of a binary boolean operator. It is
	// read during Apply and not retained.
	Secondary *raster.Image

	// Seed seeds noise transforms. Zero selects the catalog default.
	Seed uint64
}

// Options configures catalog defaults.
type Options struct {
	LowPassCutoff    float64
	HighPassCutoff   float64
	ButterworthOrder int
	CannyLow         float64
	CannyHigh        float64
	Highlight        string
	RegionTolerance  float64
	Seed             uint64
}

// DefaultOptions mirrors the defaults of the configuration file.
func DefaultOptions() Options {
	return Options{
		LowPassCutoff:    30,
		HighPassCutoff:   30,
		ButterworthOrder: 2,
		CannyLow:         spatial.DefaultCannyLow,
		CannyHigh:        spatial.DefaultCannyHigh,
		Highlight:        segment.DefaultHighlight,
		RegionTolerance:  10,
		Seed:             1,
	}
}

type params map[string]float64

func (p params) int(name string) int { return int(p[name]) }

type applyFunc func(src *raster.Image, p params, spec Spec) (*raster.Image, error)

type entry struct {
	Descriptor
	apply applyFunc
}

// Catalog dispatches transform requests.
type Catalog struct {
	entries   map[string]*entry
	order     []string
	opts      Options
	highlight segment.Highlight
}

// New builds the catalog. It fails if the options are out of range.
func New(opts Options) (*Catalog, error) {
	highlight, err := segment.ParseHighlight(opts.Highlight)
	if err != nil {
		return nil, err
	}
	if opts.ButterworthOrder < 1 || opts.ButterworthOrder > MaxOrder {
		return nil, raster.RangeErrorf("butterworth order %d outside [1, %d]", opts.ButterworthOrder, MaxOrder)
	}
	if opts.LowPassCutoff < 0 || opts.LowPassCutoff > MaxCutoff || opts.HighPassCutoff < 0 || opts.HighPassCutoff > MaxCutoff {
		return nil, raster.RangeErrorf("filter cutoffs must lie in [0, %d]", MaxCutoff)
	}
	if opts.RegionTolerance < 0 || opts.RegionTolerance > 255 {
		return nil, raster.RangeErrorf("region tolerance %g outside [0, 255]", opts.RegionTolerance)
	}
	if opts.CannyLow < 0 || opts.CannyHigh < opts.CannyLow {
		return nil, raster.RangeErrorf("canny thresholds must satisfy 0 <= low <= high, got %g and %g", opts.CannyLow, opts.CannyHigh)
	}

	c := &Catalog{entries: make(map[string]*entry), opts: opts, highlight: highlight}
	for _, e := range c.table() {
		e := e
		c.entries[e.ID] = &e
		c.order = append(c.order, e.ID)
	}
	return c, nil
}

// List returns every descriptor, grouped by category in a stable order.
func (c *Catalog) List() []Descriptor {
	out := make([]Descriptor, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id].Descriptor)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return categoryRank[out[i].Category] < categoryRank[out[j].Category]
	})
	return out
}

// Lookup returns the descriptor for id.
func (c *Catalog) Lookup(id string) (Descriptor, error) {
	e, ok := c.entries[id]
	if !ok {
		return Descriptor{}, raster.RangeErrorf("unknown transform %q", id)
	}
	return e.Descriptor, nil
}

// Validate resolves the parameters of spec against src: defaults are filled
// in, ranges checked and integers rounded.
func (c *Catalog) Validate(spec Spec, src *raster.Image) (map[string]float64, error) {
	e, ok := c.entries[spec.ID]
	if !ok {
		return nil, raster.RangeErrorf("unknown transform %q", spec.ID)
	}
	return e.resolve(spec, src)
}

// Apply validates spec and runs the transform on src, returning a new image.
func (c *Catalog) Apply(spec Spec, src *raster.Image) (*raster.Image, error) {
	if src == nil {
		return nil, raster.StateErrorf("no source image")
	}
	e, ok := c.entries[spec.ID]
	if !ok {
		return nil, raster.RangeErrorf("unknown transform %q", spec.ID)
	}
	p, err := e.resolve(spec, src)
	if err != nil {
		return nil, err
	}
	if spec.Seed == 0 {
		spec.Seed = c.opts.Seed
	}
	return e.apply(src, p, spec)
}

// PreviewApply is Apply restricted to transforms that support preview.
func (c *Catalog) PreviewApply(spec Spec, src *raster.Image) (*raster.Image, error) {
	e, ok := c.entries[spec.ID]
	if !ok {
		return nil, raster.RangeErrorf("unknown transform %q", spec.ID)
	}
	if !e.Preview {
		return nil, raster.RangeErrorf("transform %q has no preview; apply it directly", spec.ID)
	}
	return c.Apply(spec, src)
}

func (e *entry) resolve(spec Spec, src *raster.Image) (params, error) {
	known := make(map[string]bool, len(e.Params))
	p := make(params, len(e.Params))

	for _, d := range e.Params {
		known[d.Name] = true
		v, ok := spec.Params[d.Name]
		if !ok {
			v = d.defaultFor(src)
		}
		if math.IsNaN(v) || v < d.Min || v > d.Max {
			return nil, raster.RangeErrorf("%s: parameter %s=%g outside [%g, %g]", e.ID, d.Name, v, d.Min, d.Max)
		}
		if d.Type == TypeInt {
			v = math.Round(v)
		}
		p[d.Name] = v
	}
	for name := range spec.Params {
		if !known[name] {
			return nil, raster.RangeErrorf("%s: unknown parameter %q", e.ID, name)
		}
	}
	if e.NeedsSecondary && spec.Secondary == nil {
		return nil, raster.RangeErrorf("%s: a second image is required", e.ID)
	}
	return p, nil
}

func (d Param) defaultFor(src *raster.Image) float64 {
	if src == nil {
		return d.Default
	}
	switch d.DefaultFrom {
	case DefaultFromWidth:
		return float64(src.Width)
	case DefaultFromHeight:
		return float64(src.Height)
	case DefaultFromCenterX:
		return float64(src.Width / 2)
	case DefaultFromCenterY:
		return float64(src.Height / 2)
	}
	return d.Default
}

var categoryRank = map[Category]int{
	CategoryArithmetic:   0,
	CategoryBoolean:      1,
	CategoryGeometric:    2,
	CategoryColor:        3,
	CategoryEnhancement:  4,
	CategoryThreshold:    5,
	CategoryFrequency:    6,
	CategorySpatial:      7,
	CategoryEdge:         8,
	CategorySegmentation: 9,
	CategoryNoise:        10,
}
