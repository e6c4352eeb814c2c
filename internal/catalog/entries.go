package catalog

import (
	"github.com/ironsheep/image-workbench-mcp/internal/frequency"
	"github.com/ironsheep/image-workbench-mcp/internal/raster"
	"github.com/ironsheep/image-workbench-mcp/internal/segment"
	"github.com/ironsheep/image-workbench-mcp/internal/spatial"
	"github.com/ironsheep/image-workbench-mcp/internal/transform"
)

// Parameter limits not owned by the implementing packages.
const (
	MaxCoordinate = 1 << 16
	MaxCutoff     = 1000
	MaxOrder      = 10
)

func intParam(name string, min, max, def float64, desc string) Param {
	return Param{Name: name, Type: TypeInt, Min: min, Max: max, Default: def, Description: desc}
}

func floatParam(name string, min, max, def float64, desc string) Param {
	return Param{Name: name, Type: TypeFloat, Min: min, Max: max, Default: def, Description: desc}
}

func imageParam(name, from, desc string) Param {
	return Param{Name: name, Type: TypeInt, Min: 0, Max: MaxCoordinate, DefaultFrom: from, Description: desc}
}

// unary adapts a parameterless transform.
func unary(fn func(*raster.Image) *raster.Image) applyFunc {
	return func(src *raster.Image, _ params, _ Spec) (*raster.Image, error) {
		return fn(src), nil
	}
}

// scalar adapts a transform driven by a single float parameter.
func scalar(name string, fn func(*raster.Image, float64) (*raster.Image, error)) applyFunc {
	return func(src *raster.Image, p params, _ Spec) (*raster.Image, error) {
		return fn(src, p[name])
	}
}

// seeded adapts a noise generator.
func seeded(name string, fn func(*raster.Image, float64, uint64) (*raster.Image, error)) applyFunc {
	return func(src *raster.Image, p params, spec Spec) (*raster.Image, error) {
		return fn(src, p[name], spec.Seed)
	}
}

func binary(fn func(a, b *raster.Image) (*raster.Image, error)) applyFunc {
	return func(src *raster.Image, _ params, spec Spec) (*raster.Image, error) {
		return fn(src, spec.Secondary)
	}
}

func (c *Catalog) filter(kind frequency.Kind) applyFunc {
	return func(src *raster.Image, p params, _ Spec) (*raster.Image, error) {
		order := c.opts.ButterworthOrder
		if v, ok := p["order"]; ok {
			order = int(v)
		}
		return frequency.Apply(src, kind, p["cutoff"], order)
	}
}

func (c *Catalog) table() []entry {
	opts := c.opts
	cutoff := func(def float64) Param {
		return floatParam("cutoff", 0, MaxCutoff, def, "Cutoff radius d0 in frequency samples; values below 1 act as 1")
	}
	order := intParam("order", 1, MaxOrder, float64(opts.ButterworthOrder), "Butterworth filter order")

	entries := []entry{
		{Descriptor{ID: "add", Name: "Add", Category: CategoryArithmetic, Preview: true,
			Description: "Add a constant to every sample",
			Params:      []Param{floatParam("value", 0, 255, 50, "Constant to add")}},
			scalar("value", transform.Add)},
		{Descriptor{ID: "subtract", Name: "Subtract", Category: CategoryArithmetic, Preview: true,
			Description: "Subtract a constant from every sample",
			Params:      []Param{floatParam("value", 0, 255, 50, "Constant to subtract")}},
			scalar("value", transform.Subtract)},
		{Descriptor{ID: "multiply", Name: "Multiply", Category: CategoryArithmetic, Preview: true,
			Description: "Multiply every sample by a factor",
			Params:      []Param{floatParam("factor", transform.MinFactor, transform.MaxFactor, 1, "Multiplication factor")}},
			scalar("factor", transform.Multiply)},
		{Descriptor{ID: "divide", Name: "Divide", Category: CategoryArithmetic, Preview: true,
			Description: "Divide every sample by a factor; zero is replaced by a small epsilon",
			Params:      []Param{floatParam("factor", 0, transform.MaxFactor, 1, "Divisor")}},
			scalar("factor", transform.Divide)},
		{Descriptor{ID: "negative", Name: "Negative", Category: CategoryArithmetic, Preview: true,
			Description: "Blend each sample toward its inverse",
			Params:      []Param{floatParam("strength", 0, 1, 1, "0 leaves the image unchanged, 1 fully inverts it")}},
			scalar("strength", transform.Negative)},

		{Descriptor{ID: "not", Name: "NOT", Category: CategoryBoolean,
			Description: "Invert the grayscale image",
			Params:      []Param{floatParam("strength", 0, 1, 1, "Inversion strength")}},
			scalar("strength", transform.Not)},
		{Descriptor{ID: "and", Name: "AND", Category: CategoryBoolean, NeedsSecondary: true,
			Description: "Bitwise AND with a second image resampled to the same size"},
			binary(transform.And)},
		{Descriptor{ID: "or", Name: "OR", Category: CategoryBoolean, NeedsSecondary: true,
			Description: "Bitwise OR with a second image resampled to the same size"},
			binary(transform.Or)},
		{Descriptor{ID: "xor", Name: "XOR", Category: CategoryBoolean, NeedsSecondary: true,
			Description: "Bitwise XOR with a second image resampled to the same size"},
			binary(transform.Xor)},

		{Descriptor{ID: "translate", Name: "Translate", Category: CategoryGeometric,
			Description: "Sample the source at (x+tx, y+ty); pixels from outside the source are black",
			Params: []Param{
				intParam("tx", -transform.MaxShift, transform.MaxShift, 0, "Horizontal shift in pixels"),
				intParam("ty", -transform.MaxShift, transform.MaxShift, 0, "Vertical shift in pixels"),
			}},
			func(src *raster.Image, p params, _ Spec) (*raster.Image, error) {
				return transform.Translate(src, p.int("tx"), p.int("ty"))
			}},
		{Descriptor{ID: "rotate", Name: "Rotate", Category: CategoryGeometric,
			Description: "Rotate counter-clockwise about the center, expanding the canvas",
			Params:      []Param{floatParam("angle", -360, 360, 0, "Angle in degrees")}},
			scalar("angle", transform.Rotate)},
		{Descriptor{ID: "zoom", Name: "Zoom", Category: CategoryGeometric,
			Description: "Resize by a factor",
			Params:      []Param{floatParam("factor", transform.MinZoom, transform.MaxZoom, 1, "Scale factor")}},
			scalar("factor", transform.Zoom)},
		{Descriptor{ID: "flip_horizontal", Name: "Flip Horizontal", Category: CategoryGeometric,
			Description: "Mirror left to right"},
			unary(transform.FlipHorizontal)},
		{Descriptor{ID: "flip_vertical", Name: "Flip Vertical", Category: CategoryGeometric,
			Description: "Mirror top to bottom"},
			unary(transform.FlipVertical)},
		{Descriptor{ID: "crop", Name: "Crop", Category: CategoryGeometric,
			Description: "Keep the rectangle [x1,x2) x [y1,y2); defaults to the full frame",
			Params: []Param{
				intParam("x1", 0, MaxCoordinate, 0, "Left edge"),
				intParam("y1", 0, MaxCoordinate, 0, "Top edge"),
				imageParam("x2", DefaultFromWidth, "Right edge, exclusive"),
				imageParam("y2", DefaultFromHeight, "Bottom edge, exclusive"),
			}},
			func(src *raster.Image, p params, _ Spec) (*raster.Image, error) {
				return transform.Crop(src, p.int("x1"), p.int("y1"), p.int("x2"), p.int("y2"))
			}},

		{Descriptor{ID: "threshold", Name: "Threshold", Category: CategoryThreshold, Preview: true,
			Description: "Binary image: samples above the level become white",
			Params:      []Param{floatParam("level", 0, 255, 127, "Threshold level")}},
			scalar("level", transform.Threshold)},
		{Descriptor{ID: "otsu", Name: "Otsu Threshold", Category: CategoryThreshold,
			Description: "Binary image thresholded at the level maximizing between-class variance"},
			func(src *raster.Image, _ params, _ Spec) (*raster.Image, error) {
				out, _ := segment.Otsu(src)
				return out, nil
			}},

		{Descriptor{ID: "brightness", Name: "Brightness", Category: CategoryEnhancement, Preview: true,
			Description: "Scale every sample by a factor",
			Params:      []Param{floatParam("factor", transform.MinEnhance, transform.MaxEnhance, 1, "Brightness factor (1 = unchanged)")}},
			scalar("factor", transform.Brightness)},
		{Descriptor{ID: "contrast", Name: "Contrast", Category: CategoryEnhancement, Preview: true,
			Description: "Blend samples with the mean luma by a factor",
			Params:      []Param{floatParam("factor", transform.MinEnhance, transform.MaxEnhance, 1, "Contrast factor (1 = unchanged)")}},
			scalar("factor", transform.Contrast)},
		{Descriptor{ID: "equalize", Name: "Histogram Equalization", Category: CategoryEnhancement,
			Description: "Flatten the grayscale histogram"},
			unary(transform.Equalize)},
		{Descriptor{ID: "autocontrast", Name: "Auto Contrast", Category: CategoryEnhancement,
			Description: "Stretch the 2nd..98th percentile range to full scale"},
			unary(transform.AutoContrast)},

		{Descriptor{ID: "ideal_lowpass", Name: "Ideal Low-Pass", Category: CategoryFrequency, Preview: true,
			Description: "Keep frequencies within the cutoff radius",
			Params:      []Param{cutoff(opts.LowPassCutoff)}},
			c.filter(frequency.IdealLowPass)},
		{Descriptor{ID: "ideal_highpass", Name: "Ideal High-Pass", Category: CategoryFrequency, Preview: true,
			Description: "Remove frequencies within the cutoff radius",
			Params:      []Param{cutoff(opts.HighPassCutoff)}},
			c.filter(frequency.IdealHighPass)},
		{Descriptor{ID: "butterworth_lowpass", Name: "Butterworth Low-Pass", Category: CategoryFrequency, Preview: true,
			Description: "Smooth low-pass roll-off around the cutoff",
			Params:      []Param{cutoff(opts.LowPassCutoff), order}},
			c.filter(frequency.ButterworthLowPass)},
		{Descriptor{ID: "butterworth_highpass", Name: "Butterworth High-Pass", Category: CategoryFrequency, Preview: true,
			Description: "Smooth high-pass roll-off around the cutoff",
			Params:      []Param{cutoff(opts.HighPassCutoff), order}},
			c.filter(frequency.ButterworthHighPass)},
		{Descriptor{ID: "spectrum", Name: "Fourier Spectrum", Category: CategoryFrequency,
			Description: "Centered log-magnitude spectrum"},
			unary(frequency.Spectrum)},

		{Descriptor{ID: "box_blur", Name: "Box Blur", Category: CategorySpatial, Preview: true,
			Description: "Mean over a k x k window",
			Params:      []Param{intParam("size", spatial.MinKernelSize, spatial.MaxKernelSize, 3, "Kernel size; even sizes are raised to odd")}},
			scalar("size", spatial.BoxBlur)},
		{Descriptor{ID: "median", Name: "Median", Category: CategorySpatial, Preview: true,
			Description: "Median over a k x k window",
			Params:      []Param{intParam("size", spatial.MinKernelSize, spatial.MaxKernelSize, 3, "Kernel size; even sizes are raised to odd")}},
			scalar("size", spatial.Median)},
		{Descriptor{ID: "gaussian_blur", Name: "Gaussian Blur", Category: CategorySpatial,
			Description: "5x5 binomial Gaussian smoothing"},
			unary(spatial.GaussianBlur)},
		{Descriptor{ID: "sharpen", Name: "Sharpen", Category: CategorySpatial,
			Description: "3x3 sharpening kernel"},
			unary(spatial.Sharpen)},
		{Descriptor{ID: "high_boost", Name: "High Boost", Category: CategorySpatial, Preview: true,
			Description: "Amplify detail: I + (A-1)(I - blur(I))",
			Params:      []Param{floatParam("boost", 1, 3, 1.5, "Boost factor A")}},
			scalar("boost", spatial.HighBoost)},
		{Descriptor{ID: "laplace8", Name: "Laplacian Sharpen", Category: CategorySpatial,
			Description: "8-neighbor Laplacian kernel"},
			unary(spatial.Laplace8)},

		{Descriptor{ID: "sobel", Name: "Sobel", Category: CategoryEdge,
			Description: "Sobel gradient magnitude"},
			unary(spatial.Sobel)},
		{Descriptor{ID: "prewitt", Name: "Prewitt", Category: CategoryEdge,
			Description: "Prewitt gradient magnitude"},
			unary(spatial.Prewitt)},
		{Descriptor{ID: "roberts", Name: "Roberts", Category: CategoryEdge,
			Description: "Roberts cross gradient magnitude"},
			unary(spatial.Roberts)},
		{Descriptor{ID: "compass", Name: "Compass", Category: CategoryEdge,
			Description: "Maximum response over four compass kernels"},
			unary(spatial.Compass)},
		{Descriptor{ID: "laplacian", Name: "Laplacian", Category: CategoryEdge,
			Description: "Absolute Laplacian response"},
			unary(spatial.Laplacian)},
		{Descriptor{ID: "log", Name: "Laplacian of Gaussian", Category: CategoryEdge,
			Description: "Laplacian of the Gaussian-smoothed image"},
			unary(spatial.LoG)},
		{Descriptor{ID: "canny", Name: "Canny", Category: CategoryEdge,
			Description: "Canny edges with the configured hysteresis thresholds"},
			func(src *raster.Image, _ params, _ Spec) (*raster.Image, error) {
				return spatial.Canny(src, opts.CannyLow, opts.CannyHigh)
			}},

		{Descriptor{ID: "region_grow", Name: "Region Growing", Category: CategorySegmentation,
			Description: "Flood from a seed over 4-neighbors within an intensity tolerance",
			Params: []Param{
				imageParam("seed_x", DefaultFromCenterX, "Seed column; defaults to the center"),
				imageParam("seed_y", DefaultFromCenterY, "Seed row; defaults to the center"),
				floatParam("tolerance", 0, 255, opts.RegionTolerance, "Maximum intensity difference from the seed"),
			}},
			func(src *raster.Image, p params, _ Spec) (*raster.Image, error) {
				return segment.RegionGrow(src, p.int("seed_x"), p.int("seed_y"), p["tolerance"])
			}},
		{Descriptor{ID: "watershed", Name: "Watershed", Category: CategorySegmentation,
			Description: "Marker-based watershed with boundaries drawn in the highlight color"},
			func(src *raster.Image, _ params, _ Spec) (*raster.Image, error) {
				return segment.Watershed(src, c.highlight).Image, nil
			}},

		{Descriptor{ID: "noise_gaussian", Name: "Gaussian Noise", Category: CategoryNoise, Preview: true,
			Description: "Additive zero-mean Gaussian noise",
			Params:      []Param{floatParam("variance", 0, 2000, 200, "Noise variance")}},
			seeded("variance", transform.GaussianNoise)},
		{Descriptor{ID: "noise_rayleigh", Name: "Rayleigh Noise", Category: CategoryNoise, Preview: true,
			Description: "Additive Rayleigh noise",
			Params:      []Param{floatParam("scale", 0.1, 100, 10, "Rayleigh scale")}},
			seeded("scale", transform.RayleighNoise)},
		{Descriptor{ID: "noise_erlang", Name: "Erlang Noise", Category: CategoryNoise, Preview: true,
			Description: "Additive Erlang (gamma) noise",
			Params:      []Param{floatParam("shape", 1, 10, 2, "Erlang shape")}},
			seeded("shape", transform.ErlangNoise)},
		{Descriptor{ID: "noise_exponential", Name: "Exponential Noise", Category: CategoryNoise, Preview: true,
			Description: "Additive exponential noise",
			Params:      []Param{floatParam("scale", 0.1, 50, 5, "Mean of the distribution")}},
			seeded("scale", transform.ExponentialNoise)},
		{Descriptor{ID: "noise_uniform", Name: "Uniform Noise", Category: CategoryNoise, Preview: true,
			Description: "Additive uniform noise in [-range, range]",
			Params:      []Param{floatParam("range", 0, 200, 20, "Half-width of the distribution")}},
			seeded("range", transform.UniformNoise)},
		{Descriptor{ID: "noise_impulse", Name: "Salt and Pepper", Category: CategoryNoise,
			Description: "Set random pixels to black or white",
			Params:      []Param{floatParam("probability", 0, 1, 0.05, "Fraction of affected pixels")}},
			seeded("probability", transform.ImpulseNoise)},
	}

	for _, model := range raster.ColorModels {
		model := model
		entries = append(entries, entry{
			Descriptor{ID: "color_" + string(model), Name: "Color: " + string(model), Category: CategoryColor,
				Description: "Convert to the " + string(model) + " color model"},
			func(src *raster.Image, _ params, _ Spec) (*raster.Image, error) {
				return raster.Convert(src, model)
			},
		})
	}
	return entries
}
