package segment

import (
	"math"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// DistanceTransform returns, for every non-zero pixel of mask, the exact
// Euclidean distance to the nearest zero pixel; zero pixels get 0.
//
// It runs the separable lower-envelope algorithm of Felzenszwalb and
// Huttenlocher: a 1-D squared-distance pass over columns followed by one
// over rows. If mask has no zero pixel every distance exceeds the image
// diagonal.
func DistanceTransform(mask *raster.Image) []float64 {
	w, h := mask.Width, mask.Height
	inf := float64(w*w+h*h) + 1

	f := make([]float64, w*h)
	for i := 0; i < w*h; i++ {
		if mask.Pix[i*mask.Channels] != 0 {
			f[i] = inf
		}
	}

	n := w
	if h > n {
		n = h
	}
	line := make([]float64, n)
	out := make([]float64, n)
	v := make([]int, n)
	z := make([]float64, n+1)

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			line[y] = f[y*w+x]
		}
		edt1d(line[:h], out[:h], v, z)
		for y := 0; y < h; y++ {
			f[y*w+x] = out[y]
		}
	}
	for y := 0; y < h; y++ {
		copy(line[:w], f[y*w:(y+1)*w])
		edt1d(line[:w], out[:w], v, z)
		for x := 0; x < w; x++ {
			f[y*w+x] = math.Sqrt(out[x])
		}
	}
	return f
}

// edt1d computes the 1-D squared distance transform of sampled function f
// into d using the lower envelope of parabolas rooted at each sample.
func edt1d(f, d []float64, v []int, z []float64) {
	n := len(f)
	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)
	for q := 1; q < n; q++ {
		s := intersect(f, q, v[k])
		for s <= z[k] {
			k--
			s = intersect(f, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		d[q] = dq*dq + f[v[k]]
	}
}

// intersect returns the abscissa where the parabolas rooted at q and p meet.
func intersect(f []float64, q, p int) float64 {
	return ((f[q] + float64(q*q)) - (f[p] + float64(p*p))) / float64(2*q-2*p)
}
