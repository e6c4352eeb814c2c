package segment

import (
	"math"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

// RegionGrow floods outward from the seed (x, y) over 4-connected pixels
// whose luma differs from the seed's luma by at most tol, and returns a
// binary mask with 255 on accepted pixels.
//
// Every pixel is visited at most once: it is marked when first popped,
// whether or not it is accepted, and only accepted pixels push their
// neighbors. The seed must lie inside the image and tol must be in
// [0, 255].
func RegionGrow(im *raster.Image, x, y int, tol float64) (*raster.Image, error) {
	if !im.Contains(x, y) {
		return nil, raster.RangeErrorf("seed (%d,%d) outside image bounds %dx%d", x, y, im.Width, im.Height)
	}
	if math.IsNaN(tol) || tol < 0 || tol > 255 {
		return nil, raster.RangeErrorf("tolerance %g outside [0, 255]", tol)
	}

	gray := im.Gray()
	width, height := gray.Width, gray.Height
	seed := float64(gray.Pix[y*width+x])

	visited := make([]bool, width*height)
	mask := raster.MustNew(width, height, 1)
	stack := [][2]int{{x, y}}

	for len(stack) > 0 {
		px, py := stack[len(stack)-1][0], stack[len(stack)-1][1]
		stack = stack[:len(stack)-1]

		if px < 0 || py < 0 || px >= width || py >= height {
			continue
		}
		i := py*width + px
		if visited[i] {
			continue
		}
		visited[i] = true

		if math.Abs(float64(gray.Pix[i])-seed) > tol {
			continue
		}
		mask.Pix[i] = 255
		stack = append(stack, [2]int{px, py + 1}, [2]int{px, py - 1}, [2]int{px + 1, py}, [2]int{px - 1, py})
	}
	return mask, nil
}
