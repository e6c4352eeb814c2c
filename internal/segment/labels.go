package segment

import (
	"github.com/ironsheep/image-workbench-mcp/internal/raster"
)

var neighbors8 = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// ConnectedComponents labels the 8-connected regions of non-zero pixels in
// mask. Background pixels get 0 and regions are numbered from 1 in raster
// scan order of their first pixel. It returns the labels and the number of
// regions.
func ConnectedComponents(mask *raster.Image) ([]int32, int) {
	w, h := mask.Width, mask.Height
	labels := make([]int32, w*h)
	var count int32

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if labels[i] != 0 || mask.Pix[i*mask.Channels] == 0 {
				continue
			}

			count++
			labels[i] = count
			stack := [][2]int{{x, y}}
			for len(stack) > 0 {
				px, py := stack[len(stack)-1][0], stack[len(stack)-1][1]
				stack = stack[:len(stack)-1]

				for _, d := range neighbors8 {
					nx, ny := px+d[0], py+d[1]
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					j := ny*w + nx
					if labels[j] == 0 && mask.Pix[j*mask.Channels] != 0 {
						labels[j] = count
						stack = append(stack, [2]int{nx, ny})
					}
				}
			}
		}
	}
	return labels, int(count)
}
