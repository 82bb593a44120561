package region

import (
	"fmt"

	"skin-detector/internal/mask"
	"skin-detector/pkg/geometry"
)

// DefaultMinArea is the noise floor: components smaller than this many
// pixels are discarded.
const DefaultMinArea = 100

// confidenceScale maps component area to confidence; a region of this many
// pixels (or more) scores 1.0.
const confidenceScale = 1000.0

// Extract finds 4-connected components of "on" pixels (value > 0) in the
// skin mask using an iterative flood fill. Components below minArea pixels
// are dropped. Components are returned in raster discovery order with ids
// "skin_region_<index>"; the center is the bounding-box midpoint and
// confidence is min(1, area/1000). Total work is O(pixel count): a visited
// bitmap guarantees each pixel is expanded at most once.
func Extract(skin *mask.Mask, minArea int) []Component {
	if minArea <= 0 {
		minArea = DefaultMinArea
	}

	w, h := skin.Width, skin.Height
	visited := make([]bool, w*h)
	var components []Component
	index := 0

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if skin.Data[y*w+x] == 0 || visited[y*w+x] {
				continue
			}

			// Stack-based flood fill; recursion would blow the stack on
			// large regions.
			var pixels []geometry.Point2D
			minX, minY, maxX, maxY := x, y, x, y
			stack := []int{y*w + x}
			visited[y*w+x] = true

			for len(stack) > 0 {
				idx := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				py, px := idx/w, idx%w
				pixels = append(pixels, geometry.Point2D{X: float64(px), Y: float64(py)})

				if px < minX {
					minX = px
				}
				if px > maxX {
					maxX = px
				}
				if py < minY {
					minY = py
				}
				if py > maxY {
					maxY = py
				}

				for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
					nx, ny := px+d[0], py+d[1]
					if nx >= 0 && nx < w && ny >= 0 && ny < h {
						nidx := ny*w + nx
						if skin.Data[nidx] > 0 && !visited[nidx] {
							visited[nidx] = true
							stack = append(stack, nidx)
						}
					}
				}
			}

			area := len(pixels)
			if area < minArea {
				continue
			}

			bounds := geometry.RectInt{
				X:      minX,
				Y:      minY,
				Width:  maxX - minX,
				Height: maxY - minY,
			}

			confidence := float64(area) / confidenceScale
			if confidence > 1.0 {
				confidence = 1.0
			}

			components = append(components, Component{
				ID:         fmt.Sprintf("skin_region_%d", index),
				Pixels:     pixels,
				Area:       area,
				Bounds:     bounds,
				Center:     bounds.Center(),
				Confidence: confidence,
			})
			index++
		}
	}

	return components
}
