package selection

import (
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
)

// FloodFill grows a selection outward from the seed pixel across
// 4-connected neighbors whose color is close to the seed's. Closeness is
// the sum of absolute RGB differences against the seed (alpha ignored);
// a pixel joins the region when that sum is <= tolerance.
//
// The traversal is an explicit work queue, not recursion: a selected
// region can span the whole sprite and would overflow the stack on a
// recursive walk. Each pixel is enqueued at most once.
func FloodFill(img *raster.Raster, seedX, seedY, tolerance int) (*raster.Mask, error) {
	w, h := img.Width(), img.Height()
	if seedX < 0 || seedX >= w || seedY < 0 || seedY >= h {
		return nil, ErrOutOfBounds
	}

	seed := img.At(seedX, seedY)
	mask := raster.NewMask(w, h)
	visited := make([]bool, w*h)

	type pixel struct{ x, y int }
	queue := []pixel{{seedX, seedY}}
	visited[seedY*w+seedX] = true

	dirs := [4]pixel{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		c := img.At(p.x, p.y)
		diff := absDiff(c.R, seed.R) + absDiff(c.G, seed.G) + absDiff(c.B, seed.B)
		if diff > tolerance {
			continue
		}
		mask.Set(p.x, p.y, 255)

		for _, d := range dirs {
			nx, ny := p.x+d.x, p.y+d.y
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			if visited[ny*w+nx] {
				continue
			}
			visited[ny*w+nx] = true
			queue = append(queue, pixel{nx, ny})
		}
	}

	return mask, nil
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
