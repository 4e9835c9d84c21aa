// Package selection builds and combines the binary masks that constrain
// painting: rectangle and lasso selections, the magic-wand flood fill,
// and the region algebra that merges them into the active selection.
package selection

import (
	"errors"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
	"github.com/slycoolgamer/SS14-Displacer-Studio/pkg/geometry"
)

var (
	// ErrTooFewPoints is returned for a lasso with fewer than 3 points.
	ErrTooFewPoints = errors.New("selection: polygon needs at least 3 points")

	// ErrOutOfBounds is returned when a flood-fill seed lies outside the image.
	ErrOutOfBounds = errors.New("selection: seed outside image bounds")
)

// Op combines a new selection region with the existing one.
type Op int

const (
	OpReplace Op = iota
	OpAdd
	OpSubtract
	OpIntersect
)

func (op Op) String() string {
	switch op {
	case OpReplace:
		return "Replace"
	case OpAdd:
		return "Add"
	case OpSubtract:
		return "Subtract"
	case OpIntersect:
		return "Intersect"
	default:
		return "Unknown"
	}
}

// Rectangle builds a mask selecting the axis-aligned bounding box of the
// two corner points, both edges inclusive, clipped to width x height.
func Rectangle(a, b geometry.PointInt, width, height int) *raster.Mask {
	mask := raster.NewMask(width, height)

	rect := geometry.RectFromCorners(a, b).Clamp(width, height)
	if rect.Empty() {
		return mask
	}
	for y := rect.Y; y <= rect.Y+rect.Height; y++ {
		for x := rect.X; x <= rect.X+rect.Width; x++ {
			mask.Set(x, y, 255)
		}
	}
	return mask
}

// Polygon builds a mask selecting the interior of the lasso path using
// an even-odd test at each pixel center. Requires at least 3 points.
func Polygon(points []geometry.PointInt, width, height int) (*raster.Mask, error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}

	poly := make([]geometry.Point2D, len(points))
	for i, p := range points {
		poly[i] = p.ToFloat()
	}

	mask := raster.NewMask(width, height)
	bounds := geometry.PolygonBounds(poly).Clamp(width, height)
	for y := bounds.Y; y <= bounds.Y+bounds.Height; y++ {
		for x := bounds.X; x <= bounds.X+bounds.Width; x++ {
			center := geometry.Point2D{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			if geometry.PointInPolygon(center, poly) {
				mask.Set(x, y, 255)
			}
		}
	}
	return mask, nil
}

// Combine merges an incoming mask into the current selection. A nil
// current behaves as an all-zero mask: Add keeps the incoming region,
// Subtract and Intersect come out empty. Replace ignores current
// entirely. The incoming mask is returned untouched for Replace; every
// other path allocates a fresh mask.
func Combine(current, incoming *raster.Mask, op Op) *raster.Mask {
	if op == OpReplace || current == nil && op == OpAdd {
		return incoming
	}
	if current == nil {
		// Subtract and Intersect against an empty selection select nothing.
		return raster.NewMask(incoming.Width(), incoming.Height())
	}

	out := raster.NewMask(incoming.Width(), incoming.Height())
	cur := current.Data()
	inc := incoming.Data()
	res := out.Data()

	for i := range res {
		var c uint8
		if i < len(cur) {
			c = cur[i]
		}
		switch op {
		case OpAdd:
			if inc[i] > c {
				res[i] = inc[i]
			} else {
				res[i] = c
			}
		case OpSubtract:
			if inc[i] > 0 {
				res[i] = 0
			} else {
				res[i] = c
			}
		case OpIntersect:
			if inc[i] < c {
				res[i] = inc[i]
			} else {
				res[i] = c
			}
		}
	}
	return out
}

// Invert returns the complement of a mask. A nil mask means no active
// selection, which by convention selects everything, so its inverse is
// the full mask.
func Invert(mask *raster.Mask, width, height int) *raster.Mask {
	if mask == nil {
		return raster.NewMaskFilled(width, height, 255)
	}

	out := raster.NewMask(mask.Width(), mask.Height())
	src := mask.Data()
	dst := out.Data()
	for i := range src {
		dst[i] = 255 - src[i]
	}
	return out
}
