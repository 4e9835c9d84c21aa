// Package paint mutates displacement rasters under a circular brush.
package paint

import (
	"image/color"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
	"github.com/slycoolgamer/SS14-Displacer-Studio/pkg/colorutil"
	"github.com/slycoolgamer/SS14-Displacer-Studio/pkg/geometry"
)

// Mode selects what a brush stroke does to the pixels it touches.
type Mode int

const (
	// ModeDirectional shifts one offset channel by the stroke strength.
	ModeDirectional Mode = iota
	// ModeErase resets pixels to the neutral-transparent encoding.
	ModeErase
)

// Direction selects which offset channel a directional stroke moves,
// and which way.
type Direction int

const (
	DirRight Direction = iota // +R: sample further right
	DirLeft                   // -R
	DirUp                     // -G
	DirDown                   // +G
)

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// channelDelta returns the signed change to apply to the R and G
// channels for one stroke. Exactly one of the two is non-zero.
func channelDelta(dir Direction, strength int) (dr, dg int) {
	switch dir {
	case DirRight:
		return strength, 0
	case DirLeft:
		return -strength, 0
	case DirUp:
		return 0, -strength
	case DirDown:
		return 0, strength
	}
	return 0, 0
}

// Stroke applies one brush application centered on a pixel. The
// footprint is every pixel within Euclidean distance radius of the
// center, where radius = brushSize/2, clipped to the raster. Pixels
// with a zero selection-mask value are skipped when a mask is given.
//
// Stroke never fails: coordinates outside the raster are clipped and
// painting with the center off-canvas simply touches fewer pixels.
func Stroke(dst *raster.Raster, center geometry.PointInt, brushSize int, mode Mode,
	dir Direction, strength int, sel *raster.Mask) {

	radius := brushSize / 2
	dr, dg := 0, 0
	if mode == ModeDirectional {
		dr, dg = channelDelta(dir, strength)
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			px, py := center.X+dx, center.Y+dy
			if !dst.In(px, py) {
				continue
			}
			if sel != nil && sel.At(px, py) == 0 {
				continue
			}

			if mode == ModeErase {
				dst.Set(px, py, colorutil.NeutralTransparent)
				continue
			}

			c := dst.At(px, py)
			dst.Set(px, py, color.RGBA{
				R: clampChannel(int(c.R) + dr),
				G: clampChannel(int(c.G) + dg),
				B: c.B,
				A: 255, // painting always makes a pixel opaque
			})
		}
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
