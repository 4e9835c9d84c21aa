// Package displace renders displacement previews: it resamples a
// reference sprite through an offset-encoded displacement map and
// composites the result over a background.
package displace

import (
	"image/color"
	"math"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
)

// Sampling selects how the reference is read at displaced coordinates.
// Nearest is the default: game sprites rely on crisp per-pixel movement,
// and interpolation visibly changes the output, so bilinear must be an
// explicit choice.
type Sampling int

const (
	SamplingNearest Sampling = iota
	SamplingBilinear
)

// Apply resamples the reference through the displacement map and returns
// the displaced raster.
//
// Per output pixel: a transparent displacement pixel (alpha 0) produces
// a fully transparent output pixel; otherwise the R and G channels,
// biased by 128, give pixel offsets into the reference, and the sample
// coordinate is clamped to the reference edges (edge pixels repeat).
// The displacement map is resized (nearest-neighbor) to the reference's
// dimensions when they differ.
func Apply(reference, displacement *raster.Raster, sampling Sampling) *raster.Raster {
	w, h := reference.Width(), reference.Height()
	if displacement.Width() != w || displacement.Height() != h {
		displacement = raster.Resize(displacement, w, h, raster.ResizeNearest)
	}

	out := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := displacement.At(x, y)
			if d.A == 0 {
				// Transparent displacement never samples the reference.
				continue
			}

			offsetX := int(d.R) - 128
			offsetY := int(d.G) - 128

			if sampling == SamplingBilinear {
				out.Set(x, y, sampleBilinear(reference,
					float64(x)+float64(offsetX), float64(y)+float64(offsetY)))
				continue
			}

			sx := clampCoord(x+offsetX, w)
			sy := clampCoord(y+offsetY, h)
			out.Set(x, y, reference.At(sx, sy))
		}
	}
	return out
}

// sampleBilinear reads the reference at a fractional coordinate,
// weighting the four surrounding pixels. Coordinates clamp to the edges.
func sampleBilinear(ref *raster.Raster, fx, fy float64) color.RGBA {
	w, h := ref.Width(), ref.Height()

	x0 := clampCoord(int(math.Floor(fx)), w)
	y0 := clampCoord(int(math.Floor(fy)), h)
	x1 := clampCoord(x0+1, w)
	y1 := clampCoord(y0+1, h)

	tx := fx - math.Floor(fx)
	ty := fy - math.Floor(fy)

	c00 := ref.At(x0, y0)
	c10 := ref.At(x1, y0)
	c01 := ref.At(x0, y1)
	c11 := ref.At(x1, y1)

	lerp2 := func(a, b, c, d uint8) uint8 {
		top := float64(a)*(1-tx) + float64(b)*tx
		bot := float64(c)*(1-tx) + float64(d)*tx
		return uint8(math.Round(top*(1-ty) + bot*ty))
	}

	return color.RGBA{
		R: lerp2(c00.R, c10.R, c01.R, c11.R),
		G: lerp2(c00.G, c10.G, c01.G, c11.G),
		B: lerp2(c00.B, c10.B, c01.B, c11.B),
		A: lerp2(c00.A, c10.A, c01.A, c11.A),
	}
}

func clampCoord(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n-1 {
		return n - 1
	}
	return v
}
