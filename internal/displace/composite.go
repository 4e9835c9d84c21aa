package displace

import (
	"image/color"
	"math"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
)

// Composite alpha-blends the foreground over the background using
// straight-alpha "over" blending; the foreground's own alpha channel
// governs the per-pixel blend weight. If either operand is nil the
// other is returned as-is (nil when both are). The background is
// resized (nearest-neighbor) to the foreground's dimensions when they
// differ.
func Composite(background, foreground *raster.Raster) *raster.Raster {
	if background == nil {
		return foreground
	}
	if foreground == nil {
		return background
	}

	w, h := foreground.Width(), foreground.Height()
	if background.Width() != w || background.Height() != h {
		background = raster.Resize(background, w, h, raster.ResizeNearest)
	}

	out := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(x, y, blendOver(background.At(x, y), foreground.At(x, y)))
		}
	}
	return out
}

// blendOver computes standard source-over blending of straight-alpha
// colors.
func blendOver(bg, fg color.RGBA) color.RGBA {
	fa := float64(fg.A) / 255.0
	if fa >= 0.999 {
		return fg
	}
	if fa <= 0.001 {
		return bg
	}

	ba := float64(bg.A) / 255.0
	outA := fa + ba*(1-fa)

	blend := func(f, b uint8) uint8 {
		v := (float64(f)*fa + float64(b)*ba*(1-fa)) / outA
		return uint8(math.Round(v))
	}

	return color.RGBA{
		R: blend(fg.R, bg.R),
		G: blend(fg.G, bg.G),
		B: blend(fg.B, bg.B),
		A: uint8(math.Round(outA * 255)),
	}
}
