package raster

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ResizeMode selects the resampling filter used when scaling a raster.
type ResizeMode int

const (
	ResizeNearest ResizeMode = iota
	ResizeBilinear
)

// Resize scales a raster to the given dimensions. Nearest-neighbor keeps
// hard pixel edges, which displacement maps need; bilinear is available
// for photographic sources.
func Resize(r *Raster, width, height int, mode ResizeMode) *Raster {
	if width == r.Width() && height == r.Height() {
		return r.Clone()
	}

	src := r.ToImage()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	var scaler xdraw.Scaler = xdraw.NearestNeighbor
	if mode == ResizeBilinear {
		scaler = xdraw.BiLinear
	}
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return FromImage(dst)
}
