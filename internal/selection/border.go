package selection

import (
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
)

// Border extracts the ring of unselected pixels that hug the selection:
// the selected region is dilated by thickness pixels (4-connectivity),
// and the border is everything the dilation reached that the original
// mask did not cover. The canvas draws this ring as the selection outline.
func Border(mask *raster.Mask, thickness int) *raster.Mask {
	w, h := mask.Width(), mask.Height()
	out := raster.NewMask(w, h)
	if thickness < 1 {
		return out
	}

	dilated := mask.Clone()
	for i := 0; i < thickness; i++ {
		dilated = dilate(dilated)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if dilated.At(x, y) > 0 && mask.At(x, y) == 0 {
				out.Set(x, y, 255)
			}
		}
	}
	return out
}

// dilate grows the selected region by one pixel in the four cardinal
// directions.
func dilate(mask *raster.Mask) *raster.Mask {
	w, h := mask.Width(), mask.Height()
	out := mask.Clone()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.At(x, y) > 0 {
				continue
			}
			if mask.At(x-1, y) > 0 || mask.At(x+1, y) > 0 ||
				mask.At(x, y-1) > 0 || mask.At(x, y+1) > 0 {
				out.Set(x, y, 255)
			}
		}
	}
	return out
}
