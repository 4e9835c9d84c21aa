package displace

import (
	"image/color"
	"testing"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
)

// checker builds a reference raster where every pixel has a unique color
// derived from its coordinates, so sampling positions are observable.
func coordColors(w, h int) *raster.Raster {
	ref := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ref.Set(x, y, color.RGBA{R: uint8(10 * x), G: uint8(10 * y), B: 7, A: 255})
		}
	}
	return ref
}

func TestNeutralMapIsIdentity(t *testing.T) {
	ref := coordColors(6, 5)
	disp := raster.NewNeutral(6, 5)

	out := Apply(ref, disp, SamplingNearest)
	if !out.Equal(ref) {
		t.Error("a neutral displacement map should reproduce the reference exactly")
	}
}

func TestTransparentDisplacementGuard(t *testing.T) {
	ref := coordColors(4, 4)
	disp := raster.NewNeutral(4, 4)
	// R/G content under zero alpha must not matter.
	disp.Set(2, 2, color.RGBA{R: 255, G: 255, B: 0, A: 0})

	out := Apply(ref, disp, SamplingNearest)
	if got := out.At(2, 2); got != (color.RGBA{}) {
		t.Errorf("transparent displacement pixel must yield (0,0,0,0), got %v", got)
	}
	if got := out.At(1, 1); got != ref.At(1, 1) {
		t.Error("other pixels should be unaffected")
	}
}

func TestOffsetsShiftSampling(t *testing.T) {
	ref := coordColors(8, 8)
	disp := raster.NewNeutral(8, 8)
	disp.Set(2, 2, color.RGBA{R: 138, G: 128, B: 0, A: 255}) // +10 in X
	disp.Set(5, 5, color.RGBA{R: 128, G: 125, B: 0, A: 255}) // -3 in Y

	out := Apply(ref, disp, SamplingNearest)

	// x+10 clamps to the right edge (width-1 = 7).
	if got := out.At(2, 2); got != ref.At(7, 2) {
		t.Errorf("expected clamped sample of (7,2), got %v", got)
	}
	if got := out.At(5, 5); got != ref.At(5, 2) {
		t.Errorf("expected sample of (5,2), got %v", got)
	}
}

func TestEdgeClampRepeatsEdgePixels(t *testing.T) {
	ref := coordColors(4, 4)
	disp := raster.NewNeutral(4, 4)
	disp.Set(0, 0, color.RGBA{R: 0, G: 0, B: 0, A: 255}) // -128 in both axes

	out := Apply(ref, disp, SamplingNearest)
	if got := out.At(0, 0); got != ref.At(0, 0) {
		t.Errorf("offsets past the edge should clamp, got %v", got)
	}
}

func TestDisplacementResizedToReference(t *testing.T) {
	ref := coordColors(8, 8)
	disp := raster.NewNeutral(4, 4) // half size, all neutral

	out := Apply(ref, disp, SamplingNearest)
	if !out.Equal(ref) {
		t.Error("a neutral map should stay neutral through nearest-neighbor resize")
	}
}

func TestSampledAlphaCopiedVerbatim(t *testing.T) {
	ref := raster.New(3, 3)
	ref.Set(1, 1, color.RGBA{R: 50, G: 60, B: 70, A: 90})
	disp := raster.NewNeutral(3, 3)

	out := Apply(ref, disp, SamplingNearest)
	if got := out.At(1, 1); got != (color.RGBA{R: 50, G: 60, B: 70, A: 90}) {
		t.Errorf("reference alpha should pass through, got %v", got)
	}
}

func TestBilinearModeIsSelectable(t *testing.T) {
	ref := coordColors(6, 6)
	disp := raster.NewNeutral(6, 6)

	// Whole-pixel offsets agree between modes on an identity map.
	nearest := Apply(ref, disp, SamplingNearest)
	bilinear := Apply(ref, disp, SamplingBilinear)
	if !nearest.Equal(bilinear) {
		t.Error("identity displacement should match across sampling modes")
	}
}

func TestCompositeAbsentOperands(t *testing.T) {
	fg := coordColors(3, 3)
	if got := Composite(nil, fg); got != fg {
		t.Error("absent background should return the foreground")
	}
	if got := Composite(fg, nil); got != fg {
		t.Error("absent foreground should return the background")
	}
	if got := Composite(nil, nil); got != nil {
		t.Error("both absent should return nil")
	}
}

func TestCompositeOverBlending(t *testing.T) {
	bg := raster.NewFilled(2, 2, color.RGBA{R: 100, G: 100, B: 100, A: 255})
	fg := raster.New(2, 2)
	fg.Set(0, 0, color.RGBA{R: 200, G: 0, B: 0, A: 255}) // opaque: replaces
	// (1,1) transparent: background shows through

	out := Composite(bg, fg)
	if got := out.At(0, 0); got != (color.RGBA{R: 200, G: 0, B: 0, A: 255}) {
		t.Errorf("opaque foreground should replace background, got %v", got)
	}
	if got := out.At(1, 1); got != (color.RGBA{R: 100, G: 100, B: 100, A: 255}) {
		t.Errorf("transparent foreground should show background, got %v", got)
	}
}

func TestCompositeHalfAlpha(t *testing.T) {
	bg := raster.NewFilled(1, 1, color.RGBA{R: 0, G: 0, B: 0, A: 255})
	fg := raster.NewFilled(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 128})

	out := Composite(bg, fg)
	got := out.At(0, 0)
	// 255 * (128/255) over black: roughly half intensity, full alpha.
	if got.A != 255 {
		t.Errorf("over an opaque background the result stays opaque, got alpha %d", got.A)
	}
	if got.R < 126 || got.R > 130 {
		t.Errorf("expected roughly half intensity, got %d", got.R)
	}
}

func TestCompositeResizesBackground(t *testing.T) {
	bg := raster.NewFilled(2, 2, color.RGBA{R: 9, G: 9, B: 9, A: 255})
	fg := raster.New(4, 4) // fully transparent

	out := Composite(bg, fg)
	if out.Width() != 4 || out.Height() != 4 {
		t.Fatalf("expected foreground size 4x4, got %dx%d", out.Width(), out.Height())
	}
	if got := out.At(3, 3); got != (color.RGBA{R: 9, G: 9, B: 9, A: 255}) {
		t.Errorf("resized background should show through, got %v", got)
	}
}
