package paint

import (
	"image/color"
	"testing"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
	"github.com/slycoolgamer/SS14-Displacer-Studio/pkg/geometry"
)

func pt(x, y int) geometry.PointInt { return geometry.PointInt{X: x, Y: y} }

func TestDirectionalSingleChannel(t *testing.T) {
	cases := []struct {
		dir        Direction
		wantR      uint8
		wantG      uint8
	}{
		{DirRight, 138, 128},
		{DirLeft, 118, 128},
		{DirUp, 128, 118},
		{DirDown, 128, 138},
	}

	for _, tc := range cases {
		dst := raster.NewNeutral(4, 4)
		Stroke(dst, pt(2, 2), 1, ModeDirectional, tc.dir, 10, nil)

		got := dst.At(2, 2)
		if got.R != tc.wantR || got.G != tc.wantG {
			t.Errorf("%v: expected R=%d G=%d, got R=%d G=%d",
				tc.dir, tc.wantR, tc.wantG, got.R, got.G)
		}
		if got.A != 255 {
			t.Errorf("%v: painting should force alpha 255, got %d", tc.dir, got.A)
		}
	}
}

func TestDirectionalClampsChannel(t *testing.T) {
	dst := raster.NewNeutral(3, 3)
	dst.Set(1, 1, color.RGBA{R: 250, G: 128, B: 0, A: 255})

	Stroke(dst, pt(1, 1), 1, ModeDirectional, DirRight, 200, nil)
	if got := dst.At(1, 1).R; got != 255 {
		t.Errorf("expected clamp to 255, got %d", got)
	}

	Stroke(dst, pt(1, 1), 1, ModeDirectional, DirLeft, 200, nil)
	Stroke(dst, pt(1, 1), 1, ModeDirectional, DirLeft, 200, nil)
	if got := dst.At(1, 1).R; got != 0 {
		t.Errorf("expected clamp to 0, got %d", got)
	}
}

func TestEraseWritesNeutralTransparent(t *testing.T) {
	dst := raster.NewNeutral(3, 3)
	dst.Set(1, 1, color.RGBA{R: 250, G: 20, B: 0, A: 255})

	Stroke(dst, pt(1, 1), 1, ModeErase, DirRight, 5, nil)
	if got := dst.At(1, 1); got != (color.RGBA{R: 128, G: 128, B: 0, A: 0}) {
		t.Errorf("erase should write (128,128,0,0), got %v", got)
	}
}

func TestBrushFootprintIsCircular(t *testing.T) {
	dst := raster.NewNeutral(9, 9)
	Stroke(dst, pt(4, 4), 5, ModeDirectional, DirRight, 10, nil) // radius 2

	if dst.At(4, 4).R != 138 || dst.At(2, 4).R != 138 || dst.At(4, 6).R != 138 {
		t.Error("pixels within the radius should be painted")
	}
	// Corners of the bounding square are sqrt(8) > 2 away.
	if dst.At(2, 2).R != 128 || dst.At(6, 6).R != 128 {
		t.Error("corner pixels outside the circle must stay untouched")
	}
}

func TestStrokeClipsAtEdges(t *testing.T) {
	dst := raster.NewNeutral(4, 4)
	// Center outside the canvas: only the overlap gets painted.
	Stroke(dst, pt(-1, 2), 5, ModeDirectional, DirRight, 10, nil)

	if dst.At(0, 2).R != 138 {
		t.Error("overlapping pixels should be painted")
	}
	if dst.At(3, 2).R != 128 {
		t.Error("pixels beyond the footprint must stay untouched")
	}
}

func TestSelectionGuard(t *testing.T) {
	dst := raster.NewNeutral(5, 5)
	sel := raster.NewMask(5, 5)
	sel.Set(2, 2, 255)

	Stroke(dst, pt(2, 2), 5, ModeDirectional, DirRight, 10, sel)

	if dst.At(2, 2).R != 138 {
		t.Error("selected pixel should be painted")
	}
	if dst.At(3, 2).R != 128 || dst.At(2, 3).R != 128 {
		t.Error("masked-out pixels must not change")
	}
}

func TestRepeatedStrokesAccumulate(t *testing.T) {
	dst := raster.NewNeutral(3, 3)
	for i := 0; i < 3; i++ {
		Stroke(dst, pt(1, 1), 1, ModeDirectional, DirDown, 7, nil)
	}
	if got := dst.At(1, 1).G; got != 128+21 {
		t.Errorf("expected G=%d after three strokes, got %d", 128+21, got)
	}
}
