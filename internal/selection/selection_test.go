package selection

import (
	"testing"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
	"github.com/slycoolgamer/SS14-Displacer-Studio/pkg/geometry"
)

func pt(x, y int) geometry.PointInt { return geometry.PointInt{X: x, Y: y} }

func TestRectangleNormalizesCorners(t *testing.T) {
	// Corners given bottom-right to top-left still select the same box.
	a := Rectangle(pt(1, 1), pt(3, 2), 6, 6)
	b := Rectangle(pt(3, 2), pt(1, 1), 6, 6)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("corner order changed result at (%d,%d)", x, y)
			}
			inside := x >= 1 && x <= 3 && y >= 1 && y <= 2
			if inside != a.Selected(x, y) {
				t.Errorf("pixel (%d,%d): expected selected=%v", x, y, inside)
			}
		}
	}
}

func TestRectangleClipsToCanvas(t *testing.T) {
	m := Rectangle(pt(-5, -5), pt(10, 10), 4, 4)
	if m.Count() != 16 {
		t.Errorf("oversized rectangle should select the whole 4x4 canvas, got %d", m.Count())
	}
}

func TestPolygonTooFewPoints(t *testing.T) {
	if _, err := Polygon([]geometry.PointInt{pt(0, 0), pt(3, 3)}, 8, 8); err != ErrTooFewPoints {
		t.Errorf("expected ErrTooFewPoints, got %v", err)
	}
}

func TestPolygonFillsInterior(t *testing.T) {
	// A big axis-aligned square lasso.
	points := []geometry.PointInt{pt(1, 1), pt(6, 1), pt(6, 6), pt(1, 6)}
	m, err := Polygon(points, 8, 8)
	if err != nil {
		t.Fatalf("polygon failed: %v", err)
	}

	if !m.Selected(3, 3) || !m.Selected(2, 5) {
		t.Error("interior pixels should be selected")
	}
	if m.Selected(0, 0) || m.Selected(7, 7) || m.Selected(7, 3) {
		t.Error("pixels outside the lasso should stay unselected")
	}
}

func TestCombineReplaceIgnoresCurrent(t *testing.T) {
	cur := raster.NewMaskFilled(4, 4, 255)
	inc := raster.NewMask(4, 4)
	inc.Set(1, 1, 255)

	got := Combine(cur, inc, OpReplace)
	if got.Count() != 1 || !got.Selected(1, 1) {
		t.Error("Replace should return the incoming mask unchanged")
	}

	if got := Combine(nil, inc, OpReplace); got.Count() != 1 {
		t.Error("Replace with absent current should still return incoming")
	}
}

func TestCombineAlgebra(t *testing.T) {
	a := raster.NewMask(4, 4)
	a.Set(0, 0, 255)
	a.Set(1, 1, 255)
	b := raster.NewMask(4, 4)
	b.Set(1, 1, 255)
	b.Set(2, 2, 255)

	add := Combine(a, b, OpAdd)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := a.At(x, y)
			if b.At(x, y) > want {
				want = b.At(x, y)
			}
			if add.At(x, y) != want {
				t.Errorf("Add at (%d,%d): expected %d, got %d", x, y, want, add.At(x, y))
			}
		}
	}

	sub := Combine(a, b, OpSubtract)
	if sub.Selected(1, 1) {
		t.Error("Subtract should remove pixels covered by incoming")
	}
	if !sub.Selected(0, 0) {
		t.Error("Subtract should keep current pixels outside incoming")
	}
	if sub.Selected(2, 2) {
		t.Error("Subtract should never add incoming-only pixels")
	}

	inter := Combine(a, b, OpIntersect)
	if inter.Count() != 1 || !inter.Selected(1, 1) {
		t.Error("Intersect should keep only the overlap")
	}
}

func TestCombineInputsUntouched(t *testing.T) {
	a := raster.NewMask(3, 3)
	a.Set(0, 0, 255)
	b := raster.NewMask(3, 3)
	b.Set(0, 0, 255)

	Combine(a, b, OpSubtract)
	if !a.Selected(0, 0) || !b.Selected(0, 0) {
		t.Error("Combine must not mutate its inputs")
	}
}

// An absent current selection behaves as all-zero for the non-Replace
// ops: Add keeps the incoming region, Subtract and Intersect come out
// empty.
func TestCombineAbsentCurrent(t *testing.T) {
	inc := raster.NewMask(4, 4)
	inc.Set(2, 2, 255)

	if got := Combine(nil, inc, OpAdd); got.Count() != 1 || !got.Selected(2, 2) {
		t.Error("Add onto absent current should equal incoming")
	}
	if got := Combine(nil, inc, OpSubtract); got.Count() != 0 {
		t.Error("Subtract from absent current should select nothing")
	}
	if got := Combine(nil, inc, OpIntersect); got.Count() != 0 {
		t.Error("Intersect with absent current should select nothing")
	}
}

func TestInvertInvolution(t *testing.T) {
	m := raster.NewMask(4, 4)
	m.Set(0, 0, 255)
	m.Set(3, 1, 255)

	twice := Invert(Invert(m, 4, 4), 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if twice.At(x, y) != m.At(x, y) {
				t.Fatalf("double inversion changed (%d,%d)", x, y)
			}
		}
	}
}

func TestInvertAbsentSelectsAll(t *testing.T) {
	m := Invert(nil, 3, 3)
	if m.Count() != 9 {
		t.Errorf("inverting no selection should select everything, got %d", m.Count())
	}
}

func TestBorderRingTouchesSelection(t *testing.T) {
	m := raster.NewMask(7, 7)
	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			m.Set(x, y, 255)
		}
	}

	border := Border(m, 1)
	if border.Count() == 0 {
		t.Fatal("expected a non-empty border ring")
	}
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			if border.At(x, y) == 0 {
				continue
			}
			if m.At(x, y) != 0 {
				t.Fatalf("border pixel (%d,%d) overlaps the selection", x, y)
			}
			if m.At(x-1, y) == 0 && m.At(x+1, y) == 0 && m.At(x, y-1) == 0 && m.At(x, y+1) == 0 {
				t.Fatalf("border pixel (%d,%d) does not touch the selection", x, y)
			}
		}
	}
}

func TestBorderThicknessGrowsRing(t *testing.T) {
	m := raster.NewMask(9, 9)
	m.Set(4, 4, 255)

	thin := Border(m, 1)
	thick := Border(m, 2)
	if thick.Count() <= thin.Count() {
		t.Errorf("thickness 2 should produce a larger ring: %d vs %d", thick.Count(), thin.Count())
	}
	// The original pixel is never part of its own border.
	if thin.Selected(4, 4) || thick.Selected(4, 4) {
		t.Error("selected pixels must stay out of the border")
	}
}

func TestBorderDeterministic(t *testing.T) {
	m := raster.NewMask(6, 6)
	m.Set(2, 2, 255)
	m.Set(3, 3, 255)

	a := Border(m, 2)
	b := Border(m, 2)
	for i, v := range a.Data() {
		if b.Data()[i] != v {
			t.Fatal("border extraction should be deterministic")
		}
	}
}
