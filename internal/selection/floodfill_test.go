package selection

import (
	"image/color"
	"testing"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
)

// two-tone canvas: left half red, right half blue.
func twoTone(w, h int) *raster.Raster {
	img := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.Set(x, y, color.RGBA{R: 200, A: 255})
			} else {
				img.Set(x, y, color.RGBA{B: 200, A: 255})
			}
		}
	}
	return img
}

func TestFloodFillSeedOutOfBounds(t *testing.T) {
	img := twoTone(8, 8)
	for _, seed := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if _, err := FloodFill(img, seed[0], seed[1], 32); err != ErrOutOfBounds {
			t.Errorf("seed (%d,%d): expected ErrOutOfBounds, got %v", seed[0], seed[1], err)
		}
	}
}

func TestFloodFillSelectsConnectedRegion(t *testing.T) {
	img := twoTone(8, 8)
	m, err := FloodFill(img, 1, 1, 32)
	if err != nil {
		t.Fatalf("flood fill failed: %v", err)
	}

	if m.Count() != 4*8 {
		t.Errorf("expected the 32-pixel red half, got %d", m.Count())
	}
	if !m.Selected(1, 1) {
		t.Error("seed must always be selected")
	}
	if m.Selected(4, 4) {
		t.Error("blue half should be outside tolerance")
	}
}

func TestFloodFillToleranceZero(t *testing.T) {
	img := twoTone(4, 4)
	img.Set(0, 0, color.RGBA{R: 201, A: 255}) // one-off from its neighbors

	m, err := FloodFill(img, 0, 0, 0)
	if err != nil {
		t.Fatalf("flood fill failed: %v", err)
	}
	if m.Count() != 1 {
		t.Errorf("tolerance 0 should select only exact matches, got %d pixels", m.Count())
	}
}

func TestFloodFillMaxToleranceSelectsComponent(t *testing.T) {
	img := twoTone(8, 8)
	// 765 is the largest possible RGB sum-of-absolute-differences, so
	// the whole 4-connected canvas qualifies.
	m, err := FloodFill(img, 0, 0, 765)
	if err != nil {
		t.Fatalf("flood fill failed: %v", err)
	}
	if m.Count() != 64 {
		t.Errorf("max tolerance should select all 64 pixels, got %d", m.Count())
	}
}

func TestFloodFillIgnoresAlpha(t *testing.T) {
	img := raster.New(4, 1)
	img.Set(0, 0, color.RGBA{R: 100, G: 50, B: 25, A: 255})
	img.Set(1, 0, color.RGBA{R: 100, G: 50, B: 25, A: 0}) // same RGB, transparent
	img.Set(2, 0, color.RGBA{R: 100, G: 50, B: 25, A: 128})
	img.Set(3, 0, color.RGBA{R: 0, G: 0, B: 0, A: 255})

	m, err := FloodFill(img, 0, 0, 0)
	if err != nil {
		t.Fatalf("flood fill failed: %v", err)
	}
	if !m.Selected(1, 0) || !m.Selected(2, 0) {
		t.Error("alpha must not affect the color comparison")
	}
	if m.Selected(3, 0) {
		t.Error("different RGB should stay out at tolerance 0")
	}
}

func TestFloodFillFourConnectivity(t *testing.T) {
	// Two same-color areas touching only diagonally must not merge.
	img := raster.New(4, 4)
	img.Fill(color.RGBA{B: 255, A: 255})
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	m, err := FloodFill(img, 0, 0, 0)
	if err != nil {
		t.Fatalf("flood fill failed: %v", err)
	}
	if m.Selected(1, 1) {
		t.Error("diagonal neighbors are not connected under 4-connectivity")
	}
	if m.Count() != 1 {
		t.Errorf("expected only the seed, got %d pixels", m.Count())
	}
}

func TestFloodFillComparesAgainstSeedColor(t *testing.T) {
	// A gradient that drifts by 2 per step: with tolerance 3 only pixels
	// within 3 of the SEED qualify, so the fill must not creep along the
	// gradient comparing neighbor-to-neighbor.
	img := raster.New(6, 1)
	for x := 0; x < 6; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(100 + 2*x), A: 255})
	}

	m, err := FloodFill(img, 0, 0, 3)
	if err != nil {
		t.Fatalf("flood fill failed: %v", err)
	}
	if !m.Selected(0, 0) || !m.Selected(1, 0) {
		t.Error("pixels within seed tolerance should be selected")
	}
	if m.Selected(2, 0) || m.Selected(5, 0) {
		t.Error("pixels outside seed tolerance must never be included")
	}
}
