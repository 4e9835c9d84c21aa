package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestNewRaster(t *testing.T) {
	r := New(8, 6)
	if r.Width() != 8 || r.Height() != 6 {
		t.Errorf("expected 8x6, got %dx%d", r.Width(), r.Height())
	}
	if len(r.Pix()) != 8*6*4 {
		t.Errorf("expected %d bytes, got %d", 8*6*4, len(r.Pix()))
	}
	if got := r.At(3, 3); got != (color.RGBA{}) {
		t.Errorf("new raster should be transparent black, got %v", got)
	}
}

func TestSetAtRoundTrip(t *testing.T) {
	r := New(4, 4)
	c := color.RGBA{R: 138, G: 128, B: 0, A: 255}
	r.Set(2, 1, c)

	if got := r.At(2, 1); got != c {
		t.Errorf("expected %v, got %v", c, got)
	}
	if got := r.At(1, 2); got != (color.RGBA{}) {
		t.Errorf("neighbor should be untouched, got %v", got)
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	r := New(4, 4)
	r.Set(-1, 0, color.RGBA{R: 255, A: 255})
	r.Set(4, 4, color.RGBA{R: 255, A: 255})

	if got := r.At(-1, 0); got != (color.RGBA{}) {
		t.Errorf("out-of-bounds read should be zero, got %v", got)
	}
	for _, b := range r.Pix() {
		if b != 0 {
			t.Fatal("out-of-bounds writes must not land anywhere")
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	r := NewNeutral(4, 4)
	clone := r.Clone()
	r.Set(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 4})

	if got := clone.At(0, 0); got != (color.RGBA{R: 128, G: 128, B: 0, A: 255}) {
		t.Errorf("clone should be unaffected by source writes, got %v", got)
	}
}

func TestEqual(t *testing.T) {
	a := NewNeutral(3, 3)
	b := NewNeutral(3, 3)
	if !a.Equal(b) {
		t.Error("identical rasters should compare equal")
	}

	b.Set(1, 1, color.RGBA{R: 200, G: 128, B: 0, A: 255})
	if a.Equal(b) {
		t.Error("differing pixel should break equality")
	}
	if a.Equal(New(3, 4)) {
		t.Error("differing dimensions should break equality")
	}
	if a.Equal(nil) {
		t.Error("nil should never compare equal")
	}
}

func TestSubRegion(t *testing.T) {
	r := New(4, 4)
	r.Set(2, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	sub := r.SubRegion(1, 1, 2, 2)
	if sub.Width() != 2 || sub.Height() != 2 {
		t.Fatalf("expected 2x2, got %dx%d", sub.Width(), sub.Height())
	}
	if got := sub.At(1, 1); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("expected copied pixel at (1,1), got %v", got)
	}

	// Region partially off-canvas stays transparent where it overhangs.
	edge := r.SubRegion(3, 3, 2, 2)
	if got := edge.At(1, 1); got != (color.RGBA{}) {
		t.Errorf("overhanging pixels should be transparent, got %v", got)
	}
}

func TestWriteRegion(t *testing.T) {
	dst := New(4, 4)
	src := NewFilled(2, 2, color.RGBA{R: 5, G: 6, B: 7, A: 255})

	dst.WriteRegion(3, 3, src) // clips to one pixel
	if got := dst.At(3, 3); got != (color.RGBA{R: 5, G: 6, B: 7, A: 255}) {
		t.Errorf("expected written pixel at (3,3), got %v", got)
	}
	if got := dst.At(2, 2); got != (color.RGBA{}) {
		t.Errorf("pixel outside region should be untouched, got %v", got)
	}
}

func TestFromImageSynthesizesAlpha(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(0, 0, color.Gray{Y: 77})

	r := FromImage(gray)
	got := r.At(0, 0)
	if got.A != 255 {
		t.Errorf("alpha-less source should decode fully opaque, got alpha %d", got.A)
	}
	if got.R != 77 || got.G != 77 || got.B != 77 {
		t.Errorf("expected gray 77, got %v", got)
	}
}

func TestToImagePreservesTransparentColor(t *testing.T) {
	r := NewFilled(2, 2, color.RGBA{R: 128, G: 128, B: 0, A: 0})
	img := r.ToImage()

	back := FromImage(img)
	if !r.Equal(back) {
		t.Error("straight-alpha conversion must round-trip the neutral color under zero alpha")
	}
}
