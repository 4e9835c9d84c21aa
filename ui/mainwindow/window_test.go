package mainwindow

import (
	"testing"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/session"
)

func TestNewCanvasSizeFromReference(t *testing.T) {
	sess := session.New()
	sess.LoadReference(raster.New(7, 9))
	sess.LoadBackground(raster.New(5, 6))

	w, h, ok := newCanvasSize(sess)
	if !ok {
		t.Fatal("expected a size with a reference loaded")
	}
	if w != 7 || h != 9 {
		t.Errorf("size = %dx%d, want 7x9 from the reference", w, h)
	}
}

func TestNewCanvasSizeFallsBackToBackground(t *testing.T) {
	sess := session.New()
	sess.LoadBackground(raster.New(5, 6))

	w, h, ok := newCanvasSize(sess)
	if !ok {
		t.Fatal("expected a size with a background loaded")
	}
	if w != 5 || h != 6 {
		t.Errorf("size = %dx%d, want 5x6 from the background", w, h)
	}
}

func TestNewCanvasSizeWithoutImages(t *testing.T) {
	sess := session.New()
	if _, _, ok := newCanvasSize(sess); ok {
		t.Error("expected no size with nothing loaded")
	}
}
