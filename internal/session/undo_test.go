package session

import (
	"image/color"
	"testing"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
)

func TestUndoLogBound(t *testing.T) {
	log := NewUndoLog(10)

	// Push 15 snapshots, each tagged by its R channel.
	for i := 0; i < 15; i++ {
		snap := raster.New(1, 1)
		snap.Set(0, 0, color.RGBA{R: uint8(i), A: 255})
		log.Push(snap)
	}

	if log.Len() != 10 {
		t.Fatalf("expected 10 retained snapshots, got %d", log.Len())
	}

	// Pop in LIFO order: 14 down to 5; the 5 oldest are gone.
	for want := 14; want >= 5; want-- {
		snap := log.Pop()
		if snap == nil {
			t.Fatalf("expected snapshot %d, got nil", want)
		}
		if got := snap.At(0, 0).R; int(got) != want {
			t.Errorf("expected snapshot %d, got %d", want, got)
		}
	}
	if log.Pop() != nil {
		t.Error("evicted snapshots must be unrecoverable")
	}
}

func TestUndoLogPushCopies(t *testing.T) {
	log := NewUndoLog(10)
	src := raster.NewNeutral(2, 2)
	log.Push(src)

	src.Set(0, 0, color.RGBA{R: 1, A: 255})
	snap := log.Pop()
	if got := snap.At(0, 0); got != (color.RGBA{R: 128, G: 128, B: 0, A: 255}) {
		t.Error("pushed snapshot must be a deep copy, not a reference")
	}
}

func TestUndoLogEmptyPop(t *testing.T) {
	log := NewUndoLog(10)
	if log.Pop() != nil {
		t.Error("popping an empty log should return nil")
	}
}
