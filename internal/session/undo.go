package session

import (
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
)

// DefaultUndoDepth bounds how many snapshots the editor keeps.
const DefaultUndoDepth = 10

// UndoLog is a bounded history of displacement snapshots. Push stores a
// deep copy; once the log is full the oldest entry is evicted. Entries
// are never mutated after being pushed.
type UndoLog struct {
	entries []*raster.Raster
	max     int
}

// NewUndoLog creates an undo log holding at most max snapshots.
func NewUndoLog(max int) *UndoLog {
	if max < 1 {
		max = 1
	}
	return &UndoLog{max: max}
}

// Push appends a deep copy of the raster, evicting the oldest entry if
// the log is over capacity.
func (u *UndoLog) Push(snapshot *raster.Raster) {
	u.entries = append(u.entries, snapshot.Clone())
	if len(u.entries) > u.max {
		u.entries = u.entries[1:]
	}
}

// Pop removes and returns the most recent snapshot, or nil if the log
// is empty.
func (u *UndoLog) Pop() *raster.Raster {
	if len(u.entries) == 0 {
		return nil
	}
	last := u.entries[len(u.entries)-1]
	u.entries = u.entries[:len(u.entries)-1]
	return last
}

// Len returns the number of stored snapshots.
func (u *UndoLog) Len() int {
	return len(u.entries)
}

// Clear drops all snapshots.
func (u *UndoLog) Clear() {
	u.entries = nil
}
