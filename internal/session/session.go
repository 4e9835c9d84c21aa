// Package session owns the editor state: the current displacement,
// reference, and background rasters, the active selection, the undo
// log, and the brush/tool settings. The UI drives everything through
// this package and listens for change events; nothing else mutates the
// rasters.
package session

import (
	"sync"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/displace"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/paint"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/selection"
	"github.com/slycoolgamer/SS14-Displacer-Studio/pkg/colorutil"
	"github.com/slycoolgamer/SS14-Displacer-Studio/pkg/geometry"
)

// EventType identifies editor state changes the UI can subscribe to.
type EventType int

const (
	EventDisplacementChanged EventType = iota
	EventSelectionChanged
	EventImagesChanged
	EventToolChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// Session is the single orchestrator between the UI and the engines.
// All mutating commands and full-state reads are serialized by one
// mutex; every engine call runs to completion on the calling goroutine.
type Session struct {
	mu sync.RWMutex

	// Rasters
	displacement *raster.Raster
	reference    *raster.Raster
	background   *raster.Raster

	// Selection state. selectionActive implies selectionMask is non-nil
	// and matches the displacement raster's dimensions.
	selectionActive bool
	selectionMask   *raster.Mask

	undo *UndoLog

	// Tool settings
	tool          Tool
	selectionOp   selection.Op
	brushSize     int
	paintStrength int
	direction     paint.Direction
	tolerance     int
	sampling      displace.Sampling

	// In-flight gesture state
	painting    bool
	anchor      geometry.PointInt
	hasAnchor   bool
	provisional *raster.Mask
	lassoPoints []geometry.PointInt

	listeners map[EventType][]EventListener
}

// New creates an editor session with the original tool defaults: a
// 5-pixel paint brush of strength 1 pushing right, magic-wand tolerance
// 32, replace selection mode.
func New() *Session {
	return &Session{
		undo:          NewUndoLog(DefaultUndoDepth),
		tool:          ToolPaint,
		selectionOp:   selection.OpReplace,
		brushSize:     5,
		paintStrength: 1,
		direction:     paint.DirRight,
		tolerance:     32,
		sampling:      displace.SamplingNearest,
		listeners:     make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *Session) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *Session) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// NewCanvas replaces the displacement map with a fresh neutral-opaque
// raster of the given size, clearing the undo history and any selection.
func (s *Session) NewCanvas(width, height int) {
	s.mu.Lock()
	s.displacement = raster.NewNeutral(width, height)
	s.undo.Clear()
	s.dropSelectionLocked()
	s.resetGestureLocked()
	s.mu.Unlock()

	s.Emit(EventDisplacementChanged, nil)
	s.Emit(EventSelectionChanged, nil)
}

// LoadReference sets the reference image the preview displaces.
func (s *Session) LoadReference(r *raster.Raster) {
	s.mu.Lock()
	s.reference = r
	s.mu.Unlock()
	s.Emit(EventImagesChanged, nil)
}

// LoadBackground sets the backdrop the preview composites onto.
func (s *Session) LoadBackground(r *raster.Raster) {
	s.mu.Lock()
	s.background = r
	s.mu.Unlock()
	s.Emit(EventImagesChanged, nil)
}

// LoadDisplacement installs an externally authored displacement map.
// Import cleanup normalizes every fully transparent pixel to the
// neutral-transparent encoding, repairing maps that carry arbitrary RGB
// under zero alpha.
func (s *Session) LoadDisplacement(r *raster.Raster) {
	cleaned := r.Clone()
	CleanupImport(cleaned)

	s.mu.Lock()
	sizeChanged := s.displacement == nil ||
		s.displacement.Width() != cleaned.Width() ||
		s.displacement.Height() != cleaned.Height()
	s.displacement = cleaned
	s.undo.Clear()
	if sizeChanged {
		s.dropSelectionLocked()
	}
	s.resetGestureLocked()
	s.mu.Unlock()

	s.Emit(EventDisplacementChanged, nil)
	s.Emit(EventSelectionChanged, nil)
}

// CleanupImport rewrites every alpha-0 pixel to (128,128,0,0) in place.
func CleanupImport(r *raster.Raster) {
	pix := r.Pix()
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] == 0 {
			pix[i] = colorutil.NeutralR
			pix[i+1] = colorutil.NeutralG
			pix[i+2] = colorutil.NeutralB
		}
	}
}

// SaveDisplacement returns a copy of the current displacement map, or
// nil if none is loaded.
func (s *Session) SaveDisplacement() *raster.Raster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.displacement == nil {
		return nil
	}
	return s.displacement.Clone()
}

// HasDisplacement reports whether a displacement map is loaded.
func (s *Session) HasDisplacement() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.displacement != nil
}

// CanvasSize returns the displacement map's dimensions, or zeros.
func (s *Session) CanvasSize() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.displacement == nil {
		return 0, 0
	}
	return s.displacement.Width(), s.displacement.Height()
}

// Displacement returns a copy of the displacement map for display, or
// nil if none is loaded.
func (s *Session) Displacement() *raster.Raster {
	return s.SaveDisplacement()
}

// Reference returns a copy of the reference image, or nil.
func (s *Session) Reference() *raster.Raster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.reference == nil {
		return nil
	}
	return s.reference.Clone()
}

// Background returns a copy of the background image, or nil.
func (s *Session) Background() *raster.Raster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.background == nil {
		return nil
	}
	return s.background.Clone()
}

// Selection returns a copy of the active selection mask, or nil when no
// selection is active.
func (s *Session) Selection() *raster.Mask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.selectionActive || s.selectionMask == nil {
		return nil
	}
	return s.selectionMask.Clone()
}

// Provisional returns a copy of the in-flight rectangle selection shown
// while the drag is still open, or nil.
func (s *Session) Provisional() *raster.Mask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.provisional == nil {
		return nil
	}
	return s.provisional.Clone()
}

// LassoTrail returns a copy of the points accumulated by an open lasso
// gesture, or nil when no lasso drag is in progress.
func (s *Session) LassoTrail() []geometry.PointInt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.lassoPoints) == 0 {
		return nil
	}
	out := make([]geometry.PointInt, len(s.lassoPoints))
	copy(out, s.lassoPoints)
	return out
}

// RenderPreview renders the live preview. With a reference loaded the
// displacement map resamples it, composited over the background if one
// is present. With only a background the displacement is applied to the
// background directly. Returns nil when there is nothing to show.
func (s *Session) RenderPreview() *raster.Raster {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.displacement == nil {
		return nil
	}
	switch {
	case s.reference != nil:
		displaced := displace.Apply(s.reference, s.displacement, s.sampling)
		if s.background != nil {
			return displace.Composite(s.background, displaced)
		}
		return displaced
	case s.background != nil:
		return displace.Apply(s.background, s.displacement, s.sampling)
	default:
		return nil
	}
}

// Undo restores the most recent snapshot. With an empty log this is a
// no-op, not an error.
func (s *Session) Undo() {
	s.mu.Lock()
	snap := s.undo.Pop()
	if snap != nil {
		s.displacement = snap
	}
	s.mu.Unlock()

	if snap != nil {
		s.Emit(EventDisplacementChanged, nil)
	}
}

// Clear resets the displacement map to neutral-opaque, snapshotting
// first so the reset is undoable.
func (s *Session) Clear() {
	s.mu.Lock()
	if s.displacement == nil {
		s.mu.Unlock()
		return
	}
	s.undo.Push(s.displacement)
	s.displacement = raster.NewNeutral(s.displacement.Width(), s.displacement.Height())
	s.mu.Unlock()

	s.Emit(EventDisplacementChanged, nil)
}

// FlipChannels swaps the R and G channels across the whole displacement
// map, exchanging the X and Y offset axes. Snapshots first.
func (s *Session) FlipChannels() {
	s.mu.Lock()
	if s.displacement == nil {
		s.mu.Unlock()
		return
	}
	s.undo.Push(s.displacement)
	pix := s.displacement.Pix()
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1] = pix[i+1], pix[i]
	}
	s.mu.Unlock()

	s.Emit(EventDisplacementChanged, nil)
}

// SelectAll activates a selection covering the whole canvas.
func (s *Session) SelectAll() {
	s.mu.Lock()
	if s.displacement == nil {
		s.mu.Unlock()
		return
	}
	s.selectionMask = raster.NewMaskFilled(s.displacement.Width(), s.displacement.Height(), 255)
	s.selectionActive = true
	s.mu.Unlock()

	s.Emit(EventSelectionChanged, nil)
}

// Deselect clears the active selection; everything becomes paintable.
func (s *Session) Deselect() {
	s.mu.Lock()
	s.dropSelectionLocked()
	s.mu.Unlock()

	s.Emit(EventSelectionChanged, nil)
}

// InvertSelection complements the active selection. With no selection
// active the inverse of "nothing" selects everything.
func (s *Session) InvertSelection() {
	s.mu.Lock()
	if s.displacement == nil {
		s.mu.Unlock()
		return
	}
	mask := s.selectionMask
	if !s.selectionActive {
		mask = nil
	}
	s.selectionMask = selection.Invert(mask, s.displacement.Width(), s.displacement.Height())
	s.selectionActive = true
	s.mu.Unlock()

	s.Emit(EventSelectionChanged, nil)
}

// SetSelectionOp sets how committed selections merge with the active one.
func (s *Session) SetSelectionOp(op selection.Op) {
	s.mu.Lock()
	s.selectionOp = op
	s.mu.Unlock()
}

// SelectionOp returns the configured selection combinator.
func (s *Session) SelectionOp() selection.Op {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectionOp
}

// SetBrush configures the paint brush and magic-wand tolerance.
func (s *Session) SetBrush(size, strength int, dir paint.Direction, tolerance int) {
	s.mu.Lock()
	if size < 1 {
		size = 1
	}
	s.brushSize = size
	s.paintStrength = strength
	s.direction = dir
	s.tolerance = tolerance
	s.mu.Unlock()
}

// Brush returns the current brush settings.
func (s *Session) Brush() (size, strength int, dir paint.Direction, tolerance int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.brushSize, s.paintStrength, s.direction, s.tolerance
}

// SetSampling selects nearest or bilinear reference sampling for the
// preview.
func (s *Session) SetSampling(mode displace.Sampling) {
	s.mu.Lock()
	s.sampling = mode
	s.mu.Unlock()

	s.Emit(EventImagesChanged, nil)
}

// Sampling returns the preview sampling mode.
func (s *Session) Sampling() displace.Sampling {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sampling
}

// dropSelectionLocked clears selection state. Caller holds the lock.
func (s *Session) dropSelectionLocked() {
	s.selectionMask = nil
	s.selectionActive = false
}

// resetGestureLocked abandons any in-flight gesture. Caller holds the lock.
func (s *Session) resetGestureLocked() {
	s.painting = false
	s.hasAnchor = false
	s.provisional = nil
	s.lassoPoints = nil
}
