package session

import (
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/paint"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/selection"
	"github.com/slycoolgamer/SS14-Displacer-Studio/pkg/geometry"
)

// Tool is the coarse editing mode driven by pointer gestures.
type Tool int

const (
	ToolPaint Tool = iota
	ToolErase
	ToolRectSelect
	ToolLassoSelect
	ToolMagicSelect
)

func (t Tool) String() string {
	switch t {
	case ToolPaint:
		return "Paint"
	case ToolErase:
		return "Erase"
	case ToolRectSelect:
		return "Rect Select"
	case ToolLassoSelect:
		return "Lasso Select"
	case ToolMagicSelect:
		return "Magic Select"
	default:
		return "Unknown"
	}
}

// SetTool switches the current tool, abandoning any gesture in flight.
func (s *Session) SetTool(tool Tool) {
	s.mu.Lock()
	s.tool = tool
	s.resetGestureLocked()
	s.mu.Unlock()

	s.Emit(EventToolChanged, tool)
}

// Tool returns the current tool.
func (s *Session) Tool() Tool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tool
}

// Begin starts a gesture at an image-pixel position. Paint and erase
// snapshot the displacement once, so a whole drag undoes as one step.
// Rect records its anchor, lasso opens a fresh point list, and magic
// select commits immediately on the click. Positions outside the canvas
// are ignored, as pointer coordinates routinely overshoot a zoomed view.
func (s *Session) Begin(tool Tool, pos geometry.PointInt) {
	s.mu.Lock()
	if !s.inCanvasLocked(pos) {
		s.mu.Unlock()
		return
	}

	var changed, selChanged bool
	switch tool {
	case ToolPaint, ToolErase:
		s.undo.Push(s.displacement)
		s.painting = true
		s.strokeLocked(tool, pos)
		changed = true
	case ToolRectSelect:
		s.anchor = pos
		s.hasAnchor = true
		s.provisional = nil
	case ToolLassoSelect:
		s.lassoPoints = []geometry.PointInt{pos}
	case ToolMagicSelect:
		selChanged = s.magicSelectLocked(pos)
	}
	s.mu.Unlock()

	if changed {
		s.Emit(EventDisplacementChanged, nil)
	}
	if selChanged {
		s.Emit(EventSelectionChanged, nil)
	}
}

// Continue extends an open gesture: further strokes for paint/erase
// (no new snapshot), a recomputed provisional mask for rect, another
// path point for lasso. Magic select ignores drags.
func (s *Session) Continue(tool Tool, pos geometry.PointInt) {
	s.mu.Lock()
	if !s.inCanvasLocked(pos) {
		s.mu.Unlock()
		return
	}

	var changed, selChanged bool
	switch tool {
	case ToolPaint, ToolErase:
		if s.painting {
			s.strokeLocked(tool, pos)
			changed = true
		}
	case ToolRectSelect:
		if s.hasAnchor {
			s.provisional = selection.Rectangle(s.anchor, pos,
				s.displacement.Width(), s.displacement.Height())
			selChanged = true
		}
	case ToolLassoSelect:
		if len(s.lassoPoints) > 0 {
			s.lassoPoints = append(s.lassoPoints, pos)
		}
	}
	s.mu.Unlock()

	if changed {
		s.Emit(EventDisplacementChanged, nil)
	}
	if selChanged {
		s.Emit(EventSelectionChanged, nil)
	}
}

// End closes a gesture. Rect commits its provisional mask, lasso builds
// and commits the polygon when it has at least 3 points (shorter paths
// are discarded), paint/erase just reset.
func (s *Session) End(tool Tool) {
	s.mu.Lock()

	var selChanged bool
	switch tool {
	case ToolPaint, ToolErase:
		s.painting = false
	case ToolRectSelect:
		if s.provisional != nil {
			s.applySelectionLocked(s.provisional)
			selChanged = true
		}
		s.provisional = nil
		s.hasAnchor = false
	case ToolLassoSelect:
		points := s.lassoPoints
		s.lassoPoints = nil
		if s.displacement != nil && len(points) >= 3 {
			mask, err := selection.Polygon(points,
				s.displacement.Width(), s.displacement.Height())
			if err == nil {
				s.applySelectionLocked(mask)
				selChanged = true
			}
		}
	}
	s.mu.Unlock()

	if selChanged {
		s.Emit(EventSelectionChanged, nil)
	}
}

// strokeLocked runs one brush application. Caller holds the lock.
func (s *Session) strokeLocked(tool Tool, pos geometry.PointInt) {
	mode := paint.ModeDirectional
	if tool == ToolErase {
		mode = paint.ModeErase
	}

	var sel *raster.Mask
	if s.selectionActive {
		sel = s.selectionMask
	}
	paint.Stroke(s.displacement, pos, s.brushSize, mode, s.direction, s.paintStrength, sel)
}

// magicSelectLocked runs a flood fill at the click point and commits the
// result. A seed outside the canvas is a silent no-op. Caller holds the
// lock.
func (s *Session) magicSelectLocked(pos geometry.PointInt) bool {
	mask, err := selection.FloodFill(s.displacement, pos.X, pos.Y, s.tolerance)
	if err != nil {
		return false
	}
	s.applySelectionLocked(mask)
	return true
}

// applySelectionLocked merges a freshly built mask into the active
// selection using the configured combinator. Caller holds the lock.
func (s *Session) applySelectionLocked(mask *raster.Mask) {
	s.selectionMask = selection.Combine(s.activeMaskLocked(), mask, s.selectionOp)
	s.selectionActive = true
}

// activeMaskLocked returns the committed selection mask, or nil when no
// selection is active. Caller holds the lock.
func (s *Session) activeMaskLocked() *raster.Mask {
	if !s.selectionActive {
		return nil
	}
	return s.selectionMask
}

// inCanvasLocked reports whether pos is a valid displacement pixel.
// Caller holds the lock.
func (s *Session) inCanvasLocked(pos geometry.PointInt) bool {
	return s.displacement != nil && s.displacement.In(pos.X, pos.Y)
}
