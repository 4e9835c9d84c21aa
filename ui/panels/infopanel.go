package panels

import (
	"fmt"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// InfoPanel shows canvas details and selection statistics.
type InfoPanel struct {
	session   *session.Session
	container fyne.CanvasObject

	sizeLabel      *widget.Label
	cursorLabel    *widget.Label
	selectionLabel *widget.Label
	statsLabel     *widget.Label
}

// NewInfoPanel creates the info panel.
func NewInfoPanel(sess *session.Session) *InfoPanel {
	ip := &InfoPanel{
		session: sess,
	}

	ip.sizeLabel = widget.NewLabel("Canvas: none")
	ip.cursorLabel = widget.NewLabel("Cursor: -")
	ip.selectionLabel = widget.NewLabel("Selection: none")
	ip.statsLabel = widget.NewLabel("")
	ip.statsLabel.Wrapping = fyne.TextWrapWord

	sess.On(session.EventDisplacementChanged, func(interface{}) {
		ip.update()
	})
	sess.On(session.EventSelectionChanged, func(interface{}) {
		ip.update()
	})

	ip.container = container.NewVBox(
		ip.sizeLabel,
		ip.cursorLabel,
		ip.selectionLabel,
		widget.NewSeparator(),
		widget.NewLabel("Offset statistics"),
		ip.statsLabel,
	)

	ip.update()
	return ip
}

// Container returns the panel container.
func (ip *InfoPanel) Container() fyne.CanvasObject {
	return ip.container
}

// SetCursor updates the cursor position readout.
func (ip *InfoPanel) SetCursor(x, y int) {
	ip.cursorLabel.SetText(fmt.Sprintf("Cursor: %d, %d", x, y))
}

// update refreshes the size, selection, and statistics readouts.
func (ip *InfoPanel) update() {
	w, h := ip.session.CanvasSize()
	if w == 0 || h == 0 {
		ip.sizeLabel.SetText("Canvas: none")
	} else {
		ip.sizeLabel.SetText(fmt.Sprintf("Canvas: %d x %d", w, h))
	}

	if sel := ip.session.Selection(); sel != nil {
		ip.selectionLabel.SetText(fmt.Sprintf("Selection: %d px", sel.Count()))
	} else {
		ip.selectionLabel.SetText("Selection: none")
	}

	stats, ok := ip.session.SelectionStats()
	if !ok || stats.Pixels == 0 {
		ip.statsLabel.SetText("No displaced pixels")
		return
	}
	ip.statsLabel.SetText(fmt.Sprintf(
		"Pixels: %d\nMean dX: %.2f (sd %.2f)\nMean dY: %.2f (sd %.2f)",
		stats.Pixels, stats.MeanDX, stats.StdDX, stats.MeanDY, stats.StdDY,
	))
}
