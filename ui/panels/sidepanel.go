// Package panels provides UI panels for the application.
package panels

import (
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/session"
	"github.com/slycoolgamer/SS14-Displacer-Studio/ui/canvas"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	session   *session.Session
	container *container.AppTabs

	toolPanel *ToolPanel
	infoPanel *InfoPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(sess *session.Session, editor *canvas.EditorCanvas) *SidePanel {
	sp := &SidePanel{
		session: sess,
	}

	sp.toolPanel = NewToolPanel(sess, editor)
	sp.infoPanel = NewInfoPanel(sess)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Tools", sp.toolPanel.Container()),
		container.NewTabItem("Info", sp.infoPanel.Container()),
	)

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// SetCursor updates the cursor position readout.
func (sp *SidePanel) SetCursor(x, y int) {
	sp.infoPanel.SetCursor(x, y)
}
