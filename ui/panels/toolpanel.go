package panels

import (
	"fmt"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/displace"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/paint"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/selection"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/session"
	"github.com/slycoolgamer/SS14-Displacer-Studio/ui/canvas"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var toolNames = []string{"Paint", "Erase", "Rect Select", "Lasso Select", "Magic Wand"}

var toolByName = map[string]session.Tool{
	"Paint":        session.ToolPaint,
	"Erase":        session.ToolErase,
	"Rect Select":  session.ToolRectSelect,
	"Lasso Select": session.ToolLassoSelect,
	"Magic Wand":   session.ToolMagicSelect,
}

var directionByName = map[string]paint.Direction{
	"Right": paint.DirRight,
	"Left":  paint.DirLeft,
	"Up":    paint.DirUp,
	"Down":  paint.DirDown,
}

var opByName = map[string]selection.Op{
	"Replace":   selection.OpReplace,
	"Add":       selection.OpAdd,
	"Subtract":  selection.OpSubtract,
	"Intersect": selection.OpIntersect,
}

// ToolPanel exposes the tool, brush, and selection settings.
type ToolPanel struct {
	session   *session.Session
	editor    *canvas.EditorCanvas
	container fyne.CanvasObject

	toolRadio      *widget.RadioGroup
	directionSel   *widget.Select
	sizeSlider     *widget.Slider
	sizeLabel      *widget.Label
	strengthSlider *widget.Slider
	strengthLabel  *widget.Label
	toleranceSlide *widget.Slider
	toleranceLabel *widget.Label
	opSelect       *widget.Select
	samplingSelect *widget.Select
}

// NewToolPanel creates the tool settings panel.
func NewToolPanel(sess *session.Session, editor *canvas.EditorCanvas) *ToolPanel {
	tp := &ToolPanel{
		session: sess,
		editor:  editor,
	}

	size, strength, _, tolerance := sess.Brush()

	tp.sizeLabel = widget.NewLabel(fmt.Sprintf("Brush size: %d", size))
	tp.sizeSlider = widget.NewSlider(1, 64)
	tp.sizeSlider.Step = 1
	tp.sizeSlider.Value = float64(size)
	tp.sizeSlider.OnChanged = func(v float64) {
		tp.sizeLabel.SetText(fmt.Sprintf("Brush size: %d", int(v)))
		tp.pushBrush()
	}

	tp.strengthLabel = widget.NewLabel(fmt.Sprintf("Strength: %d", strength))
	tp.strengthSlider = widget.NewSlider(1, 64)
	tp.strengthSlider.Step = 1
	tp.strengthSlider.Value = float64(strength)
	tp.strengthSlider.OnChanged = func(v float64) {
		tp.strengthLabel.SetText(fmt.Sprintf("Strength: %d", int(v)))
		tp.pushBrush()
	}

	tp.toleranceLabel = widget.NewLabel(fmt.Sprintf("Tolerance: %d", tolerance))
	tp.toleranceSlide = widget.NewSlider(0, 255)
	tp.toleranceSlide.Step = 1
	tp.toleranceSlide.Value = float64(tolerance)
	tp.toleranceSlide.OnChanged = func(v float64) {
		tp.toleranceLabel.SetText(fmt.Sprintf("Tolerance: %d", int(v)))
		tp.pushBrush()
	}

	tp.directionSel = widget.NewSelect([]string{"Right", "Left", "Up", "Down"}, func(string) {
		tp.pushBrush()
	})
	tp.directionSel.SetSelected("Right")

	tp.opSelect = widget.NewSelect([]string{"Replace", "Add", "Subtract", "Intersect"}, func(name string) {
		if op, ok := opByName[name]; ok {
			sess.SetSelectionOp(op)
		}
	})
	tp.opSelect.SetSelected("Replace")

	tp.samplingSelect = widget.NewSelect([]string{"Nearest", "Bilinear"}, func(name string) {
		if name == "Bilinear" {
			sess.SetSampling(displace.SamplingBilinear)
		} else {
			sess.SetSampling(displace.SamplingNearest)
		}
	})
	tp.samplingSelect.SetSelected("Nearest")

	tp.toolRadio = widget.NewRadioGroup(toolNames, func(name string) {
		if tool, ok := toolByName[name]; ok {
			sess.SetTool(tool)
		}
		editor.Refresh()
	})
	tp.toolRadio.SetSelected("Paint")

	tp.container = container.NewVBox(
		widget.NewLabel("Tool"),
		tp.toolRadio,
		widget.NewSeparator(),
		widget.NewLabel("Direction"),
		tp.directionSel,
		tp.sizeLabel,
		tp.sizeSlider,
		tp.strengthLabel,
		tp.strengthSlider,
		tp.toleranceLabel,
		tp.toleranceSlide,
		widget.NewSeparator(),
		widget.NewLabel("Selection mode"),
		tp.opSelect,
		widget.NewLabel("Preview sampling"),
		tp.samplingSelect,
	)

	return tp
}

// Container returns the panel container.
func (tp *ToolPanel) Container() fyne.CanvasObject {
	return tp.container
}

// pushBrush writes the current widget values into the session.
func (tp *ToolPanel) pushBrush() {
	dir := paint.DirRight
	if d, ok := directionByName[tp.directionSel.Selected]; ok {
		dir = d
	}
	tp.session.SetBrush(
		int(tp.sizeSlider.Value),
		int(tp.strengthSlider.Value),
		dir,
		int(tp.toleranceSlide.Value),
	)
}
