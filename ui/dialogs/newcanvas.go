// Package dialogs provides application dialogs.
package dialogs

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	defaultCanvasWidth  = 256
	defaultCanvasHeight = 256
	maxCanvasSide       = 4096
)

// ShowNewCanvas asks for canvas dimensions and calls onCreate with the
// validated size.
func ShowNewCanvas(window fyne.Window, onCreate func(width, height int)) {
	widthEntry := widget.NewEntry()
	widthEntry.SetText(strconv.Itoa(defaultCanvasWidth))
	heightEntry := widget.NewEntry()
	heightEntry.SetText(strconv.Itoa(defaultCanvasHeight))

	form := widget.NewForm(
		widget.NewFormItem("Width", widthEntry),
		widget.NewFormItem("Height", heightEntry),
	)

	dlg := dialog.NewCustomConfirm(
		"New Canvas",
		"Create",
		"Cancel",
		form,
		func(create bool) {
			if !create {
				return
			}
			width, err := strconv.Atoi(widthEntry.Text)
			if err != nil || width < 1 || width > maxCanvasSide {
				dialog.ShowError(fmt.Errorf("invalid width %q", widthEntry.Text), window)
				return
			}
			height, err := strconv.Atoi(heightEntry.Text)
			if err != nil || height < 1 || height > maxCanvasSide {
				dialog.ShowError(fmt.Errorf("invalid height %q", heightEntry.Text), window)
				return
			}
			onCreate(width, height)
		},
		window,
	)
	dlg.Resize(fyne.NewSize(300, 180))
	dlg.Show()
}
