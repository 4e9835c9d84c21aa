package dialogs

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ShowGridSettings asks for the sprite grid spacing and calls onApply with
// the validated value.
func ShowGridSettings(window fyne.Window, current int, onApply func(size int)) {
	sizeEntry := widget.NewEntry()
	sizeEntry.SetText(strconv.Itoa(current))

	form := widget.NewForm(
		widget.NewFormItem("Grid spacing (px)", sizeEntry),
	)

	dlg := dialog.NewCustomConfirm(
		"Sprite Grid",
		"Apply",
		"Cancel",
		form,
		func(apply bool) {
			if !apply {
				return
			}
			size, err := strconv.Atoi(sizeEntry.Text)
			if err != nil || size < 1 || size > 1024 {
				dialog.ShowError(fmt.Errorf("invalid grid spacing %q", sizeEntry.Text), window)
				return
			}
			onApply(size)
		},
		window,
	)
	dlg.Resize(fyne.NewSize(280, 140))
	dlg.Show()
}
