// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/session"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/version"
	"github.com/slycoolgamer/SS14-Displacer-Studio/ui/canvas"
	"github.com/slycoolgamer/SS14-Displacer-Studio/ui/dialogs"
	"github.com/slycoolgamer/SS14-Displacer-Studio/ui/panels"
	"github.com/slycoolgamer/SS14-Displacer-Studio/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	prefKeyLastDir     = "lastDirectory"
	prefKeyGridVisible = "gridVisible"
	prefKeyGridSize    = "gridSize"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp"}

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	session   *session.Session
	prefs     *prefs.Prefs
	editor    *canvas.EditorCanvas
	preview   *canvas.PreviewCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label

	// Menu items that need state tracking
	gridItem *fyne.MenuItem
}

// New creates a new main window.
func New(fyneApp fyne.App, sess *session.Session, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("SS14 Displacer Studio")

	mw := &MainWindow{
		Window:  win,
		app:     fyneApp,
		session: sess,
		prefs:   appPrefs,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupShortcuts()
	mw.setupEventHandlers()
	mw.restoreSettings()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.editor = canvas.NewEditorCanvas(mw.session)
	mw.preview = canvas.NewPreviewCanvas(mw.session)

	mw.sidePanel = panels.NewSidePanel(mw.session, mw.editor)

	mw.statusBar = widget.NewLabel("Ready")

	mw.editor.OnCursorMove(func(x, y int) {
		mw.sidePanel.SetCursor(x, y)
	})
	mw.editor.OnZoomChange(func(zoom float64) {
		mw.preview.SetZoom(zoom)
		mw.updateStatus(fmt.Sprintf("Zoom: %.0f%%", zoom*100))
	})
	mw.preview.OnZoomChange(func(zoom float64) {
		mw.editor.SetZoom(zoom)
	})
	mw.preview.OnCursorMove(func(x, y int) {
		mw.sidePanel.SetCursor(x, y)
	})

	toolbar := mw.createToolbar()

	// Editor on the left, live preview on the right
	canvases := container.NewHSplit(
		mw.editor.Container(),
		mw.preview.Container(),
	)
	canvases.SetOffset(0.5)

	canvasArea := container.NewBorder(
		toolbar, // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		canvases,
	)

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		canvasArea,
	)
	split.SetOffset(0.22)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)

	mw.SetContent(content)
	mw.Resize(fyne.NewSize(1200, 800))
}

// createToolbar creates the toolbar with zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	zoomOutBtn := widget.NewButton("-", func() {
		mw.editor.ZoomOut()
	})
	zoomInBtn := widget.NewButton("+", func() {
		mw.editor.ZoomIn()
	})
	actualBtn := widget.NewButton("1:1", func() {
		mw.editor.SetZoom(1.0)
	})
	undoBtn := widget.NewButton("Undo", func() {
		mw.session.Undo()
	})

	return container.NewHBox(
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		zoomInBtn,
		actualBtn,
		widget.NewSeparator(),
		undoBtn,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Canvas...", mw.onNewCanvas),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Load Reference...", mw.onLoadReference),
		fyne.NewMenuItem("Load Background...", mw.onLoadBackground),
		fyne.NewMenuItem("Load Displacement...", mw.onLoadDisplacement),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Displacement...", mw.onSaveDisplacement),
		fyne.NewMenuItem("Save Preview...", mw.onSavePreview),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	undoItem := fyne.NewMenuItem("Undo", mw.onUndo)
	undoItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl}
	selectAllItem := fyne.NewMenuItem("Select All", mw.onSelectAll)
	selectAllItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyA, Modifier: fyne.KeyModifierControl}
	deselectItem := fyne.NewMenuItem("Deselect", mw.onDeselect)
	deselectItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyD, Modifier: fyne.KeyModifierControl}

	editMenu := fyne.NewMenu("Edit",
		undoItem,
		fyne.NewMenuItemSeparator(),
		selectAllItem,
		deselectItem,
		fyne.NewMenuItem("Invert Selection", mw.onInvertSelection),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear Canvas", mw.onClearCanvas),
		fyne.NewMenuItem("Flip X/Y Channels", mw.onFlipChannels),
	)

	mw.gridItem = fyne.NewMenuItem("  Sprite Grid", mw.onToggleGrid)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", func() { mw.editor.ZoomIn() }),
		fyne.NewMenuItem("Zoom Out", func() { mw.editor.ZoomOut() }),
		fyne.NewMenuItem("Actual Size", func() { mw.editor.SetZoom(1.0) }),
		fyne.NewMenuItemSeparator(),
		mw.gridItem,
		fyne.NewMenuItem("Grid Settings...", mw.onGridSettings),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu)
	mw.SetMainMenu(mainMenu)
}

// setupShortcuts registers the keyboard shortcuts on the window canvas.
func (mw *MainWindow) setupShortcuts() {
	mw.Canvas().AddShortcut(
		&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { mw.onUndo() },
	)
	mw.Canvas().AddShortcut(
		&desktop.CustomShortcut{KeyName: fyne.KeyA, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { mw.onSelectAll() },
	)
	mw.Canvas().AddShortcut(
		&desktop.CustomShortcut{KeyName: fyne.KeyD, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { mw.onDeselect() },
	)
}

// setupEventHandlers registers for session events.
func (mw *MainWindow) setupEventHandlers() {
	mw.session.On(session.EventDisplacementChanged, func(interface{}) {
		mw.editor.Refresh()
		mw.preview.Refresh()
	})

	mw.session.On(session.EventSelectionChanged, func(interface{}) {
		mw.editor.Refresh()
	})

	mw.session.On(session.EventImagesChanged, func(interface{}) {
		mw.preview.Refresh()
		mw.updateStatus("Images updated")
	})

	mw.session.On(session.EventToolChanged, func(data interface{}) {
		if tool, ok := data.(session.Tool); ok {
			mw.updateStatus("Tool: " + tool.String())
		}
	})
}

// restoreSettings applies persisted view settings.
func (mw *MainWindow) restoreSettings() {
	mw.editor.SetGridSize(mw.prefs.Int(prefKeyGridSize, mw.editor.GridSize()))
	if mw.prefs.Bool(prefKeyGridVisible, false) {
		mw.editor.SetShowGrid(true)
		mw.gridItem.Label = "✓ Sprite Grid"
	}
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefKeyLastDir, filepath.Dir(filePath))
	if err := mw.prefs.Save(); err != nil {
		mw.updateStatus("Failed to save preferences: " + err.Error())
	}
}

// openImage shows a file-open dialog and hands the decoded raster to load.
func (mw *MainWindow) openImage(title string, load func(*raster.Raster) error) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)

		r, err := raster.LoadFile(path)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		if err := load(r); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus(title + ": " + filepath.Base(path))
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// saveImage shows a file-save dialog and writes the raster as PNG.
func (mw *MainWindow) saveImage(defaultName string, r *raster.Raster) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != ".png" {
			path += ".png"
		}
		mw.saveLastDir(path)
		if err := raster.SaveFile(path, r); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Saved " + filepath.Base(path))
	}, mw.Window)
	fd.SetFileName(defaultName)
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// Menu action handlers

func (mw *MainWindow) onNewCanvas() {
	// A loaded reference (else background) fixes the size; only ask when
	// neither is present.
	if width, height, ok := newCanvasSize(mw.session); ok {
		mw.session.NewCanvas(width, height)
		mw.updateStatus(fmt.Sprintf("New %dx%d canvas", width, height))
		return
	}
	dialogs.ShowNewCanvas(mw.Window, func(width, height int) {
		mw.session.NewCanvas(width, height)
		mw.updateStatus(fmt.Sprintf("New %dx%d canvas", width, height))
	})
}

// newCanvasSize returns the dimensions a new canvas inherits from the
// loaded images, preferring the reference over the background.
func newCanvasSize(sess *session.Session) (width, height int, ok bool) {
	if ref := sess.Reference(); ref != nil {
		return ref.Width(), ref.Height(), true
	}
	if bg := sess.Background(); bg != nil {
		return bg.Width(), bg.Height(), true
	}
	return 0, 0, false
}

func (mw *MainWindow) onLoadReference() {
	mw.openImage("Reference", func(r *raster.Raster) error {
		mw.session.LoadReference(r)
		return nil
	})
}

func (mw *MainWindow) onLoadBackground() {
	mw.openImage("Background", func(r *raster.Raster) error {
		mw.session.LoadBackground(r)
		return nil
	})
}

func (mw *MainWindow) onLoadDisplacement() {
	mw.openImage("Displacement", func(r *raster.Raster) error {
		mw.session.LoadDisplacement(r)
		return nil
	})
}

func (mw *MainWindow) onSaveDisplacement() {
	r := mw.session.SaveDisplacement()
	if r == nil {
		mw.updateStatus("No displacement map to save")
		return
	}
	mw.saveImage("displacement.png", r)
}

func (mw *MainWindow) onSavePreview() {
	r := mw.session.RenderPreview()
	if r == nil {
		mw.updateStatus("Nothing to preview")
		return
	}
	mw.saveImage("preview.png", r)
}

func (mw *MainWindow) onUndo() {
	mw.session.Undo()
}

func (mw *MainWindow) onSelectAll() {
	mw.session.SelectAll()
}

func (mw *MainWindow) onDeselect() {
	mw.session.Deselect()
}

func (mw *MainWindow) onInvertSelection() {
	mw.session.InvertSelection()
}

func (mw *MainWindow) onClearCanvas() {
	mw.session.Clear()
	mw.updateStatus("Canvas cleared")
}

func (mw *MainWindow) onFlipChannels() {
	mw.session.FlipChannels()
	mw.updateStatus("Swapped X and Y channels")
}

func (mw *MainWindow) onToggleGrid() {
	show := !mw.editor.ShowGrid()
	mw.editor.SetShowGrid(show)
	if show {
		mw.gridItem.Label = "✓ Sprite Grid"
	} else {
		mw.gridItem.Label = "  Sprite Grid"
	}
	mw.prefs.SetBool(prefKeyGridVisible, show)
	_ = mw.prefs.Save()
}

func (mw *MainWindow) onGridSettings() {
	dialogs.ShowGridSettings(mw.Window, mw.editor.GridSize(), func(size int) {
		mw.editor.SetGridSize(size)
		mw.prefs.SetInt(prefKeyGridSize, size)
		_ = mw.prefs.Save()
	})
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About SS14 Displacer Studio",
		fmt.Sprintf("SS14 Displacer Studio v%s\n\n"+
			"An editor for Space Station 14 displacement maps.\n\n"+
			"Red shifts pixels on X, green on Y, both biased by 128.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
