// Package canvas provides the zoomable editor and preview canvases.
package canvas

import (
	"image"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/session"
	"github.com/slycoolgamer/SS14-Displacer-Studio/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	minZoom  = 0.5
	maxZoom  = 8.0
	zoomStep = 1.2

	defaultGridSize = 32
)

// EditorCanvas displays the displacement map being edited and forwards
// pointer gestures to the session as tool events.
type EditorCanvas struct {
	widget.BaseWidget

	session *session.Session

	// Display state
	raster *fynecanvas.Raster
	zoom   float64

	// Sprite grid overlay
	showGrid bool
	gridSize int

	// Brush cursor, in image coordinates
	cursorX   int
	cursorY   int
	hasCursor bool

	// Drag gesture state
	dragging bool

	// Container
	scroll  *zoomScroll
	content *draggableContent
	imgSize fyne.Size

	// Callbacks
	onZoomChange func(zoom float64)
	onCursorMove func(x, y int)
}

// zoomScroll wraps a scroll container but intercepts the wheel for zoom.
type zoomScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
	canvas *EditorCanvas
}

func newZoomScroll(content fyne.CanvasObject, canvas *EditorCanvas) *zoomScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	zs := &zoomScroll{scroll: scroll, canvas: canvas}
	zs.ExtendBaseWidget(zs)
	return zs
}

func (zs *zoomScroll) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		zs.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		zs.canvas.ZoomOut()
	}
}

func (zs *zoomScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(zs.scroll)
}

// Offset returns the scroll container's current offset.
func (zs *zoomScroll) Offset() fyne.Position {
	return zs.scroll.Offset
}

// Size returns the scroll container's size.
func (zs *zoomScroll) Size() fyne.Size {
	return zs.scroll.Size()
}

// Refresh refreshes the scroll container.
func (zs *zoomScroll) Refresh() {
	zs.scroll.Refresh()
	zs.BaseWidget.Refresh()
}

// Resize sets the size of the scroll container.
func (zs *zoomScroll) Resize(size fyne.Size) {
	zs.scroll.Resize(size)
	zs.BaseWidget.Resize(size)
}

// draggableContent wraps the raster to handle mouse events.
type draggableContent struct {
	widget.BaseWidget
	canvas *EditorCanvas
	raster *fynecanvas.Raster
}

func newDraggableContent(ec *EditorCanvas, raster *fynecanvas.Raster) *draggableContent {
	dc := &draggableContent{
		canvas: ec,
		raster: raster,
	}
	dc.ExtendBaseWidget(dc)
	return dc
}

func (dc *draggableContent) CreateRenderer() fyne.WidgetRenderer {
	return &draggableContentRenderer{content: dc}
}

func (dc *draggableContent) MinSize() fyne.Size {
	return dc.raster.MinSize()
}

// imagePos converts a pointer event position to image coordinates.
func (dc *draggableContent) imagePos(pos fyne.Position) geometry.PointInt {
	scrollOffset := dc.canvas.scroll.Offset()
	canvasX := float64(pos.X + scrollOffset.X)
	canvasY := float64(pos.Y + scrollOffset.Y)
	return geometry.PointInt{
		X: int(canvasX / dc.canvas.zoom),
		Y: int(canvasY / dc.canvas.zoom),
	}
}

func (dc *draggableContent) Dragged(ev *fyne.DragEvent) {
	pos := dc.imagePos(ev.Position)
	tool := dc.canvas.session.Tool()
	if !dc.canvas.dragging {
		dc.canvas.dragging = true
		dc.canvas.session.Begin(tool, pos)
	} else {
		dc.canvas.session.Continue(tool, pos)
	}
	dc.canvas.setCursor(pos)
	dc.canvas.Refresh()
}

func (dc *draggableContent) DragEnd() {
	if !dc.canvas.dragging {
		return
	}
	dc.canvas.dragging = false
	dc.canvas.session.End(dc.canvas.session.Tool())
	dc.canvas.Refresh()
}

// Tapped handles single clicks as a begin/end pair, so a click with the
// paint tool places one dab and a click with the magic wand selects.
func (dc *draggableContent) Tapped(ev *fyne.PointEvent) {
	size := dc.Size()
	if ev.Position.X < 0 || ev.Position.Y < 0 ||
		ev.Position.X > size.Width || ev.Position.Y > size.Height {
		return
	}

	pos := dc.imagePos(ev.Position)
	tool := dc.canvas.session.Tool()
	dc.canvas.session.Begin(tool, pos)
	dc.canvas.session.End(tool)
	dc.canvas.Refresh()
}

func (dc *draggableContent) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		dc.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		dc.canvas.ZoomOut()
	}
}

// MouseIn implements desktop.Hoverable.
func (dc *draggableContent) MouseIn(ev *desktop.MouseEvent) {
	dc.canvas.setCursor(dc.imagePos(ev.Position))
	dc.canvas.Refresh()
}

// MouseMoved tracks the pointer for the brush outline.
func (dc *draggableContent) MouseMoved(ev *desktop.MouseEvent) {
	dc.canvas.setCursor(dc.imagePos(ev.Position))
	dc.canvas.Refresh()
}

// MouseOut implements desktop.Hoverable.
func (dc *draggableContent) MouseOut() {
	dc.canvas.hasCursor = false
	dc.canvas.Refresh()
}

type draggableContentRenderer struct {
	content *draggableContent
}

func (r *draggableContentRenderer) Layout(size fyne.Size) {
	r.content.raster.Resize(size)
}

func (r *draggableContentRenderer) MinSize() fyne.Size {
	return r.content.raster.MinSize()
}

func (r *draggableContentRenderer) Refresh() {
	r.content.raster.Refresh()
}

func (r *draggableContentRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content.raster}
}

func (r *draggableContentRenderer) Destroy() {}

// NewEditorCanvas creates the editor canvas bound to a session.
func NewEditorCanvas(sess *session.Session) *EditorCanvas {
	ec := &EditorCanvas{
		session:  sess,
		zoom:     1.0,
		gridSize: defaultGridSize,
		imgSize:  fyne.NewSize(400, 300),
	}

	ec.raster = fynecanvas.NewRaster(ec.draw)
	ec.raster.ScaleMode = fynecanvas.ImageScalePixels
	ec.raster.SetMinSize(ec.imgSize)

	ec.content = newDraggableContent(ec, ec.raster)
	ec.scroll = newZoomScroll(ec.content, ec)

	sess.On(session.EventDisplacementChanged, func(interface{}) {
		ec.updateContentSize()
	})
	sess.On(session.EventSelectionChanged, func(interface{}) {
		ec.Refresh()
	})

	ec.ExtendBaseWidget(ec)
	return ec
}

// Container returns the canvas container for embedding in layouts.
func (ec *EditorCanvas) Container() fyne.CanvasObject {
	return ec.scroll
}

func (ec *EditorCanvas) setCursor(pos geometry.PointInt) {
	ec.cursorX = pos.X
	ec.cursorY = pos.Y
	ec.hasCursor = true
	if ec.onCursorMove != nil {
		ec.onCursorMove(pos.X, pos.Y)
	}
}

// SetZoom sets the zoom level, clamped to the allowed range.
func (ec *EditorCanvas) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	ec.zoom = zoom
	ec.updateContentSize()

	if ec.onZoomChange != nil {
		ec.onZoomChange(zoom)
	}
}

// Zoom returns the current zoom level.
func (ec *EditorCanvas) Zoom() float64 {
	return ec.zoom
}

// ZoomIn increases the zoom level.
func (ec *EditorCanvas) ZoomIn() {
	ec.SetZoom(ec.zoom * zoomStep)
}

// ZoomOut decreases the zoom level.
func (ec *EditorCanvas) ZoomOut() {
	ec.SetZoom(ec.zoom / zoomStep)
}

// SetShowGrid toggles the sprite grid overlay.
func (ec *EditorCanvas) SetShowGrid(show bool) {
	ec.showGrid = show
	ec.Refresh()
}

// ShowGrid returns whether the sprite grid overlay is visible.
func (ec *EditorCanvas) ShowGrid() bool {
	return ec.showGrid
}

// SetGridSize sets the sprite grid spacing in image pixels.
func (ec *EditorCanvas) SetGridSize(size int) {
	if size < 1 {
		size = 1
	}
	ec.gridSize = size
	ec.Refresh()
}

// GridSize returns the sprite grid spacing in image pixels.
func (ec *EditorCanvas) GridSize() int {
	return ec.gridSize
}

// OnZoomChange sets a callback for zoom changes.
func (ec *EditorCanvas) OnZoomChange(callback func(zoom float64)) {
	ec.onZoomChange = callback
}

// OnCursorMove sets a callback for pointer movement in image coordinates.
func (ec *EditorCanvas) OnCursorMove(callback func(x, y int)) {
	ec.onCursorMove = callback
}

// Refresh refreshes the canvas display.
func (ec *EditorCanvas) Refresh() {
	ec.raster.Refresh()
}

// updateContentSize updates the content size based on the map size and zoom.
func (ec *EditorCanvas) updateContentSize() {
	w, h := ec.session.CanvasSize()
	if w == 0 || h == 0 {
		ec.imgSize = fyne.NewSize(400, 300)
	} else {
		ec.imgSize = fyne.NewSize(
			float32(float64(w)*ec.zoom),
			float32(float64(h)*ec.zoom),
		)
	}

	ec.raster.SetMinSize(ec.imgSize)
	ec.raster.Resize(ec.imgSize)
	if ec.content != nil {
		ec.content.Resize(ec.imgSize)
		ec.content.Refresh()
	}
	ec.raster.Refresh()
	if ec.scroll != nil {
		ec.scroll.Refresh()
	}
}

// draw is the raster drawing function.
func (ec *EditorCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))

	// Dark background with opaque alpha
	for i := 0; i < len(output.Pix); i += 4 {
		output.Pix[i] = 24
		output.Pix[i+1] = 24
		output.Pix[i+2] = 28
		output.Pix[i+3] = 255
	}

	disp := ec.session.Displacement()
	if disp == nil {
		return output
	}

	ec.drawRaster(output, disp)
	ec.drawSelectionOverlays(output, disp.Width(), disp.Height())

	if ec.showGrid {
		ec.drawGrid(output, disp.Width(), disp.Height())
	}

	tool := ec.session.Tool()
	if ec.hasCursor && (tool == session.ToolPaint || tool == session.ToolErase) {
		ec.drawBrushOutline(output)
	}

	return output
}

// CreateRenderer implements fyne.Widget.
func (ec *EditorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &editorCanvasRenderer{canvas: ec}
}

type editorCanvasRenderer struct {
	canvas *EditorCanvas
}

func (r *editorCanvasRenderer) Layout(size fyne.Size) {
	if r.canvas.scroll != nil {
		r.canvas.scroll.Resize(size)
	}
}

func (r *editorCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *editorCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *editorCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.scroll}
}

func (r *editorCanvasRenderer) Destroy() {}
