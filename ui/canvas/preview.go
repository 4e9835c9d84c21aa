// Package canvas provides the live preview canvas.
package canvas

import (
	"image"
	"image/color"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/session"
	"github.com/slycoolgamer/SS14-Displacer-Studio/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// PreviewCanvas shows the displacement map applied to the loaded images.
// It re-renders whenever the session reports a change, and accepts the
// same paint and selection gestures as the editor canvas, so strokes can
// be placed while watching the displaced result.
type PreviewCanvas struct {
	widget.BaseWidget

	session *session.Session
	raster  *fynecanvas.Raster
	content *previewContent
	scroll  *container.Scroll
	zoom    float64
	imgSize fyne.Size

	// Drag gesture state
	dragging bool

	// Callbacks
	onZoomChange func(zoom float64)
	onCursorMove func(x, y int)
}

// previewContent wraps the preview raster to handle mouse events.
type previewContent struct {
	widget.BaseWidget
	canvas *PreviewCanvas
	raster *fynecanvas.Raster
}

func newPreviewContent(pc *PreviewCanvas, raster *fynecanvas.Raster) *previewContent {
	c := &previewContent{
		canvas: pc,
		raster: raster,
	}
	c.ExtendBaseWidget(c)
	return c
}

func (c *previewContent) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.raster)
}

func (c *previewContent) MinSize() fyne.Size {
	return c.raster.MinSize()
}

// imagePos converts a pointer event position to image coordinates.
func (c *previewContent) imagePos(pos fyne.Position) geometry.PointInt {
	scrollOffset := c.canvas.scroll.Offset
	canvasX := float64(pos.X + scrollOffset.X)
	canvasY := float64(pos.Y + scrollOffset.Y)
	return geometry.PointInt{
		X: int(canvasX / c.canvas.zoom),
		Y: int(canvasY / c.canvas.zoom),
	}
}

func (c *previewContent) Dragged(ev *fyne.DragEvent) {
	pos := c.imagePos(ev.Position)
	tool := c.canvas.session.Tool()
	if !c.canvas.dragging {
		c.canvas.dragging = true
		c.canvas.session.Begin(tool, pos)
	} else {
		c.canvas.session.Continue(tool, pos)
	}
	if c.canvas.onCursorMove != nil {
		c.canvas.onCursorMove(pos.X, pos.Y)
	}
	c.canvas.Refresh()
}

func (c *previewContent) DragEnd() {
	if !c.canvas.dragging {
		return
	}
	c.canvas.dragging = false
	c.canvas.session.End(c.canvas.session.Tool())
	c.canvas.Refresh()
}

// Tapped handles single clicks as a begin/end pair, matching the editor.
func (c *previewContent) Tapped(ev *fyne.PointEvent) {
	size := c.Size()
	if ev.Position.X < 0 || ev.Position.Y < 0 ||
		ev.Position.X > size.Width || ev.Position.Y > size.Height {
		return
	}

	pos := c.imagePos(ev.Position)
	tool := c.canvas.session.Tool()
	c.canvas.session.Begin(tool, pos)
	c.canvas.session.End(tool)
	c.canvas.Refresh()
}

func (c *previewContent) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		c.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		c.canvas.ZoomOut()
	}
}

// MouseIn implements desktop.Hoverable.
func (c *previewContent) MouseIn(ev *desktop.MouseEvent) {
	c.MouseMoved(ev)
}

// MouseMoved reports the pointer position in image coordinates.
func (c *previewContent) MouseMoved(ev *desktop.MouseEvent) {
	if c.canvas.onCursorMove == nil {
		return
	}
	pos := c.imagePos(ev.Position)
	c.canvas.onCursorMove(pos.X, pos.Y)
}

// MouseOut implements desktop.Hoverable.
func (c *previewContent) MouseOut() {}

// NewPreviewCanvas creates the preview canvas bound to a session.
func NewPreviewCanvas(sess *session.Session) *PreviewCanvas {
	pc := &PreviewCanvas{
		session: sess,
		zoom:    1.0,
		imgSize: fyne.NewSize(400, 300),
	}

	pc.raster = fynecanvas.NewRaster(pc.draw)
	pc.raster.ScaleMode = fynecanvas.ImageScalePixels
	pc.raster.SetMinSize(pc.imgSize)

	pc.content = newPreviewContent(pc, pc.raster)

	pc.scroll = container.NewScroll(pc.content)
	pc.scroll.Direction = container.ScrollBoth

	sess.On(session.EventDisplacementChanged, func(interface{}) {
		pc.updateContentSize()
	})
	sess.On(session.EventImagesChanged, func(interface{}) {
		pc.updateContentSize()
	})

	pc.ExtendBaseWidget(pc)
	return pc
}

// Container returns the preview container for embedding in layouts.
func (pc *PreviewCanvas) Container() fyne.CanvasObject {
	return pc.scroll
}

// SetZoom sets the preview zoom level, clamped to the editor's range.
// It does not fire the zoom callback, so the editor can sync the preview
// without bouncing the change back.
func (pc *PreviewCanvas) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	pc.zoom = zoom
	pc.updateContentSize()
}

// Zoom returns the current zoom level.
func (pc *PreviewCanvas) Zoom() float64 {
	return pc.zoom
}

// ZoomIn increases the zoom level and notifies the zoom callback.
func (pc *PreviewCanvas) ZoomIn() {
	pc.SetZoom(pc.zoom * zoomStep)
	if pc.onZoomChange != nil {
		pc.onZoomChange(pc.zoom)
	}
}

// ZoomOut decreases the zoom level and notifies the zoom callback.
func (pc *PreviewCanvas) ZoomOut() {
	pc.SetZoom(pc.zoom / zoomStep)
	if pc.onZoomChange != nil {
		pc.onZoomChange(pc.zoom)
	}
}

// OnZoomChange sets a callback fired when the preview itself is zoomed.
func (pc *PreviewCanvas) OnZoomChange(callback func(zoom float64)) {
	pc.onZoomChange = callback
}

// OnCursorMove sets a callback for pointer movement in image coordinates.
func (pc *PreviewCanvas) OnCursorMove(callback func(x, y int)) {
	pc.onCursorMove = callback
}

// Refresh re-renders the preview.
func (pc *PreviewCanvas) Refresh() {
	pc.raster.Refresh()
}

func (pc *PreviewCanvas) updateContentSize() {
	w, h := pc.session.CanvasSize()
	if w == 0 || h == 0 {
		pc.imgSize = fyne.NewSize(400, 300)
	} else {
		pc.imgSize = fyne.NewSize(
			float32(float64(w)*pc.zoom),
			float32(float64(h)*pc.zoom),
		)
	}
	pc.raster.SetMinSize(pc.imgSize)
	pc.raster.Resize(pc.imgSize)
	if pc.content != nil {
		pc.content.Resize(pc.imgSize)
		pc.content.Refresh()
	}
	pc.raster.Refresh()
	pc.scroll.Refresh()
}

func (pc *PreviewCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(output.Pix); i += 4 {
		output.Pix[i] = 24
		output.Pix[i+1] = 24
		output.Pix[i+2] = 28
		output.Pix[i+3] = 255
	}

	preview := pc.session.RenderPreview()
	if preview == nil {
		return output
	}

	bounds := output.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		srcY := int(float64(y) / pc.zoom)
		if srcY >= preview.Height() {
			break
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			srcX := int(float64(x) / pc.zoom)
			if srcX >= preview.Width() {
				break
			}
			c := preview.At(srcX, srcY)
			if c.A == 0 {
				shade := uint8(56)
				if (srcX/4+srcY/4)%2 == 0 {
					shade = 72
				}
				output.SetRGBA(x, y, color.RGBA{R: shade, G: shade, B: shade, A: 255})
				continue
			}
			blendPixel(output, x, y, c)
		}
	}
	return output
}

// CreateRenderer implements fyne.Widget.
func (pc *PreviewCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.scroll)
}
