// Package canvas provides overlay drawing for the editor canvas.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/selection"
	"github.com/slycoolgamer/SS14-Displacer-Studio/pkg/colorutil"
)

const borderThickness = 2

var gridColor = color.RGBA{R: 0, G: 255, B: 255, A: 160}

// blendPixel blends a straight-alpha color over an opaque destination pixel.
func blendPixel(output *image.RGBA, x, y int, c color.RGBA) {
	bounds := output.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	if c.A == 255 {
		output.SetRGBA(x, y, c)
		return
	}
	if c.A == 0 {
		return
	}

	i := output.PixOffset(x, y)
	a := float64(c.A) / 255.0
	inv := 1 - a
	output.Pix[i] = uint8(float64(c.R)*a + float64(output.Pix[i])*inv)
	output.Pix[i+1] = uint8(float64(c.G)*a + float64(output.Pix[i+1])*inv)
	output.Pix[i+2] = uint8(float64(c.B)*a + float64(output.Pix[i+2])*inv)
}

// drawRaster draws the displacement map scaled by the current zoom.
// Transparent map pixels show a checkerboard so "no displacement" is
// visually distinct from a zero offset.
func (ec *EditorCanvas) drawRaster(output *image.RGBA, r *raster.Raster) {
	bounds := output.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		srcY := int(float64(y) / ec.zoom)
		if srcY >= r.Height() {
			break
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			srcX := int(float64(x) / ec.zoom)
			if srcX >= r.Width() {
				break
			}

			c := r.At(srcX, srcY)
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
}

// drawSelectionOverlays dims pixels outside the committed selection, outlines
// its border, and shades any in-flight rectangle or lasso gesture.
func (ec *EditorCanvas) drawSelectionOverlays(output *image.RGBA, imgW, imgH int) {
	sel := ec.session.Selection()
	if sel != nil {
		border := selection.Border(sel, borderThickness)
		ec.drawMaskShade(output, sel, imgW, imgH, colorutil.SelectionDim, true)
		ec.drawMaskShade(output, border, imgW, imgH, colorutil.SelectionBorder, false)
	}

	if prov := ec.session.Provisional(); prov != nil {
		ec.drawMaskShade(output, prov, imgW, imgH, colorutil.SelectionProvisional, false)
	}

	if trail := ec.session.LassoTrail(); len(trail) >= 2 {
		for i := 1; i < len(trail); i++ {
			x0 := int((float64(trail[i-1].X) + 0.5) * ec.zoom)
			y0 := int((float64(trail[i-1].Y) + 0.5) * ec.zoom)
			x1 := int((float64(trail[i].X) + 0.5) * ec.zoom)
			y1 := int((float64(trail[i].Y) + 0.5) * ec.zoom)
			drawLine(output, x0, y0, x1, y1, colorutil.SelectionBorder)
		}
	}
}

// drawMaskShade blends a color over every canvas pixel whose image pixel is
// inside (or, when invert is set, outside) the mask.
func (ec *EditorCanvas) drawMaskShade(output *image.RGBA, mask *raster.Mask, imgW, imgH int, c color.RGBA, invert bool) {
	bounds := output.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		srcY := int(float64(y) / ec.zoom)
		if srcY >= imgH {
			break
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			srcX := int(float64(x) / ec.zoom)
			if srcX >= imgW {
				break
			}
			if mask.Selected(srcX, srcY) != invert {
				blendPixel(output, x, y, c)
			}
		}
	}
}

// drawGrid draws the sprite grid at the configured spacing.
func (ec *EditorCanvas) drawGrid(output *image.RGBA, imgW, imgH int) {
	maxX := int(float64(imgW) * ec.zoom)
	maxY := int(float64(imgH) * ec.zoom)

	for ix := 0; ix <= imgW; ix += ec.gridSize {
		cx := int(float64(ix) * ec.zoom)
		for cy := 0; cy < maxY; cy++ {
			blendPixel(output, cx, cy, gridColor)
		}
	}
	for iy := 0; iy <= imgH; iy += ec.gridSize {
		cy := int(float64(iy) * ec.zoom)
		for cx := 0; cx < maxX; cx++ {
			blendPixel(output, cx, cy, gridColor)
		}
	}
}

// drawBrushOutline draws a circle matching the brush footprint at the cursor.
func (ec *EditorCanvas) drawBrushOutline(output *image.RGBA) {
	size, _, _, _ := ec.session.Brush()
	radius := (float64(size/2) + 0.5) * ec.zoom
	cx := (float64(ec.cursorX) + 0.5) * ec.zoom
	cy := (float64(ec.cursorY) + 0.5) * ec.zoom

	steps := int(radius * 8)
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		angle := float64(i) / float64(steps) * 2 * math.Pi
		px := int(cx + radius*math.Cos(angle))
		py := int(cy + radius*math.Sin(angle))
		blendPixel(output, px, py, colorutil.White)
	}
}

// drawLine draws a line between two canvas points using Bresenham stepping.
func drawLine(output *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		blendPixel(output, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
