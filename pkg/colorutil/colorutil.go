// Package colorutil provides shared color values for the displacement editor.
package colorutil

import (
	"image/color"
)

// Displacement pixel encoding: R carries the X offset and G the Y offset,
// both biased by 128, so (128,128) means "no movement". B is unused.
const (
	NeutralR = 128
	NeutralG = 128
	NeutralB = 0
)

// Common colors used by the engine and the canvas overlays.
var (
	// NeutralOpaque is a displacement pixel with zero offset.
	NeutralOpaque = color.RGBA{R: NeutralR, G: NeutralG, B: NeutralB, A: 255}

	// NeutralTransparent marks "no displacement"; transparent pixels must
	// carry the neutral color so re-enabling alpha never revives stale offsets.
	NeutralTransparent = color.RGBA{R: NeutralR, G: NeutralG, B: NeutralB, A: 0}

	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan  = color.RGBA{R: 0, G: 255, B: 255, A: 255}

	// SelectionDim shades the area outside the active selection.
	SelectionDim = color.RGBA{R: 30, G: 50, B: 100, A: 128}

	// SelectionProvisional shades a rectangle selection while it is dragged.
	SelectionProvisional = color.RGBA{R: 100, G: 150, B: 255, A: 80}

	// SelectionBorder outlines the active selection.
	SelectionBorder = color.RGBA{R: 255, G: 255, B: 255, A: 200}
)

// IsNeutralTransparent reports whether an RGBA quad is the exact
// neutral-transparent encoding.
func IsNeutralTransparent(r, g, b, a uint8) bool {
	return r == NeutralR && g == NeutralG && b == NeutralB && a == 0
}
