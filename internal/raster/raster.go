// Package raster provides the RGBA pixel buffers the editor works on:
// displacement maps, reference/background sprites, and selection masks.
package raster

import (
	"bytes"
	"image"
	"image/color"

	"github.com/slycoolgamer/SS14-Displacer-Studio/pkg/colorutil"
)

// Raster is a width x height grid of RGBA8 pixels stored contiguously,
// 4 bytes per pixel. Ownership is exclusive: rasters are never shared
// mutable across components, copies are explicit via Clone.
type Raster struct {
	width  int
	height int
	pix    []uint8
}

// New creates a raster filled with transparent black.
func New(width, height int) *Raster {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// NewFilled creates a raster with every pixel set to c.
func NewFilled(width, height int, c color.RGBA) *Raster {
	r := New(width, height)
	r.Fill(c)
	return r
}

// NewNeutral creates a displacement raster with every pixel set to the
// neutral-opaque encoding (zero offset, fully opaque).
func NewNeutral(width, height int) *Raster {
	return NewFilled(width, height, colorutil.NeutralOpaque)
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.height }

// Pix returns the raw pixel data (RGBA order, row-major).
func (r *Raster) Pix() []uint8 { return r.pix }

// In reports whether (x, y) is inside the raster.
func (r *Raster) In(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// At returns the pixel at (x, y). Out-of-bounds reads return zero.
func (r *Raster) At(x, y int) color.RGBA {
	if !r.In(x, y) {
		return color.RGBA{}
	}
	i := (y*r.width + x) * 4
	return color.RGBA{R: r.pix[i], G: r.pix[i+1], B: r.pix[i+2], A: r.pix[i+3]}
}

// Set writes the pixel at (x, y). Out-of-bounds writes are ignored.
func (r *Raster) Set(x, y int, c color.RGBA) {
	if !r.In(x, y) {
		return
	}
	i := (y*r.width + x) * 4
	r.pix[i] = c.R
	r.pix[i+1] = c.G
	r.pix[i+2] = c.B
	r.pix[i+3] = c.A
}

// Fill sets every pixel to c.
func (r *Raster) Fill(c color.RGBA) {
	for i := 0; i < len(r.pix); i += 4 {
		r.pix[i] = c.R
		r.pix[i+1] = c.G
		r.pix[i+2] = c.B
		r.pix[i+3] = c.A
	}
}

// Clone returns a deep copy.
func (r *Raster) Clone() *Raster {
	out := &Raster{
		width:  r.width,
		height: r.height,
		pix:    make([]uint8, len(r.pix)),
	}
	copy(out.pix, r.pix)
	return out
}

// Equal reports whether two rasters have identical dimensions and pixels.
func (r *Raster) Equal(other *Raster) bool {
	if other == nil {
		return false
	}
	return r.width == other.width && r.height == other.height &&
		bytes.Equal(r.pix, other.pix)
}

// SubRegion copies the pixels of rect (clipped to the raster) into a new
// raster. Pixels of rect that fall outside stay transparent black.
func (r *Raster) SubRegion(x, y, w, h int) *Raster {
	out := New(w, h)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			sx, sy := x+dx, y+dy
			if r.In(sx, sy) {
				out.Set(dx, dy, r.At(sx, sy))
			}
		}
	}
	return out
}

// WriteRegion copies src into the raster with its top-left corner at
// (x, y), clipping to bounds.
func (r *Raster) WriteRegion(x, y int, src *Raster) {
	for dy := 0; dy < src.height; dy++ {
		for dx := 0; dx < src.width; dx++ {
			r.Set(x+dx, y+dy, src.At(dx, dy))
		}
	}
}

// ToImage converts the raster to a stdlib image sharing no memory.
// Channels are straight (non-premultiplied) alpha, so NRGBA is the only
// stdlib format that round-trips the neutral color carried under zero
// alpha.
func (r *Raster) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	copy(img.Pix, r.pix)
	return img
}

// FromImage converts any stdlib image to a Raster, normalizing to
// straight-alpha RGBA8. Sources without an alpha channel come out fully
// opaque.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	out := New(w, h)
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == w*4 && bounds.Min == (image.Point{}) {
		copy(out.pix, nrgba.Pix)
		return out
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			out.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return out
}
