package raster

// Mask is a single-channel binary raster marking selected pixels.
// A value of 255 means selected, 0 means unselected; no other values
// are produced by the selection engine.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a mask with every pixel unselected.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewMaskFilled creates a mask with every pixel set to v.
func NewMaskFilled(width, height int, v uint8) *Mask {
	m := NewMask(width, height)
	for i := range m.data {
		m.data[i] = v
	}
	return m
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// Data returns the raw mask values, row-major.
func (m *Mask) Data() []uint8 { return m.data }

// In reports whether (x, y) is inside the mask.
func (m *Mask) In(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At returns the value at (x, y). Out-of-bounds reads return 0.
func (m *Mask) At(x, y int) uint8 {
	if !m.In(x, y) {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set writes the value at (x, y). Out-of-bounds writes are ignored.
func (m *Mask) Set(x, y int, v uint8) {
	if !m.In(x, y) {
		return
	}
	m.data[y*m.width+x] = v
}

// Selected reports whether the pixel at (x, y) is selected.
func (m *Mask) Selected(x, y int) bool {
	return m.At(x, y) > 0
}

// Clone returns a deep copy.
func (m *Mask) Clone() *Mask {
	out := &Mask{
		width:  m.width,
		height: m.height,
		data:   make([]uint8, len(m.data)),
	}
	copy(out.data, m.data)
	return out
}

// Count returns the number of selected pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.data {
		if v > 0 {
			n++
		}
	}
	return n
}
