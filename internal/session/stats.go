package session

import (
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the encoded offsets inside the active selection, or
// across the whole map when no selection is active. Transparent pixels
// carry no displacement and are excluded.
type Stats struct {
	Pixels int     // opaque pixels considered
	MeanDX float64 // mean X offset in pixels
	MeanDY float64 // mean Y offset in pixels
	StdDX  float64 // standard deviation of the X offsets
	StdDY  float64 // standard deviation of the Y offsets
}

// SelectionStats computes offset statistics for the info panel. The
// second return value is false when no displacement map is loaded.
func (s *Session) SelectionStats() (Stats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.displacement == nil {
		return Stats{}, false
	}

	var dxs, dys []float64
	w := s.displacement.Width()
	h := s.displacement.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if s.selectionActive && s.selectionMask.At(x, y) == 0 {
				continue
			}
			c := s.displacement.At(x, y)
			if c.A == 0 {
				continue
			}
			dxs = append(dxs, float64(int(c.R)-128))
			dys = append(dys, float64(int(c.G)-128))
		}
	}

	st := Stats{Pixels: len(dxs)}
	if len(dxs) > 0 {
		st.MeanDX = stat.Mean(dxs, nil)
		st.MeanDY = stat.Mean(dys, nil)
	}
	if len(dxs) > 1 {
		st.StdDX = stat.StdDev(dxs, nil)
		st.StdDY = stat.StdDev(dys, nil)
	}
	return st, true
}
