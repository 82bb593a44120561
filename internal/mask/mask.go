// Package mask provides per-pixel confidence buffers shared by the
// segmentation and skin-classification stages.
package mask

// Mask is a single-channel byte buffer with the same dimensions as the
// source image. Values range 0-255; what a value means (person confidence,
// skin membership) depends on the producing stage. A Mask is scoped to one
// detection call unless explicitly cloned.
type Mask struct {
	Width  int
	Height int
	Data   []uint8
}

// New creates a zeroed mask of the given dimensions.
func New(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Data:   make([]uint8, width*height),
	}
}

// NewFilled creates a mask with every pixel set to value.
func NewFilled(width, height int, value uint8) *Mask {
	m := New(width, height)
	for i := range m.Data {
		m.Data[i] = value
	}
	return m
}

// At returns the value at (x, y). Out-of-range coordinates return 0.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.Data[y*m.Width+x]
}

// Set writes value at (x, y). Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.Data[y*m.Width+x] = value
}

// Clone returns an independent copy of the mask.
func (m *Mask) Clone() *Mask {
	out := &Mask{
		Width:  m.Width,
		Height: m.Height,
		Data:   make([]uint8, len(m.Data)),
	}
	copy(out.Data, m.Data)
	return out
}

// CountAbove returns the number of pixels strictly above threshold.
func (m *Mask) CountAbove(threshold uint8) int {
	count := 0
	for _, v := range m.Data {
		if v > threshold {
			count++
		}
	}
	return count
}
