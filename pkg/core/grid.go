package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies on the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Positions off the grid read as 0.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.data[y*g.W+x]
}

// Set writes v at (x, y). Writes off the grid are ignored.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.W+x] = v
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// CopyFrom overwrites g with the contents of src. Both grids must share a shape.
func (g *ByteGrid) CopyFrom(src *ByteGrid) {
	copy(g.data, src.data)
}

// Grow returns a new zeroed grid enlarged by pad cells on every side with the
// current contents placed at offset (pad, pad). The receiver is left untouched
// and shares no memory with the result.
func (g *ByteGrid) Grow(pad int) *ByteGrid {
	if pad < 0 {
		pad = 0
	}
	out := NewByteGrid(g.W+2*pad, g.H+2*pad)
	for y := 0; y < g.H; y++ {
		src := g.data[y*g.W : (y+1)*g.W]
		dst := out.data[(y+pad)*out.W+pad:]
		copy(dst[:g.W], src)
	}
	return out
}
