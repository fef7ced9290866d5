package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
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

// Mark sets the cell at (x, y) to 1. Out-of-range coordinates are ignored.
func (g *ByteGrid) Mark(x, y int) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	g.data[y*g.W+x] = 1
}

// At reports the value stored at (x, y). Out-of-range coordinates read as 0.
func (g *ByteGrid) At(x, y int) uint8 {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return 0
	}
	return g.data[y*g.W+x]
}

// Sum returns the total of all cell values. For an occupancy grid this is
// the number of occupied coordinates.
func (g *ByteGrid) Sum() int {
	total := 0
	for _, v := range g.data {
		total += int(v)
	}
	return total
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
