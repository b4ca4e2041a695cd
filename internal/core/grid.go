package core

// BoolGrid stores a 2D grid of alive/dead cells in row-major order.
type BoolGrid struct {
	W, H int
	data []bool
}

// NewBoolGrid allocates an all-dead grid with the given dimensions. Negative
// dimensions are treated as zero.
func NewBoolGrid(w, h int) *BoolGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &BoolGrid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.data }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *BoolGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Get returns the cell at (x, y), or false outside the grid.
func (g *BoolGrid) Get(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.data[y*g.W+x]
}

// Set writes the cell at (x, y). Out-of-range writes are ignored.
func (g *BoolGrid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.W+x] = alive
}

// Clear marks every cell dead.
func (g *BoolGrid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// CopyOverlap copies the rectangle shared by src and g into g at the same
// coordinates. Cells of g outside that rectangle are left untouched.
func (g *BoolGrid) CopyOverlap(src *BoolGrid) {
	w := min(g.W, src.W)
	h := min(g.H, src.H)
	for y := 0; y < h; y++ {
		copy(g.data[y*g.W:y*g.W+w], src.data[y*src.W:y*src.W+w])
	}
}

// Count returns the number of live cells.
func (g *BoolGrid) Count() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}
