package render

import (
	"image/color"

	"lifefb/internal/core"
)

// minGridCell is the smallest cell size, in pixels, that still gets gridlines.
const minGridCell = 4

var (
	// AliveColor paints live cells.
	AliveColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// DeadColor paints dead cells and the background.
	DeadColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	// GridColor paints gridlines.
	GridColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

// RenderBasic maps every pixel of buf to its owning cell using a stride of
// gridWidth*cellSize and paints it alive or dead. It has no state and may be
// called every frame.
func RenderBasic(buf *Buffer, src core.CellSource, cellSize int) {
	if cellSize < 1 {
		cellSize = 1
	}
	size := src.Size()
	stride := size.W * cellSize
	if stride == 0 {
		buf.Fill(DeadColor)
		return
	}
	n := buf.Len()
	for i := 0; i < n; i++ {
		x := (i % stride) / cellSize
		y := (i / stride) / cellSize
		if x < size.W && y < size.H && src.Cell(x, y) {
			buf.Set(i, AliveColor)
			continue
		}
		buf.Set(i, DeadColor)
	}
}

// Config controls how the Renderer paints cells.
type Config struct {
	CellSize int
	ShowGrid bool

	Alive color.RGBA
	Dead  color.RGBA
	Grid  color.RGBA
}

// DefaultConfig returns the standard palette with gridlines enabled.
func DefaultConfig(cellSize int) Config {
	return Config{
		CellSize: cellSize,
		ShowGrid: true,
		Alive:    AliveColor,
		Dead:     DeadColor,
		Grid:     GridColor,
	}
}

// Renderer paints a grid into a Buffer as filled squares with optional
// gridlines.
type Renderer struct {
	cfg Config
}

// New returns a Renderer. Cell sizes below one pixel are raised to one.
func New(cfg Config) *Renderer {
	if cfg.CellSize < 1 {
		cfg.CellSize = 1
	}
	return &Renderer{cfg: cfg}
}

// CellSize returns the edge length of a cell in pixels.
func (r *Renderer) CellSize() int { return r.cfg.CellSize }

// ShowGrid reports whether gridlines are enabled.
func (r *Renderer) ShowGrid() bool { return r.cfg.ShowGrid }

// ToggleGrid flips gridline drawing.
func (r *Renderer) ToggleGrid() { r.cfg.ShowGrid = !r.cfg.ShowGrid }

// Extent returns the pixel dimensions needed to draw a grid of the given size.
func (r *Renderer) Extent(size core.Size) (int, int) {
	return size.W * r.cfg.CellSize, size.H * r.cfg.CellSize
}

// GridSize returns how many whole cells fit in a surface of w*h pixels.
func (r *Renderer) GridSize(w, h int) core.Size {
	return core.Size{W: w / r.cfg.CellSize, H: h / r.cfg.CellSize}
}

// Draw overwrites buf with the current state of src. The buffer is expected
// to have the grid's Extent; pixels beyond it are skipped.
func (r *Renderer) Draw(buf *Buffer, src core.CellSource) {
	buf.Fill(r.cfg.Dead)
	size := src.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			r.drawCell(buf, size, x, y, src.Cell(x, y))
		}
	}
	if r.cfg.ShowGrid && r.cfg.CellSize > minGridCell {
		r.drawGridLines(buf, size)
	}
}

func (r *Renderer) drawCell(buf *Buffer, size core.Size, x, y int, alive bool) {
	if x >= size.W || y >= size.H {
		return
	}
	col := r.cfg.Dead
	if alive {
		col = r.cfg.Alive
	}
	cs := r.cfg.CellSize
	fill := cs
	if r.cfg.ShowGrid && cs > 1 {
		fill = cs - 1
	}
	pw, ph := r.Extent(size)
	x0, y0 := x*cs, y*cs
	for py := y0; py < y0+fill && py < ph; py++ {
		for px := x0; px < x0+fill && px < pw; px++ {
			idx := py*pw + px
			if idx < buf.Len() {
				buf.Set(idx, col)
			}
		}
	}
}

func (r *Renderer) drawGridLines(buf *Buffer, size core.Size) {
	cs := r.cfg.CellSize
	pw, ph := r.Extent(size)
	for x := 0; x <= size.W; x++ {
		px := x * cs
		if px >= pw {
			continue
		}
		for py := 0; py < ph; py++ {
			if idx := py*pw + px; idx < buf.Len() {
				buf.Set(idx, r.cfg.Grid)
			}
		}
	}
	for y := 0; y <= size.H; y++ {
		py := y * cs
		if py >= ph {
			continue
		}
		for px := 0; px < pw; px++ {
			if idx := py*pw + px; idx < buf.Len() {
				buf.Set(idx, r.cfg.Grid)
			}
		}
	}
}
