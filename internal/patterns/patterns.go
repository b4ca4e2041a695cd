// Package patterns seeds a grid at startup: named glyphs stamped at offsets
// and randomly scattered live cells.
package patterns

import (
	"image"

	"lifefb/internal/core"
)

// Live marks a live cell in a glyph row. Any other byte leaves the cell as is.
const Live = '#'

// Pattern is a named glyph, one string per row.
type Pattern struct {
	Name string
	Rows []string
}

// Size returns the bounding box of the glyph.
func (p Pattern) Size() core.Size {
	w := 0
	for _, row := range p.Rows {
		w = max(w, len(row))
	}
	return core.Size{W: w, H: len(p.Rows)}
}

// Stamp marks the glyph's live cells alive with its top-left corner at (x, y).
// Cells that fall outside dst are dropped by dst itself.
func Stamp(dst core.CellSink, x, y int, p Pattern) {
	for dy, row := range p.Rows {
		for dx := 0; dx < len(row); dx++ {
			if row[dx] == Live {
				dst.SetCell(x+dx, y+dy, true)
			}
		}
	}
}

// Scatter marks each cell of r alive with probability density. Cells that
// lose the draw are left untouched, so earlier stamps survive.
func Scatter(dst core.CellSink, r image.Rectangle, density float64, rng *core.RNG) {
	for x := r.Min.X; x < r.Max.X; x++ {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			if rng.Chance(density) {
				dst.SetCell(x, y, true)
			}
		}
	}
}

// ScatterDisc is Scatter restricted to cells within radius of (cx, cy).
func ScatterDisc(dst core.CellSink, cx, cy, radius int, density float64, rng *core.RNG) {
	r := image.Rect(cx-radius, cy-radius, cx+radius, cy+radius)
	for x := r.Min.X; x < r.Max.X; x++ {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius && rng.Chance(density) {
				dst.SetCell(x, y, true)
			}
		}
	}
}

// Built-in glyphs.
var (
	Pulsar = Pattern{Name: "pulsar", Rows: []string{
		"....##....",
		"...#..#...",
		"..#....#..",
		".#....#...",
		"#....#....",
		"##..##....",
		"....#....#",
		"....#....#",
		"....##..##",
		"....#....#",
	}}

	Block = Pattern{Name: "block", Rows: []string{
		".##.",
		"#..#",
		".#.#",
		"..#.",
	}}

	Glider = Pattern{Name: "glider", Rows: []string{
		" # ",
		"  #",
		"###",
	}}

	GosperGun = Pattern{Name: "gosper-gun", Rows: []string{
		"........................#...........",
		"......................#.#...........",
		"............##......##............##",
		"...........#...#....##............##",
		"##........#.....#...##..............",
		"##........#...#.##....#.#...........",
		"..........#.....#.......#...........",
		"...........#...#....................",
		"............##......................",
	}}

	Pentadecathlon = Pattern{Name: "pentadecathlon", Rows: []string{
		"##", "##", "##", "##", "##", "##", "##", "##", "##", "##",
	}}

	Beacon = Pattern{Name: "beacon", Rows: []string{
		"##..",
		"#...",
		"...#",
		"..##",
	}}

	Toad = Pattern{Name: "toad", Rows: []string{
		".###",
		"###.",
	}}

	LWSS = Pattern{Name: "lwss", Rows: []string{
		"#..#.",
		"....#",
		"#...#",
		".###.",
	}}

	Acorn = Pattern{Name: "acorn", Rows: []string{
		".#.....",
		"...#...",
		"##..###",
	}}

	Diehard = Pattern{Name: "diehard", Rows: []string{
		"......#.",
		"##......",
		".#...###",
	}}

	RPentomino = Pattern{Name: "r-pentomino", Rows: []string{
		".##",
		"##.",
		".#.",
	}}

	Blinker = Pattern{Name: "blinker", Rows: []string{
		"###",
	}}

	Boat = Pattern{Name: "boat", Rows: []string{
		"##.",
		"#.#",
		".#.",
	}}
)

// Catalog lists every built-in glyph.
var Catalog = []Pattern{
	Pulsar, Block, Glider, GosperGun, Pentadecathlon, Beacon, Toad,
	LWSS, Acorn, Diehard, RPentomino, Blinker, Boat,
}
