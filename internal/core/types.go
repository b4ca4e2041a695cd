package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// CellSource is the read-only view of a grid that renderers consume.
type CellSource interface {
	Size() Size
	Cell(x, y int) bool
}

// CellSink accepts cell writes. Pattern seeding stamps through it.
type CellSink interface {
	Size() Size
	SetCell(x, y int, alive bool)
}
