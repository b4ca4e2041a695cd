package life

import (
	"fmt"
	"time"

	"lifefb/internal/core"
)

// Life implements Conway's Game of Life on a bounded grid. Cells beyond the
// edges count as dead; there is no wraparound.
type Life struct {
	w, h int
	cur  *core.BoolGrid
	nxt  *core.BoolGrid

	generation uint64
	paused     bool
	pace       *core.Pacer
}

// New returns an all-dead Life of the given dimensions that advances at most
// once per interval.
func New(w, h int, interval time.Duration) *Life {
	cur := core.NewBoolGrid(w, h)
	return &Life{
		w:    cur.W,
		h:    cur.H,
		cur:  cur,
		nxt:  core.NewBoolGrid(cur.W, cur.H),
		pace: core.NewPacer(interval),
	}
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cell reports whether (x, y) is alive. Out-of-range coordinates read as dead.
func (l *Life) Cell(x, y int) bool { return l.cur.Get(x, y) }

// SetCell writes a cell of the current generation. Out-of-range writes are
// ignored.
func (l *Life) SetCell(x, y int, alive bool) { l.cur.Set(x, y, alive) }

// Cells exposes the current generation in row-major order.
func (l *Life) Cells() []bool { return l.cur.Cells() }

// Generation returns the number of completed steps since start or the last
// Clear.
func (l *Life) Generation() uint64 { return l.generation }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.cur.Count() }

// Paused reports whether ticking is suspended.
func (l *Life) Paused() bool { return l.paused }

// TogglePause flips the paused flag.
func (l *Life) TogglePause() { l.paused = !l.paused }

// Interval returns the minimum wall-clock time between generations.
func (l *Life) Interval() time.Duration { return l.pace.Interval() }

// IncreaseInterval slows the simulation down by step.
func (l *Life) IncreaseInterval(step time.Duration) {
	l.pace.SetInterval(l.pace.Interval() + step)
}

// DecreaseInterval speeds the simulation up by step without going below
// floor. An interval already at or below floor is left alone. A non-positive
// floor is raised to one millisecond.
func (l *Life) DecreaseInterval(step, floor time.Duration) {
	if floor <= 0 {
		floor = time.Millisecond
	}
	cur := l.pace.Interval()
	if cur <= floor {
		return
	}
	l.pace.SetInterval(max(cur-step, floor))
}

// Clear kills every cell and resets the generation counter. Pause state and
// interval are kept.
func (l *Life) Clear() {
	l.cur.Clear()
	l.generation = 0
}

// Resize reallocates both generations at the new dimensions, keeping the
// cells of the overlapping rectangle. Generation and pause state are kept.
func (l *Life) Resize(w, h int) {
	cur := core.NewBoolGrid(w, h)
	cur.CopyOverlap(l.cur)
	l.cur = cur
	l.nxt = core.NewBoolGrid(cur.W, cur.H)
	l.w, l.h = cur.W, cur.H
}

// Tick advances one generation when not paused and a full interval has
// elapsed since the previous generation. It reports whether it advanced.
func (l *Life) Tick() bool {
	if l.paused || !l.pace.Due() {
		return false
	}
	l.Step()
	l.pace.Mark()
	return true
}

// Step advances the simulation by one generation unconditionally.
func (l *Life) Step() {
	w, h := l.w, l.h
	cur := l.cur.Cells()
	nxt := l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = nextState(cur[idx], l.neighbors(x, y))
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

// Status formats the host title line.
func (l *Life) Status(title string) string {
	paused := ""
	if l.paused {
		paused = "| PAUSED"
	}
	return fmt.Sprintf("%s | Gen: %d | Speed: %dms %s", title, l.generation, l.Interval().Milliseconds(), paused)
}

func (l *Life) neighbors(x, y int) int {
	w, h := l.w, l.h
	cur := l.cur.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if (dx == 0 && dy == 0) || nx < 0 || nx >= w {
				continue
			}
			if cur[ny*w+nx] {
				n++
			}
		}
	}
	return n
}

func nextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
