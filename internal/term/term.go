// Package term hosts the simulation in a terminal. Each terminal cell shows
// two vertically stacked pixels using an upper half block, and the last row
// carries the status line.
package term

import (
	"context"
	"image/color"
	"time"

	"lifefb/internal/app"
	"lifefb/internal/render"
	"lifefb/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// Host runs the control loop against a tcell screen.
type Host struct {
	screen tcell.Screen
	ctrl   *app.Controller
	frame  time.Duration

	// Logf, when set, receives lifecycle notices such as grid resizes.
	Logf func(format string, args ...any)
}

// New returns a Host that redraws tps times per second.
func New(screen tcell.Screen, ctrl *app.Controller, tps int) *Host {
	if tps <= 0 {
		tps = 60
	}
	return &Host{screen: screen, ctrl: ctrl, frame: time.Second / time.Duration(tps)}
}

// Run polls input and redraws until a quit key arrives, the screen shuts
// down or ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(h.frame)
	defer ticker.Stop()

	var in app.Input
	h.frameOnce(in)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				in = accumulate(in, ev)
			case *tcell.EventResize:
				h.screen.Sync()
			}
		case <-ticker.C:
			h.frameOnce(in)
			in = app.Input{}
		}
	}
}

// Surface returns the drawable area in pixels.
func (h *Host) Surface() (int, int) {
	cols, rows := h.screen.Size()
	rows--
	if rows < 0 {
		rows = 0
	}
	return cols, rows * 2
}

func (h *Host) frameOnce(in app.Input) {
	w, hgt := h.Surface()
	if h.ctrl.Fit(w, hgt) && h.Logf != nil {
		size := h.ctrl.Sim().Size()
		h.Logf("grid resized to %dx%d", size.W, size.H)
	}
	h.ctrl.Update(in, w, hgt)
	h.draw(h.ctrl.Render())
}

func (h *Host) draw(buf *render.Buffer) {
	cols, rows := h.screen.Size()
	for cy := 0; cy < rows-1; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := pixel(buf, cx, 2*cy)
			bottom := pixel(buf, cx, 2*cy+1)
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			h.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	if rows > 0 {
		status := h.ctrl.Status() + " | " + ui.Summary(h.ctrl.Sim().Population()) + " | q quit"
		drawText(h.screen, rows-1, cols, status)
	}
	h.screen.Show()
}

func drawText(s tcell.Screen, row, cols int, text string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	x := 0
	for _, r := range text {
		if x >= cols {
			return
		}
		s.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		s.SetContent(x, row, ' ', nil, style)
	}
}

func pixel(buf *render.Buffer, x, y int) color.RGBA {
	if x >= buf.W || y >= buf.H {
		return render.DeadColor
	}
	return buf.At(y*buf.W + x)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// accumulate folds a key event into the input for the next frame. Terminals
// deliver auto-repeat as repeated events, which keeps the speed keys held.
func accumulate(in app.Input, ev *tcell.EventKey) app.Input {
	switch ev.Key() {
	case tcell.KeyUp:
		in.Slower = true
	case tcell.KeyDown:
		in.Faster = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			in.TogglePause = !in.TogglePause
		case 'r', 'R':
			in.Reset = true
		case 'n', 'N':
			in.StepOnce = true
		}
	}
	return in
}
