package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"lifefb/internal/app"

	"github.com/gdamore/tcell/v2"
)

func newTestHost(t *testing.T, cols, rows int) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)

	cfg := *app.NewConfig()
	cfg.Title = "Life"
	cfg.Width = cols
	cfg.Height = (rows - 1) * 2
	cfg.CellSize = 1
	cfg.Grid = false
	cfg.Scene = "blank"
	cfg.Interval = time.Hour
	ctrl, err := app.NewController(cfg)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return New(screen, ctrl, 60), screen
}

func TestSurface(t *testing.T) {
	h, _ := newTestHost(t, 12, 6)
	if w, hgt := h.Surface(); w != 12 || hgt != 10 {
		t.Fatalf("expected 12x10 surface, got %dx%d", w, hgt)
	}
}

func TestDrawHalfBlocks(t *testing.T) {
	h, screen := newTestHost(t, 8, 5)
	h.ctrl.Sim().SetCell(3, 2, true)
	h.ctrl.Sim().SetCell(5, 5, true)

	h.frameOnce(app.Input{})

	white := tcell.NewRGBColor(255, 255, 255)
	black := tcell.NewRGBColor(0, 0, 0)
	check := func(x, y int, fg, bg tcell.Color) {
		t.Helper()
		mainc, _, style, _ := screen.GetContent(x, y)
		if mainc != halfBlock {
			t.Fatalf("cell (%d,%d) rune %q, expected half block", x, y, mainc)
		}
		gotFg, gotBg, _ := style.Decompose()
		if gotFg != fg || gotBg != bg {
			t.Fatalf("cell (%d,%d) fg=%v bg=%v, expected fg=%v bg=%v", x, y, gotFg, gotBg, fg, bg)
		}
	}
	check(3, 1, white, black)
	check(5, 2, black, white)
	check(0, 0, black, black)
}

func TestStatusRow(t *testing.T) {
	h, screen := newTestHost(t, 60, 4)
	h.frameOnce(app.Input{TogglePause: true})

	var sb strings.Builder
	for x := 0; x < 60; x++ {
		mainc, _, _, _ := screen.GetContent(x, 3)
		sb.WriteRune(mainc)
	}
	if got := sb.String(); !strings.HasPrefix(got, "Life | Gen: 0 | Speed: 3600000ms | PAUSED | Alive: 0") {
		t.Fatalf("unexpected status row %q", got)
	}
}

func TestFrameFitsGridToTerminal(t *testing.T) {
	h, screen := newTestHost(t, 8, 5)
	screen.SetSize(20, 11)
	h.frameOnce(app.Input{})
	size := h.ctrl.Sim().Size()
	if size.W != 20 || size.H != 20 {
		t.Fatalf("expected 20x20 grid after terminal resize, got %dx%d", size.W, size.H)
	}
}

func TestAccumulate(t *testing.T) {
	var in app.Input
	in = accumulate(in, tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	in = accumulate(in, tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	in = accumulate(in, tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	want := app.Input{Slower: true, Reset: true, TogglePause: true}
	if in != want {
		t.Fatalf("got %+v, expected %+v", in, want)
	}
	// Two presses between frames cancel out.
	in = accumulate(in, tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if in.TogglePause {
		t.Fatal("double pause press should cancel")
	}
}

func TestAccumulateUppercase(t *testing.T) {
	var in app.Input
	in = accumulate(in, tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModShift))
	in = accumulate(in, tcell.NewEventKey(tcell.KeyRune, 'N', tcell.ModShift))
	if want := (app.Input{Reset: true, StepOnce: true}); in != want {
		t.Fatalf("got %+v, expected %+v", in, want)
	}
}

func TestIsQuit(t *testing.T) {
	if !isQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if !isQuit(tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModShift)) {
		t.Fatal("Q should quit")
	}
	if !isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
	if isQuit(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)) {
		t.Fatal("r must not quit")
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	h, screen := newTestHost(t, 10, 6)
	done := make(chan error, 1)
	go func() { done <- h.Run(context.Background()) }()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	h, _ := newTestHost(t, 10, 6)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
