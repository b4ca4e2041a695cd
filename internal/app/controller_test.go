package app

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"lifefb/internal/core"
	"lifefb/internal/patterns"
	"lifefb/internal/render"
)

func testConfig() Config {
	cfg := *NewConfig()
	cfg.Width = 10
	cfg.Height = 8
	cfg.CellSize = 4
	cfg.Scene = "blank"
	cfg.Seed = 1
	return cfg
}

func newTestController(t *testing.T, cfg Config) *Controller {
	t.Helper()
	ctrl, err := NewController(cfg)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return ctrl
}

func TestNewControllerAllocatesExtent(t *testing.T) {
	ctrl := newTestController(t, testConfig())
	buf := ctrl.Buffer()
	if buf.W != 40 || buf.H != 32 {
		t.Fatalf("expected 40x32 buffer, got %dx%d", buf.W, buf.H)
	}
}

func TestNewControllerRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Scene = "missing"
	if _, err := NewController(cfg); !errors.Is(err, patterns.ErrUnknownScene) {
		t.Fatalf("expected unknown scene error, got %v", err)
	}
}

func TestInputApplication(t *testing.T) {
	ctrl := newTestController(t, testConfig())
	sim := ctrl.Sim()

	ctrl.Update(Input{TogglePause: true}, 0, 0)
	if !sim.Paused() {
		t.Fatal("pause toggle not applied")
	}

	ctrl.Update(Input{Slower: true}, 0, 0)
	if sim.Interval() != 110*time.Millisecond {
		t.Fatalf("expected 110ms after slowing down, got %s", sim.Interval())
	}
	for i := 0; i < 30; i++ {
		ctrl.Update(Input{Faster: true}, 0, 0)
	}
	if sim.Interval() != 10*time.Millisecond {
		t.Fatalf("expected interval floored at 10ms, got %s", sim.Interval())
	}

	sim.SetCell(1, 1, true)
	sim.Step()
	ctrl.Update(Input{Reset: true}, 0, 0)
	if sim.Population() != 0 || sim.Generation() != 0 {
		t.Fatal("reset did not clear the board")
	}
	if !sim.Paused() {
		t.Fatal("reset must not unpause")
	}

	ctrl.Update(Input{ToggleGrid: true}, 0, 0)
	if ctrl.Renderer().ShowGrid() {
		t.Fatal("grid toggle not applied")
	}
}

func TestStepOnceOnlyWhilePaused(t *testing.T) {
	cfg := testConfig()
	cfg.Interval = time.Hour
	ctrl := newTestController(t, cfg)
	sim := ctrl.Sim()

	if ctrl.Update(Input{StepOnce: true}, 0, 0) {
		t.Fatal("step-once must not bypass the interval while running")
	}
	ctrl.Update(Input{TogglePause: true}, 0, 0)
	if !ctrl.Update(Input{StepOnce: true}, 0, 0) {
		t.Fatal("step-once while paused should advance")
	}
	if sim.Generation() != 1 {
		t.Fatalf("expected generation 1, got %d", sim.Generation())
	}
}

func TestFitResizesGridAndBuffer(t *testing.T) {
	ctrl := newTestController(t, testConfig())
	sim := ctrl.Sim()
	sim.SetCell(9, 7, true)
	sim.SetCell(2, 3, true)

	if !ctrl.Fit(27, 50) {
		t.Fatal("expected a resize")
	}
	if got := sim.Size(); got != (core.Size{W: 6, H: 12}) {
		t.Fatalf("expected 6x12 grid, got %+v", got)
	}
	if buf := ctrl.Buffer(); buf.W != 24 || buf.H != 48 {
		t.Fatalf("expected 24x48 buffer, got %dx%d", buf.W, buf.H)
	}
	if !sim.Cell(2, 3) {
		t.Fatal("overlapping cell lost on resize")
	}
	if sim.Population() != 1 {
		t.Fatalf("cell outside the new bounds survived, population %d", sim.Population())
	}

	// Same grid size from a slightly different surface is a no-op.
	if ctrl.Fit(26, 51) {
		t.Fatal("surface change within one cell should not resize")
	}
	// The exact extent is also a no-op.
	if ctrl.Fit(24, 48) {
		t.Fatal("matching extent should not resize")
	}
}

func TestFitIgnoresDegenerateSurfaces(t *testing.T) {
	ctrl := newTestController(t, testConfig())
	for _, s := range [][2]int{{0, 0}, {-5, 40}, {3, 100}, {100, 2}} {
		if ctrl.Fit(s[0], s[1]) {
			t.Fatalf("surface %dx%d should not resize", s[0], s[1])
		}
	}
	if got := ctrl.Sim().Size(); got != (core.Size{W: 10, H: 8}) {
		t.Fatalf("grid changed to %+v", got)
	}
}

func TestRenderMatchesGrid(t *testing.T) {
	cfg := testConfig()
	cfg.Grid = false
	ctrl := newTestController(t, cfg)
	ctrl.Sim().SetCell(3, 2, true)

	buf := ctrl.Render()

	for py := 0; py < buf.H; py++ {
		for px := 0; px < buf.W; px++ {
			want := render.DeadColor
			if px/4 == 3 && py/4 == 2 {
				want = render.AliveColor
			}
			if got := buf.At(py*buf.W + px); got != want {
				t.Fatalf("pixel (%d,%d) = %v, expected %v", px, py, got, want)
			}
		}
	}
}

func TestStatus(t *testing.T) {
	cfg := testConfig()
	cfg.Title = "Life"
	ctrl := newTestController(t, cfg)
	ctrl.Update(Input{TogglePause: true}, 0, 0)
	if got, want := ctrl.Status(), "Life | Gen: 0 | Speed: 100ms | PAUSED"; got != want {
		t.Fatalf("status %q, expected %q", got, want)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-w", "40", "-cell", "3", "-interval", "250ms", "-grid=false", "-scene", "soup", "-seed", "9"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 40 || cfg.CellSize != 3 || cfg.Interval != 250*time.Millisecond || cfg.Grid || cfg.Scene != "soup" || cfg.Seed != 9 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestConfigBindTerminal(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life-term", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.BindTerminal(fs)
	if err := fs.Parse([]string{"-cell", "3"}); err == nil {
		t.Fatal("terminal flags accepted -cell")
	}
	if fs.Lookup("grid") != nil {
		t.Fatal("terminal flags define -grid")
	}
	if err := fs.Parse([]string{"-w", "40", "-seed", "9"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 40 || cfg.Seed != 9 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":           func(c *Config) { c.Width = 0 },
		"zero cell":            func(c *Config) { c.CellSize = 0 },
		"zero interval":        func(c *Config) { c.Interval = 0 },
		"zero floor":           func(c *Config) { c.MinInterval = 0 },
		"interval below floor": func(c *Config) { c.Interval = 5 * time.Millisecond },
		"negative step":        func(c *Config) { c.Step = -time.Millisecond },
		"zero tps":             func(c *Config) { c.TPS = 0 },
		"unknown scene":        func(c *Config) { c.Scene = "nope" },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
