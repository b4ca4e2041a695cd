package app

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"lifefb/internal/patterns"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Title string

	Width    int
	Height   int
	CellSize int
	Grid     bool

	Interval    time.Duration
	Step        time.Duration
	MinInterval time.Duration

	Scene string
	Seed  int64
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Title:       "Conway's Game of Life",
		Width:       100,
		Height:      100,
		CellSize:    8,
		Grid:        true,
		Interval:    100 * time.Millisecond,
		Step:        10 * time.Millisecond,
		MinInterval: 10 * time.Millisecond,
		Scene:       "classic",
		TPS:         60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.BindTerminal(fs)
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.BoolVar(&c.Grid, "grid", c.Grid, "draw gridlines")
}

// BindTerminal attaches every setting except the pixel geometry, which a
// character-cell host fixes at one unbordered pixel per cell.
func (c *Config) BindTerminal(fs *flag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title prefix")
	fs.IntVar(&c.Width, "w", c.Width, "initial grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "initial grid height in cells")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "initial time between generations")
	fs.DurationVar(&c.Step, "step", c.Step, "interval change per speed key repeat")
	fs.DurationVar(&c.MinInterval, "min-interval", c.MinInterval, "shortest allowed interval")
	fs.StringVar(&c.Scene, "scene", c.Scene, fmt.Sprintf("startup scene %v", patterns.Names()))
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patches (0 picks one from the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host frames per second")
}

// Validate reports the first setting that cannot drive a simulation.
func (c *Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.CellSize < 1:
		return fmt.Errorf("cell size must be at least 1 pixel, got %d", c.CellSize)
	case c.Interval <= 0:
		return errors.New("interval must be positive")
	case c.MinInterval <= 0:
		return errors.New("min-interval must be positive")
	case c.Interval < c.MinInterval:
		return fmt.Errorf("interval %s is below min-interval %s", c.Interval, c.MinInterval)
	case c.Step < 0:
		return errors.New("step must not be negative")
	case c.TPS < 1:
		return fmt.Errorf("tps must be at least 1, got %d", c.TPS)
	}
	if _, err := patterns.Lookup(c.Scene); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	return nil
}
