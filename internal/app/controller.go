package app

import (
	"lifefb/internal/core"
	"lifefb/internal/patterns"
	"lifefb/internal/render"
	"lifefb/internal/sims/life"
)

// Input is one frame's worth of host commands. TogglePause, Reset, ToggleGrid
// and StepOnce are edge-triggered; Slower and Faster are held.
type Input struct {
	TogglePause bool
	Slower      bool
	Faster      bool
	Reset       bool
	ToggleGrid  bool
	StepOnce    bool
}

// Controller owns the simulation and its framebuffer for a single host loop.
type Controller struct {
	cfg      Config
	sim      *life.Life
	renderer *render.Renderer
	buf      *render.Buffer
}

// NewController builds the simulation described by cfg, seeds it with the
// configured scene and allocates a framebuffer for it.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sim := life.New(cfg.Width, cfg.Height, cfg.Interval)
	if err := patterns.Apply(sim, cfg.Scene, cfg.Seed); err != nil {
		return nil, err
	}
	rcfg := render.DefaultConfig(cfg.CellSize)
	rcfg.ShowGrid = cfg.Grid
	r := render.New(rcfg)
	return &Controller{
		cfg:      cfg,
		sim:      sim,
		renderer: r,
		buf:      render.NewBuffer(r.Extent(sim.Size())),
	}, nil
}

// Sim exposes the simulation.
func (c *Controller) Sim() *life.Life { return c.sim }

// Buffer exposes the framebuffer last written by Render.
func (c *Controller) Buffer() *render.Buffer { return c.buf }

// Renderer exposes the renderer settings.
func (c *Controller) Renderer() *render.Renderer { return c.renderer }

// Status returns the host title line.
func (c *Controller) Status() string { return c.sim.Status(c.cfg.Title) }

// Update runs the non-drawing half of a frame: it fits the grid to the
// surface, applies input and ticks the simulation. It reports whether a
// generation advanced.
func (c *Controller) Update(in Input, surfaceW, surfaceH int) bool {
	c.Fit(surfaceW, surfaceH)
	c.apply(in)
	if in.StepOnce && c.sim.Paused() {
		c.sim.Step()
		return true
	}
	return c.sim.Tick()
}

// Render redraws the whole framebuffer from the current generation.
func (c *Controller) Render() *render.Buffer {
	c.renderer.Draw(c.buf, c.sim)
	return c.buf
}

// Fit resizes the grid and framebuffer so that whole cells fill a surface of
// w*h pixels. Surfaces too small to hold a single cell are ignored. It reports
// whether the grid changed.
func (c *Controller) Fit(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if ew, eh := c.renderer.Extent(c.sim.Size()); ew == w && eh == h {
		return false
	}
	target := c.renderer.GridSize(w, h)
	if target.W == 0 || target.H == 0 || target == c.sim.Size() {
		return false
	}
	c.resize(target)
	return true
}

func (c *Controller) resize(size core.Size) {
	c.sim.Resize(size.W, size.H)
	c.buf.Resize(c.renderer.Extent(size))
}

func (c *Controller) apply(in Input) {
	if in.TogglePause {
		c.sim.TogglePause()
	}
	if in.Slower {
		c.sim.IncreaseInterval(c.cfg.Step)
	}
	if in.Faster {
		c.sim.DecreaseInterval(c.cfg.Step, c.cfg.MinInterval)
	}
	if in.Reset {
		c.sim.Clear()
	}
	if in.ToggleGrid {
		c.renderer.ToggleGrid()
	}
}
