//go:build ebiten

package app

import (
	"image/color"

	"lifefb/internal/render"
	"lifefb/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.Painter
	hud     *ui.HUD

	title    string
	surfaceW int
	surfaceH int
}

// New constructs a Game for the provided controller.
func New(ctrl *Controller) *Game {
	return &Game{
		ctrl:    ctrl,
		painter: render.NewPainter(),
		hud:     ui.NewHUD(),
	}
}

// Update polls the keyboard, advances the simulation and refreshes the
// window title.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	in := Input{
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Slower:      ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Faster:      ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Reset:       inpututil.IsKeyJustPressed(ebiten.KeyR),
		ToggleGrid:  inpututil.IsKeyJustPressed(ebiten.KeyG),
		StepOnce:    inpututil.IsKeyJustPressed(ebiten.KeyN),
	}
	g.ctrl.Update(in, g.surfaceW, g.surfaceH)

	if status := g.ctrl.Status(); status != g.title {
		ebiten.SetWindowTitle(status)
		g.title = status
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.ctrl.Render())
	sim := g.ctrl.Sim()
	g.hud.Draw(screen, ui.Lines(g.title, sim.Population(), g.ctrl.Renderer().ShowGrid()))
}

// Layout records the window size so Update can fit the grid to it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surfaceW, g.surfaceH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
