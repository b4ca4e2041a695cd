//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a translucent text panel in the top-left corner.
type HUD struct {
	hidden bool
}

// NewHUD returns a visible HUD.
func NewHUD() *HUD { return &HUD{} }

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.hidden = !h.hidden }

// Draw paints lines onto screen unless the panel is hidden.
func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	if h == nil || h.hidden || len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	height := len(lines) * lineHeight
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*panelPadding), float32(height+2*panelPadding),
		color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)
	for i, line := range lines {
		col := color.RGBA{R: 160, G: 160, B: 170, A: 255}
		if i == 0 {
			col = color.RGBA{R: 220, G: 220, B: 230, A: 255}
		}
		text.Draw(screen, line, face, panelPadding, panelPadding+headerBaseline+i*lineHeight, col)
	}
}

const (
	panelPadding   = 8
	lineHeight     = 16
	headerBaseline = 11
)
