//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// Painter uploads a Buffer into an RGBA image and draws it at the origin.
type Painter struct {
	img *ebiten.Image
}

// NewPainter returns a Painter; its image is allocated on the first Blit.
func NewPainter() *Painter { return &Painter{} }

// Blit uploads buf and draws it onto dst.
func (p *Painter) Blit(dst *ebiten.Image, buf *Buffer) {
	if buf.W == 0 || buf.H == 0 {
		return
	}
	if p.img == nil || p.img.Bounds().Dx() != buf.W || p.img.Bounds().Dy() != buf.H {
		if p.img != nil {
			p.img.Dispose()
		}
		p.img = ebiten.NewImage(buf.W, buf.H)
	}
	p.img.WritePixels(buf.Pix)
	dst.DrawImage(p.img, nil)
}
