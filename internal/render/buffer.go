package render

import "image/color"

// Buffer is a flat RGBA framebuffer, four bytes per pixel, rows of W pixels.
// Pix can be uploaded to a texture as is.
type Buffer struct {
	W, H int
	Pix  []byte
}

// NewBuffer allocates a w*h buffer. Negative dimensions are treated as zero.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{}
	b.Resize(w, h)
	return b
}

// Resize reallocates the buffer when its dimensions change. Contents are
// undefined afterwards; every frame overwrites the whole buffer anyway.
func (b *Buffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if b.W == w && b.H == h && len(b.Pix) == 4*w*h {
		return
	}
	b.W, b.H = w, h
	b.Pix = make([]byte, 4*w*h)
}

// Len returns the number of pixels.
func (b *Buffer) Len() int { return len(b.Pix) / 4 }

// Set writes pixel i. Indices outside the buffer are ignored.
func (b *Buffer) Set(i int, c color.RGBA) {
	if i < 0 || i >= b.Len() {
		return
	}
	base := i * 4
	b.Pix[base+0] = c.R
	b.Pix[base+1] = c.G
	b.Pix[base+2] = c.B
	b.Pix[base+3] = c.A
}

// At returns pixel i, or the zero color outside the buffer.
func (b *Buffer) At(i int) color.RGBA {
	if i < 0 || i >= b.Len() {
		return color.RGBA{}
	}
	base := i * 4
	return color.RGBA{R: b.Pix[base+0], G: b.Pix[base+1], B: b.Pix[base+2], A: b.Pix[base+3]}
}

// Fill paints every pixel with c.
func (b *Buffer) Fill(c color.RGBA) {
	for base := 0; base+3 < len(b.Pix); base += 4 {
		b.Pix[base+0] = c.R
		b.Pix[base+1] = c.G
		b.Pix[base+2] = c.B
		b.Pix[base+3] = c.A
	}
}
