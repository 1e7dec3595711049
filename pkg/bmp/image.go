// image.go - The canonical in-memory pixel buffer produced and consumed by
// the codec, plus adapters to and from the standard library image types.
package bmp

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a decoded bitmap: a tightly packed RGBA buffer with no row
// padding, stored row-major and top-down. Pix holds exactly
// Width×Height×4 bytes in R, G, B, A order.
//
// Image implements image.Image and draw.Image, so it can be passed
// directly to the standard library's encoders and drawing routines.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// NewImage returns a zeroed (transparent black) image of the given size.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

func (p *Image) ColorModel() color.Model { return color.RGBAModel }

func (p *Image) Bounds() image.Rectangle { return image.Rect(0, 0, p.Width, p.Height) }

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int { return (y*p.Width + x) * 4 }

func (p *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Bounds())) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	return color.RGBA{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: p.Pix[i+3]}
}

func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Bounds())) {
		return
	}
	i := p.PixOffset(x, y)
	r := color.RGBAModel.Convert(c).(color.RGBA)
	p.Pix[i] = r.R
	p.Pix[i+1] = r.G
	p.Pix[i+2] = r.B
	p.Pix[i+3] = r.A
}

// FromImage converts any image.Image into the canonical packed RGBA
// buffer. *Image inputs are returned as-is; *image.RGBA inputs are copied
// row by row; everything else goes through draw.Draw.
func FromImage(m image.Image) *Image {
	if p, ok := m.(*Image); ok {
		return p
	}

	b := m.Bounds()
	out := NewImage(b.Dx(), b.Dy())

	if src, ok := m.(*image.RGBA); ok {
		for y := 0; y < out.Height; y++ {
			srcRow := src.Pix[(y+b.Min.Y-src.Rect.Min.Y)*src.Stride:]
			srcRow = srcRow[(b.Min.X-src.Rect.Min.X)*4:]
			copy(out.Pix[y*out.Width*4:(y+1)*out.Width*4], srcRow)
		}
		return out
	}

	draw.Draw(out, out.Bounds(), m, b.Min, draw.Src)
	return out
}
