package rainbow

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fxparticles/rainbow/colorspace"
)

var _ = fmt.Print

// NRGB is an in-memory opaque image whose At method returns
// colorspace.Srgb values.
type NRGB struct {
	// Pix holds the image's pixels, in R, G, B order. The pixel at
	// (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

func NewNRGB(r image.Rectangle) *NRGB {
	return &NRGB{
		Pix:    make([]uint8, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}

func (p *NRGB) ColorModel() color.Model { return colorspace.SrgbModel }

func (p *NRGB) Bounds() image.Rectangle { return p.Rect }

func (p *NRGB) At(x, y int) color.Color {
	return p.SrgbAt(x, y)
}

func (p *NRGB) SrgbAt(x, y int) colorspace.Srgb {
	if !(image.Point{x, y}.In(p.Rect)) {
		return colorspace.Srgb{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3] // Small cap improves performance, see https://golang.org/issue/27857
	return colorspace.Srgb{R: s[0], G: s[1], B: s[2]}
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *NRGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *NRGB) Set(x, y int, c color.Color) {
	p.SetSrgb(x, y, colorspace.SrgbModel.Convert(c).(colorspace.Srgb))
}

func (p *NRGB) SetSrgb(x, y int, c colorspace.Srgb) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = c.R, c.G, c.B
}

// Fill sets every pixel of r that lies inside the image to c.
func (p *NRGB) Fill(r image.Rectangle, c colorspace.Srgb) {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := p.Pix[p.PixOffset(r.Min.X, y):]
		for range r.Dx() {
			s := row[0:3:3]
			s[0], s[1], s[2] = c.R, c.G, c.B
			row = row[3:]
		}
	}
}

// SubImage returns an image representing the portion of the image p visible
// through r. The returned value shares pixels with the original image.
func (p *NRGB) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	// If r1 and r2 are Rectangles, r1.Intersect(r2) is not guaranteed to be inside
	// either r1 or r2 if the intersection is empty. Without explicitly checking for
	// this, the Pix[i:] expression below can panic.
	if r.Empty() {
		return &NRGB{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &NRGB{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}

// Opaque reports whether the image is fully opaque, which it always is.
func (p *NRGB) Opaque() bool { return true }
