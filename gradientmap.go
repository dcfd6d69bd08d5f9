package rainbow

import (
	"fmt"
	"image"
	"math"

	"github.com/fxparticles/rainbow/colorspace"
	"github.com/kovidgoyal/go-parallel"
)

var _ = fmt.Print

type gradientIndex struct {
	colors []colorspace.Srgb
	last   float64
}

// lookup maps the OKLab lightness of c onto the gradient, black to the
// first color and white to the last.
func (g gradientIndex) lookup(c colorspace.Srgb) colorspace.Srgb {
	l := max(0, min(c.ToLab().L, 1))
	return g.colors[int(math.Round(l*g.last))]
}

// GradientMap recolors img by replacing every pixel with the gradient color
// at the position given by the pixel's perceptual lightness. Alpha is
// discarded. Rows are processed in parallel.
func GradientMap(img image.Image, colors []colorspace.Srgb) (ans *NRGB, err error) {
	if len(colors) == 0 {
		return nil, ErrEmptyGradient
	}
	g := gradientIndex{colors: colors, last: float64(len(colors) - 1)}
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	ans = NewNRGB(b)
	if width == 0 || height == 0 {
		return ans, nil
	}
	var f func(start, limit int)
	switch src := img.(type) {
	case *NRGB:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
				drow := ans.Pix[ans.Stride*y:]
				_ = row[3*(width-1)]
				for range width {
					s, d := row[0:3:3], drow[0:3:3]
					c := g.lookup(colorspace.Srgb{R: s[0], G: s[1], B: s[2]})
					d[0], d[1], d[2] = c.R, c.G, c.B
					row, drow = row[3:], drow[3:]
				}
			}
		}
	case *image.NRGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
				drow := ans.Pix[ans.Stride*y:]
				_ = row[4*(width-1)]
				for range width {
					s, d := row[0:4:4], drow[0:3:3]
					var c colorspace.Srgb
					// fully transparent pixels are black, as SrgbModel has it
					if s[3] != 0 {
						c = colorspace.Srgb{R: s[0], G: s[1], B: s[2]}
					}
					c = g.lookup(c)
					d[0], d[1], d[2] = c.R, c.G, c.B
					row, drow = row[4:], drow[3:]
				}
			}
		}
	default:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				for x := range width {
					c := colorspace.SrgbModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(colorspace.Srgb)
					ans.SetSrgb(b.Min.X+x, b.Min.Y+y, g.lookup(c))
				}
			}
		}
	}
	err = parallel.Run_in_parallel_over_range(0, f, 0, height)
	return
}
