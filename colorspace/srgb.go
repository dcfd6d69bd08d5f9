package colorspace

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Srgb is a gamma encoded sRGB color with 8-bit channels.
type Srgb struct {
	R, G, B uint8
}

var (
	Black = Srgb{0, 0, 0}
	White = Srgb{0xff, 0xff, 0xff}
	Red   = Srgb{0xff, 0, 0}
)

func NewSrgb(r, g, b uint8) Srgb { return Srgb{r, g, b} }

// SrgbFromFloats builds a color from byte scale channel values. Each value
// is rounded to the nearest integer and clamped into [0, 255]. Values that
// were outside the byte range by more than rounding noise are reported on
// the package logger, but the color is always constructed.
func SrgbFromFloats(r, g, b float64) Srgb {
	return Srgb{clampChannel(r, "R"), clampChannel(g, "G"), clampChannel(b, "B")}
}

func clampChannel(v float64, name string) uint8 {
	if math.IsNaN(v) {
		Logger().Warn("channel clamped", "channel", name, "value", v)
		return 0
	}
	if v < -0.001 || v > 255.001 {
		Logger().Warn("channel clamped", "channel", name, "value", v)
	}
	return uint8(max(0, min(math.Round(v), 255)))
}

// ParseHex parses colors of the form "#RGB", "#RRGGBB" or the same without
// the leading '#'.
func ParseHex(s string) (ans Srgb, err error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return ans, fmt.Errorf("invalid hex color %q: must have 3 or 6 digits", s)
	}
	if strings.TrimLeft(hex, "0123456789abcdefABCDEF") != "" {
		return ans, fmt.Errorf("invalid hex color %q: bad digit", s)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return ans, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Srgb{r, g, b}, nil
}

func (c Srgb) Space() Space { return SpaceSrgb }
func (c Srgb) sealed()      {}

// Hex returns the color as #RRGGBB.
func (c Srgb) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Srgb) String() string {
	return fmt.Sprintf("Srgb{%02X %02X %02X}", c.R, c.G, c.B)
}

// Equal reports whether every channel of c and o differs by less than one
// byte unit.
func (c Srgb) Equal(o Srgb) bool {
	return c == o
}

// RGBA implements color.Color. Srgb colors are always opaque.
func (c Srgb) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// Linear returns the gamma decoded channels in [0, 1].
func (c Srgb) Linear() (r, g, b float64) {
	return DecodeGamma8(c.R), DecodeGamma8(c.G), DecodeGamma8(c.B)
}

// ToLab converts to OKLab. Gamma is decoded before the cone response matrix.
func (c Srgb) ToLab() Lab {
	r, g, b := c.Linear()
	l, m, s := mulMat3Vec(m1, Vec3{r, g, b})
	L, A, B := mulMat3Vec(m2, Vec3{math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)})
	return Lab{L, A, B}
}

func (c Srgb) ToLch() Lch { return c.ToLab().ToLch() }

// Decay darkens every channel by rate, stopping at zero.
func (c Srgb) Decay(rate uint8) Srgb {
	d := func(x uint8) uint8 {
		if x > rate {
			return x - rate
		}
		return 0
	}
	return Srgb{d(c.R), d(c.G), d(c.B)}
}

func srgbModel(c color.Color) color.Color {
	if _, ok := c.(Srgb); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	switch a {
	case 0xffff:
		return Srgb{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
	case 0:
		return Srgb{}
	default:
		// color.Color.RGBA is alpha premultiplied
		r = (r * 0xffff) / a
		g = (g * 0xffff) / a
		b = (b * 0xffff) / a
		return Srgb{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
	}
}

// SrgbModel converts any color to an opaque Srgb, discarding alpha after
// un-premultiplying.
var SrgbModel color.Model = color.ModelFunc(srgbModel)
