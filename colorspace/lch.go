package colorspace

import (
	"fmt"
)

// Lch is the polar form of Lab: lightness, chroma and hue in degrees.
type Lch struct {
	L, C, H float64
}

func (c Lch) Space() Space { return SpaceLch }
func (c Lch) sealed()      {}

func (c Lch) String() string {
	return fmt.Sprintf("Lch{L: %.4f c: %.4f h: %.2f}", c.L, c.C, c.H)
}

// Equal compares hues on the circle, so 359.8 and 0.1 are close.
func (c Lch) Equal(o Lch) bool {
	return nearlyEqual(c.L, o.L, LabEpsilon) && nearlyEqual(c.C, o.C, LabEpsilon) && hueDistance(c.H, o.H) < HueEpsilon
}

func (c Lch) ToLab() Lab {
	l, a, b := FromPolar(c.L, c.C, c.H)
	return Lab{l, a, b}
}

func (c Lch) ToSrgb() Srgb { return c.ToLab().ToSrgb() }
