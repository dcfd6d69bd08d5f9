package colorspace

import (
	"fmt"
)

// Lab is a color in the OKLab space: lightness L and the opponent axes A
// (green-red) and B (blue-yellow).
type Lab struct {
	L, A, B float64
}

func (c Lab) Space() Space { return SpaceLab }
func (c Lab) sealed()      {}

func (c Lab) String() string {
	return fmt.Sprintf("Lab{L: %.4f a: %.4f b: %.4f}", c.L, c.A, c.B)
}

func (c Lab) Equal(o Lab) bool {
	return nearlyEqual(c.L, o.L, LabEpsilon) && nearlyEqual(c.A, o.A, LabEpsilon) && nearlyEqual(c.B, o.B, LabEpsilon)
}

func (c Lab) ToLch() Lch {
	l, ch, h := ToPolar(c.L, c.A, c.B)
	return Lch{l, ch, h}
}

// LinearRGB returns the linear light sRGB channels of c, unclamped. Values
// outside [0, 1] mean c is outside the sRGB gamut.
func (c Lab) LinearRGB() (r, g, b float64) {
	l_, m_, s_ := mulMat3Vec(invM2, Vec3{c.L, c.A, c.B})
	return mulMat3Vec(invM1, Vec3{l_ * l_ * l_, m_ * m_ * m_, s_ * s_ * s_})
}

// InGamut reports whether c can be shown in sRGB without clamping. The
// tolerance absorbs the rounding of the ten digit matrix coefficients, which
// puts the sRGB primaries about 1e-7 outside the unit cube.
func (c Lab) InGamut() bool {
	const eps = 1e-6
	r, g, b := c.LinearRGB()
	return r >= -eps && g >= -eps && b >= -eps && r <= 1+eps && g <= 1+eps && b <= 1+eps
}

// ToSrgb converts to sRGB, encoding gamma after the inverse cone response
// matrix. Out of gamut channels are clamped, see SrgbFromFloats.
func (c Lab) ToSrgb() Srgb {
	r, g, b := c.LinearRGB()
	return SrgbFromFloats(EncodeGamma(r)*255, EncodeGamma(g)*255, EncodeGamma(b)*255)
}
