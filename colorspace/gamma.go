package colorspace

import (
	"math"
)

// DecodeGamma applies the sRGB transfer function to a normalized encoded
// channel value, returning linear light. Values <= 0 are returned as is so
// that small negative rounding noise never turns into NaN.
func DecodeGamma(c float64) float64 {
	if c <= 0 {
		return c
	}
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// EncodeGamma is the inverse of DecodeGamma, with the same passthrough for
// values <= 0.
func EncodeGamma(c float64) float64 {
	if c <= 0 {
		return c
	}
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}
