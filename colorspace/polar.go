package colorspace

import (
	"math"
)

func toRadians(degrees float64) float64 { return degrees * (math.Pi / 180) }

func toDegrees(radians float64) float64 { return radians * (180 / math.Pi) }

// NormalizeDegrees reduces x into [0, 360). Negative values wrap around,
// so -10 becomes 350.
func NormalizeDegrees(x float64) float64 {
	ans := x - math.Floor(x/360)*360
	// x/360 can underflow to -0 for subnormal x
	if ans < 0 {
		ans += 360
	}
	// tiny negative x can round up to exactly 360
	if ans >= 360 {
		ans -= 360
	}
	return ans
}

// ToPolar converts the Cartesian pair (x, y) into chroma and a hue angle in
// degrees within [0, 360). l passes through unchanged.
func ToPolar(l, x, y float64) (float64, float64, float64) {
	c := math.Sqrt(x*x + y*y)
	h := toDegrees(math.Atan2(y, x))
	if h < 0 {
		h += 360
	}
	// atan2 can return a value a hair below -0 that rounds to 360 here
	if h >= 360 {
		h -= 360
	}
	return l, c, h
}

// FromPolar is the inverse of ToPolar. h may be any angle in degrees.
func FromPolar(l, c, h float64) (float64, float64, float64) {
	hr := toRadians(h)
	return l, c * math.Cos(hr), c * math.Sin(hr)
}

// hueDistance is the shortest angular distance between two hues, in [0, 180].
func hueDistance(a, b float64) float64 {
	d := math.Abs(NormalizeDegrees(a) - NormalizeDegrees(b))
	return min(d, 360-d)
}
