package colorspace

import (
	"fmt"
)

var _ = fmt.Print

// Space identifies which of the three supported representations a Color
// value is in.
type Space int

const (
	SpaceSrgb Space = iota
	SpaceLab
	SpaceLch
)

var spaceNames = map[Space]string{
	SpaceSrgb: "sRGB",
	SpaceLab:  "OKLab",
	SpaceLch:  "OKLCh",
}

func (s Space) String() string {
	if n, ok := spaceNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

// Color is implemented by exactly Srgb, Lab and Lch. Conversions are
// methods on the concrete types, this interface only exists so that values
// of different spaces can be carried and printed together.
type Color interface {
	Space() Space
	String() string
	sealed()
}

const (
	// LabEpsilon is the largest difference in L, a, b or chroma for which
	// two Lab or Lch values still compare equal. OKLab lightness is cube
	// root scaled, so one 8-bit gray step ranges from about 0.003 near white
	// to 0.067 near black; this sits just above the smallest of those.
	LabEpsilon = 0.004
	// HueEpsilon is the largest angular distance, in degrees, for which two
	// Lch hues still compare equal.
	HueEpsilon = 1.0
)

func nearlyEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

var (
	_ Color = Srgb{}
	_ Color = Lab{}
	_ Color = Lch{}
)
