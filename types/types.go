package types

import (
	"fmt"
)

var _ = fmt.Print

// Format is an output image file format.
type Format int

// Output formats. APNG is written with the .png extension as well, the
// distinction only matters for animations.
const (
	UNKNOWN Format = iota
	PNG
	APNG
	GIF
	TIFF
	BMP
)

var FormatExts = map[string]Format{
	"png":  PNG,
	"apng": APNG,
	"gif":  GIF,
	"tif":  TIFF,
	"tiff": TIFF,
	"bmp":  BMP,
}

var formatNames = map[Format]string{
	PNG:  "PNG",
	APNG: "APNG",
	GIF:  "GIF",
	TIFF: "TIFF",
	BMP:  "BMP",
}

func (f Format) String() string {
	return formatNames[f]
}

// Animated reports whether the format can hold more than one frame.
func (f Format) Animated() bool {
	switch f {
	case PNG, APNG, GIF:
		return true
	}
	return false
}
