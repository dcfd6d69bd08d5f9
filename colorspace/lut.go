package colorspace

import (
	"sync"
)

var encoded8ToLinearLUT = sync.OnceValue(func() *[256]float64 {
	var ans [256]float64
	for i := range ans {
		ans[i] = DecodeGamma(float64(i) / 255)
	}
	return &ans
})

// DecodeGamma8 converts an 8-bit sRGB encoded value to a normalised linear
// value between 0.0 and 1.0.
//
// This implementation uses a look-up table and returns exactly what
// DecodeGamma returns for v/255.
func DecodeGamma8(v uint8) float64 {
	return encoded8ToLinearLUT()[v]
}
