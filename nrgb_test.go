package rainbow

import (
	"image"
	"image/color"
	"testing"

	"github.com/fxparticles/rainbow/colorspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNRGB(t *testing.T) {
	r := image.Rect(-1, -1, 3, 2)
	img := NewNRGB(r)
	require.Len(t, img.Pix, 3*4*3)
	assert.True(t, img.Opaque())
	assert.Equal(t, r, img.Bounds())

	img.Set(0, 0, color.NRGBA{0xff, 0x80, 0, 0xff})
	assert.Equal(t, colorspace.Srgb{R: 0xff, G: 0x80}, img.At(0, 0))
	img.SetSrgb(2, 1, colorspace.White)
	assert.Equal(t, colorspace.White, img.SrgbAt(2, 1))

	// out of bounds is ignored
	img.SetSrgb(3, 1, colorspace.White)
	assert.Equal(t, colorspace.Srgb{}, img.SrgbAt(3, 1))

	sub := img.SubImage(image.Rect(0, 0, 5, 5)).(*NRGB)
	assert.Equal(t, image.Rect(0, 0, 3, 2), sub.Bounds())
	sub.SetSrgb(1, 1, colorspace.Red)
	assert.Equal(t, colorspace.Red, img.SrgbAt(1, 1))
	assert.Equal(t, &NRGB{}, img.SubImage(image.Rect(10, 10, 12, 12)))
	assert.True(t, img.ColorModel() == colorspace.SrgbModel)
}

func TestNRGBFill(t *testing.T) {
	img := NewNRGB(image.Rect(0, 0, 4, 4))
	img.Fill(image.Rect(2, 2, 10, 10), colorspace.Red)
	for y := range 4 {
		for x := range 4 {
			want := colorspace.Black
			if x >= 2 && y >= 2 {
				want = colorspace.Red
			}
			require.Equal(t, want, img.SrgbAt(x, y), "(%d, %d)", x, y)
		}
	}
	img.Fill(image.Rect(5, 5, 6, 6), colorspace.White)
}
