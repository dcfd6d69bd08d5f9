package rainbow

import (
	"image"
	"image/color"
	"testing"

	"github.com/fxparticles/rainbow/colorspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gray_ramp(r image.Rectangle) *image.Gray {
	img := image.NewGray(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetGray(x, y, color.Gray{uint8((x - r.Min.X + 7*(y-r.Min.Y)) % 256)})
		}
	}
	return img
}

func TestGradientMap(t *testing.T) {
	colors, err := Generate(32)
	require.NoError(t, err)
	first, last := colors[0], colors[len(colors)-1]

	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 0xff})
	src.SetNRGBA(1, 0, color.NRGBA{0xff, 0xff, 0xff, 0x10})
	src.SetNRGBA(2, 0, color.NRGBA{0x80, 0x80, 0x80, 0xff})
	out, err := GradientMap(src, colors)
	require.NoError(t, err)
	assert.Equal(t, first, out.SrgbAt(0, 0))
	assert.Equal(t, last, out.SrgbAt(1, 0))
	// mid gray has OKLab lightness 0.6
	assert.Equal(t, colors[19], out.SrgbAt(2, 0))

	_, err = GradientMap(src, nil)
	assert.ErrorIs(t, err, ErrEmptyGradient)

	src.SetNRGBA(1, 0, color.NRGBA{0xff, 0xff, 0xff, 0})
	out, err = GradientMap(src, colors)
	require.NoError(t, err)
	assert.Equal(t, first, out.SrgbAt(1, 0))

	out, err = GradientMap(image.NewNRGBA(image.Rect(0, 0, 0, 5)), colors)
	require.NoError(t, err)
	assert.True(t, out.Bounds().Empty())
}

func TestGradientMapImageTypes(t *testing.T) {
	colors, err := Generate(64, Ring(0.6, 0.05))
	require.NoError(t, err)
	g := gradientIndex{colors: colors, last: float64(len(colors) - 1)}
	r := image.Rect(-3, 5, 61, 205)
	gray := gray_ramp(r)
	nrgb := NewNRGB(r)
	nrgba := image.NewNRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			nrgb.Set(x, y, gray.At(x, y))
			nrgba.Set(x, y, gray.At(x, y))
		}
	}
	// transparent pixels whose color channels are not black
	nrgba.SetNRGBA(0, 5, color.NRGBA{0xff, 0xff, 0xff, 0})
	nrgba.SetNRGBA(1, 5, color.NRGBA{0x80, 0x20, 0xc0, 0})
	for name, img := range map[string]image.Image{
		"Gray":     gray,
		"NRGB":     nrgb,
		"NRGBA":    nrgba,
		"SubImage": nrgb.SubImage(image.Rect(0, 10, 20, 40)),
	} {
		t.Run(name, func(t *testing.T) {
			out, err := GradientMap(img, colors)
			require.NoError(t, err)
			b := img.Bounds()
			require.Equal(t, b, out.Bounds())
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					want := g.lookup(colorspace.SrgbModel.Convert(img.At(x, y)).(colorspace.Srgb))
					require.Equal(t, want, out.SrgbAt(x, y), "(%d, %d)", x, y)
				}
			}
		})
	}
}
