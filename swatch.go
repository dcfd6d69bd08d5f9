package rainbow

import (
	"image"

	"github.com/fxparticles/rainbow/colorspace"
)

type swatchConfig struct {
	cellWidth, cellHeight int
	vertical              bool
}

var defaultSwatchConfig = swatchConfig{cellWidth: 8, cellHeight: 64}

// SwatchOption sets an optional parameter for Swatch and NewCycleAnimation.
type SwatchOption func(*swatchConfig)

// CellSize sets the size in pixels of the rectangle drawn for each color.
// Defaults to 8x64. Values below 1 are treated as 1.
func CellSize(width, height int) SwatchOption {
	return func(c *swatchConfig) {
		c.cellWidth, c.cellHeight = max(1, width), max(1, height)
	}
}

// Vertical stacks the cells top to bottom instead of left to right.
func Vertical(enabled bool) SwatchOption {
	return func(c *swatchConfig) {
		c.vertical = enabled
	}
}

// Swatch renders colors as a strip of equally sized cells, in order.
func Swatch(colors []colorspace.Srgb, opts ...SwatchOption) (*NRGB, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyGradient
	}
	cfg := defaultSwatchConfig
	for _, option := range opts {
		option(&cfg)
	}
	return cfg.render(colors), nil
}

func (cfg *swatchConfig) cell(i int) image.Rectangle {
	if cfg.vertical {
		return image.Rect(0, i*cfg.cellHeight, cfg.cellWidth, (i+1)*cfg.cellHeight)
	}
	return image.Rect(i*cfg.cellWidth, 0, (i+1)*cfg.cellWidth, cfg.cellHeight)
}

func (cfg *swatchConfig) render(colors []colorspace.Srgb) *NRGB {
	img := NewNRGB(cfg.cell(0).Union(cfg.cell(len(colors) - 1)))
	for i, c := range colors {
		img.Fill(cfg.cell(i), c)
	}
	return img
}
