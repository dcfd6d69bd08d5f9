package rainbow

import (
	"errors"
	"fmt"

	"github.com/fxparticles/rainbow/colorspace"
)

var _ = fmt.Print

// The hue ring walked by the generator, in OKLCh units. At this lightness
// and chroma part of the ring (mostly the blues) is outside sRGB and gets
// clamped, which keeps the gradient vivid.
const (
	DefaultLightness = 0.7
	DefaultChroma    = 0.18
	// DefaultHueOffset is subtracted from the start color's hue so that the
	// first sample looks like the requested color.
	DefaultHueOffset = 20.0
	DefaultArc       = 100.0
)

// ErrInvalidSampleCount is returned when fewer than two samples are
// requested, there must be at least two endpoints to interpolate between.
var ErrInvalidSampleCount = errors.New("rainbow: sample count must be at least 2")

type config struct {
	start     colorspace.Srgb
	arc       float64
	lightness float64
	chroma    float64
	hueOffset float64
}

var defaultConfig = config{
	start:     colorspace.Red,
	arc:       DefaultArc,
	lightness: DefaultLightness,
	chroma:    DefaultChroma,
	hueOffset: DefaultHueOffset,
}

// Option sets an optional parameter for Generate and GenerateLch.
type Option func(*config)

// StartColor sets the color the gradient starts at. Defaults to red.
func StartColor(c colorspace.Srgb) Option {
	return func(cfg *config) {
		cfg.start = c
	}
}

// Arc sets the portion of the hue circle to cover, as a percentage. 100 is
// the full circle, 50 half of it. Negative values walk the circle
// backwards. Defaults to 100.
func Arc(percent float64) Option {
	return func(cfg *config) {
		cfg.arc = percent
	}
}

// Ring sets the OKLCh lightness and chroma that every sample shares.
func Ring(lightness, chroma float64) Option {
	return func(cfg *config) {
		cfg.lightness = lightness
		cfg.chroma = max(0, chroma)
	}
}

// HueOffset sets the perceptual correction, in degrees, subtracted from the
// start color's hue.
func HueOffset(degrees float64) Option {
	return func(cfg *config) {
		cfg.hueOffset = degrees
	}
}

// GenerateLch returns n points on the hue ring, starting at the hue of the
// start color (less the hue offset) and sweeping Arc percent of the circle.
// With the default full circle the first and last samples have the same
// hue, so the gradient can be cycled without a visible seam.
func GenerateLch(n int, opts ...Option) ([]colorspace.Lch, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSampleCount, n)
	}
	cfg := defaultConfig
	for _, option := range opts {
		option(&cfg)
	}
	start_hue := cfg.start.ToLch().H - cfg.hueOffset
	sweep := 360 * cfg.arc / 100
	Logger().Debug("generating gradient", "samples", n, "start", cfg.start.Hex(), "start_hue", start_hue,
		"arc", cfg.arc, "lightness", cfg.lightness, "chroma", cfg.chroma)

	ans := make([]colorspace.Lch, n)
	for i := range ans {
		hue := colorspace.NormalizeDegrees(start_hue + sweep*float64(i)/float64(n-1))
		ans[i] = colorspace.Lch{L: cfg.lightness, C: cfg.chroma, H: hue}
	}
	return ans, nil
}

// Generate is GenerateLch with every sample converted to sRGB. Samples
// outside the sRGB gamut are clamped, which is reported on the logger at
// warning level.
func Generate(n int, opts ...Option) ([]colorspace.Srgb, error) {
	ring, err := GenerateLch(n, opts...)
	if err != nil {
		return nil, err
	}
	ans := make([]colorspace.Srgb, len(ring))
	for i, c := range ring {
		ans[i] = c.ToLab().ToSrgb()
	}
	return ans, nil
}
