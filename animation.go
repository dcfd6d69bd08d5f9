package rainbow

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"slices"
	"time"

	"github.com/fxparticles/rainbow/colorspace"
	"github.com/kettek/apng"
)

var _ = fmt.Print

type Frame struct {
	Image image.Image `json:"-"`
	Delay time.Duration
}

type Animation struct {
	Frames    []*Frame
	LoopCount uint // 0 means loop forever, 1 means loop once, ...
	// Palette holds every color used by the frames, in gradient order
	Palette []colorspace.Srgb
}

// NewCycleAnimation builds an animation whose frames are swatches of colors,
// each rotated one cell further than the previous, so the gradient appears
// to scroll. When the last color repeats the first, as a full circle
// gradient does, it is dropped so the loop has no visible seam. There is one
// frame per remaining color.
func NewCycleAnimation(colors []colorspace.Srgb, delay time.Duration, opts ...SwatchOption) (*Animation, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyGradient
	}
	ring := colors
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	cfg := defaultSwatchConfig
	for _, option := range opts {
		option(&cfg)
	}
	ans := &Animation{Palette: slices.Clone(ring), Frames: make([]*Frame, 0, len(ring))}
	rotated := make([]colorspace.Srgb, len(ring))
	for shift := range ring {
		n := copy(rotated, ring[shift:])
		copy(rotated[n:], ring[:shift])
		ans.Frames = append(ans.Frames, &Frame{Image: cfg.render(rotated), Delay: delay})
	}
	return ans, nil
}

// converts a time.Duration to a numerator and denominator of type uint16.
// It finds the best rational approximation of the duration in seconds.
func as_fraction(d time.Duration) (num, den uint16) {
	if d <= 0 {
		return 0, 1
	}
	val := d.Seconds()

	// Continued fractions, keeping the convergent closest to val whose
	// numerator and denominator fit in uint16.
	bestNum, bestDen := uint16(0), uint16(1)
	bestError := math.Abs(val)

	var h, k [3]int64
	h[0], k[0] = 0, 1
	h[1], k[1] = 1, 0

	f := val

	for i := 2; i < 100; i++ {
		a := int64(f)
		h[2] = a*h[1] + h[0]
		k[2] = a*k[1] + k[0]
		if h[2] > math.MaxUint16 || k[2] > math.MaxUint16 {
			break
		}
		numConv := uint16(h[2])
		denConv := uint16(k[2])
		if currentError := math.Abs(val - float64(numConv)/float64(denConv)); currentError < bestError {
			bestError = currentError
			bestNum = numConv
			bestDen = denConv
		}
		if f-float64(a) == 0.0 {
			break
		}
		f = 1.0 / (f - float64(a))
		h[0], h[1] = h[1], h[2]
		k[0], k[1] = k[1], k[2]
	}
	return bestNum, bestDen
}

func (self *Animation) as_apng() (ans apng.APNG) {
	ans.LoopCount = self.LoopCount
	for _, f := range self.Frames {
		d := apng.Frame{
			// every frame is a full opaque canvas
			DisposeOp: apng.DISPOSE_OP_NONE, BlendOp: apng.BLEND_OP_SOURCE, Image: f.Image,
		}
		d.DelayNumerator, d.DelayDenominator = as_fraction(f.Delay)
		ans.Frames = append(ans.Frames, d)
	}
	return
}

// EncodeAPNG writes the animation as an animated PNG.
func (self *Animation) EncodeAPNG(w io.Writer) error {
	if len(self.Frames) == 0 {
		return ErrEmptyGradient
	}
	return apng.Encode(w, self.as_apng())
}

func (self *Animation) gif_palette() color.Palette {
	// keep an even spread of the gradient, frames get the nearest entry
	src := spread(self.Palette, 256)
	ans := make(color.Palette, len(src))
	for i, c := range src {
		ans[i] = c
	}
	return ans
}

func gif_loop_count(n uint) int {
	switch n {
	case 0:
		return 0
	case 1:
		return -1
	}
	return int(n) - 1
}

// EncodeGIF writes the animation as an animated GIF whose palette is the
// animation's palette.
func (self *Animation) EncodeGIF(w io.Writer) error {
	if len(self.Frames) == 0 {
		return ErrEmptyGradient
	}
	pal := self.gif_palette()
	g := gif.GIF{LoopCount: gif_loop_count(self.LoopCount)}
	for _, f := range self.Frames {
		b := f.Image.Bounds()
		p := image.NewPaletted(b, pal)
		draw.Draw(p, b, f.Image, b.Min, draw.Src)
		g.Image = append(g.Image, p)
		g.Delay = append(g.Delay, int(f.Delay/(10*time.Millisecond)))
	}
	return gif.EncodeAll(w, &g)
}
