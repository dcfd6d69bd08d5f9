package rainbow

import (
	"errors"
	"sync/atomic"

	"github.com/fxparticles/rainbow/colorspace"
)

// ErrEmptyGradient is returned when an operation needs at least one color.
var ErrEmptyGradient = errors.New("rainbow: gradient has no colors")

// Cycler hands out the colors of a gradient in order, starting again from
// the first color after the last one. It is safe for concurrent use, each
// call to Next gets its own index.
type Cycler struct {
	colors []colorspace.Srgb
	next   atomic.Uint64
}

func NewCycler(colors []colorspace.Srgb) (*Cycler, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyGradient
	}
	return &Cycler{colors: colors}, nil
}

func (c *Cycler) index(n uint64) int { return int(n % uint64(len(c.colors))) }

// Next returns the current color and advances.
func (c *Cycler) Next() colorspace.Srgb {
	return c.colors[c.index(c.next.Add(1)-1)]
}

// Peek returns the color the next call to Next will return.
func (c *Cycler) Peek() colorspace.Srgb {
	return c.colors[c.index(c.next.Load())]
}

func (c *Cycler) Reset()   { c.next.Store(0) }
func (c *Cycler) Len() int { return len(c.colors) }
