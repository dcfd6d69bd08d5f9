package rainbow

import (
	"slices"
	"sync"

	"github.com/fxparticles/rainbow/colorspace"
)

// DefaultSampleCount is the number of colors in the Default gradient.
const DefaultSampleCount = 141

var defaultGradient = sync.OnceValue(func() []colorspace.Srgb {
	ans, err := Generate(DefaultSampleCount)
	if err != nil {
		panic(err)
	}
	return ans
})

// Default returns a full circle gradient of DefaultSampleCount colors
// starting at red, with all other parameters at their defaults. It is
// computed once, the returned slice is a copy the caller may modify.
func Default() []colorspace.Srgb {
	return slices.Clone(defaultGradient())
}
