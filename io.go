package rainbow

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxparticles/rainbow/colorspace"
	"github.com/fxparticles/rainbow/types"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type fileSystem interface {
	Create(string) (io.WriteCloser, error)
}

type localFS struct{}

func (localFS) Create(name string) (io.WriteCloser, error) { return os.Create(name) }

var fs fileSystem = localFS{}

type Format = types.Format

const (
	UNKNOWN = types.UNKNOWN
	PNG     = types.PNG
	APNG    = types.APNG
	GIF     = types.GIF
	TIFF    = types.TIFF
	BMP     = types.BMP
)

// ErrUnsupportedFormat means the given image format is not supported.
var ErrUnsupportedFormat = errors.New("rainbow: unsupported image format")

// FormatFromExtension parses image format from filename extension:
// "png", "apng", "gif", "tif" (or "tiff") and "bmp" are supported.
func FormatFromExtension(ext string) (Format, error) {
	if f, ok := types.FormatExts[strings.ToLower(strings.TrimPrefix(ext, "."))]; ok {
		return f, nil
	}
	return -1, ErrUnsupportedFormat
}

// FormatFromFilename parses image format from filename:
// "png", "apng", "gif", "tif" (or "tiff") and "bmp" are supported.
func FormatFromFilename(filename string) (Format, error) {
	ext := filepath.Ext(filename)
	return FormatFromExtension(ext)
}

type encodeConfig struct {
	gifNumColors        int
	gifQuantizer        draw.Quantizer
	gifDrawer           draw.Drawer
	pngCompressionLevel png.CompressionLevel
}

var defaultEncodeConfig = encodeConfig{
	gifNumColors:        256,
	gifQuantizer:        nil,
	gifDrawer:           nil,
	pngCompressionLevel: png.DefaultCompression,
}

// EncodeOption sets an optional parameter for the Encode and Save functions.
type EncodeOption func(*encodeConfig)

// GIFNumColors returns an EncodeOption that sets the maximum number of colors
// used in the GIF-encoded image. It ranges from 1 to 256. Default is 256.
func GIFNumColors(numColors int) EncodeOption {
	return func(c *encodeConfig) {
		c.gifNumColors = numColors
	}
}

// GIFQuantizer returns an EncodeOption that sets the quantizer that is used to produce
// a palette of the GIF-encoded image. The default builds the palette from the
// distinct colors of the image, which is exact for swatches.
func GIFQuantizer(quantizer draw.Quantizer) EncodeOption {
	return func(c *encodeConfig) {
		c.gifQuantizer = quantizer
	}
}

// GIFDrawer returns an EncodeOption that sets the drawer that is used to convert
// the source image to the desired palette of the GIF-encoded image.
func GIFDrawer(drawer draw.Drawer) EncodeOption {
	return func(c *encodeConfig) {
		c.gifDrawer = drawer
	}
}

// PNGCompressionLevel returns an EncodeOption that sets the compression level
// of the PNG-encoded image. Default is png.DefaultCompression.
func PNGCompressionLevel(level png.CompressionLevel) EncodeOption {
	return func(c *encodeConfig) {
		c.pngCompressionLevel = level
	}
}

// Encode writes the image img to w in the specified format (PNG, GIF, TIFF or BMP).
// APNG is encoded as a single frame PNG.
func Encode(w io.Writer, img image.Image, format Format, opts ...EncodeOption) error {
	cfg := defaultEncodeConfig
	for _, option := range opts {
		option(&cfg)
	}

	switch format {
	case PNG, APNG:
		encoder := png.Encoder{CompressionLevel: cfg.pngCompressionLevel}
		return encoder.Encode(w, img)

	case GIF:
		quantizer := cfg.gifQuantizer
		if quantizer == nil {
			quantizer = distinctColors{}
		}
		return gif.Encode(w, img, &gif.Options{
			NumColors: cfg.gifNumColors,
			Quantizer: quantizer,
			Drawer:    cfg.gifDrawer,
		})

	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})

	case BMP:
		return bmp.Encode(w, img)
	}

	return ErrUnsupportedFormat
}

// distinctColors is a draw.Quantizer whose palette is the colors of the image
// in scan order. When there are more than fit, an even sample of them is used.
type distinctColors struct{}

func (distinctColors) Quantize(p color.Palette, m image.Image) color.Palette {
	var seen []colorspace.Srgb
	index := make(map[colorspace.Srgb]struct{})
	add := func(c colorspace.Srgb) {
		if _, found := index[c]; !found {
			index[c] = struct{}{}
			seen = append(seen, c)
		}
	}
	b := m.Bounds()
	if img, ok := m.(*NRGB); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				add(img.SrgbAt(x, y))
			}
		}
	} else {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				add(colorspace.SrgbModel.Convert(m.At(x, y)).(colorspace.Srgb))
			}
		}
	}
	limit := cap(p) - len(p)
	if limit < 1 {
		limit = 256
	}
	for _, c := range spread(seen, limit) {
		p = append(p, c)
	}
	return p
}

// spread returns at most n colors, evenly spaced over colors and keeping both
// ends.
func spread(colors []colorspace.Srgb, n int) []colorspace.Srgb {
	if len(colors) <= n {
		return colors
	}
	if n == 1 {
		return colors[:1]
	}
	ans := make([]colorspace.Srgb, n)
	for i := range ans {
		ans[i] = colors[i*(len(colors)-1)/(n-1)]
	}
	return ans
}

func save(filename string, encode func(io.Writer) error) (err error) {
	file, err := fs.Create(filename)
	if err != nil {
		return err
	}
	err = encode(file)
	errc := file.Close()
	if err == nil {
		err = errc
	}
	return err
}

// Save saves the image to file with the specified filename.
// The format is determined from the filename extension:
// "png", "apng", "gif", "tif" (or "tiff") and "bmp" are supported.
//
// Examples:
//
//	// Save a swatch of the default gradient as PNG.
//	img, _ := rainbow.Swatch(rainbow.Default())
//	err := rainbow.Save(img, "out.png")
//
//	// Save it as a GIF with at most 64 colors.
//	err := rainbow.Save(img, "out.gif", rainbow.GIFNumColors(64))
func Save(img image.Image, filename string, opts ...EncodeOption) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	return save(filename, func(w io.Writer) error { return Encode(w, img, f, opts...) })
}

// SaveAnimation saves the animation to file with the specified filename.
// "png" and "apng" files are written as animated PNG, "gif" files as
// animated GIF. Other formats cannot hold animations.
func SaveAnimation(a *Animation, filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	if !f.Animated() {
		return ErrUnsupportedFormat
	}
	if f == GIF {
		return save(filename, a.EncodeGIF)
	}
	return save(filename, a.EncodeAPNG)
}
