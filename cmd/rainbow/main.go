package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fxparticles/rainbow"
	"github.com/fxparticles/rainbow/colorspace"
)

var _ = fmt.Print

const default_terminal_width = 80

type options struct {
	samples           int
	start             string
	arc               float64
	lightness, chroma float64
	offset            float64
	output            string
	animate           bool
	delay             time.Duration
	width, height     int
	vertical          bool
	verbose           bool
}

func parse_args(args []string, stderr io.Writer) (opts options, err error) {
	fs := flag.NewFlagSet("rainbow", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: rainbow [options] [output-file]")
		fmt.Fprintln(stderr, "Without an output file the gradient is previewed in the terminal.")
		fs.PrintDefaults()
	}
	fs.IntVar(&opts.samples, "n", rainbow.DefaultSampleCount, "number of colors, at least 2")
	fs.StringVar(&opts.start, "start", colorspace.Red.Hex(), "start color as #RRGGBB or #RGB")
	fs.Float64Var(&opts.arc, "arc", rainbow.DefaultArc, "percentage of the hue circle to cover")
	fs.Float64Var(&opts.lightness, "lightness", rainbow.DefaultLightness, "OKLCh lightness of every sample")
	fs.Float64Var(&opts.chroma, "chroma", rainbow.DefaultChroma, "OKLCh chroma of every sample")
	fs.Float64Var(&opts.offset, "offset", rainbow.DefaultHueOffset, "degrees subtracted from the start hue")
	fs.StringVar(&opts.output, "o", "", "output file, the format is chosen by extension")
	fs.BoolVar(&opts.animate, "animate", false, "write a looping animation (png, apng or gif)")
	fs.DurationVar(&opts.delay, "delay", 40*time.Millisecond, "delay between animation frames")
	fs.IntVar(&opts.width, "width", 8, "width of each color cell in pixels")
	fs.IntVar(&opts.height, "height", 64, "height of each color cell in pixels")
	fs.BoolVar(&opts.vertical, "vertical", false, "stack color cells vertically")
	fs.BoolVar(&opts.verbose, "v", false, "log diagnostics to stderr")
	if err = fs.Parse(args); err != nil {
		return
	}
	switch fs.NArg() {
	case 0:
	case 1:
		if opts.output != "" {
			return opts, fmt.Errorf("output file specified twice")
		}
		opts.output = fs.Arg(0)
	default:
		fs.Usage()
		return opts, fmt.Errorf("too many arguments")
	}
	return
}

func preview(w io.Writer, colors []colorspace.Srgb, width int) {
	per_line := max(1, width/2)
	var sb strings.Builder
	for i, c := range colors {
		fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm  ", c.R, c.G, c.B)
		if (i+1)%per_line == 0 || i == len(colors)-1 {
			sb.WriteString("\x1b[0m\n")
		}
	}
	io.WriteString(w, sb.String())
}

func run(opts options, stdout io.Writer, width int) (err error) {
	if opts.verbose {
		rainbow.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	start, err := colorspace.ParseHex(opts.start)
	if err != nil {
		return err
	}
	colors, err := rainbow.Generate(opts.samples,
		rainbow.StartColor(start), rainbow.Arc(opts.arc),
		rainbow.Ring(opts.lightness, opts.chroma), rainbow.HueOffset(opts.offset))
	if err != nil {
		return err
	}
	if opts.output == "" {
		preview(stdout, colors, width)
		return nil
	}
	swatch_opts := []rainbow.SwatchOption{rainbow.CellSize(opts.width, opts.height), rainbow.Vertical(opts.vertical)}
	if opts.animate {
		a, err := rainbow.NewCycleAnimation(colors, opts.delay, swatch_opts...)
		if err != nil {
			return err
		}
		if err = rainbow.SaveAnimation(a, opts.output); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Animation of %d frames saved to: %s\n", len(a.Frames), opts.output)
		return nil
	}
	img, err := rainbow.Swatch(colors, swatch_opts...)
	if err != nil {
		return err
	}
	if err = rainbow.Save(img, opts.output); err == nil {
		fmt.Fprintln(stdout, "Swatch saved to:", opts.output)
	}
	return
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	opts, err := parse_args(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			err = nil
		}
		return
	}
	err = run(opts, os.Stdout, terminal_width(os.Stdout))
}
