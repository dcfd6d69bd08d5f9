package main

import (
	"bytes"
	"flag"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fxparticles/rainbow"
	"github.com/fxparticles/rainbow/colorspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	opts, err := parse_args(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, rainbow.DefaultSampleCount, opts.samples)
	assert.Equal(t, "#FF0000", opts.start)
	assert.Equal(t, rainbow.DefaultArc, opts.arc)
	assert.Equal(t, 40*time.Millisecond, opts.delay)
	assert.Empty(t, opts.output)

	opts, err = parse_args([]string{"-n", "12", "-arc", "50", "-start", "#0f0", "-animate", "out.gif"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 12, opts.samples)
	assert.Equal(t, 50.0, opts.arc)
	assert.Equal(t, "#0f0", opts.start)
	assert.True(t, opts.animate)
	assert.Equal(t, "out.gif", opts.output)

	_, err = parse_args([]string{"-o", "a.png", "b.png"}, io.Discard)
	assert.Error(t, err)
	_, err = parse_args([]string{"a.png", "b.png"}, io.Discard)
	assert.Error(t, err)
	var usage bytes.Buffer
	_, err = parse_args([]string{"-h"}, &usage)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, usage.String(), "usage: rainbow")
}

func TestPreview(t *testing.T) {
	colors := []colorspace.Srgb{colorspace.Red, colorspace.White, colorspace.Black, colorspace.Red, colorspace.White, colorspace.Black}
	var buf bytes.Buffer
	preview(&buf, colors, 8)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 4, strings.Count(lines[0], "\x1b[48;2;"))
	assert.True(t, strings.HasPrefix(lines[0], "\x1b[48;2;255;0;0m  "))
	assert.True(t, strings.HasSuffix(lines[1], "\x1b[0m"))

	buf.Reset()
	preview(&buf, colors[:1], 0)
	assert.Equal(t, "\x1b[48;2;255;0;0m  \x1b[0m\n", buf.String())
}

func TestRun(t *testing.T) {
	opts, err := parse_args([]string{"-n", "4"}, io.Discard)
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, run(opts, &out, 80))
	assert.Equal(t, 4, strings.Count(out.String(), "\x1b[48;2;"))

	dir := t.TempDir()
	opts.output = filepath.Join(dir, "swatch.png")
	opts.width, opts.height = 3, 5
	out.Reset()
	require.NoError(t, run(opts, &out, 80))
	assert.Contains(t, out.String(), "Swatch saved to:")
	f, err := os.Open(opts.output)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 5, cfg.Height)

	opts.output = filepath.Join(dir, "loop.gif")
	opts.animate = true
	out.Reset()
	require.NoError(t, run(opts, &out, 80))
	assert.Contains(t, out.String(), "Animation of 3 frames")

	opts.samples = 1
	assert.ErrorIs(t, run(opts, &out, 80), rainbow.ErrInvalidSampleCount)
	opts.samples, opts.start = 4, "#zzz"
	assert.Error(t, run(opts, &out, 80))
	opts.start, opts.output = "#00f", filepath.Join(dir, "x.jpg")
	assert.ErrorIs(t, run(opts, &out, 80), rainbow.ErrUnsupportedFormat)
}
