package bitmix

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var ErrImageFormat = errors.New("bitmix: unsupported image format")

// Grid is a row-major field of 8-bit intensities, Width*Height long.
type Grid struct {
	Pix           []uint8
	Width, Height int
}

// AvalancheGrid renders the avalanche chart one pixel per cell: a row per input bit, a column per
// output bit, brightness proportional to the cell's flip probability. A chart with no samples
// renders black.
func (s *Stats) AvalancheGrid() Grid {
	g := Grid{Pix: make([]uint8, len(s.Avalanche)), Width: s.OutputBits, Height: s.InputBits}
	if s.SampleCount == 0 {
		return g
	}
	for i, flips := range s.Avalanche {
		v := math.Round(255 * float64(flips) / float64(s.SampleCount))
		g.Pix[i] = uint8(math.Max(0, math.Min(255, v)))
	}
	return g
}

// Image wraps g as an 8-bit grayscale image without copying.
func (g Grid) Image() *image.Gray {
	return &image.Gray{Pix: g.Pix, Stride: g.Width, Rect: image.Rect(0, 0, g.Width, g.Height)}
}

// Encode writes g to w as format: "png", "bmp" or "tiff". All three are lossless.
func (g Grid) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, g.Image())
	case "bmp":
		return bmp.Encode(w, g.Image())
	case "tif", "tiff":
		return tiff.Encode(w, g.Image(), &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrImageFormat, format)
}

var unsafeNameChars = strings.NewReplacer("/", "-", "\\", "-")

// ChartName is the file name of the avalanche chart for a mixer and input pattern. Path separators
// in either name are replaced so the chart always lands directly in its output directory.
func ChartName(mixer, pattern, format string) string {
	return unsafeNameChars.Replace(mixer + " - " + pattern + "." + format)
}

// WriteImage encodes g to path, choosing the format from the file extension. Failures leave any
// in-memory statistics untouched; the caller decides whether to retry.
func WriteImage(path string, g Grid) (err error) {
	switch format := strings.ToLower(filepath.Ext(path)); format {
	case ".png", ".bmp", ".tif", ".tiff":
	default:
		return fmt.Errorf("%w: %q", ErrImageFormat, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bitmix: creating image: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("bitmix: closing image: %w", cerr)
		}
	}()
	if err = g.Encode(f, strings.TrimPrefix(filepath.Ext(path), ".")); err != nil {
		return fmt.Errorf("bitmix: writing image: %w", err)
	}
	return nil
}
