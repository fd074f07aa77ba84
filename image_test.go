package bitmix

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func identityStats(t *testing.T) *Stats {
	s, err := Compute(counting, identity, Config{InputSize: 2, OutputSize: 2, Rounds: 16, Avalanche: true})
	require.NoError(t, err)
	return s
}

func TestAvalancheGrid(t *testing.T) {
	g := identityStats(t).AvalancheGrid()
	require.Equal(t, 16, g.Width)
	require.Equal(t, 16, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			want := uint8(0)
			if x == y {
				want = 255
			}
			require.Equal(t, want, g.Pix[y*g.Width+x])
		}
	}

	s := NewStats(8, 8, 8, true, false)
	s.SampleCount = 4
	s.Avalanche[1] = 1
	s.Avalanche[2] = 2
	g = s.AvalancheGrid()
	require.Equal(t, uint8(64), g.Pix[1])
	require.Equal(t, uint8(128), g.Pix[2])
}

func TestEncodeRoundTrip(t *testing.T) {
	g := identityStats(t).AvalancheGrid()
	for format, decode := range map[string]func(*bytes.Buffer) (image.Image, error){
		"png":  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		"bmp":  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		"tiff": func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) },
	} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, g.Encode(&buf, format))
			img, err := decode(&buf)
			require.NoError(t, err)
			require.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds())
			for y := 0; y < 16; y++ {
				for x := 0; x < 16; x++ {
					r, _, _, _ := img.At(x, y).RGBA()
					require.Equal(t, uint32(g.Pix[y*16+x])*0x101, r, "pixel %d,%d", x, y)
				}
			}
		})
	}

	require.ErrorIs(t, g.Encode(&bytes.Buffer{}, "gif"), ErrImageFormat)
}

func TestChartName(t *testing.T) {
	require.Equal(t, "TentHash - random.png", ChartName("TentHash", "random", "png"))
	require.Equal(t, "a-b - c-d.tiff", ChartName("a/b", `c\d`, "tiff"))

	dir := t.TempDir()
	path := filepath.Join(dir, ChartName("forward/backward", "gray code", "bmp"))
	require.Equal(t, dir, filepath.Dir(path))
	require.NoError(t, WriteImage(path, identityStats(t).AvalancheGrid()))
}

func TestWriteImage(t *testing.T) {
	g := identityStats(t).AvalancheGrid()
	dir := t.TempDir()

	for _, name := range []string{"chart.png", "chart.BMP", "chart.tif", "chart.tiff"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteImage(path, g))
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.NotZero(t, info.Size())
	}

	path := filepath.Join(dir, "chart.jpg")
	require.ErrorIs(t, WriteImage(path, g), ErrImageFormat)
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	err = WriteImage(filepath.Join(dir, "missing", "chart.png"), g)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrImageFormat)
}
