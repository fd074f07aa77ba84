package bitmix

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportSections(t *testing.T) {
	s, err := Compute(counting, identity, Config{InputSize: 2, OutputSize: 2, DigestSize: 2,
		Rounds: 8, Avalanche: true})
	require.NoError(t, err)

	r := s.Report()
	require.Equal(t, uint32(8), r.Samples)
	require.Nil(t, r.BIC)
	require.Nil(t, r.Quadrants)

	var b strings.Builder
	n, err := r.WriteTo(&b)
	require.NoError(t, err)
	require.Equal(t, int64(b.Len()), n)
	require.Equal(t, "    Bias:\n"+
		"        Min: 1.00\n        Avg: 1.00\n        Max: 1.00\n"+
		"    Input Bit Diffusion (digest size = 16 bits):\n"+
		"        Min: 0.0 bits\n        Avg: 0.0 bits\n        Max: 0.0 bits\n"+
		"    Input Bit Diffusion Entropy (digest size = 16 bits):\n"+
		"        Min: 0.0 bits\n        Avg: 0.0 bits\n        Max: 0.0 bits\n", b.String())
}

func TestReportBICOnly(t *testing.T) {
	s, err := Compute(counting, identity, Config{InputSize: 1, OutputSize: 1, Rounds: 4, BIC: true})
	require.NoError(t, err)

	r := s.Report()
	require.Nil(t, r.Bias)
	require.NotNil(t, r.BIC)
	require.Equal(t, 1.0, r.BIC.Avg)

	var b strings.Builder
	_, err = r.WriteTo(&b)
	require.NoError(t, err)
	out := b.String()
	require.NotContains(t, out, "Bias:")
	require.Contains(t, out, "    BIC deviation:\n        Min: 1.0000\n")
	require.Contains(t, out, "        Avg:   0.0000 0.0000 0.0000 1.0000\n")
}

type brokenWriter struct{}

var errBroken = errors.New("broken pipe")

func (brokenWriter) Write([]byte) (int, error) { return 0, errBroken }

func TestReportWriteError(t *testing.T) {
	s, err := Compute(counting, identity, Config{InputSize: 1, OutputSize: 1, Rounds: 2, Avalanche: true})
	require.NoError(t, err)
	n, err := s.Report().WriteTo(brokenWriter{})
	require.ErrorIs(t, err, errBroken)
	require.Zero(t, n)
}
