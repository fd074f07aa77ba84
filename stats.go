package bitmix

import (
	"errors"
	"math"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file holds the count charts behind every measurement and the single-pass accumulator that
// fills them. Nothing here prints; callers that want progress pass a callback through Config.

// MixFunc is a mixing function under test. It must be deterministic and must treat out purely as
// an output parameter, overwriting every byte without reading any of them.
type MixFunc func(in, out []byte)

// Generator fills out with the input for trial index. Calling it twice with the same index and
// buffer length must produce identical bytes.
type Generator func(index uint64, out []byte)

var (
	ErrRounds        = errors.New("bitmix: rounds must be at least 1")
	ErrTooManyRounds = errors.New("bitmix: rounds overflow the 32-bit chart counters")
	ErrInputSize     = errors.New("bitmix: input size must be at least 1 byte")
	ErrOutputSize    = errors.New("bitmix: output size must be at least 1 byte")
	ErrNoCharts      = errors.New("bitmix: neither avalanche nor BIC was requested")
	ErrSizeMismatch  = errors.New("bitmix: buffer sizes differ from the mixer's registered sizes")
)

// Config describes one measurement run. Sizes are in bytes; DigestSize is informational only and
// is carried through to the report.
type Config struct {
	InputSize, OutputSize, DigestSize int
	Rounds                            int
	Avalanche, BIC                    bool

	/* Sizes the mixer was registered with, input then output; zero skips the check. */
	MixerSizes [2]int

	/* Called after each completed trial with the number of trials done so far. */
	Progress func(done, total int)
}

// Validate reports the first configuration error in c, if any.
func (c Config) Validate() error {
	switch {
	case c.Rounds < 1:
		return ErrRounds
	case uint64(c.Rounds) > math.MaxUint32:
		return ErrTooManyRounds
	case c.InputSize < 1:
		return ErrInputSize
	case c.OutputSize < 1:
		return ErrOutputSize
	case !c.Avalanche && !c.BIC:
		return ErrNoCharts
	case c.MixerSizes != [2]int{} && c.MixerSizes != [2]int{c.InputSize, c.OutputSize}:
		return ErrSizeMismatch
	}
	return nil
}

// Stats is the pair of count charts accumulated over one run.
//
// Avalanche is InputBits*OutputBits long; cell (in, out) counts the trials in which flipping input
// bit in flipped output bit out. BIC is InputBits*OutputBits*(OutputBits-1) long; for input bit in,
// output bit i and partner offset j, the cell holds the counts of the four joint outcomes of output
// bits i and Partner(i, j): {both, neither, only i, only the partner}. Either chart is nil when it
// was not requested.
type Stats struct {
	InputBits, OutputBits, DigestBits int
	SampleCount                       uint32

	Avalanche []uint32
	BIC       [][4]uint32
}

// Quadrant positions within a BIC cell.
const (
	Both = iota
	Neither
	OnlyFirst
	OnlySecond
)

// NewStats allocates empty charts for the given bit lengths.
func NewStats(inputBits, outputBits, digestBits int, avalanche, bic bool) *Stats {
	s := &Stats{InputBits: inputBits, OutputBits: outputBits, DigestBits: digestBits}
	if avalanche {
		s.Avalanche = make([]uint32, inputBits*outputBits)
	}
	if bic {
		s.BIC = make([][4]uint32, inputBits*s.bicStride())
	}
	return s
}

/* Every input bit owns OutputBits*(OutputBits-1) BIC cells: the stride is keyed to the output
space only, so charts with InputBits != OutputBits neither alias nor overrun. */
func (s *Stats) bicStride() int { return s.OutputBits * (s.OutputBits - 1) }

// Partner returns the output bit paired with output bit i at offset j, for j in [0, OutputBits-1).
// Over all j it visits every other output bit exactly once.
func (s *Stats) Partner(i, j int) int { return (i + j + 1) % s.OutputBits }

// Get returns the avalanche count for the given input/output bit pair.
func (s *Stats) Get(in, out int) uint32 { return s.Avalanche[in*s.OutputBits+out] }

// Row returns the avalanche counts of input bit in; the slice aliases the chart.
func (s *Stats) Row(in int) []uint32 {
	start := in * s.OutputBits
	return s.Avalanche[start : start+s.OutputBits]
}

// BICCell returns the quadrant counts for input bit in, output bit i and partner offset j.
func (s *Stats) BICCell(in, i, j int) [4]uint32 {
	return s.BIC[in*s.bicStride()+i*(s.OutputBits-1)+j]
}

// BICRow returns every BIC cell of input bit in; the slice aliases the chart.
func (s *Stats) BICRow(in int) [][4]uint32 {
	stride := s.bicStride()
	start := in * stride
	return s.BIC[start : start+stride]
}

// accumulate records the flips between base and tweaked, the outputs for an untouched and a
// single-bit-flipped input, against input bit in.
func (s *Stats) accumulate(in int, base, tweaked []byte) {
	if s.Avalanche != nil {
		row := s.Row(in)
		for out := range row {
			if Flipped(base, tweaked, out) {
				row[out]++
			}
		}
	}

	if s.BIC != nil {
		row, partners := s.BICRow(in), s.OutputBits-1
		for i := 0; i < s.OutputBits; i++ {
			a := Flipped(base, tweaked, i)
			cells := row[i*partners : (i+1)*partners]
			for j := range cells {
				switch b := Flipped(base, tweaked, s.Partner(i, j)); {
				case a && b:
					cells[j][Both]++
				case !a && !b:
					cells[j][Neither]++
				case a:
					cells[j][OnlyFirst]++
				default:
					cells[j][OnlySecond]++
				}
			}
		}
	}
}

// Compute runs cfg.Rounds trials of mix over inputs from gen and returns the accumulated charts.
//
// Trial r fills the input from gen(r), mixes it once as a baseline, then mixes it once more per
// input bit with that bit flipped, comparing each tweaked output against the baseline. mix is
// called exactly Rounds*(1+8*InputSize) times. A panic in gen or mix aborts the run.
func Compute(gen Generator, mix MixFunc, cfg Config) (*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	inBits, outBits := cfg.InputSize<<3, cfg.OutputSize<<3
	s := NewStats(inBits, outBits, cfg.DigestSize<<3, cfg.Avalanche, cfg.BIC)

	input, output := make([]byte, cfg.InputSize), make([]byte, cfg.OutputSize)
	tweakedIn, tweakedOut := make([]byte, cfg.InputSize), make([]byte, cfg.OutputSize)

	for round := 0; round < cfg.Rounds; round++ {
		gen(uint64(round), input)
		mix(input, output)

		copy(tweakedIn, input)
		for bit := 0; bit < inBits; bit++ {
			FlipBit(tweakedIn, bit)
			mix(tweakedIn, tweakedOut)
			FlipBit(tweakedIn, bit) /* Restores the baseline for the next bit. */

			s.accumulate(bit, output, tweakedOut)
		}

		s.SampleCount++
		if cfg.Progress != nil {
			cfg.Progress(round+1, cfg.Rounds)
		}
	}
	return s, nil
}
