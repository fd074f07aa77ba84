package main

import (
	"github.com/p7r0x7/bitmix"
	"github.com/p7r0x7/bitmix/mixers"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const trials = 1 << 14

// monobit feeds m trials inputs from gen and returns the mean deviation of each output bit's
// population from half the trials, as a percentage of half the trials.
func monobit(m mixers.Mixer, gen bitmix.Generator) float64 {
	in, out, tally := make([]byte, m.InSize), make([]byte, m.OutSize), make([]int32, m.OutSize<<3)
	for i := uint64(0); i < trials; i++ {
		gen(i, in)
		m.Mix(in, out)
		for bit := range tally {
			if bitmix.GetBit(out, bit) {
				tally[bit]++
			}
		}
	}
	return meanBias(tally, trials)
}

func meanBias(tally []int32, samples int32) float64 {
	var total int32
	for _, ones := range tally {
		if d := ones - samples>>1; d < 0 {
			total -= d
		} else {
			total += d
		}
	}
	return float64(total) / float64(len(tally)) / float64(samples>>1) * 100
}
