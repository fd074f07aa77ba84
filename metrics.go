package bitmix

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Derived metrics over finished charts. A chart with no samples yields zeroes everywhere instead of
// dividing by zero: no data is not an error here.

// Summary is a min/avg/max reduction.
type Summary struct{ Min, Avg, Max float64 }

// Bias maps a flip probability to its distance from the ideal 0.5, scaled to [0, 1].
func Bias(p float64) float64 { return math.Abs(2*p - 1) }

// Entropy is the binary entropy of p in bits.
func Entropy(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}
	q := 1 - p
	return -p*math.Log2(p) - q*math.Log2(q)
}

// P returns count as a fraction of the chart's samples.
func (s *Stats) P(count uint32) float64 {
	if s.SampleCount == 0 {
		return 0
	}
	return float64(count) / float64(s.SampleCount)
}

// RowDiffusion is the expected number of output bits influenced by input bit in; at most
// OutputBits.
func (s *Stats) RowDiffusion(in int) (sum float64) {
	if s.SampleCount == 0 {
		return 0
	}
	for _, flips := range s.Row(in) {
		sum += 1 - Bias(s.P(flips))
	}
	return sum
}

// RowEntropy sums the flip entropy of every output bit for input bit in.
func (s *Stats) RowEntropy(in int) (sum float64) {
	for _, flips := range s.Row(in) {
		sum += Entropy(s.P(flips))
	}
	return sum
}

// BiasSummary reduces the bias of every avalanche cell.
func (s *Stats) BiasSummary() Summary {
	if s.SampleCount == 0 || len(s.Avalanche) == 0 {
		return Summary{}
	}
	bias := make([]float64, len(s.Avalanche))
	for i, flips := range s.Avalanche {
		bias[i] = Bias(s.P(flips))
	}
	return summarize(bias)
}

// DiffusionSummary reduces RowDiffusion over every input bit.
func (s *Stats) DiffusionSummary() Summary { return s.rows(s.RowDiffusion) }

// EntropySummary reduces RowEntropy over every input bit.
func (s *Stats) EntropySummary() Summary { return s.rows(s.RowEntropy) }

// RowBICDeviation averages (max-min)/max over the quadrant counts of every BIC cell of input bit
// in. A cell whose largest quadrant is empty contributes 0. Independent output bits tend to 0; bits
// that always or never flip together score 1.
func (s *Stats) RowBICDeviation(in int) float64 {
	row := s.BICRow(in)
	if len(row) == 0 || s.SampleCount == 0 {
		return 0
	}
	var sum float64
	for _, q := range row {
		lo, hi := q[0], q[0]
		for _, v := range q[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if hi > 0 {
			sum += float64(hi-lo) / float64(hi)
		}
	}
	return sum / float64(len(row))
}

// BICDeviationSummary reduces RowBICDeviation over every input bit.
func (s *Stats) BICDeviationSummary() Summary {
	if len(s.BIC) == 0 {
		return Summary{}
	}
	return s.rows(s.RowBICDeviation)
}

func (s *Stats) rows(row func(in int) float64) Summary {
	if s.SampleCount == 0 || s.InputBits == 0 {
		return Summary{}
	}
	values := make([]float64, s.InputBits)
	for in := range values {
		values[in] = row(in)
	}
	return summarize(values)
}

func summarize(values []float64) Summary {
	return Summary{Min: floats.Min(values), Avg: stat.Mean(values, nil), Max: floats.Max(values)}
}

// Quadrants summarizes BIC cells after sorting each cell's four quadrant fractions ascending, so
// the shape of the joint distribution is measured regardless of which outcome dominates. Worst
// holds the smallest three slots at their minimum and the largest slot at its maximum; Best is the
// reverse. An ideal mixer keeps all four slots near 0.25.
type Quadrants struct{ Worst, Avg, Best [4]float64 }

// RowQuadrants summarizes the sorted quadrants of input bit in.
func (s *Stats) RowQuadrants(in int) Quadrants {
	row := s.BICRow(in)
	if len(row) == 0 || s.SampleCount == 0 {
		return Quadrants{}
	}
	q := newQuadrants()
	for _, cell := range row {
		var sorted [4]float64
		for k, v := range cell {
			sorted[k] = s.P(v)
		}
		sort.Float64s(sorted[:])
		q.add(sorted, sorted, sorted)
	}
	q.finish(len(row))
	return q
}

// QuadrantSummary reduces RowQuadrants over every input bit: the worst of the worsts, the mean of
// the averages and the best of the bests.
func (s *Stats) QuadrantSummary() Quadrants {
	if len(s.BIC) == 0 || s.SampleCount == 0 {
		return Quadrants{}
	}
	q := newQuadrants()
	for in := 0; in < s.InputBits; in++ {
		row := s.RowQuadrants(in)
		q.add(row.Worst, row.Avg, row.Best)
	}
	q.finish(s.InputBits)
	return q
}

func newQuadrants() Quadrants {
	inf := math.Inf(1)
	return Quadrants{
		Worst: [4]float64{inf, inf, inf, -inf},
		Best:  [4]float64{-inf, -inf, -inf, inf},
	}
}

func (q *Quadrants) add(worst, avg, best [4]float64) {
	for k := 0; k < 3; k++ {
		q.Worst[k] = math.Min(q.Worst[k], worst[k])
		q.Best[k] = math.Max(q.Best[k], best[k])
	}
	q.Worst[3] = math.Max(q.Worst[3], worst[3])
	q.Best[3] = math.Min(q.Best[3], best[3])
	for k := range avg {
		q.Avg[k] += avg[k]
	}
}

func (q *Quadrants) finish(n int) {
	for k := range q.Avg {
		q.Avg[k] /= float64(n)
	}
}
