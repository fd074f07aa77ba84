package bitmix

import (
	"fmt"
	"io"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Report is the printable summary of a finished run. BIC and Quadrants are nil unless the BIC
// chart was accumulated.
type Report struct {
	DigestBits int
	Samples    uint32

	Bias, Diffusion, Entropy *Summary
	BIC                      *Summary
	Quadrants                *Quadrants
}

// Report derives every summary the charts in s support.
func (s *Stats) Report() Report {
	r := Report{DigestBits: s.DigestBits, Samples: s.SampleCount}
	if s.Avalanche != nil {
		bias, diffusion, entropy := s.BiasSummary(), s.DiffusionSummary(), s.EntropySummary()
		r.Bias, r.Diffusion, r.Entropy = &bias, &diffusion, &entropy
	}
	if s.BIC != nil {
		bic, quadrants := s.BICDeviationSummary(), s.QuadrantSummary()
		r.BIC, r.Quadrants = &bic, &quadrants
	}
	return r
}

// WriteTo prints r in the fixed, indented Min/Avg/Max layout used by the command-line tools.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	b := &strings.Builder{}
	if r.Bias != nil {
		fmt.Fprintf(b, "    Bias:\n"+
			"        Min: %0.2f\n        Avg: %0.2f\n        Max: %0.2f\n",
			r.Bias.Min, r.Bias.Avg, r.Bias.Max)
		fmt.Fprintf(b, "    Input Bit Diffusion (digest size = %d bits):\n"+
			"        Min: %0.1f bits\n        Avg: %0.1f bits\n        Max: %0.1f bits\n",
			r.DigestBits, r.Diffusion.Min, r.Diffusion.Avg, r.Diffusion.Max)
		fmt.Fprintf(b, "    Input Bit Diffusion Entropy (digest size = %d bits):\n"+
			"        Min: %0.1f bits\n        Avg: %0.1f bits\n        Max: %0.1f bits\n",
			r.DigestBits, r.Entropy.Min, r.Entropy.Avg, r.Entropy.Max)
	}
	if r.BIC != nil {
		fmt.Fprintf(b, "    BIC deviation:\n"+
			"        Min: %0.4f\n        Avg: %0.4f\n        Max: %0.4f\n",
			r.BIC.Min, r.BIC.Avg, r.BIC.Max)
	}
	if q := r.Quadrants; q != nil {
		fmt.Fprintf(b, "    BIC sorted quadrants (ideal 0.25 each):\n"+
			"        Worst: %s\n        Avg:   %s\n        Best:  %s\n",
			fmtQuadrant(q.Worst), fmtQuadrant(q.Avg), fmtQuadrant(q.Best))
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func fmtQuadrant(q [4]float64) string {
	return fmt.Sprintf("%0.4f %0.4f %0.4f %0.4f", q[0], q[1], q[2], q[3])
}
