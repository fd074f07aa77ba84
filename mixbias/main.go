package main

import (
	. "fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/p7r0x7/bitmix"
	"github.com/p7r0x7/bitmix/generate"
	"github.com/p7r0x7/bitmix/mixers"
	"github.com/p7r0x7/vainpath"
	. "github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n, rule = "\n", "================================"
const success, failure, invalid = 0, 1, 2

var warnings = 0

func main() { os.Exit(program()) }

// help prints a usage menu. To consistently correctly render this menu in most terminal windows,
// its content should be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "mixbias" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "Measures the avalanche and bit independence of mixing functions.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-hl]"+n,
		spaces, "[-t] [-r <int>] [-p <name>]... [--bic] [--no-avalanche]"+n,
		spaces, "[-o <dir>] [-f png|bmp|tiff] [--no-images]"+n,
		spaces, "[--quiet|no-codes] [--strict] [MIXER...]"+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Each MIXER selects the mixers whose names contain it, ignoring case; without"+n+
		"any, every mixer not hidden by default is measured. Order of arguments placed"+n+
		"after `", name, "` does not matter unless `--` is specified, signaling the end"+n+
		"of parsed flags. Long-form flag equivalents are above."+n)
}

// This program is a command-line interface for bitmix: It measures every selected mixer against
// every selected input pattern, printing a report for each pair and writing its avalanche chart
// as an image.
func program() int {
	if pHelp {
		help()
		return success
	}
	if pList {
		list()
		return success
	}

	format := strings.ToLower(pFormat)
	switch format {
	case "png", "bmp", "tiff":
	default:
		Fprint(os.Stderr, purp, "Unsupported image format: ", zero, pFormat, n)
		return invalid
	}
	if pRounds < 0 {
		Fprint(os.Stderr, purp, "Rounds should be at least 1.", zero, n)
		return invalid
	}
	if pNoAvalanche && !pBIC {
		Fprint(os.Stderr, purp, "Nothing to measure: --no-avalanche needs --bic.", zero, n)
		return invalid
	}

	selected, patterns := mixers.Find(Args()...), selectPatterns()
	if len(selected) == 0 || len(patterns) == 0 {
		Fprint(os.Stderr, purp, "No mixer or input pattern matches the given filters.", zero, n)
		return invalid
	}

	for _, m := range selected {
		Print(n+rule+n, yell, m.Name, zero, n)
		for _, p := range patterns {
			Print(n+"Input bit pattern: ", p.Name, n)
			measure(m, p)
		}
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, n+"1 ", purp, "measurement or chart could not be completed.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, n, warnings, " ", purp, "measurements or charts could not be completed.", zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

// measure runs one mixer against one input pattern and prints its report.
func measure(m mixers.Mixer, p generate.Pattern) {
	cfg := bitmix.Config{
		InputSize:  m.InSize,
		OutputSize: m.OutSize,
		DigestSize: m.Digest,
		Rounds:     p.RoundsFor(m.InSize),
		Avalanche:  !pNoAvalanche,
		BIC:        pBIC,
		MixerSizes: [2]int{m.InSize, m.OutSize},
	}
	if pRounds > 0 {
		cfg.Rounds = pRounds
	}
	if !pQuiet {
		cfg.Progress = progress()
	}

	start := time.Now()
	stats, err := bitmix.Compute(p.Gen, m.Mix, cfg)
	if !pQuiet {
		Fprint(os.Stderr, "\r      \r")
	}
	if err != nil {
		warn(err)
		return
	}
	if _, err = stats.Report().WriteTo(os.Stdout); err != nil {
		warn(err)
	}
	if pTime {
		d := time.Since(start)
		if d > time.Second {
			d = d.Truncate(time.Millisecond)
		}
		Print("    Time: ", d, n)
	}

	if !cfg.Avalanche || pNoImages {
		return
	}
	path := filepath.Join(pOut, bitmix.ChartName(m.Name, p.Name, pFormat))
	if err = bitmix.WriteImage(path, stats.AvalancheGrid()); err != nil {
		warn(err)
		return
	}
	if pNoCodes {
		Print("    Chart: ", filepath.Clean(path), n)
	} else {
		Print("    Chart: ", und, vainpath.Simplify(path), zero, n)
	}
}

// progress returns a Config.Progress callback that redraws a percentage on stderr whenever it
// changes.
func progress() func(done, total int) {
	last := -1
	return func(done, total int) {
		if pct := done * 100 / total; pct != last {
			last = pct
			Fprintf(os.Stderr, "\r%s%3d%%%s", purp, pct, zero)
		}
	}
}

func selectPatterns() []generate.Pattern {
	if len(pPatterns) == 0 {
		return generate.Patterns
	}
	var found []generate.Pattern
	for _, p := range generate.Patterns {
		name := strings.ToLower(p.Name)
		for _, f := range pPatterns {
			if strings.Contains(name, strings.ToLower(f)) {
				found = append(found, p)
				break
			}
		}
	}
	return found
}

func list() {
	Print(yell, "Mixers", zero, " (input -> output bytes, digest bytes):"+n)
	for _, m := range mixers.All {
		hidden := ""
		if m.Hidden {
			hidden = " (only when named)"
		}
		Printf("  %s%s%s: %d -> %d, %d%s"+n, und, m.Name, zero, m.InSize, m.OutSize, m.Digest, hidden)
	}
	Print(n, yell, "Input bit patterns", zero, " (trials):"+n)
	for _, p := range generate.Patterns {
		if p.Rounds == 0 {
			Printf("  %s%s%s: one per input bit"+n, und, p.Name, zero)
		} else {
			Printf("  %s%s%s: %d"+n, und, p.Name, zero, p.Rounds)
		}
	}
}

func warn(err ...interface{}) {
	if pStrict {
		panic(err)
	}
	if !pQuiet {
		Fprint(os.Stderr, purp, "warning: ", zero, Sprint(err...), n)
	}
	warnings++
}
