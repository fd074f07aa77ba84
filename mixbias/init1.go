package main

import (
	"os"

	. "github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pRounds, pFormat, pOut, pPatterns, pNoCodesDefault = 0, "", "", []string(nil), false
var pHelp, pBIC, pList, pNoAvalanche, pNoCodes, pNoImages, pQuiet, pStrict, pTime bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	BoolVar(&pBIC, "bic", false,
		purp+"also accumulate the bit independence chart (slow)"+zero)

	StringVarP(&pFormat, "format", "f", "png",
		purp+"avalanche chart image format: png, bmp, or tiff"+zero)

	BoolVarP(&pList, "list", "l", false,
		purp+"list the known mixers and input patterns, then exit"+zero)

	BoolVar(&pNoAvalanche, "no-avalanche", false,
		purp+"skip the avalanche chart"+zero+" (requires --bic)")

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	BoolVar(&pNoImages, "no-images", false,
		purp+"do not write avalanche chart images"+zero)

	StringVarP(&pOut, "out", "o", ".",
		purp+"directory to write avalanche chart images into"+zero)

	StringSliceVarP(&pPatterns, "pattern", "p", nil,
		purp+"run only input patterns whose names contain this"+zero+
			n+purp+"(repeatable, case-insensitive)"+zero)

	Bool("quiet", false,
		purp+"suppress progress and the warning summary"+zero+
			n+"(enables --no-codes)")

	IntVarP(&pRounds, "rounds", "r", 0,
		purp+"override the trial count of every input pattern"+zero)

	BoolVar(&pStrict, "strict", false,
		purp+"cause mixbias to panic on any error"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to measure each pattern"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
}
