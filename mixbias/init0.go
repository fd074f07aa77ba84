//go:build windows

package main

import (
	"os"

	. "golang.org/x/sys/windows"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

/* Reports and progress share the console, so both streams need virtual-terminal processing before
any colour is printed; failing that, formatting codes are off by default. */
func init() {
	for _, f := range [...]*os.File{os.Stdout, os.Stderr} {
		var mode uint32
		if err := GetConsoleMode(Handle(f.Fd()), &mode); err != nil {
			pNoCodesDefault = true
			break
		}
		if mode&ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
			continue
		}
		if err := SetConsoleMode(Handle(f.Fd()), mode|ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
			pNoCodesDefault = true
			break
		}
	}
	pNoCodes = pNoCodesDefault
}
