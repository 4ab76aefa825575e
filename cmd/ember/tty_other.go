//go:build !linux

package main

import "os"

// isTerminal is conservative off Linux: diagnostics are printed uncoloured.
func isTerminal(f *os.File) bool {
	return false
}
