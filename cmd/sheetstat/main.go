// Package main implements the sheetstat binary. It is the only
// public-facing entry point to sheetstat, since its Go packages are
// all internal.
package main

import "github.com/replit/sheetstat/internal/cli"

// Main entry point for the sheetstat binary.
func main() {
	cli.DoCLI()
}
