package util

import (
	"fmt"
	"io"
	"os"

	"github.com/replit/sheetstat/internal/config"
)

// Stderr is where Die, ProgressMsg and the diagnostic log write.
// Tests replace it.
var Stderr io.Writer = os.Stderr

// exit terminates the process. Tests replace it.
var exit = os.Exit

// Die is like fmt.Printf, but writes to stderr, adds a newline, and
// terminates the process.
func Die(format string, a ...interface{}) {
	fmt.Fprintf(Stderr, format+"\n", a...)
	exit(1)
}

// Panicf is a composition of fmt.Sprintf and panic.
func Panicf(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}

// ProgressMsg reports what the program is doing, unless --quiet was
// given.
func ProgressMsg(msg string) {
	if !config.Quiet {
		fmt.Fprintln(Stderr, "-->", msg)
	}
}
