// Package config contains global variables that are set according to
// the command line, and the optional display settings file.
package config

// Quiet is true if --quiet was passed on the command line.
var Quiet bool
