package flog

import (
	"fmt"
	"os"
)

// VerboseEnabled gates Verbose output. Set once by the CLI from --verbose;
// never read by the core engine.
var VerboseEnabled = false

// Info prints a progress line, always shown.
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// Verbose prints a progress line only when VerboseEnabled is set.
func Verbose(format string, args ...interface{}) {
	if VerboseEnabled {
		fmt.Println("[VERBOSE] " + fmt.Sprintf(format, args...))
	}
}

// Warning prints a warning line, always shown.
func Warning(format string, args ...interface{}) {
	fmt.Println("WARNING: " + fmt.Sprintf(format, args...))
}

// Error prints an error line to stderr, always shown.
func Error(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, "ERROR: "+fmt.Sprintf(format, args...))
}

// Puzzle logs one puzzle's solved phase result: its index, the size of its
// final cover, and its cost. The CLI calls it for every puzzle it writes;
// the line is printed only when VerboseEnabled is set.
func Puzzle(index, coverSize, cost int) {
	Verbose("puzzle %d: %d greenhouse(s), cost %d", index, coverSize, cost)
}
