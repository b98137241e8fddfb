package commands

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Stdout is where commands write their results.
var Stdout io.Writer = os.Stdout

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

// useColor reports whether w is a terminal.
func useColor(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func colorize(w io.Writer, color, s string) string {
	if !useColor(w) {
		return s
	}
	return color + s + ansiReset
}
