package sink

import (
	"os"

	"golang.org/x/term"
)

// Redirected reports whether f is not an interactive terminal, for example
// a pipe or a regular file.
func Redirected(f *os.File) bool {
	return !term.IsTerminal(int(f.Fd()))
}
