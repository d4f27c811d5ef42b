package terminal

import (
	"os"

	"golang.org/x/term"
)

// Width returns the column count of the terminal behind f, or 0 when f is
// not a terminal.
func Width(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
