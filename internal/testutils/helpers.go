package testutils

import (
	"strings"
)

// Script returns a reader that yields each line followed by a newline,
// simulating a user typing at a terminal.
func Script(lines ...string) *strings.Reader {
	return strings.NewReader(Lines(lines...))
}

// Lines joins lines with a trailing newline after each, the shape of a
// session transcript on stdout.
func Lines(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
