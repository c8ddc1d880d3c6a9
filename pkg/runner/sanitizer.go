package runner

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxInputSize is 4KB, far beyond any integer literal.
const DefaultMaxInputSize = 4096

var (
	ErrInputTooLarge    = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8      = errors.New("input contains invalid UTF-8 sequences")
	ErrControlCharacter = errors.New("input contains control characters")
)

// SanitizeInput vets one line of input. The line terminator is dropped; the
// rest must fit within limit bytes, be valid UTF-8 and carry no control
// characters other than tab. A non-positive limit selects DefaultMaxInputSize.
//
// Nothing is stripped or truncated: an altered line could read as a
// different guess, so unsafe lines are rejected whole.
func SanitizeInput(input string, limit int) (string, error) {
	if limit <= 0 {
		limit = DefaultMaxInputSize
	}
	line := strings.TrimRight(input, "\r\n")

	if len(line) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(line), limit)
	}
	if !utf8.ValidString(line) {
		return "", ErrInvalidUTF8
	}
	if i := strings.IndexFunc(line, isUnsafeControl); i >= 0 {
		r, _ := utf8.DecodeRuneInString(line[i:])
		return "", fmt.Errorf("%w: %U at byte %d", ErrControlCharacter, r, i)
	}
	return line, nil
}

func isUnsafeControl(r rune) bool {
	return unicode.IsControl(r) && r != '\t'
}
