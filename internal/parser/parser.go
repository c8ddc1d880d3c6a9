// Package parser converts raw guess text into validated integers.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/guess/pkg/domain"
)

// ParseGuess trims raw and decodes it as a base-10 integer literal.
// Only an optional leading '-' followed by ASCII digits is accepted; the
// value is returned as-is, without clamping to the target range.
// Failures wrap domain.ErrNotANumber.
func ParseGuess(raw string) (int, error) {
	text := strings.TrimSpace(raw)
	if !isIntegerLiteral(text) {
		return 0, fmt.Errorf("%w: %q", domain.ErrNotANumber, text)
	}

	n, err := strconv.ParseInt(text, 10, strconv.IntSize)
	if err != nil {
		// Only range errors are possible past the literal check.
		return 0, fmt.Errorf("%w: %q out of range", domain.ErrNotANumber, text)
	}
	return int(n), nil
}

// isIntegerLiteral rejects what strconv would otherwise tolerate, like a
// leading '+'.
func isIntegerLiteral(s string) bool {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}
