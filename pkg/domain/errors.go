package domain

import "errors"

// ErrNotANumber is returned when raw input is not a base-10 integer literal.
// It is recoverable: the session re-prompts.
var ErrNotANumber = errors.New("not a number")

// ErrInputStream is returned when the host cannot supply another line of input.
var ErrInputStream = errors.New("input stream failed")

// ErrEntropySource is returned when the target cannot be generated at session start.
var ErrEntropySource = errors.New("entropy source unavailable")

// ErrInvalidRange is returned when a generator is asked for a range with low > high.
var ErrInvalidRange = errors.New("invalid range")

// ErrSessionOver is returned when input is submitted to a session that has already been won.
var ErrSessionOver = errors.New("session is over")
