package domain

import "fmt"

// Ordering is the outcome of comparing a guess against the target.
// Values match the cmp.Compare convention.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Compare orders guess relative to target.
func Compare(guess, target int) Ordering {
	switch {
	case guess < target:
		return Less
	case guess > target:
		return Greater
	default:
		return Equal
	}
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		panic(fmt.Sprintf("domain: unknown ordering %d", int(o)))
	}
}
