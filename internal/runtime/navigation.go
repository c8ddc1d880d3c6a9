package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/guess/internal/parser"
	"github.com/aretw0/guess/pkg/domain"
)

// Navigate feeds one line of raw input into a state awaiting input and
// runs Step until the next stable phase. The argument is not mutated.
func (e *Engine) Navigate(ctx context.Context, state *domain.State, input string) (*domain.State, error) {
	switch state.Phase {
	case domain.PhaseWon:
		return nil, domain.ErrSessionOver
	case domain.PhaseAwaitingInput:
	default:
		return nil, fmt.Errorf("cannot accept input in phase %q", state.Phase)
	}

	next := Submit(state, input)
	e.emitTransition(ctx, next, state.Phase, next.Phase)

	for !next.Phase.Stable() {
		prev := next.Phase
		var rejected error
		next, rejected = Step(next)
		e.emitTransition(ctx, next, prev, next.Phase)

		switch {
		case rejected != nil:
			e.emitReject(ctx, next, rejected)
		case prev == domain.PhaseComparing:
			e.emitGuess(ctx, next)
		}
	}
	return next, nil
}

// Submit moves a state awaiting input into Validating with the given raw text.
func Submit(state *domain.State, input string) *domain.State {
	next := state.Clone()
	next.Input = input
	next.Iterations++
	next.Phase = domain.PhaseValidating
	return next
}

// Transition advances a non-stable state by exactly one phase. It is pure:
// the argument is left untouched and stable states are returned unchanged.
//
//	Validating -> AwaitingInput (invalid) | Comparing
//	Comparing  -> Won (equal) | Continuing
//	Continuing -> AwaitingInput
func Transition(state *domain.State) *domain.State {
	next, _ := Step(state)
	return next
}

// Step is Transition that also returns the reason input was rejected.
// The error is non-nil only on Validating -> AwaitingInput and wraps
// domain.ErrNotANumber.
func Step(state *domain.State) (*domain.State, error) {
	switch state.Phase {
	case domain.PhaseValidating:
		next := state.Clone()
		guess, err := parser.ParseGuess(state.Input)
		if err != nil {
			next.Feedback = domain.FeedbackInvalid
			next.Phase = domain.PhaseAwaitingInput
			return next, err
		}
		next.Guess = guess
		next.Feedback = domain.FeedbackNone
		next.Phase = domain.PhaseComparing
		return next, nil

	case domain.PhaseComparing:
		next := state.Clone()
		next.Attempts++
		next.Result = domain.Compare(state.Guess, state.Target())
		next.Feedback = domain.FeedbackFor(next.Result)
		if next.Result == domain.Equal {
			next.Phase = domain.PhaseWon
		} else {
			next.Phase = domain.PhaseContinuing
		}
		return next, nil

	case domain.PhaseContinuing:
		next := state.Clone()
		next.Phase = domain.PhaseAwaitingInput
		return next, nil

	default:
		return state, nil
	}
}
