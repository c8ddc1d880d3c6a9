package runtime_test

import (
	"testing"

	"github.com/aretw0/guess/internal/runtime"
	"github.com/aretw0/guess/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		target       int
		wantPhases   []domain.Phase
		wantFeedback domain.Feedback
	}{
		{
			name:         "Invalid",
			input:        "x",
			target:       50,
			wantPhases:   []domain.Phase{domain.PhaseAwaitingInput},
			wantFeedback: domain.FeedbackInvalid,
		},
		{
			name:         "Less",
			input:        "1",
			target:       50,
			wantPhases:   []domain.Phase{domain.PhaseComparing, domain.PhaseContinuing, domain.PhaseAwaitingInput},
			wantFeedback: domain.FeedbackTooSmall,
		},
		{
			name:         "Greater",
			input:        "100",
			target:       50,
			wantPhases:   []domain.Phase{domain.PhaseComparing, domain.PhaseContinuing, domain.PhaseAwaitingInput},
			wantFeedback: domain.FeedbackTooBig,
		},
		{
			name:         "Equal",
			input:        "50",
			target:       50,
			wantPhases:   []domain.Phase{domain.PhaseComparing, domain.PhaseWon},
			wantFeedback: domain.FeedbackCorrect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := runtime.Submit(domain.NewState(tt.target), tt.input)
			assert.Equal(t, domain.PhaseValidating, state.Phase)

			var phases []domain.Phase
			for !state.Phase.Stable() {
				state = runtime.Transition(state)
				phases = append(phases, state.Phase)
			}

			assert.Equal(t, tt.wantPhases, phases)
			assert.Equal(t, tt.wantFeedback, state.Feedback)
			assert.Equal(t, tt.target, state.Target())
		})
	}
}

func TestTransition_Pure(t *testing.T) {
	state := runtime.Submit(domain.NewState(50), "10")
	before := state.Clone()

	next := runtime.Transition(state)

	assert.Equal(t, before, state, "Transition must not mutate its argument")
	assert.NotSame(t, state, next)
}

func TestTransition_StableIsNoop(t *testing.T) {
	state := domain.NewState(50)
	assert.Same(t, state, runtime.Transition(state))
}

func TestStep_ReportsRejection(t *testing.T) {
	next, err := runtime.Step(runtime.Submit(domain.NewState(50), "12a"))
	assert.ErrorIs(t, err, domain.ErrNotANumber)
	assert.Equal(t, domain.PhaseAwaitingInput, next.Phase)
	assert.Equal(t, domain.FeedbackInvalid, next.Feedback)

	next, err = runtime.Step(runtime.Submit(domain.NewState(50), "12"))
	assert.NoError(t, err)
	assert.Equal(t, domain.PhaseComparing, next.Phase)

	next, err = runtime.Step(next)
	assert.NoError(t, err)
	assert.Equal(t, 1, next.Attempts)
}
