package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/guess/pkg/domain"
)

// Render generates the actions (view) for a stable state without transitioning.
// Returns actions, isTerminal (true once the session is won), and error.
func (e *Engine) Render(ctx context.Context, state *domain.State) ([]domain.ActionRequest, bool, error) {
	if !state.Phase.Stable() {
		return nil, false, fmt.Errorf("cannot render transient phase %q", state.Phase)
	}

	var actions []domain.ActionRequest

	if state.Fresh() {
		actions = append(actions, domain.Render(domain.KindIntro, domain.TextIntro))
	}

	actions = append(actions, renderFeedback(state)...)

	if state.Won() {
		return actions, true, nil
	}

	actions = append(actions,
		domain.Render(domain.KindPrompt, domain.TextPrompt),
		domain.ActionRequest{Type: domain.ActionRequestInput},
	)
	return actions, false, nil
}

func renderFeedback(state *domain.State) []domain.ActionRequest {
	switch state.Feedback {
	case domain.FeedbackInvalid:
		return []domain.ActionRequest{domain.Render(domain.KindInvalid, domain.TextInvalid)}
	case domain.FeedbackTooSmall:
		return echo(state, domain.Render(domain.KindHint, domain.TextTooSmall))
	case domain.FeedbackTooBig:
		return echo(state, domain.Render(domain.KindHint, domain.TextTooBig))
	case domain.FeedbackCorrect:
		return echo(state, domain.Render(domain.KindVictory, domain.TextWin))
	default:
		return nil
	}
}

func echo(state *domain.State, verdict domain.ActionRequest) []domain.ActionRequest {
	return []domain.ActionRequest{
		domain.Render(domain.KindEcho, fmt.Sprintf("You guessed: %d", state.Guess)),
		verdict,
	}
}
