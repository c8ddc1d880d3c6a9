package runtime

import (
	"context"
	"time"

	"github.com/aretw0/guess/pkg/domain"
)

func (e *Engine) emitTransition(ctx context.Context, state *domain.State, from, to domain.Phase) {
	if e.hooks.OnTransition == nil {
		return
	}
	e.hooks.OnTransition(ctx, &domain.TransitionEvent{
		EventBase: e.base(domain.EventTransition, state),
		From:      from,
		To:        to,
	})
}

func (e *Engine) emitGuess(ctx context.Context, state *domain.State) {
	if e.hooks.OnGuess == nil {
		return
	}
	e.hooks.OnGuess(ctx, &domain.GuessEvent{
		EventBase: e.base(domain.EventGuess, state),
		Guess:     state.Guess,
		Result:    state.Result,
	})
}

func (e *Engine) emitReject(ctx context.Context, state *domain.State, err error) {
	if e.hooks.OnReject == nil {
		return
	}
	e.hooks.OnReject(ctx, &domain.RejectEvent{
		EventBase: e.base(domain.EventReject, state),
		Input:     state.Input,
		Err:       err,
	})
}

func (e *Engine) base(t domain.EventType, state *domain.State) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		SessionID: state.SessionID,
	}
}
