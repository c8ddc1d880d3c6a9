package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/guess/pkg/domain"
)

// LoggingHooks writes every lifecycle event to logger at debug level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.DebugContext(ctx, "phase_transition",
				"session_id", e.SessionID,
				"from", e.From,
				"to", e.To,
			)
		},
		OnGuess: func(ctx context.Context, e *domain.GuessEvent) {
			logger.DebugContext(ctx, "guess",
				"session_id", e.SessionID,
				"guess", e.Guess,
				"result", e.Result.String(),
			)
		},
		OnReject: func(ctx context.Context, e *domain.RejectEvent) {
			logger.DebugContext(ctx, "input_rejected",
				"session_id", e.SessionID,
				"error", e.Err,
			)
		},
	}
}

// Combine fans each event out to every non-nil callback, in order.
func Combine(all ...domain.LifecycleHooks) domain.LifecycleHooks {
	var combined domain.LifecycleHooks
	for _, h := range all {
		if h.OnTransition != nil {
			prev := combined.OnTransition
			combined.OnTransition = func(ctx context.Context, e *domain.TransitionEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnTransition(ctx, e)
			}
		}
		if h.OnGuess != nil {
			prev := combined.OnGuess
			combined.OnGuess = func(ctx context.Context, e *domain.GuessEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnGuess(ctx, e)
			}
		}
		if h.OnReject != nil {
			prev := combined.OnReject
			combined.OnReject = func(ctx context.Context, e *domain.RejectEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnReject(ctx, e)
			}
		}
	}
	return combined
}
