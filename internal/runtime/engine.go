package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/guess/internal/logging"
	"github.com/aretw0/guess/pkg/domain"
	"github.com/aretw0/guess/pkg/ports"
)

// Engine is the session controller. It holds no per-session state: the
// target and the current phase travel inside domain.State.
type Engine struct {
	generator ports.TargetGenerator
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a new engine drawing targets from generator.
func NewEngine(generator ports.TargetGenerator, opts ...EngineOption) *Engine {
	e := &Engine{
		generator: generator,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start draws the target exactly once and returns the initial state.
// No state is returned when the generator fails.
func (e *Engine) Start(ctx context.Context) (*domain.State, error) {
	return e.StartSession(ctx, "")
}

// StartSession is Start with a session identifier attached to the state.
func (e *Engine) StartSession(ctx context.Context, sessionID string) (*domain.State, error) {
	target, err := e.generator.Generate(ctx, domain.MinTarget, domain.MaxTarget)
	if err != nil {
		if !errors.Is(err, domain.ErrEntropySource) {
			err = fmt.Errorf("%w: %w", domain.ErrEntropySource, err)
		}
		return nil, fmt.Errorf("failed to generate target: %w", err)
	}

	state := domain.NewState(target)
	state.SessionID = sessionID

	e.logger.Debug("session started", "session_id", sessionID)
	e.emitTransition(ctx, state, "", state.Phase)
	return state, nil
}
