package guess

import (
	"context"
	"log/slog"

	"github.com/aretw0/guess/internal/logging"
	"github.com/aretw0/guess/internal/runtime"
	"github.com/aretw0/guess/pkg/adapters/random"
	"github.com/aretw0/guess/pkg/domain"
	"github.com/aretw0/guess/pkg/ports"
	"github.com/google/uuid"
)

// Engine is the high-level entry point of the library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime   *runtime.Engine
	generator ports.TargetGenerator
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	newID     func() string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithGenerator injects the source of targets. Defaults to crypto-seeded entropy.
func WithGenerator(g ports.TargetGenerator) Option {
	return func(e *Engine) {
		e.generator = g
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSessionIDs overrides how session identifiers are minted.
func WithSessionIDs(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.generator == nil {
		eng.generator = random.New()
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.newID == nil {
		eng.newID = uuid.NewString
	}

	eng.runtime = runtime.NewEngine(
		eng.generator,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	)
	return eng
}

// Start draws the target and creates the initial state of a new session.
func (e *Engine) Start(ctx context.Context) (*domain.State, error) {
	return e.runtime.StartSession(ctx, e.newID())
}

// Render generates the actions (view) for the current state without transitioning.
// Returns actions, isTerminal (true once the session is won), and error.
func (e *Engine) Render(ctx context.Context, state *domain.State) ([]domain.ActionRequest, bool, error) {
	return e.runtime.Render(ctx, state)
}

// Navigate submits one line of raw input and returns the next stable state.
func (e *Engine) Navigate(ctx context.Context, state *domain.State, input string) (*domain.State, error) {
	return e.runtime.Navigate(ctx, state, input)
}
