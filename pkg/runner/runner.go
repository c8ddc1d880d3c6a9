package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/guess/internal/logging"
	"github.com/aretw0/guess/pkg/domain"
	"github.com/aretw0/guess/pkg/ports"
)

// Runner handles the execution loop of a session using provided IO.
// This allows for easy testing and integration with different frontends.
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler on Stdin/Stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// HandleSignals installs a SignalManager for the duration of Run.
	HandleSignals bool
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run starts a session on engine and drives it until it is won.
// It returns the last state reached. The error is nil only for a won session;
// failures to obtain input wrap domain.ErrInputStream, and failures to start
// wrap domain.ErrEntropySource.
func (r *Runner) Run(ctx context.Context, engine ports.Engine) (*domain.State, error) {
	handler := r.resolveHandler()

	var signals *SignalManager
	if r.HandleSignals {
		signals = NewSignalManager(ctx)
		defer signals.Stop()
		ctx = signals.Context()
	}

	state, err := engine.Start(ctx)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("runner started", "session_id", state.SessionID)

	for {
		// A. Render
		actions, terminal, err := engine.Render(ctx, state)
		if err != nil {
			return state, fmt.Errorf("render error: %w", err)
		}

		// B. Output
		needsInput, err := handler.Output(ctx, actions)
		if err != nil {
			return state, fmt.Errorf("output error: %w", err)
		}

		if terminal {
			r.Logger.Debug("session won", "session_id", state.SessionID, "guess", state.Guess)
			return state, nil
		}
		if !needsInput {
			return state, fmt.Errorf("phase %q rendered no input request", state.Phase)
		}

		// C. Input
		input, err := r.handleInput(ctx, handler, signals)
		if err != nil {
			r.Logger.Debug("input failed", "session_id", state.SessionID, "err", err)
			return state, err
		}

		// D. Navigate
		state, err = engine.Navigate(ctx, state, input)
		if err != nil {
			return state, fmt.Errorf("navigation error: %w", err)
		}
	}
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		// Memoize to prevent creating new pumps on subsequent Run() calls
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r.Handler
}

// signalGrace is how long a failed read waits for a trailing interrupt.
const signalGrace = 100 * time.Millisecond

// handleInput reads one line. Every failure is fatal to the session and is
// classified as an input stream error; interrupts carry their cancellation cause.
func (r *Runner) handleInput(ctx context.Context, handler IOHandler, signals *SignalManager) (string, error) {
	val, err := handler.Input(ctx)
	if err == nil {
		return val, nil
	}

	if signals != nil {
		signals.Settle(signalGrace)
	}
	if ctx.Err() != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInputStream, context.Cause(ctx))
	}
	return "", fmt.Errorf("%w: %w", domain.ErrInputStream, err)
}
