package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/guess/internal/config"
	"github.com/aretw0/guess/internal/logging"
	"github.com/aretw0/guess/internal/presentation/tui"
	"github.com/aretw0/guess/pkg/domain"
	"github.com/aretw0/guess/pkg/observability"
	"github.com/aretw0/guess/pkg/ports"
	"github.com/aretw0/guess/pkg/runner"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// SessionOptions contains everything a session needs from the process.
type SessionOptions struct {
	Config config.Config

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// Generator overrides the crypto-seeded default.
	Generator ports.TargetGenerator

	// Signals enables SIGINT/SIGTERM handling.
	Signals bool
}

// RunSession plays one session to completion.
// It returns nil only when the session is won.
func RunSession(ctx context.Context, opts SessionOptions) error {
	level, err := opts.Config.Level()
	if err != nil {
		return err
	}
	logger := newLogger(opts.ErrOut, level)

	var metrics *observability.Metrics
	if opts.Config.Metrics {
		metrics = observability.NewMetrics(nil)
	}

	engine := createEngine(opts.Generator, logger, metrics)

	handler := runner.NewTextHandler(opts.In, opts.Out,
		runner.WithMaxInputSize(opts.Config.MaxInputSize),
		runner.WithTextHandlerRenderer(tui.NewRenderer(colorProfile(opts.Out, opts.Config.NoColor))),
		runner.WithTextHandlerLogger(logger),
	)

	defer handler.Close()

	r := runner.NewRunner(
		runner.WithInputHandler(handler),
		runner.WithLogger(logger),
		runner.WithSignals(opts.Signals),
	)

	finalState, runErr := r.Run(ctx, engine)

	logCompletion(logger, finalState, runErr)
	if metrics != nil {
		logMetrics(logger, metrics)
	}
	return classify(runErr)
}

// newLogger writes to w, or to the process stderr when w is nil.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil || w == io.Writer(os.Stderr) {
		return logging.New(level)
	}
	return logging.NewWithWriter(w, level)
}

// colorProfile styles only real terminals that have not opted out.
func colorProfile(w io.Writer, noColor bool) termenv.Profile {
	f, ok := w.(*os.File)
	if noColor || !ok || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

func logCompletion(logger *slog.Logger, state *domain.State, err error) {
	attrs := []any{}
	if state != nil {
		attrs = append(attrs, "session_id", state.SessionID, "phase", state.Phase)
	}
	if err != nil {
		logger.Debug("session aborted", append(attrs, "err", err)...)
		return
	}
	logger.Debug("session completed", attrs...)
}

func logMetrics(logger *slog.Logger, metrics *observability.Metrics) {
	summary, err := metrics.Summary()
	if err != nil {
		logger.Warn("failed to summarise metrics", "err", err)
		return
	}
	for _, line := range summary {
		logger.Info("metric", "value", line)
	}
}

// classify adds a user-facing explanation to fatal errors.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInputStream):
		return fmt.Errorf("input ended before the number was guessed: %w", err)
	case errors.Is(err, domain.ErrEntropySource):
		return fmt.Errorf("could not pick a number: %w", err)
	default:
		return err
	}
}
