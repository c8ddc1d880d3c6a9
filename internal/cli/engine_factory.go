package cli

import (
	"log/slog"

	"github.com/aretw0/guess"
	"github.com/aretw0/guess/pkg/domain"
	"github.com/aretw0/guess/pkg/observability"
	"github.com/aretw0/guess/pkg/ports"
)

// createEngine initializes an engine with standard CLI conventions.
// Metrics may be nil.
func createEngine(gen ports.TargetGenerator, logger *slog.Logger, metrics *observability.Metrics) *guess.Engine {
	hooks := []domain.LifecycleHooks{observability.LoggingHooks(logger)}
	if metrics != nil {
		hooks = append(hooks, metrics.Hooks())
	}

	opts := []guess.Option{
		guess.WithLogger(logger),
		guess.WithLifecycleHooks(observability.Combine(hooks...)),
	}
	if gen != nil {
		opts = append(opts, guess.WithGenerator(gen))
	}
	return guess.New(opts...)
}
