package ports

import "context"

// TargetGenerator produces the secret value of a session.
type TargetGenerator interface {
	// Generate returns a value uniformly distributed over [low, high].
	// It returns domain.ErrInvalidRange if low > high and an error wrapping
	// domain.ErrEntropySource if no value can be produced.
	Generate(ctx context.Context, low, high int) (int, error)
}

// GeneratorFunc adapts a plain function to TargetGenerator.
type GeneratorFunc func(ctx context.Context, low, high int) (int, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, low, high int) (int, error) {
	return f(ctx, low, high)
}
