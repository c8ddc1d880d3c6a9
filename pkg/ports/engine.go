package ports

import (
	"context"

	"github.com/aretw0/guess/pkg/domain"
)

// Engine is the contract a host loop drives. Implementations keep no
// per-session state of their own: everything lives in domain.State.
type Engine interface {
	// Start draws the target and returns the initial state.
	Start(ctx context.Context) (*domain.State, error)

	// Render calculates the presentation (actions) for a given state without advancing it.
	// The boolean is true when the state is terminal.
	Render(ctx context.Context, state *domain.State) ([]domain.ActionRequest, bool, error)

	// Navigate feeds one line of raw input and returns the next stable state.
	Navigate(ctx context.Context, state *domain.State, input string) (*domain.State, error)
}
