package runner

import (
	"context"

	"github.com/aretw0/guess/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
type IOHandler interface {
	// Output presents the actions to the user.
	// Returns true if the actions ask for user input.
	Output(ctx context.Context, actions []domain.ActionRequest) (bool, error)

	// Input blocks for one line from the user. It must return promptly with
	// ctx.Err() once ctx is done, and io.EOF once the source is exhausted.
	Input(ctx context.Context) (string, error)
}

// ContentRenderer transforms a message before it is written.
// This allows terminal styling without coupling the core package.
type ContentRenderer func(domain.Message) string
