package guess_test

import (
	"context"
	"testing"

	"github.com/aretw0/guess"
	"github.com/aretw0/guess/pkg/adapters/random"
	"github.com/aretw0/guess/pkg/domain"
	"github.com/aretw0/guess/pkg/ports"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.Engine = (*guess.Engine)(nil)

func TestEngine_DefaultGenerator(t *testing.T) {
	eng := guess.New()
	for i := 0; i < 50; i++ {
		state, err := eng.Start(context.Background())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, state.Target(), domain.MinTarget)
		assert.LessOrEqual(t, state.Target(), domain.MaxTarget)
	}
}

func TestEngine_SessionID(t *testing.T) {
	state, err := guess.New(guess.WithGenerator(random.Fixed(3))).Start(context.Background())
	require.NoError(t, err)
	_, err = uuid.Parse(state.SessionID)
	assert.NoError(t, err, "default session ids are UUIDs")

	eng := guess.New(
		guess.WithGenerator(random.Fixed(3)),
		guess.WithSessionIDs(func() string { return "fixed" }),
	)
	state, err = eng.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fixed", state.SessionID)
}

func TestEngine_Hooks(t *testing.T) {
	var results []domain.Ordering
	eng := guess.New(
		guess.WithGenerator(random.Fixed(50)),
		guess.WithLifecycleHooks(domain.LifecycleHooks{
			OnGuess: func(_ context.Context, e *domain.GuessEvent) {
				results = append(results, e.Result)
			},
		}),
	)

	ctx := context.Background()
	state, err := eng.Start(ctx)
	require.NoError(t, err)
	for _, in := range []string{"10", "90", "50"} {
		state, err = eng.Navigate(ctx, state, in)
		require.NoError(t, err)
	}

	assert.True(t, state.Won())
	assert.Equal(t, []domain.Ordering{domain.Less, domain.Greater, domain.Equal}, results)
}
