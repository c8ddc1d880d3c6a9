package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/guess"
	"github.com/aretw0/guess/pkg/adapters/random"
	"github.com/aretw0/guess/pkg/domain"
	"github.com/aretw0/guess/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, hooks domain.LifecycleHooks, inputs ...string) {
	t.Helper()
	eng := guess.New(
		guess.WithGenerator(random.Fixed(50)),
		guess.WithLifecycleHooks(hooks),
		guess.WithSessionIDs(func() string { return "s1" }),
	)
	ctx := context.Background()
	state, err := eng.Start(ctx)
	require.NoError(t, err)
	for _, in := range inputs {
		state, err = eng.Navigate(ctx, state, in)
		require.NoError(t, err)
	}
}

func TestMetrics_Hooks(t *testing.T) {
	m := observability.NewMetrics(nil)
	play(t, m.Hooks(), "abc", "10", "90", "x", "50")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Rejections))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Guesses.WithLabelValues("less")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Guesses.WithLabelValues("greater")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Guesses.WithLabelValues("equal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("start", "awaiting_input")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Transitions.WithLabelValues("awaiting_input", "validating")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("comparing", "won")))
}

func TestMetrics_Summary(t *testing.T) {
	m := observability.NewMetrics(nil)
	play(t, m.Hooks(), "50")

	summary, err := m.Summary()
	require.NoError(t, err)
	assert.Contains(t, summary, "guess_guesses_total{result=equal}=1")
	assert.Contains(t, summary, "guess_rejected_inputs_total=0")
	assert.IsIncreasing(t, summary)
}

func TestLoggingHooks(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	play(t, observability.LoggingHooks(logger), "abc", "50")

	out := buf.String()
	assert.Contains(t, out, "msg=phase_transition")
	assert.Contains(t, out, "msg=input_rejected")
	assert.Contains(t, out, "msg=guess")
	assert.Contains(t, out, "result=equal")
	assert.Contains(t, out, "session_id=s1")
}

func TestCombine(t *testing.T) {
	var order []string
	a := domain.LifecycleHooks{
		OnGuess: func(context.Context, *domain.GuessEvent) { order = append(order, "a") },
	}
	b := domain.LifecycleHooks{
		OnGuess:  func(context.Context, *domain.GuessEvent) { order = append(order, "b") },
		OnReject: func(context.Context, *domain.RejectEvent) { order = append(order, "reject") },
	}

	play(t, observability.Combine(a, domain.LifecycleHooks{}, b), "zz", "50")

	assert.Equal(t, []string{"reject", "a", "b"}, order)
}
