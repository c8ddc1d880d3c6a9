package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/guess/internal/config"
	"github.com/aretw0/guess/internal/testutils"
	"github.com/aretw0/guess/pkg/adapters/random"
	"github.com/aretw0/guess/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{LogLevel: "warn", MaxInputSize: 4096}
}

func TestRunSession_Win(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := RunSession(context.Background(), SessionOptions{
		Config:    testConfig(),
		In:        testutils.Script("10", "90", "50"),
		Out:       out,
		ErrOut:    errOut,
		Generator: random.Fixed(50),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out.String(), domain.TextIntro))
	assert.Contains(t, out.String(), "Too small\n")
	assert.Contains(t, out.String(), "Too big\n")
	assert.True(t, strings.HasSuffix(out.String(), "You guessed: 50\nYou win!\n"))
	assert.NotContains(t, out.String(), "\x1b[", "buffers are never styled")
	assert.Empty(t, errOut.String())
}

func TestRunSession_InputEnds(t *testing.T) {
	out := &bytes.Buffer{}
	err := RunSession(context.Background(), SessionOptions{
		Config:    testConfig(),
		In:        testutils.Script("abc"),
		Out:       out,
		ErrOut:    &bytes.Buffer{},
		Generator: random.Fixed(50),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInputStream)
	assert.Contains(t, err.Error(), "input ended before the number was guessed")
	assert.Contains(t, out.String(), domain.TextInvalid)
	assert.NotContains(t, out.String(), domain.TextWin)
}

func TestRunSession_EntropyFailure(t *testing.T) {
	out := &bytes.Buffer{}
	err := RunSession(context.Background(), SessionOptions{
		Config:    testConfig(),
		In:        testutils.Script("50"),
		Out:       out,
		ErrOut:    &bytes.Buffer{},
		Generator: random.New(random.WithEntropy(strings.NewReader(""))),
	})
	assert.ErrorIs(t, err, domain.ErrEntropySource)
	assert.Empty(t, out.String())
}

func TestRunSession_DebugLogsAndMetrics(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "debug"
	cfg.Metrics = true

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := RunSession(context.Background(), SessionOptions{
		Config:    cfg,
		In:        testutils.Script("oops", "50"),
		Out:       out,
		ErrOut:    errOut,
		Generator: random.Fixed(50),
	})
	require.NoError(t, err)

	logs := errOut.String()
	assert.Equal(t, 1, strings.Count(logs, "msg=input_rejected"), logs)
	assert.Equal(t, 1, strings.Count(logs, "msg=guess "), logs)
	assert.NotContains(t, logs, "input rejected", "events are logged by hooks only")
	assert.NotContains(t, logs, "guess compared", "events are logged by hooks only")
	assert.Contains(t, logs, "msg=\"session completed\"")
	assert.Contains(t, logs, "guess_rejected_inputs_total=1")
	assert.NotContains(t, out.String(), "level=", "logs stay off stdout")
}

func TestRunSession_BadLevel(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "nope"
	err := RunSession(context.Background(), SessionOptions{Config: cfg, Generator: random.Fixed(1)})
	assert.Error(t, err)
}

func TestRunSession_DefaultsToStderr(t *testing.T) {
	out := &bytes.Buffer{}
	err := RunSession(context.Background(), SessionOptions{
		Config:    testConfig(),
		In:        testutils.Script("50"),
		Out:       out,
		Generator: random.Fixed(50),
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), domain.TextWin)
}
