package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// ErrInterrupted is the cancellation cause recorded when a signal ends a session.
var ErrInterrupted = errors.New("interrupted")

// SignalManager turns OS signals into cancellation of a session context.
// The signal that fired is kept as the context cause.
type SignalManager struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
	sigs   chan os.Signal
	stop   sync.Once
}

// NewSignalManager starts listening for sigs, or SIGINT and SIGTERM when none
// are given, until Stop is called or parent is done.
func NewSignalManager(parent context.Context, sigs ...os.Signal) *SignalManager {
	if len(sigs) == 0 {
		sigs = []os.Signal{os.Interrupt, syscall.SIGTERM}
	}
	ctx, cancel := context.WithCancelCause(parent)
	sm := &SignalManager{
		ctx:    ctx,
		cancel: cancel,
		sigs:   make(chan os.Signal, 1),
	}
	signal.Notify(sm.sigs, sigs...)
	go sm.watch()
	return sm
}

func (sm *SignalManager) watch() {
	select {
	case sig := <-sm.sigs:
		sm.cancel(fmt.Errorf("%w by %v: %w", ErrInterrupted, sig, context.Canceled))
	case <-sm.ctx.Done():
	}
}

// Context returns the context cancelled on signal.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Cause reports why the context ended, or nil while it is live.
func (sm *SignalManager) Cause() error {
	return context.Cause(sm.ctx)
}

// Stop releases the signal subscription and cancels the context. Safe to call twice.
func (sm *SignalManager) Stop() {
	sm.stop.Do(func() {
		signal.Stop(sm.sigs)
		sm.cancel(context.Canceled)
	})
}

// Settle waits up to grace for a cancellation that may trail an input error.
// On some terminals Ctrl+C closes stdin slightly before the signal is delivered.
func (sm *SignalManager) Settle(grace time.Duration) {
	if sm.ctx.Err() != nil {
		return
	}
	timer := time.NewTimer(grace)
	defer timer.Stop()
	select {
	case <-sm.ctx.Done():
	case <-timer.C:
	}
}
