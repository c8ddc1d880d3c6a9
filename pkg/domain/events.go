package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTransition EventType = "transition"
	EventGuess      EventType = "guess"
	EventReject     EventType = "reject"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
}

// TransitionEvent represents a move between two phases.
// From is empty for the initial phase of a session.
type TransitionEvent struct {
	EventBase
	From Phase `json:"from,omitempty"`
	To   Phase `json:"to"`
}

// GuessEvent represents a comparison of a parsed guess against the target.
type GuessEvent struct {
	EventBase
	Guess  int      `json:"guess"`
	Result Ordering `json:"result"`
}

// RejectEvent represents raw input that failed to parse.
type RejectEvent struct {
	EventBase
	Input string `json:"input"`
	Err   error  `json:"-"`
}

// LifecycleHooks defines callbacks for session observability.
type LifecycleHooks struct {
	OnTransition func(context.Context, *TransitionEvent)
	OnGuess      func(context.Context, *GuessEvent)
	OnReject     func(context.Context, *RejectEvent)
}
