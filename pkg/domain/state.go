package domain

// Fixed bounds of the target range (inclusive).
const (
	MinTarget = 1
	MaxTarget = 100
)

// State represents the current snapshot of a session.
//
// The target is set once by NewState and has no setter; copies of a State
// share the same target for the lifetime of the session.
type State struct {
	// SessionID correlates logs and hooks. Optional.
	SessionID string

	// Phase is the current step of the state machine.
	Phase Phase

	// Input is the raw text received in the current iteration.
	Input string

	// Guess is the last successfully parsed guess. Only meaningful when
	// Feedback is a comparison outcome.
	Guess int

	// Result is the ordering of Guess against the target.
	Result Ordering

	// Feedback is what the last iteration produced.
	Feedback Feedback

	// Iterations counts the lines submitted so far, valid or not.
	Iterations int

	// Attempts counts the guesses compared against the target.
	Attempts int

	target int
}

// NewState creates a session awaiting its first input for the given target.
func NewState(target int) *State {
	return &State{
		Phase:  PhaseAwaitingInput,
		target: target,
	}
}

// Target returns the secret value of the session.
func (s *State) Target() int {
	return s.target
}

// Fresh reports whether no input has been submitted yet.
func (s *State) Fresh() bool {
	return s.Iterations == 0
}

// Won reports whether the session reached its terminal phase.
func (s *State) Won() bool {
	return s.Phase == PhaseWon
}

// Clone returns a shallow copy of s. State holds no reference types, so the
// copy is independent.
func (s *State) Clone() *State {
	next := *s
	return &next
}
