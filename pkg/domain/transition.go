package domain

// Phase is a step of the session state machine.
type Phase string

const (
	PhaseAwaitingInput Phase = "awaiting_input" // Blocked on the host for a line of text
	PhaseValidating    Phase = "validating"     // Raw input is being parsed
	PhaseComparing     Phase = "comparing"      // A parsed guess is being ordered against the target
	PhaseContinuing    Phase = "continuing"     // Directional feedback emitted, looping back
	PhaseWon           Phase = "won"            // Sink state
)

// Stable reports whether the phase waits on something outside the controller.
// Navigation runs transitions until it reaches a stable phase.
func (p Phase) Stable() bool {
	return p == PhaseAwaitingInput || p == PhaseWon
}

// Feedback records what the last iteration produced, for rendering.
type Feedback string

const (
	FeedbackNone     Feedback = ""
	FeedbackInvalid  Feedback = "invalid"
	FeedbackTooSmall Feedback = "too_small"
	FeedbackTooBig   Feedback = "too_big"
	FeedbackCorrect  Feedback = "correct"
)

// FeedbackFor maps a comparison outcome to the feedback it produces.
func FeedbackFor(o Ordering) Feedback {
	switch o {
	case Less:
		return FeedbackTooSmall
	case Greater:
		return FeedbackTooBig
	default:
		return FeedbackCorrect
	}
}
