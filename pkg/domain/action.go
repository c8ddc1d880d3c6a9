package domain

// ActionRequest represents a side-effect that the engine requests the host to perform.
type ActionRequest struct {
	Type    string // ActionRenderContent or ActionRequestInput
	Payload any    // The data needed to perform the action
}

// Standard Action Types
const (
	// ActionRenderContent requests the host to display content to the user.
	// Payload: Message
	ActionRenderContent = "RENDER_CONTENT"

	// ActionRequestInput requests the host to collect a line of input from the user.
	// Payload: nil
	ActionRequestInput = "REQUEST_INPUT"
)

// MessageKind classifies rendered content so hosts can style it.
type MessageKind string

const (
	KindIntro   MessageKind = "intro"
	KindPrompt  MessageKind = "prompt"
	KindEcho    MessageKind = "echo"
	KindInvalid MessageKind = "invalid"
	KindHint    MessageKind = "hint"
	KindVictory MessageKind = "victory"
)

// Message is the payload of an ActionRenderContent request.
type Message struct {
	Kind MessageKind
	Text string
}

// Texts of the session protocol.
const (
	TextIntro    = "Guess the number!"
	TextPrompt   = "Please input your guess."
	TextInvalid  = "Invalid value is given. Guess again!"
	TextTooSmall = "Too small"
	TextTooBig   = "Too big"
	TextWin      = "You win!"
)

// Render builds a content action.
func Render(kind MessageKind, text string) ActionRequest {
	return ActionRequest{Type: ActionRenderContent, Payload: Message{Kind: kind, Text: text}}
}
