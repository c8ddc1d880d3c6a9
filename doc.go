/*
Package guess implements an interactive number-guessing session as a small,
deterministic state machine.

A session draws a secret target in 1..100 exactly once, then repeatedly
accepts a line of text, validates it as an integer, compares it with the
target and reports "Too small", "Too big" or a win. Invalid text is
recoverable and simply re-prompts; running out of input is fatal.

# Concept

The engine separates the session logic (pure transitions over domain.State)
from its collaborators: the entropy source (ports.TargetGenerator) and the
host that renders actions and reads input (see package runner). This keeps
every transition reproducible in tests while the CLI wires real entropy and
a terminal.

# Phases

	AwaitingInput -> Validating -> AwaitingInput   (invalid input)
	AwaitingInput -> Validating -> Comparing -> Continuing -> AwaitingInput
	AwaitingInput -> Validating -> Comparing -> Won

# Usage

	eng := guess.New()

	ctx := context.Background()
	state, err := eng.Start(ctx)
	if err != nil {
		log.Fatal(err)
	}

	for {
		actions, terminal, err := eng.Render(ctx, state)
		if err != nil {
			log.Fatal(err)
		}
		for _, act := range actions {
			if msg, ok := act.Payload.(domain.Message); ok {
				fmt.Println(msg.Text)
			}
		}
		if terminal {
			break
		}
		state, err = eng.Navigate(ctx, state, readLine())
		if err != nil {
			log.Fatal(err)
		}
	}
*/
package guess
