/*
Package runner implements the execution loop and I/O orchestration for a guessing session.

It acts as the bridge between the session controller (ports.Engine) and the
outside world: it renders the actions the engine asks for, blocks for one line
of input per iteration, and feeds that input back through Navigate until the
session is won.

# Key Components

  - Runner: The loop. It returns nil only once the session is won; any failure
    to obtain input is reported as domain.ErrInputStream.
  - IOHandler: Decouples how actions are shown and how input is read.
  - TextHandler: A standard implementation for interactive CLI usage.
  - SignalManager: Turns SIGINT/SIGTERM into context cancellation.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithSignals(true),
	)

	if _, err := r.Run(ctx, guess.New()); err != nil {
		log.Fatal(err)
	}
*/
package runner
