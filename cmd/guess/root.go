package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/guess/internal/cli"
	"github.com/aretw0/guess/internal/config"
	"github.com/spf13/cobra"
)

// newRootCmd builds the single command of the binary. The game takes no
// arguments and no flags; ambient settings come from the environment.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guess",
		Short: "Guess the secret number between 1 and 100",
		Long: `guess picks a secret number between 1 and 100 and tells you whether each
guess is too small or too big until you find it.

Environment:
  GUESS_LOG_LEVEL       debug, info, warn or error (default warn)
  GUESS_MAX_INPUT_SIZE  longest accepted input line in bytes (default 4096)
  GUESS_METRICS         log session counters on exit (default false)
  NO_COLOR              disable colours`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return cli.RunSession(cmd.Context(), cli.SessionOptions{
				Config:  cfg,
				In:      in,
				Out:     out,
				ErrOut:  errOut,
				Signals: true,
			})
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := newRootCmd(in, out, errOut)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(Execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
