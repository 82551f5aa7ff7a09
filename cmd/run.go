package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "start the interactive investment tracker" }
func (*runCmd) Usage() string {
	return `tharwa run

  Starts the interactive menu: sign up, login, manage assets, compute
  zakat, connect accounts and export reports. All state lives in memory
  and is discarded on exit.
`
}

func (*runCmd) SetFlags(f *flag.FlagSet) {}

func (*runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := NewApp(ConfigFromEnv())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p := NewPrompter(os.Stdin, os.Stdout)
	if err := Loop(app, p); err != nil && !errors.Is(err, io.EOF) {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
