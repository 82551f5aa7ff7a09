package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// Version of the tool, overridable at build time with
// -ldflags "-X github.com/msallak/tharwa/cmd.Version=...".
var Version = "1.0.0"

type versionCmd struct{}

func (*versionCmd) Name() string             { return "version" }
func (*versionCmd) Synopsis() string         { return "print the tool version" }
func (*versionCmd) Usage() string            { return "tharwa version\n" }
func (*versionCmd) SetFlags(f *flag.FlagSet) {}

func (*versionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Printf("tharwa version %s\n", Version)
	return subcommands.ExitSuccess
}
