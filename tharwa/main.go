package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"

	"github.com/msallak/tharwa/cmd"
)

func main() {
	// Local settings, if any; a missing .env file is fine.
	_ = godotenv.Load()

	// When invoked by the shell completion hook, this prints the
	// candidates and exits.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"run":     {},
			"topic":   {},
			"version": {},
		},
	}
	completion.Complete("tharwa")

	// With no arguments, start the interactive tracker.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "run")
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
