package main

import (
	"fmt"
	"os"

	"github.com/spikeekips/stv/launch/cmds"
	"github.com/spikeekips/stv/util"
)

var Version = "v0.0.1"

type mainFlags struct {
	Version  cmds.VersionCommand  `cmd:"" help:"print version"`
	Tabulate cmds.TabulateCommand `cmd:"" help:"tabulate ballots by single transferable vote"`
	Convert  cmds.ConvertCommand  `cmd:"" help:"convert csv exported from Google Forms into ballots"`
}

func main() {
	flags := &mainFlags{
		Tabulate: cmds.NewTabulateCommand(),
		Convert:  cmds.NewConvertCommand(),
	}

	kctx, err := cmds.Context(os.Args[1:], flags)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %+v\n", err)

		os.Exit(1)
	}

	version := util.Version(Version)
	if err := version.IsValid(nil); err != nil {
		kctx.FatalIfErrorf(err)
	}

	kctx.FatalIfErrorf(kctx.Run(version))

	os.Exit(0)
}
