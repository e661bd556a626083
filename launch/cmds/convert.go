package cmds

import (
	"bytes"

	"golang.org/x/xerrors"

	"github.com/spikeekips/stv/source"
	"github.com/spikeekips/stv/util"
)

type ConvertCommand struct {
	BaseCommand
	Input  string `arg:"" name:"input" help:"csv exported from Google Forms; '-' is stdin"`
	Output string `arg:"" name:"output" optional:"" default:"-" help:"ballots file; '-' is stdout"`
}

func NewConvertCommand() ConvertCommand {
	return ConvertCommand{BaseCommand: NewBaseCommand("convert")}
}

func (cmd *ConvertCommand) Run(version util.Version) error {
	if err := cmd.Initialize(cmd, version); err != nil {
		return xerrors.Errorf("failed to initialize command: %w", err)
	}

	r, closer, err := cmd.openInput(cmd.Input)
	if err != nil {
		return xerrors.Errorf("failed to open input: %w", err)
	}

	defer func() {
		_ = closer()
	}()

	var bf bytes.Buffer

	n, err := source.ConvertGoogleForm(r, &bf)
	if err != nil {
		return xerrors.Errorf("failed to convert: %w", err)
	}

	if err := cmd.write(bf.Bytes()); err != nil {
		return xerrors.Errorf("failed to write output: %w", err)
	}

	cmd.Log().Info().Int("ballots", n).Str("input", cmd.Input).Str("output", cmd.Output).Msg("converted")

	return nil
}

// write opens the output only after the whole input is converted, so a failed
// conversion never leaves a partial file.
func (cmd *ConvertCommand) write(b []byte) error {
	w, closef, err := cmd.openOutput(cmd.Output)
	if err != nil {
		return err
	}

	if _, err := w.Write(b); err != nil {
		_ = closef()

		return err
	}

	return closef()
}
