package cmds

import (
	"fmt"
	"io"
	"os"

	"github.com/spikeekips/stv/util"
)

type VersionCommand struct {
	Out io.Writer `kong:"-"`
}

func (cmd *VersionCommand) Run(version util.Version) error {
	out := cmd.Out
	if out == nil {
		out = os.Stdout
	}

	_, _ = fmt.Fprintln(out, version)

	return nil
}
