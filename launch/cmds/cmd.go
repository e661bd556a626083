package cmds

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"github.com/spikeekips/stv/util"
	"github.com/spikeekips/stv/util/logging"
)

var (
	DefaultName        = "stv"
	DefaultDescription = "single transferable vote tabulator"
	MainOptions        = kong.HelpOptions{NoAppSummary: false, Compact: true, Summary: false, Tree: true}
)

var defaultKongOptions = []kong.Option{
	kong.Name(DefaultName),
	kong.Description(DefaultDescription),
	kong.UsageOnError(),
	kong.ConfigureHelp(MainOptions),
	LogVars,
}

func Context(args []string, flags interface{}, options ...kong.Option) (*kong.Context, error) {
	ops := make([]kong.Option, len(defaultKongOptions)+len(options))
	copy(ops, defaultKongOptions)
	copy(ops[len(defaultKongOptions):], options)

	p, err := kong.New(flags, ops...)
	if err != nil {
		return nil, err
	}

	return p.Parse(args)
}

type BaseCommand struct {
	*logging.Logging `kong:"-"`
	LogFlags
	LogOutput io.Writer `kong:"-"`
	Out       io.Writer `kong:"-"`
	In        io.Reader `kong:"-"`
	root      *logging.Logging
	version   util.Version
}

func NewBaseCommand(name string) BaseCommand {
	return BaseCommand{
		Logging: newCommandLogging(name),
	}
}

func newCommandLogging(name string) *logging.Logging {
	return logging.NewLogging(func(c zerolog.Context) zerolog.Context {
		return c.Str("module", fmt.Sprintf("command-%s", name))
	})
}

func (cmd *BaseCommand) Initialize(flags interface{}, version util.Version) error {
	if cmd.Logging == nil {
		cmd.Logging = newCommandLogging("unknown")
	}

	if cmd.LogOutput == nil {
		cmd.LogOutput = os.Stderr
	}

	if cmd.Out == nil {
		cmd.Out = os.Stdout
	}

	if cmd.In == nil {
		cmd.In = os.Stdin
	}

	i, err := cmd.LogFlags.Logging(cmd.LogOutput)
	if err != nil {
		return err
	}
	cmd.root = i
	_ = cmd.SetLogging(i)

	cmd.Log().Debug().Interface("flags", flags).Msg("flags parsed")

	if err := version.IsValid(nil); err != nil {
		return err
	}
	cmd.version = version

	return nil
}

// openInput opens the file; "-" is the standard input of the command. The file
// with ".gz" extension is decompressed.
func (cmd *BaseCommand) openInput(s string) (io.Reader, func() error, error) {
	switch s = strings.TrimSpace(s); {
	case len(s) < 1:
		return nil, nil, xerrors.Errorf("empty input file")
	case s == "-":
		return cmd.In, func() error { return nil }, nil
	}

	fi, err := os.Stat(s)
	if err != nil {
		return nil, nil, err
	} else if fi.IsDir() {
		return nil, nil, xerrors.Errorf("directory found, %q", s)
	}

	f, err := os.Open(filepath.Clean(s))
	if err != nil {
		return nil, nil, err
	}

	if !util.IsGzipFile(s) {
		return f, f.Close, nil
	}

	gr, err := util.NewGzipReadCloser(f)
	if err != nil {
		_ = f.Close()

		return nil, nil, xerrors.Errorf("failed to read gzip file, %q: %w", s, err)
	}

	return gr, gr.Close, nil
}

// openOutput creates the file; "-" is the standard output of the command. The
// file with ".gz" extension is compressed.
func (cmd *BaseCommand) openOutput(s string) (io.Writer, func() error, error) {
	switch s = strings.TrimSpace(s); {
	case len(s) < 1:
		return nil, nil, xerrors.Errorf("empty output file")
	case s == "-":
		return cmd.Out, func() error { return nil }, nil
	}

	f, err := os.OpenFile(filepath.Clean(s), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, nil, err
	}

	if !util.IsGzipFile(s) {
		return f, f.Close, nil
	}

	gw := util.NewGzipWriteCloser(f)

	return gw, gw.Close, nil
}
