package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/pkgerrors"
)

type Format string

const (
	JSONFormat     Format = "json"
	TerminalFormat Format = "terminal"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSONFormat, TerminalFormat:
		return f, nil
	default:
		return "", errors.Errorf("unknown log format, %q", s)
	}
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

// Setup creates the root Logging. Below debug level, the caller and the error
// stack are added to every event.
func Setup(output io.Writer, level zerolog.Level, format Format, forceColor bool) *Logging {
	if format == TerminalFormat {
		output = consoleWriter(output, forceColor)
	}

	zc := zerolog.New(output).With().Timestamp()
	if level <= zerolog.DebugLevel {
		zc = zc.Caller().Stack()
	}

	return NewLogging(nil).SetLogger(zc.Logger().Level(level))
}

func consoleWriter(output io.Writer, forceColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: time.RFC3339Nano,
		NoColor:    !forceColor && !isatty.IsTerminal(os.Stderr.Fd()),
	}
}

// Outputs appends the log to each file without blocking the logger.
func Outputs(files []string) (io.Writer, error) {
	if len(files) < 1 {
		return nil, errors.Errorf("empty log files")
	}

	ws := make([]io.Writer, len(files))
	for i := range files {
		f, err := os.OpenFile(filepath.Clean(files[i]), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open log file, %q", files[i])
		}

		ws[i] = diode.NewWriter(f, 1000, 0, nil) // nolint:gomnd
	}

	return zerolog.MultiLevelWriter(ws...), nil
}
