package cmds

import (
	"io"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/spikeekips/stv/util/logging"
)

var LogVars = kong.Vars{
	"log_level":  zerolog.InfoLevel.String(),
	"log_format": string(logging.TerminalFormat),
	"log_color":  "false",
}

// LogFlags are shared by every command; the log goes to stderr unless log
// files are given.
type LogFlags struct {
	LogColor  bool      `help:"force colored terminal log" default:"${log_color}"`
	LogLevel  LogLevel  `help:"log level {trace debug info warn error} (default: ${log_level})" default:"${log_level}"`
	LogFormat LogFormat `help:"log format {json terminal} (default: ${log_format})" default:"${log_format}"`
	LogFile   []string  `name:"log" help:"append log to file; can be given multiple times"`
}

func (fl LogFlags) Logging(stderr io.Writer) (*logging.Logging, error) {
	out := stderr
	if len(fl.LogFile) > 0 {
		w, err := logging.Outputs(fl.LogFile)
		if err != nil {
			return nil, err
		}

		out = w
	}

	return logging.Setup(out, zerolog.Level(fl.LogLevel), logging.Format(fl.LogFormat), fl.LogColor), nil
}

type LogLevel zerolog.Level

func (ll LogLevel) MarshalText() ([]byte, error) {
	return []byte(zerolog.Level(ll).String()), nil
}

func (ll *LogLevel) UnmarshalText(b []byte) error {
	lvl, err := zerolog.ParseLevel(string(b))
	if err != nil {
		return err
	}

	*ll = LogLevel(lvl)

	return nil
}

type LogFormat logging.Format

func (lf *LogFormat) UnmarshalText(b []byte) error {
	f, err := logging.ParseFormat(string(b))
	if err != nil {
		return err
	}

	*lf = LogFormat(f)

	return nil
}
