package tabulator

import (
	"github.com/rs/zerolog"

	"github.com/spikeekips/stv/util/logging"
)

type LogReporter struct {
	*logging.Logging
}

func NewLogReporter() *LogReporter {
	return &LogReporter{
		Logging: logging.NewLogging(func(c zerolog.Context) zerolog.Context {
			return c.Str("module", "tabulator-report")
		}),
	}
}

func (lr *LogReporter) Round(t Tally) error {
	lr.Log().Info().
		Int("round", t.Round).
		Int("quota", t.Quota).
		Int("exhausted", t.Exhausted).
		Array("candidates", t.Candidates).
		Msg("round tallied")

	return nil
}

func (lr *LogReporter) Done(r Result) error {
	e := lr.Log().Info()
	if !r.Complete {
		e = lr.Log().Warn()
	}

	e.Str("id", r.ID).
		Int("seats", r.Seats).
		Int("quota", r.Quota).
		Int("rounds", r.Rounds).
		Strs("winners", r.Winners).
		Strs("eliminated", r.Eliminated).
		Int("exhausted", r.Exhausted).
		Bool("complete", r.Complete).
		Stringer("fingerprint", r.Fingerprint).
		Msg("tabulation finished")

	return nil
}
