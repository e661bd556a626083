package tabulator

import (
	"github.com/rs/zerolog"

	"github.com/spikeekips/stv/util"
	"github.com/spikeekips/stv/util/valuehash"
)

var UnknownStatusError = util.NewError("unknown status")

type Status uint8

const (
	StatusActive Status = iota
	StatusWinner
	StatusEliminated
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusWinner:
		return "winner"
	case StatusEliminated:
		return "eliminated"
	default:
		return "<unknown Status>"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "active":
		*s = StatusActive
	case "winner":
		*s = StatusWinner
	case "eliminated":
		*s = StatusEliminated
	default:
		return UnknownStatusError.Errorf("%q", string(b))
	}

	return nil
}

type CandidateTally struct {
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Status Status `json:"status"`
}

func (ct CandidateTally) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", ct.Name).Int("count", ct.Count).Stringer("status", ct.Status)
}

type CandidateTallies []CandidateTally

func (cts CandidateTallies) MarshalZerologArray(a *zerolog.Array) {
	for i := range cts {
		a.Object(cts[i])
	}
}

// Tally is the snapshot of one round. Candidates are in the order of the
// candidate list.
type Tally struct {
	Round      int              `json:"round"`
	Quota      int              `json:"quota"`
	Candidates CandidateTallies `json:"candidates"`
	Exhausted  int              `json:"exhausted"`
}

func (t Tally) Get(name string) (CandidateTally, bool) {
	for i := range t.Candidates {
		if t.Candidates[i].Name == name {
			return t.Candidates[i], true
		}
	}

	return CandidateTally{}, false
}

// Total is the number of ballots in the snapshot, exhausted ones included.
func (t Tally) Total() int {
	n := t.Exhausted
	for i := range t.Candidates {
		n += t.Candidates[i].Count
	}

	return n
}

type Result struct {
	ID           string        `json:"id"`
	Seats        int           `json:"seats"`
	Quota        int           `json:"quota"`
	TotalBallots int           `json:"total_ballots"`
	Winners      []string      `json:"winners"`
	Eliminated   []string      `json:"eliminated"`
	Exhausted    int           `json:"exhausted"`
	Rounds       int           `json:"rounds"`
	Complete     bool          `json:"complete"`
	Seed         *int64        `json:"seed,omitempty"`
	Fingerprint  valuehash.L32 `json:"fingerprint"`
}
