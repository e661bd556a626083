package source

import (
	"encoding/csv"
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"github.com/spikeekips/stv/base/ballot"
	"github.com/spikeekips/stv/util/logging"
)

// Rejected is the record which could not be a ballot.
type Rejected struct {
	Line   int      `json:"line"`
	Record []string `json:"record"`
	Err    error    `json:"-"`
}

func (rj Rejected) MarshalZerologObject(e *zerolog.Event) {
	e.Int("line", rj.Line).Strs("record", rj.Record).Err(rj.Err)
}

type BallotReader struct {
	*logging.Logging
	hasTag bool
}

// NewBallotReader reads the comma separated ballots, one ballot per line. With
// hasTag, the first field of each line, like a timestamp, is not a candidate.
func NewBallotReader(hasTag bool) *BallotReader {
	return &BallotReader{
		Logging: logging.NewLogging(func(c zerolog.Context) zerolog.Context {
			return c.Str("module", "ballot-reader")
		}),
		hasTag: hasTag,
	}
}

// Read returns the valid ballots and the rejected records. Invalid records
// are not an error; only the failure of reading is.
func (br *BallotReader) Read(r io.Reader) ([]*ballot.Ballot, []Rejected, error) {
	cr := newCSVReader(r)

	var bls []*ballot.Ballot
	var rejected []Rejected

	for {
		record, err := cr.Read()
		if err != nil {
			if xerrors.Is(err, io.EOF) {
				break
			}

			return nil, nil, xerrors.Errorf("failed to read ballots: %w", err)
		}

		line, _ := cr.FieldPos(0)

		bl, err := ballot.FromRecord(record, br.hasTag)
		if err != nil {
			rj := Rejected{Line: line, Record: record, Err: err}
			rejected = append(rejected, rj)

			br.Log().Warn().Object("rejected", rj).Msg("invalid ballot")

			continue
		}

		bls = append(bls, bl)
	}

	br.Log().Debug().Int("ballots", len(bls)).Int("rejected", len(rejected)).Msg("ballots read")

	return bls, rejected, nil
}

// ReadBallots reads ballots without logging.
func ReadBallots(r io.Reader, hasTag bool) ([]*ballot.Ballot, []Rejected, error) {
	return NewBallotReader(hasTag).Read(r)
}

func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	return cr
}
