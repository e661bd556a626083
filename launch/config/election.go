package config

import (
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"github.com/spikeekips/stv/util/isvalid"
)

const DefaultSeats = 1

// Election is the configuration of one tabulation.
type Election struct {
	Seats          int      `yaml:"seats" env:"STV_SEATS"`
	Candidates     []string `yaml:"candidates,omitempty" env:"STV_CANDIDATES" envSeparator:","`
	CandidatesFile string   `yaml:"candidates-file,omitempty" env:"STV_CANDIDATES_FILE"`
	BallotsFile    string   `yaml:"ballots-file" env:"STV_BALLOTS_FILE"`
	BallotTag      bool     `yaml:"ballot-tag" env:"STV_BALLOT_TAG"`
	Seed           *int64   `yaml:"seed,omitempty" env:"STV_SEED"`
	Report         string   `yaml:"report,omitempty" env:"STV_REPORT"`
}

// NewElection returns the default; the ballot file has the tag column, like
// the timestamp of the Google Forms export.
func NewElection() Election {
	return Election{
		Seats:     DefaultSeats,
		BallotTag: true,
	}
}

func (el Election) IsValid([]byte) error {
	return isvalid.CheckFunc([]func() error{
		el.checkSeats,
		el.checkBallotsFile,
		el.checkCandidates,
	})
}

func (el Election) checkSeats() error {
	if el.Seats < 1 {
		return isvalid.InvalidError.Errorf("seats should be over zero, %d", el.Seats)
	}

	return nil
}

func (el Election) checkBallotsFile() error {
	if len(strings.TrimSpace(el.BallotsFile)) < 1 {
		return isvalid.InvalidError.Errorf("empty ballots file")
	}

	return nil
}

func (el Election) checkCandidates() error {
	if len(el.Candidates) > 0 && len(strings.TrimSpace(el.CandidatesFile)) > 0 {
		return xerrors.Errorf("candidates and candidates file are both given")
	}

	for i := range el.Candidates {
		if len(strings.TrimSpace(el.Candidates[i])) < 1 {
			return xerrors.Errorf("empty candidate name at %d", i)
		}
	}

	return nil
}

func (el Election) MarshalZerologObject(e *zerolog.Event) {
	e.Int("seats", el.Seats).
		Strs("candidates", el.Candidates).
		Str("candidates_file", el.CandidatesFile).
		Str("ballots_file", el.BallotsFile).
		Bool("ballot_tag", el.BallotTag).
		Str("report", el.Report)

	if el.Seed != nil {
		e.Int64("seed", *el.Seed)
	}
}
