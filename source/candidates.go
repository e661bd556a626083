package source

import (
	"io"
	"strings"

	"golang.org/x/xerrors"

	"github.com/spikeekips/stv/base/ballot"
)

// ReadCandidates reads candidate names, one per line or comma separated. The
// order is kept; it decides the ties while tabulating.
func ReadCandidates(r io.Reader) ([]string, error) {
	cr := newCSVReader(r)

	var names []string
	for {
		record, err := cr.Read()
		if err != nil {
			if xerrors.Is(err, io.EOF) {
				break
			}

			return nil, xerrors.Errorf("failed to read candidates: %w", err)
		}

		for i := range record {
			if n := strings.TrimSpace(record[i]); len(n) > 0 {
				names = append(names, n)
			}
		}
	}

	if err := checkDuplicated(names); err != nil {
		return nil, err
	}

	return names, nil
}

// CandidatesFromBallots collects the names in the order of first appearance.
func CandidatesFromBallots(bls []*ballot.Ballot) []string {
	found := map[string]struct{}{}

	var names []string
	for i := range bls {
		for _, n := range bls[i].Names() {
			if _, ok := found[n]; ok {
				continue
			}

			found[n] = struct{}{}
			names = append(names, n)
		}
	}

	return names
}

func checkDuplicated(names []string) error {
	found := map[string]struct{}{}
	for _, n := range names {
		if _, ok := found[n]; ok {
			return DuplicatedCandidateError.Errorf("%q", n)
		}

		found[n] = struct{}{}
	}

	return nil
}
