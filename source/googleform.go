package source

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// ConvertGoogleForm converts the csv export of the Google Forms grid question
// into ballots. The header looks like,
//
//	Timestamp,Rank [Fred],Rank [Wilma],Rank [Betty]
//
// and each row has the rank, starting from 1, of each candidate or blank:
//
//	5/28/2018 9:17:12,2,,1
//
// The converted ballot lists the names by rank, keeping the timestamp as tag;
// the blank positions are kept as empty fields:
//
//	5/28/2018 9:17:12,Betty,Fred,
//
// It returns the number of converted ballots.
func ConvertGoogleForm(r io.Reader, w io.Writer) (int, error) {
	cr := newCSVReader(r)

	header, err := cr.Read()
	if err != nil {
		if xerrors.Is(err, io.EOF) {
			return 0, InvalidHeaderError.Errorf("empty input")
		}

		return 0, xerrors.Errorf("failed to read header: %w", err)
	}

	candidates, err := candidatesFromHeader(header)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)

	var n int
	for {
		row, err := cr.Read()
		if err != nil {
			if xerrors.Is(err, io.EOF) {
				break
			}

			return n, xerrors.Errorf("failed to read row: %w", err)
		}

		line, _ := cr.FieldPos(0)

		record, err := convertRow(candidates, row)
		if err != nil {
			return n, InvalidRankError.Wrap(xerrors.Errorf("line %d: %w", line, err))
		}

		if err := cw.Write(record); err != nil {
			return n, xerrors.Errorf("failed to write ballot: %w", err)
		}

		n++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return n, xerrors.Errorf("failed to write ballots: %w", err)
	}

	return n, nil
}

func candidatesFromHeader(header []string) ([]string, error) {
	if len(header) < 2 {
		return nil, InvalidHeaderError.Errorf("no candidate column")
	}

	names := make([]string, len(header)-1)
	for i, h := range header[1:] {
		o := strings.Index(h, "[")
		c := strings.LastIndex(h, "]")
		if o < 0 || c < o {
			return nil, InvalidHeaderError.Errorf("candidate name not found in %q", h)
		}

		name := strings.TrimSpace(h[o+1 : c])
		if len(name) < 1 {
			return nil, InvalidHeaderError.Errorf("empty candidate name in %q", h)
		}

		names[i] = name
	}

	if err := checkDuplicated(names); err != nil {
		return nil, err
	}

	return names, nil
}

func convertRow(candidates []string, row []string) ([]string, error) {
	if len(row) < 1 {
		return nil, xerrors.Errorf("empty row")
	}

	if len(row)-1 > len(candidates) {
		return nil, xerrors.Errorf("too many columns, %d > %d", len(row)-1, len(candidates))
	}

	slots := make([]string, len(candidates))
	for i, s := range row[1:] {
		s = strings.TrimSpace(s)
		if len(s) < 1 {
			continue
		}

		rank, err := strconv.Atoi(s)
		switch {
		case err != nil:
			return nil, xerrors.Errorf("not number, %q for %q", s, candidates[i])
		case rank < 1 || rank > len(candidates):
			return nil, xerrors.Errorf("out of range, %d for %q", rank, candidates[i])
		case len(slots[rank-1]) > 0:
			return nil, xerrors.Errorf("rank %d given to both %q and %q", rank, slots[rank-1], candidates[i])
		}

		slots[rank-1] = candidates[i]
	}

	return append([]string{strings.TrimSpace(row[0])}, slots...), nil
}
