package ballot

import (
	"fmt"
	"strings"

	"github.com/spikeekips/stv/util"
	"github.com/spikeekips/stv/util/isvalid"
)

var InvalidBallotError = util.NewError("invalid ballot")

// Ballot is one voter's ranked preferences, highest first. Only the head and
// specific names are ever removed; names are never added or reordered.
type Ballot struct {
	tag   string
	names []string
}

// New makes Ballot from the given names. Blank names are skipped, not treated
// as a skipped rank. A name appearing twice makes the ballot invalid.
func New(tag string, names []string) (*Ballot, error) {
	bl := &Ballot{tag: tag, names: make([]string, 0, len(names))}

	for i := range names {
		n := strings.TrimSpace(names[i])
		if len(n) < 1 {
			continue
		}

		bl.names = append(bl.names, n)
	}

	if err := bl.IsValid(nil); err != nil {
		return nil, err
	}

	return bl, nil
}

// FromRecord makes Ballot from a raw record. With hasTag, the first field is
// the tag, like a timestamp, and never a candidate name.
func FromRecord(record []string, hasTag bool) (*Ballot, error) {
	if !hasTag {
		return New("", record)
	}

	if len(record) < 1 {
		return New("", nil)
	}

	return New(strings.TrimSpace(record[0]), record[1:])
}

func (bl *Ballot) IsValid([]byte) error {
	found := map[string]struct{}{}

	for i, n := range bl.names {
		if len(n) < 1 {
			return isvalid.InvalidError.Wrap(InvalidBallotError.Errorf("empty name at %d", i))
		}

		if _, ok := found[n]; ok {
			return isvalid.InvalidError.Wrap(InvalidBallotError.Errorf("duplicated name, %q", n))
		}

		found[n] = struct{}{}
	}

	return nil
}

func (bl *Ballot) Tag() string {
	return bl.tag
}

// RankOf returns the position of name; -1 if not found.
func (bl *Ballot) RankOf(name string) int {
	for i := range bl.names {
		if bl.names[i] == name {
			return i
		}
	}

	return -1
}

// Head returns the current highest preference.
func (bl *Ballot) Head() (string, bool) {
	if len(bl.names) < 1 {
		return "", false
	}

	return bl.names[0], true
}

func (bl *Ballot) Len() int {
	return len(bl.names)
}

func (bl *Ballot) IsEmpty() bool {
	return len(bl.names) < 1
}

func (bl *Ballot) RemoveTop() {
	if len(bl.names) < 1 {
		return
	}

	bl.names = bl.names[1:]
}

func (bl *Ballot) RemoveName(name string) {
	i := bl.RankOf(name)
	if i < 0 {
		return
	}

	names := make([]string, 0, len(bl.names)-1)
	names = append(names, bl.names[:i]...)
	bl.names = append(names, bl.names[i+1:]...)
}

func (bl *Ballot) Names() []string {
	names := make([]string, len(bl.names))
	copy(names, bl.names)

	return names
}

func (bl *Ballot) String() string {
	return fmt.Sprintf("%s:%v", bl.tag, bl.names)
}
