package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"

	"github.com/spikeekips/stv/util/isvalid"
)

type testElection struct {
	suite.Suite
}

func (t *testElection) TestDefault() {
	el := NewElection()

	t.Equal(DefaultSeats, el.Seats)
	t.True(el.BallotTag)
	t.Nil(el.Seed)

	err := el.IsValid(nil)
	t.True(errors.Is(err, isvalid.InvalidError))
	t.Contains(err.Error(), "empty ballots file")
}

func (t *testElection) TestIsValid() {
	el := NewElection()
	el.BallotsFile = "ballots.txt"
	t.NoError(el.IsValid(nil))

	el.Seats = 0
	t.Contains(el.IsValid(nil).Error(), "seats should be over zero")

	el.Seats = 2
	el.Candidates = []string{"A"}
	el.CandidatesFile = "candidates.txt"
	err := el.IsValid(nil)
	t.True(errors.Is(err, isvalid.InvalidError))
	t.Contains(err.Error(), "both given")

	el.CandidatesFile = ""
	el.Candidates = []string{"A", " "}
	err = el.IsValid(nil)
	t.True(errors.Is(err, isvalid.InvalidError))
	t.Contains(err.Error(), "empty candidate name at 1")
}

func (t *testElection) TestYAMLEmpty() {
	el := NewElection()
	t.NoError(LoadYAML([]byte(""), &el))
	t.Equal(NewElection(), el)
}

func (t *testElection) TestYAML() {
	y := `
seats: 3
candidates:
  - Fred
  - Wilma
ballots-file: /tmp/ballots.txt
ballot-tag: false
seed: 33
`

	el := NewElection()
	t.NoError(LoadYAML([]byte(y), &el))

	t.Equal(3, el.Seats)
	t.Equal([]string{"Fred", "Wilma"}, el.Candidates)
	t.Equal("/tmp/ballots.txt", el.BallotsFile)
	t.False(el.BallotTag)
	t.Equal(int64(33), *el.Seed)
}

func (t *testElection) TestYAMLKeepsDefault() {
	el := NewElection()
	t.NoError(LoadYAML([]byte("seats: 2\n"), &el))

	t.Equal(2, el.Seats)
	t.True(el.BallotTag)
}

func (t *testElection) TestYAMLInvalid() {
	el := NewElection()

	err := LoadYAML([]byte("seats: [1"), &el)
	t.Error(err)
	t.Contains(err.Error(), "failed to parse yaml config")

	err = LoadYAML([]byte("seats: showme"), &el)
	t.Error(err)
}

func (t *testElection) TestYAMLFile() {
	f := filepath.Join(t.T().TempDir(), "config.yml")
	t.NoError(os.WriteFile(f, []byte("seats: 4\nballots-file: b.txt\n"), 0o600))

	el := NewElection()
	t.NoError(LoadYAMLFile(f, &el))
	t.Equal(4, el.Seats)
	t.Equal("b.txt", el.BallotsFile)

	err := LoadYAMLFile(filepath.Join(t.T().TempDir(), "unknown.yml"), &el)
	t.Contains(err.Error(), "failed to read config file")
}

func (t *testElection) TestEnv() {
	t.T().Setenv("STV_SEATS", "5")
	t.T().Setenv("STV_CANDIDATES", "Fred,Wilma,Betty")
	t.T().Setenv("STV_SEED", "7")

	el := NewElection()
	el.BallotsFile = "from-yaml.txt"

	t.NoError(ParseEnv(&el))

	t.Equal(5, el.Seats)
	t.Equal([]string{"Fred", "Wilma", "Betty"}, el.Candidates)
	t.Equal(int64(7), *el.Seed)
	t.Equal("from-yaml.txt", el.BallotsFile)
	t.True(el.BallotTag)
}

func (t *testElection) TestEnvInvalid() {
	t.T().Setenv("STV_SEATS", "showme")

	el := NewElection()

	err := ParseEnv(&el)
	t.Error(err)
	t.Contains(err.Error(), "failed to parse env")
}

func TestElection(t *testing.T) {
	suite.Run(t, new(testElection))
}
