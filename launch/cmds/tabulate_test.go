package cmds

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"

	"github.com/spikeekips/stv/source"
	"github.com/spikeekips/stv/tabulator"
	"github.com/spikeekips/stv/util"
)

type testFlags struct {
	Version  VersionCommand  `cmd:""`
	Tabulate TabulateCommand `cmd:""`
	Convert  ConvertCommand  `cmd:""`
}

const testBallots = "A,B\nA,B\nA,C\nB,A\nC,B\n"

type testCommands struct {
	suite.Suite
	dir string
}

func (t *testCommands) SetupTest() {
	t.dir = t.T().TempDir()
}

func (t *testCommands) writeFile(name, s string) string {
	f := filepath.Join(t.dir, name)
	t.NoError(os.WriteFile(f, []byte(s), 0o600))

	return f
}

func (t *testCommands) run(args ...string) (string, string, error) {
	var out, logout bytes.Buffer

	flags := testFlags{
		Version:  VersionCommand{Out: &out},
		Tabulate: NewTabulateCommand(),
		Convert:  NewConvertCommand(),
	}
	flags.Tabulate.Out = &out
	flags.Tabulate.LogOutput = &logout
	flags.Convert.Out = &out
	flags.Convert.LogOutput = &logout

	kctx, err := Context(args, &flags)
	if err != nil {
		return "", "", err
	}

	err = kctx.Run(util.Version("v0.1.0"))

	return out.String(), logout.String(), err
}

func (t *testCommands) result(s string) tabulator.Result {
	var r tabulator.Result
	t.NoError(util.JSONUnmarshal([]byte(s), &r))

	return r
}

func (t *testCommands) TestVersion() {
	out, _, err := t.run("version")
	t.NoError(err)
	t.Equal("v0.1.0\n", out)
}

func (t *testCommands) TestTabulate() {
	f := t.writeFile("ballots.csv", testBallots)

	out, logs, err := t.run(
		"tabulate", "--no-ballot-tag", "--seats", "1", "--seed", "3", "--ballots-file", f, "--log-format", "json",
	)
	t.NoError(err)

	r := t.result(out)
	t.Equal([]string{"A"}, r.Winners)
	t.Equal(3, r.Quota)
	t.Equal(5, r.TotalBallots)
	t.True(r.Complete)
	t.NotNil(r.Seed)
	t.Equal(int64(3), *r.Seed)

	t.Contains(logs, "round tallied")
	t.Contains(logs, "tabulation finished")
}

func (t *testCommands) TestCandidates() {
	f := t.writeFile("ballots.csv", testBallots)

	out, _, err := t.run("tabulate", "--no-ballot-tag", "--candidates", "C,B,A", "--ballots-file", f)
	t.NoError(err)
	t.Equal([]string{"A"}, t.result(out).Winners)

	cf := t.writeFile("candidates", "A\nB\nC\n")

	out, _, err = t.run("tabulate", "--no-ballot-tag", "--candidates-file", cf, "--ballots-file", f)
	t.NoError(err)
	t.Equal([]string{"A"}, t.result(out).Winners)
}

func (t *testCommands) TestUnknownCandidate() {
	f := t.writeFile("ballots.csv", testBallots)

	_, _, err := t.run("tabulate", "--no-ballot-tag", "--candidates", "A,B", "--ballots-file", f)
	t.Error(err)
	t.True(errors.Is(err, tabulator.ConfigurationError))
}

func (t *testCommands) TestConfig() {
	f := t.writeFile("ballots.csv", "t0,A,B\nt1,A,B\nt2,A,B\nt3,B,C\nt4,C,B\n")
	c := t.writeFile("config.yml", "seats: 2\nballots-file: "+f+"\nseed: 9\n")

	out, _, err := t.run("tabulate", "--config", c)
	t.NoError(err)

	r := t.result(out)
	t.Equal(2, r.Seats)
	t.Equal(2, r.Quota)
	t.Equal([]string{"A", "B"}, r.Winners)
	t.Equal(int64(9), *r.Seed)

	// flag overrides config
	out, _, err = t.run("tabulate", "--config", c, "--seats", "1")
	t.NoError(err)
	t.Equal(1, t.result(out).Seats)
}

func (t *testCommands) TestReportStdout() {
	f := t.writeFile("ballots.csv", testBallots)

	out, _, err := t.run("tabulate", "--no-ballot-tag", "--ballots-file", f, "--report", "-")
	t.NoError(err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	t.Equal(3, len(lines))
	t.Contains(lines[0], `"type":"round"`)
	t.Contains(lines[1], `"type":"round"`)
	t.Contains(lines[2], `"type":"result"`)
}

func (t *testCommands) TestReportFile() {
	f := t.writeFile("ballots.csv", testBallots)
	report := filepath.Join(t.dir, "report.json")

	out, _, err := t.run("tabulate", "--no-ballot-tag", "--ballots-file", f, "--report", report)
	t.NoError(err)
	t.Equal([]string{"A"}, t.result(out).Winners)

	b, err := os.ReadFile(report)
	t.NoError(err)
	t.Contains(string(b), `"type":"result"`)
}

func (t *testCommands) TestGzip() {
	var bf bytes.Buffer
	w := util.NewGzipWriteCloser(&bf)
	_, err := w.Write([]byte(testBallots))
	t.NoError(err)
	t.NoError(w.Close())

	f := t.writeFile("ballots.csv.gz", bf.String())
	report := filepath.Join(t.dir, "report.json.gz")

	out, _, err := t.run("tabulate", "--no-ballot-tag", "--ballots-file", f, "--report", report)
	t.NoError(err)
	t.Equal([]string{"A"}, t.result(out).Winners)

	rf, err := os.Open(report)
	t.NoError(err)

	r, err := util.NewGzipReadCloser(rf)
	t.NoError(err)

	defer func() {
		_ = r.Close()
	}()

	b, err := io.ReadAll(r)
	t.NoError(err)
	t.Contains(string(b), `"type":"result"`)
}

func (t *testCommands) TestInvalid() {
	f := t.writeFile("ballots.csv", testBallots)

	_, _, err := t.run("tabulate", "--no-ballot-tag")
	t.Error(err)
	t.Contains(err.Error(), "empty ballots file")

	_, _, err = t.run("tabulate", "--no-ballot-tag", "--ballots-file", f, "--seed", "findme")
	t.Error(err)
	t.Contains(err.Error(), "--seed")

	_, _, err = t.run("tabulate", "--ballots-file", filepath.Join(t.dir, "unknown"))
	t.Error(err)
	t.True(errors.Is(err, os.ErrNotExist))

	_, _, err = t.run("tabulate", "--ballots-file", f, "--log-format", "xml")
	t.Error(err)
}

func (t *testCommands) TestConvert() {
	in := t.writeFile("form.csv", "Timestamp,Rank [A],Rank [B],Rank [C]\nt0,1,2,\nt1,2,1,3\n")
	output := filepath.Join(t.dir, "ballots.csv")

	_, _, err := t.run("convert", in, output)
	t.NoError(err)

	b, err := os.ReadFile(output)
	t.NoError(err)

	bls, rejected, err := source.ReadBallots(bytes.NewReader(b), true)
	t.NoError(err)
	t.Empty(rejected)
	t.Equal([]string{"A", "B"}, bls[0].Names())
	t.Equal([]string{"B", "A", "C"}, bls[1].Names())

	out, _, err := t.run("convert", in)
	t.NoError(err)
	t.Equal(string(b), out)
}

func (t *testCommands) TestConvertFailedKeepsOutput() {
	in := t.writeFile("form.csv", "Timestamp,Rank [A],Rank [B]\nt0,1,2\nt1,1,1\n")
	output := t.writeFile("ballots.csv", "t9,B,A\n")

	_, _, err := t.run("convert", in, output)
	t.Error(err)
	t.True(errors.Is(err, source.InvalidRankError))

	b, err := os.ReadFile(output)
	t.NoError(err)
	t.Equal("t9,B,A\n", string(b))

	_, _, err = t.run("convert", in, filepath.Join(t.dir, "new.csv"))
	t.Error(err)

	_, err = os.Stat(filepath.Join(t.dir, "new.csv"))
	t.True(errors.Is(err, os.ErrNotExist))
}

func TestCommands(t *testing.T) {
	suite.Run(t, new(testCommands))
}
