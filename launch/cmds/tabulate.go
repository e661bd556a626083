package cmds

import (
	"fmt"

	"golang.org/x/xerrors"

	"github.com/spikeekips/stv/base/ballot"
	"github.com/spikeekips/stv/launch/config"
	"github.com/spikeekips/stv/source"
	"github.com/spikeekips/stv/tabulator"
	"github.com/spikeekips/stv/util"
)

// TabulateCommand loads the election in the order of default, yaml config,
// environment variables and flags; the later one overrides.
type TabulateCommand struct {
	BaseCommand
	Config         string   `name:"config" help:"yaml config file"`
	Seats          int      `name:"seats" help:"number of seats"`
	Candidates     []string `name:"candidates" help:"candidate names, comma separated; the order breaks the ties"`
	CandidatesFile string   `name:"candidates-file" help:"candidates file"`
	BallotsFile    string   `name:"ballots-file" help:"ballots file; '-' is stdin"`
	NoBallotTag    bool     `name:"no-ballot-tag" help:"ballot line does not start with the tag field"`
	Seed           *int64   `name:"seed" help:"random seed for selecting surplus ballots"`
	Report         string   `name:"report" help:"write tallies of each round as json lines; '-' is stdout"`
}

func NewTabulateCommand() TabulateCommand {
	return TabulateCommand{BaseCommand: NewBaseCommand("tabulate")}
}

func (cmd *TabulateCommand) Run(version util.Version) error {
	if err := cmd.Initialize(cmd, version); err != nil {
		return xerrors.Errorf("failed to initialize command: %w", err)
	}

	el, err := cmd.election()
	if err != nil {
		return xerrors.Errorf("failed to load election: %w", err)
	}

	cmd.Log().Debug().Object("election", el).Msg("election loaded")

	bls, err := cmd.readBallots(el)
	if err != nil {
		return err
	}

	candidates, err := cmd.readCandidates(el, bls)
	if err != nil {
		return err
	}

	r, err := cmd.tabulate(el, candidates, bls)
	if err != nil {
		return err
	}

	if !r.Complete {
		cmd.Log().Warn().Int("seats", r.Seats).Strs("winners", r.Winners).Msg("not all seats are filled")
	}

	if el.Report == "-" {
		return nil
	}

	b, err := util.JSONMarshalIndent(r)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.Out, string(b))

	return nil
}

func (cmd *TabulateCommand) election() (config.Election, error) {
	el := config.NewElection()

	if len(cmd.Config) > 0 {
		if err := config.LoadYAMLFile(cmd.Config, &el); err != nil {
			return el, err
		}
	}

	if err := config.ParseEnv(&el); err != nil {
		return el, err
	}

	if cmd.Seats > 0 {
		el.Seats = cmd.Seats
	}

	switch {
	case len(cmd.Candidates) > 0:
		el.Candidates = cmd.Candidates
		el.CandidatesFile = ""
	case len(cmd.CandidatesFile) > 0:
		el.Candidates = nil
		el.CandidatesFile = cmd.CandidatesFile
	}

	if len(cmd.BallotsFile) > 0 {
		el.BallotsFile = cmd.BallotsFile
	}

	if cmd.NoBallotTag {
		el.BallotTag = false
	}

	if cmd.Seed != nil {
		el.Seed = cmd.Seed
	}

	if len(cmd.Report) > 0 {
		el.Report = cmd.Report
	}

	return el, el.IsValid(nil)
}

func (cmd *TabulateCommand) readBallots(el config.Election) ([]*ballot.Ballot, error) {
	r, closef, err := cmd.openInput(el.BallotsFile)
	if err != nil {
		return nil, xerrors.Errorf("failed to open ballots file: %w", err)
	}

	defer func() {
		_ = closef()
	}()

	br := source.NewBallotReader(el.BallotTag)
	_ = br.SetLogging(cmd.root)

	bls, rejected, err := br.Read(r)
	if err != nil {
		return nil, xerrors.Errorf("failed to read ballots: %w", err)
	}

	cmd.Log().Debug().Int("ballots", len(bls)).Int("rejected", len(rejected)).Msg("ballots loaded")

	return bls, nil
}

func (cmd *TabulateCommand) readCandidates(el config.Election, bls []*ballot.Ballot) ([]string, error) {
	switch {
	case len(el.Candidates) > 0:
		return el.Candidates, nil
	case len(el.CandidatesFile) > 0:
		r, closef, err := cmd.openInput(el.CandidatesFile)
		if err != nil {
			return nil, xerrors.Errorf("failed to open candidates file: %w", err)
		}

		defer func() {
			_ = closef()
		}()

		candidates, err := source.ReadCandidates(r)
		if err != nil {
			return nil, xerrors.Errorf("failed to read candidates: %w", err)
		}

		return candidates, nil
	default:
		candidates := source.CandidatesFromBallots(bls)
		cmd.Log().Debug().Strs("candidates", candidates).Msg("candidates collected from ballots")

		return candidates, nil
	}
}

func (cmd *TabulateCommand) tabulate(
	el config.Election, candidates []string, bls []*ballot.Ballot,
) (tabulator.Result, error) {
	lr := tabulator.NewLogReporter()
	_ = lr.SetLogging(cmd.root)

	reporters := tabulator.Reporters{lr}

	if len(el.Report) > 0 {
		w, closef, err := cmd.openOutput(el.Report)
		if err != nil {
			return tabulator.Result{}, xerrors.Errorf("failed to open report file: %w", err)
		}

		defer func() {
			_ = closef()
		}()

		reporters = append(reporters, tabulator.NewJSONReporter(w))
	}

	opts := []tabulator.Option{
		tabulator.WithReporter(reporters),
		tabulator.WithLogging(cmd.root),
	}

	if el.Seed != nil {
		opts = append(opts, tabulator.WithSeed(*el.Seed))
	}

	tb, err := tabulator.New(candidates, bls, el.Seats, opts...)
	if err != nil {
		return tabulator.Result{}, xerrors.Errorf("failed to prepare tabulation: %w", err)
	}

	r, err := tb.Run()
	if err != nil {
		return r, xerrors.Errorf("failed to tabulate: %w", err)
	}

	return r, nil
}
