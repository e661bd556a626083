package tabulator

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/spikeekips/stv/base/ballot"
	"github.com/spikeekips/stv/base/pool"
	"github.com/spikeekips/stv/util"
	"github.com/spikeekips/stv/util/isvalid"
	"github.com/spikeekips/stv/util/logging"
	"github.com/spikeekips/stv/util/random"
	"github.com/spikeekips/stv/util/valuehash"
)

type Option func(*Tabulator)

// WithRand sets the random source for the surplus selection.
func WithRand(r pool.Rand) Option {
	return func(tb *Tabulator) {
		tb.rnd = r
		tb.seed = nil
	}
}

// WithSeed makes the surplus selection reproducible.
func WithSeed(seed int64) Option {
	return func(tb *Tabulator) {
		tb.rnd = random.New(seed)
		tb.seed = &seed
	}
}

func WithReporter(r Reporter) Option {
	return func(tb *Tabulator) {
		tb.reporter = r
	}
}

func WithLogging(l *logging.Logging) Option {
	return func(tb *Tabulator) {
		_ = tb.SetLogging(l)
	}
}

// Tabulator runs the single transferable vote with the Droop quota. The
// ballots given to New are owned by Tabulator; they are modified while
// tabulating.
type Tabulator struct {
	*logging.Logging
	id          string
	candidates  []string
	ballots     []*ballot.Ballot
	quota       Quota
	pools       map[string]*pool.Pool
	active      []*pool.Pool
	index       map[string]*pool.Pool // active pools by name
	winners     []*pool.Pool
	eliminated  []*pool.Pool
	exhausted   *pool.Pool
	round       int
	state       State
	rnd         pool.Rand
	seed        *int64
	reporter    Reporter
	fingerprint valuehash.L32
}

func New(candidates []string, ballots []*ballot.Ballot, seats int, opts ...Option) (*Tabulator, error) {
	if seats < 1 {
		return nil, ConfigurationError.Errorf("seats should be over zero, %d", seats)
	}

	if err := checkCandidates(candidates); err != nil {
		return nil, err
	}

	if err := checkBallots(candidates, ballots); err != nil {
		return nil, err
	}

	quota, err := NewQuota(len(ballots), seats)
	if err != nil {
		return nil, err
	}

	tb := &Tabulator{
		id:         util.ULID().String(),
		candidates: append([]string(nil), candidates...),
		ballots:    ballots,
		quota:      quota,
		pools:      map[string]*pool.Pool{},
		index:      map[string]*pool.Pool{},
		exhausted:  pool.NewExhausted(),
		state:      StateSetup,
		reporter:   NilReporter{},
	}

	tb.Logging = logging.NewLogging(func(c zerolog.Context) zerolog.Context {
		return c.Str("module", "tabulator").Str("id", tb.id)
	})

	for _, name := range tb.candidates {
		po := pool.New(name)
		tb.pools[name] = po
		tb.index[name] = po
		tb.active = append(tb.active, po)
	}

	tb.fingerprint = fingerprint(seats, tb.candidates, ballots)

	for i := range opts {
		opts[i](tb)
	}

	if tb.rnd == nil {
		seed, err := random.NewSeed()
		if err != nil {
			return nil, err
		}

		WithSeed(seed)(tb)
	}

	return tb, nil
}

func checkCandidates(candidates []string) error {
	if len(candidates) < 1 {
		return ConfigurationError.Errorf("empty candidates")
	}

	found := map[string]struct{}{}
	for i, name := range candidates {
		switch {
		case len(strings.TrimSpace(name)) < 1:
			return ConfigurationError.Errorf("empty candidate name at %d", i)
		case name == pool.ExhaustedName:
			return ConfigurationError.Errorf("reserved candidate name, %q", name)
		}

		if _, ok := found[name]; ok {
			return ConfigurationError.Errorf("duplicated candidate, %q", name)
		}

		found[name] = struct{}{}
	}

	return nil
}

func checkBallots(candidates []string, ballots []*ballot.Ballot) error {
	if len(ballots) < 1 {
		return ConfigurationError.Errorf("empty ballots")
	}

	known := map[string]struct{}{}
	for i := range candidates {
		known[candidates[i]] = struct{}{}
	}

	vs := make([]isvalid.IsValider, len(ballots))
	for i, bl := range ballots {
		if bl == nil {
			return ConfigurationError.Errorf("nil ballot at %d", i)
		}

		vs[i] = bl
	}

	if err := isvalid.Check(nil, false, vs...); err != nil {
		return ConfigurationError.Wrap(err)
	}

	for _, bl := range ballots {
		for _, name := range bl.Names() {
			if _, found := known[name]; !found {
				return ConfigurationError.Errorf("unknown candidate, %q in ballot, %s", name, bl)
			}
		}
	}

	return nil
}

func fingerprint(seats int, candidates []string, ballots []*ballot.Ballot) valuehash.L32 {
	bb := valuehash.NewBlake3Builder().AddString(strconv.Itoa(seats), strconv.Itoa(len(candidates)))
	_ = bb.AddString(candidates...)

	for i := range ballots {
		names := ballots[i].Names()
		_ = bb.AddString(strconv.Itoa(len(names)))
		_ = bb.AddString(names...)
	}

	return bb.Sum()
}

func (tb *Tabulator) ID() string {
	return tb.id
}

func (tb *Tabulator) State() State {
	return tb.state
}

func (tb *Tabulator) Seats() int {
	return tb.quota.Seats
}

func (tb *Tabulator) Quota() int {
	return tb.quota.Quota
}

func (tb *Tabulator) Round() int {
	return tb.round
}

func (tb *Tabulator) Fingerprint() valuehash.L32 {
	return tb.fingerprint
}

func (tb *Tabulator) Winners() []string {
	return poolNames(tb.winners)
}

func (tb *Tabulator) Eliminated() []string {
	return poolNames(tb.eliminated)
}

func (tb *Tabulator) Exhausted() int {
	return tb.exhausted.Len()
}

// Run tabulates until every seat is filled or no active candidate remains.
// Fewer winners than seats is not an error; Result.Complete is false.
func (tb *Tabulator) Run() (Result, error) {
	if tb.state != StateSetup {
		return Result{}, AlreadyFinishedError.Call()
	}

	tb.Log().Debug().
		Int("candidates", len(tb.candidates)).
		Int("ballots", len(tb.ballots)).
		Interface("quota", tb.quota).
		Interface("seed", tb.seed).
		Msg("start tabulation")

	if err := tb.run(); err != nil {
		tb.Log().Error().Err(err).Stringer("state", tb.state).Msg("tabulation failed")

		return Result{}, err
	}

	tb.setState(StateTerminal)

	r := tb.result()
	if err := tb.reporter.Done(r); err != nil {
		return r, err
	}

	tb.Log().Debug().Strs("winners", r.Winners).Bool("complete", r.Complete).Msg("tabulation finished")

	return r, nil
}

func (tb *Tabulator) run() error {
	if err := tb.distributeInitial(); err != nil {
		return err
	}

	if tb.anyNewWinners() {
		if err := tb.declareWinners(); err != nil {
			return err
		}
	}

	if !tb.isFilled() && tb.emptyPoolsExist() {
		if err := tb.eliminateEmpty(); err != nil {
			return err
		}
	}

	for !tb.isFilled() && len(tb.active) > 0 {
		var err error
		if tb.anyNewWinners() {
			err = tb.declareWinners()
		} else {
			err = tb.eliminateLowest()
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (tb *Tabulator) distributeInitial() error {
	bls := tb.ballots
	tb.ballots = nil

	if err := tb.distribute(bls); err != nil {
		return err
	}

	return tb.report()
}

// distribute puts each ballot to the active pool of its head, or to the
// exhausted pool if the ballot is empty.
func (tb *Tabulator) distribute(bls []*ballot.Ballot) error {
	tb.setState(StateDistributing)

	trace := tb.IsTraceLog()

	for _, bl := range bls {
		if bl.IsEmpty() {
			tb.exhausted.Add(bl)

			if trace {
				tb.Log().Trace().Stringer("ballot", bl).Msg("ballot exhausted")
			}

			continue
		}

		head, _ := bl.Head()

		po, found := tb.index[head]
		if !found {
			return InvariantViolationError.Errorf("head of ballot, %q is not active candidate; ballot=%s", head, bl)
		}

		po.Add(bl)

		if trace {
			tb.Log().Trace().Stringer("ballot", bl).Str("to", po.Name()).Msg("ballot moved")
		}
	}

	tb.Log().Debug().Int("ballots", len(bls)).Msg("ballots distributed")

	return tb.checkConservation()
}

func (tb *Tabulator) anyNewWinners() bool {
	for _, po := range tb.active {
		if po.Len() >= tb.quota.Quota {
			return true
		}
	}

	return false
}

// declareWinners elects the active pools over quota in the order of the
// candidate list, not by the number of ballots.
func (tb *Tabulator) declareWinners() error {
	tb.setState(StateWinnerCheck)

	var i int
	for i < len(tb.active) && !tb.isFilled() {
		po := tb.active[i]
		if po.Len() < tb.quota.Quota {
			i++

			continue
		}

		tb.deactivate(i)
		tb.winners = append(tb.winners, po)
		tb.removeNameFromActive(po.Name())

		tb.Log().Debug().Str("candidate", po.Name()).Int("ballots", po.Len()).Msg("candidate elected")

		if !tb.isFilled() {
			if err := tb.transferSurplus(po); err != nil {
				return err
			}

			tb.setState(StateWinnerCheck)
		}

		if err := tb.checkConservation(); err != nil {
			return err
		}
	}

	return tb.report()
}

func (tb *Tabulator) transferSurplus(po *pool.Pool) error {
	surplus := po.Len() - tb.quota.Quota

	bls := po.TakeTransferable(surplus, tb.rnd)
	for i := range bls {
		bls[i].RemoveName(po.Name())
	}

	tb.Log().Debug().
		Str("candidate", po.Name()).
		Int("surplus", surplus).
		Int("transferred", len(bls)).
		Msg("surplus transferred")

	return tb.distribute(bls)
}

// eliminateEmpty eliminates every active candidate without ballots.
func (tb *Tabulator) eliminateEmpty() error {
	tb.setState(StateEliminating)

	var i int
	for i < len(tb.active) {
		if !tb.active[i].IsEmpty() {
			i++

			continue
		}

		if err := tb.eliminate(i); err != nil {
			return err
		}
	}

	return tb.report()
}

// eliminateLowest eliminates the first active candidate with the fewest
// ballots in the order of the candidate list.
func (tb *Tabulator) eliminateLowest() error {
	tb.setState(StateEliminating)

	lowest := 0
	for i := 1; i < len(tb.active); i++ {
		if tb.active[i].Len() < tb.active[lowest].Len() {
			lowest = i
		}
	}

	if err := tb.eliminate(lowest); err != nil {
		return err
	}

	return tb.report()
}

func (tb *Tabulator) eliminate(i int) error {
	po := tb.active[i]

	tb.removeNameFromActive(po.Name())
	bls := po.RemoveAll()

	tb.deactivate(i)
	tb.eliminated = append(tb.eliminated, po)

	tb.Log().Debug().Str("candidate", po.Name()).Int("ballots", len(bls)).Msg("candidate eliminated")

	return tb.distribute(bls)
}

func (tb *Tabulator) removeNameFromActive(name string) {
	for _, po := range tb.active {
		po.RemoveName(name)
	}
}

func (tb *Tabulator) deactivate(i int) {
	po := tb.active[i]

	active := make([]*pool.Pool, 0, len(tb.active)-1)
	active = append(active, tb.active[:i]...)
	tb.active = append(active, tb.active[i+1:]...)

	delete(tb.index, po.Name())
}

func (tb *Tabulator) isFilled() bool {
	return len(tb.winners) >= tb.quota.Seats
}

func (tb *Tabulator) emptyPoolsExist() bool {
	for _, po := range tb.active {
		if po.IsEmpty() {
			return true
		}
	}

	return false
}

func (tb *Tabulator) checkConservation() error {
	n := tb.exhausted.Len()
	for _, l := range [][]*pool.Pool{tb.active, tb.winners, tb.eliminated} {
		for _, po := range l {
			n += po.Len()
		}
	}

	if n != tb.quota.Total {
		return InvariantViolationError.Errorf("ballots not conserved; %d != %d", n, tb.quota.Total)
	}

	return nil
}

func (tb *Tabulator) report() error {
	tb.round++

	if err := tb.reporter.Round(tb.Tally()); err != nil {
		return err
	}

	return nil
}

// Tally returns the current counts in the order of the candidate list.
func (tb *Tabulator) Tally() Tally {
	status := map[string]Status{}
	for _, po := range tb.winners {
		status[po.Name()] = StatusWinner
	}

	for _, po := range tb.eliminated {
		status[po.Name()] = StatusEliminated
	}

	cts := make(CandidateTallies, len(tb.candidates))
	for i, name := range tb.candidates {
		cts[i] = CandidateTally{
			Name:   name,
			Count:  tb.pools[name].Len(),
			Status: status[name],
		}
	}

	return Tally{
		Round:      tb.round,
		Quota:      tb.quota.Quota,
		Candidates: cts,
		Exhausted:  tb.exhausted.Len(),
	}
}

func (tb *Tabulator) result() Result {
	return Result{
		ID:           tb.id,
		Seats:        tb.quota.Seats,
		Quota:        tb.quota.Quota,
		TotalBallots: tb.quota.Total,
		Winners:      tb.Winners(),
		Eliminated:   tb.Eliminated(),
		Exhausted:    tb.exhausted.Len(),
		Rounds:       tb.round,
		Complete:     tb.isFilled(),
		Seed:         tb.seed,
		Fingerprint:  tb.fingerprint,
	}
}

func (tb *Tabulator) setState(st State) {
	if tb.state == st {
		return
	}

	tb.Log().Trace().Stringer("from", tb.state).Stringer("to", st).Msg("state changed")

	tb.state = st
}

func poolNames(pools []*pool.Pool) []string {
	names := make([]string, len(pools))
	for i := range pools {
		names[i] = pools[i].Name()
	}

	return names
}
