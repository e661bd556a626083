package tabulator

// Reporter receives the tally of every round and the result at the end. An
// error from Reporter stops the tabulation.
type Reporter interface {
	Round(Tally) error
	Done(Result) error
}

type NilReporter struct{}

func (NilReporter) Round(Tally) error {
	return nil
}

func (NilReporter) Done(Result) error {
	return nil
}

// Recorder keeps every reported tally and the result in memory.
type Recorder struct {
	Tallies []Tally
	Result  *Result
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (rc *Recorder) Round(t Tally) error {
	rc.Tallies = append(rc.Tallies, t)

	return nil
}

func (rc *Recorder) Done(r Result) error {
	rc.Result = &r

	return nil
}

func (rc *Recorder) Last() (Tally, bool) {
	if len(rc.Tallies) < 1 {
		return Tally{}, false
	}

	return rc.Tallies[len(rc.Tallies)-1], true
}

// Reporters reports to each Reporter in order and stops at the first error.
type Reporters []Reporter

func (rs Reporters) Round(t Tally) error {
	for i := range rs {
		if err := rs[i].Round(t); err != nil {
			return err
		}
	}

	return nil
}

func (rs Reporters) Done(r Result) error {
	for i := range rs {
		if err := rs[i].Done(r); err != nil {
			return err
		}
	}

	return nil
}
