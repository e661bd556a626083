package pool

import (
	"github.com/spikeekips/stv/base/ballot"
)

// ExhaustedName is the name of the pool which holds the ballots without any
// remaining preference.
const ExhaustedName = "Exhausted"

// Rand is the random source for selecting surplus ballots. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(int) int
}

// Pool holds the ballots currently assigned to one candidate. A ballot is held
// by one Pool at a time; the ballots leaving a Pool are no longer held by it.
type Pool struct {
	name    string
	ballots []*ballot.Ballot
}

func New(name string) *Pool {
	return &Pool{name: name}
}

func NewExhausted() *Pool {
	return New(ExhaustedName)
}

func (po *Pool) Name() string {
	return po.name
}

func (po *Pool) IsExhausted() bool {
	return po.name == ExhaustedName
}

func (po *Pool) Len() int {
	return len(po.ballots)
}

func (po *Pool) IsEmpty() bool {
	return len(po.ballots) < 1
}

func (po *Pool) Add(bl *ballot.Ballot) {
	po.ballots = append(po.ballots, bl)
}

// RemoveAll takes out every ballot; the pool becomes empty.
func (po *Pool) RemoveAll() []*ballot.Ballot {
	bls := po.ballots
	po.ballots = nil

	return bls
}

// RemoveName removes name from every held ballot. The ballots stay.
func (po *Pool) RemoveName(name string) {
	for i := range po.ballots {
		po.ballots[i].RemoveName(name)
	}
}

// TakeTransferable takes up to n ballots, which have a further preference after
// the head, uniformly at random without replacement. The head of each taken
// ballot is removed. If less than n ballots are transferable, all of them are
// taken.
func (po *Pool) TakeTransferable(n int, r Rand) []*ballot.Ballot {
	if n < 1 {
		return nil
	}

	movable := make([]int, 0, len(po.ballots))
	for i := range po.ballots {
		if po.ballots[i].Len() > 1 {
			movable = append(movable, i)
		}
	}

	if len(movable) < 1 {
		return nil
	}

	if n > len(movable) {
		n = len(movable)
	}

	// partial Fisher-Yates; the first n of movable are the selected
	for i := 0; i < n; i++ {
		j := i + r.Intn(len(movable)-i)
		movable[i], movable[j] = movable[j], movable[i]
	}

	selected := make(map[int]struct{}, n)
	taken := make([]*ballot.Ballot, n)
	for i := 0; i < n; i++ {
		bl := po.ballots[movable[i]]
		bl.RemoveTop()

		taken[i] = bl
		selected[movable[i]] = struct{}{}
	}

	remains := make([]*ballot.Ballot, 0, len(po.ballots)-n)
	for i := range po.ballots {
		if _, found := selected[i]; !found {
			remains = append(remains, po.ballots[i])
		}
	}

	po.ballots = remains

	return taken
}

// Ballots returns the held ballots. The returned slice is a copy, but the
// ballots are not.
func (po *Pool) Ballots() []*ballot.Ballot {
	bls := make([]*ballot.Ballot, len(po.ballots))
	copy(bls, po.ballots)

	return bls
}
