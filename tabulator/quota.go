package tabulator

import (
	"github.com/spikeekips/stv/util"
)

// Quota is the Droop quota; the minimum ballots for a candidate to be
// elected.
type Quota struct {
	Total int `json:"total"`
	Seats int `json:"seats"`
	Quota int `json:"quota"`
}

func NewQuota(total, seats int) (Quota, error) {
	q := Quota{Total: total, Seats: seats}
	if err := q.IsValid(nil); err != nil {
		return Quota{}, err
	}

	q.Quota = total/(seats+1) + 1

	return q, nil
}

func (q Quota) IsValid([]byte) error {
	switch {
	case q.Seats < 1:
		return ConfigurationError.Errorf("seats should be over zero, %d", q.Seats)
	case q.Total < 1:
		return ConfigurationError.Errorf("empty ballots")
	default:
		return nil
	}
}

func (q Quota) String() string {
	b, _ := util.JSONMarshal(q)

	return string(b)
}
