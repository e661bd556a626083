package tabulator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestQuota(t *testing.T) {
	cases := []struct {
		name     string
		total    int
		seats    int
		expected int
		err      string
	}{
		{
			name:  "0 seats",
			total: 10,
			seats: 0,
			err:   "seats should be over zero",
		},
		{
			name:  "negative seats",
			total: 10,
			seats: -1,
			err:   "seats should be over zero",
		},
		{
			name:  "0 total",
			total: 0,
			seats: 1,
			err:   "empty ballots",
		},
		{
			name:     "single seat",
			total:    10,
			seats:    1,
			expected: 6,
		},
		{
			name:     "2 seats",
			total:    10,
			seats:    2,
			expected: 4,
		},
		{
			name:     "odd total",
			total:    5,
			seats:    1,
			expected: 3,
		},
		{
			name:     "3 seats",
			total:    100,
			seats:    3,
			expected: 26,
		},
		{
			name:     "more seats than ballots",
			total:    2,
			seats:    5,
			expected: 1,
		},
	}

	for i, c := range cases {
		i := i
		c := c
		t.Run(
			c.name,
			func(*testing.T) {
				q, err := NewQuota(c.total, c.seats)
				if len(c.err) > 0 {
					if assert.Error(t, err, "%d: %v", i, c.name) {
						assert.True(t, errors.Is(err, ConfigurationError), "%d: %v", i, c.name)
						assert.Contains(t, err.Error(), c.err, "%d: %v", i, c.name)
					}

					return
				}

				assert.NoError(t, err, "%d: %v", i, c.name)
				assert.Equal(t, c.expected, q.Quota, "%d: %v; %v != %v", i, c.name, c.expected, q.Quota)
				assert.Equal(t, c.total/(c.seats+1)+1, q.Quota, "%d: %v", i, c.name)
			},
		)
	}
}
