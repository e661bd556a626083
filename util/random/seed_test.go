package random

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSeed struct {
	suite.Suite
}

func (t *testSeed) TestNewSeed() {
	a, err := NewSeed()
	t.NoError(err)

	b, err := NewSeed()
	t.NoError(err)

	t.NotEqual(a, b)
}

func (t *testSeed) TestSameSeed() {
	a := New(33)
	b := New(33)

	for i := 0; i < 10; i++ {
		t.Equal(a.Intn(100), b.Intn(100))
	}
}

func TestSeed(t *testing.T) {
	suite.Run(t, new(testSeed))
}
