// Package random provides seed generation and seeded random sources.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"golang.org/x/xerrors"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, xerrors.Errorf("failed to read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a pseudo-random source; the same seed gives the same sequence.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // nolint:gosec
}
