package util

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid"
)

// ULID returns a new, time ordered identifier.
func ULID() ulid.ULID {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader)
}
