package valuehash

import (
	"bytes"

	"github.com/spikeekips/stv/util/isvalid"
)

type L32 [32]byte

var emptyL32 [32]byte

func (h L32) IsValid([]byte) error {
	if h.IsEmpty() {
		return isvalid.InvalidError.Wrap(EmptyHashError)
	}

	return nil
}

func (h L32) Bytes() []byte {
	return h[:]
}

func (h L32) String() string {
	return toString(h[:])
}

func (h L32) Equal(b Hash) bool {
	return b != nil && bytes.Equal(h[:], b.Bytes())
}

func (h L32) IsEmpty() bool {
	return emptyL32 == h
}

func (h L32) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *L32) UnmarshalText(b []byte) error {
	d := fromString(string(b))
	if len(d) != len(h) {
		return InvalidHashError.Errorf("wrong length, %d", len(d))
	}

	copy(h[:], d)

	return nil
}
