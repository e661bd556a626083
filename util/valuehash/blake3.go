package valuehash

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

func NewBlake3256(b []byte) L32 {
	return L32(blake3.Sum256(b))
}

// Blake3Builder hashes a sequence of fields. Each field is length prefixed,
// so ("ab", "c") and ("a", "bc") give different digests.
type Blake3Builder struct {
	h *blake3.Hasher
}

func NewBlake3Builder() *Blake3Builder {
	return &Blake3Builder{h: blake3.New()}
}

func (bb *Blake3Builder) Add(b []byte) *Blake3Builder {
	var l [8]byte
	binary.BigEndian.PutUint64(l[:], uint64(len(b)))

	_, _ = bb.h.Write(l[:])
	_, _ = bb.h.Write(b)

	return bb
}

func (bb *Blake3Builder) AddString(s ...string) *Blake3Builder {
	for i := range s {
		_ = bb.Add([]byte(s[i]))
	}

	return bb
}

func (bb *Blake3Builder) Sum() L32 {
	var h L32
	copy(h[:], bb.h.Sum(nil))

	return h
}
