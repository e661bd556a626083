package valuehash

import (
	"fmt"

	"github.com/spikeekips/stv/util"
	"github.com/spikeekips/stv/util/isvalid"
)

var (
	EmptyHashError   = util.NewError("empty hash")
	InvalidHashError = util.NewError("invalid hash")
)

type Hash interface {
	isvalid.IsValider
	fmt.Stringer
	Bytes() []byte
	Equal(Hash) bool
	IsEmpty() bool
}
