package isvalid

import "github.com/spikeekips/stv/util"

var InvalidError = util.NewError("invalid")

type IsValider interface {
	IsValid([]byte) error
}
