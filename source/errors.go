package source

import "github.com/spikeekips/stv/util"

var (
	DuplicatedCandidateError = util.NewError("duplicated candidate")
	InvalidRankError         = util.NewError("invalid rank")
	InvalidHeaderError       = util.NewError("invalid header")
)
