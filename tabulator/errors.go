package tabulator

import "github.com/spikeekips/stv/util"

var (
	ConfigurationError      = util.NewError("configuration error")
	InvariantViolationError = util.NewError("invariant violation")
	AlreadyFinishedError    = util.NewError("tabulation already finished")
	ReportError             = util.NewError("failed to report")
)
