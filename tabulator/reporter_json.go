package tabulator

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/spikeekips/stv/util"
)

type jsonRecord struct {
	Type   string  `json:"type"`
	Tally  *Tally  `json:"tally,omitempty"`
	Result *Result `json:"result,omitempty"`
}

// JSONReporter writes one JSON document per line; "round" records for
// tallies and a "result" record at the end.
type JSONReporter struct {
	enc *jsoniter.Encoder
}

func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{enc: util.NewJSONEncoder(w)}
}

func (jr *JSONReporter) Round(t Tally) error {
	if err := jr.enc.Encode(jsonRecord{Type: "round", Tally: &t}); err != nil {
		return ReportError.Wrap(err)
	}

	return nil
}

func (jr *JSONReporter) Done(r Result) error {
	if err := jr.enc.Encode(jsonRecord{Type: "result", Result: &r}); err != nil {
		return ReportError.Wrap(err)
	}

	return nil
}
