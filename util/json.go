package util

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var jsoni = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

func JSONMarshal(i interface{}) ([]byte, error) {
	return jsoni.Marshal(i)
}

func JSONMarshalIndent(i interface{}) ([]byte, error) {
	return jsoni.MarshalIndent(i, "", "  ")
}

func JSONUnmarshal(b []byte, i interface{}) error {
	return jsoni.Unmarshal(b, i)
}

// NewJSONEncoder returns a streaming encoder; each Encode writes one line.
func NewJSONEncoder(w io.Writer) *jsoniter.Encoder {
	return jsoni.NewEncoder(w)
}
