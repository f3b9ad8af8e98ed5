package pipeline

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/logkit/dynfilter/filter"
)

type jsonEncoder struct{}

// NewJSONEncoder returns an Encoder that marshals each record as a JSON
// object with the severity under the "level" key. Because fields are keys in
// a JSON object they must be unique, and last-writer-wins.
func NewJSONEncoder() Encoder {
	return jsonEncoder{}
}

func (jsonEncoder) Encode(w io.Writer, r *filter.Record) error {
	m := make(map[string]interface{}, len(r.Keyvals)/2+1)
	m["level"] = r.Level.String()
	for i := 0; i < len(r.Keyvals); i += 2 {
		k := fmt.Sprint(r.Keyvals[i])
		var v interface{} = ErrMissingValue
		if i+1 < len(r.Keyvals) {
			v = r.Keyvals[i+1]
		}
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		m[k] = v
	}
	return json.NewEncoder(w).Encode(m)
}
