package pipeline

import (
	"bytes"
	"io"

	"github.com/go-logfmt/logfmt"

	"github.com/logkit/dynfilter/filter"
)

type logfmtEncoder struct{}

// NewLogfmtEncoder returns an Encoder that writes records in logfmt format,
// with the record's severity under the "level" key ahead of the record's own
// keyvals.
func NewLogfmtEncoder() Encoder {
	return logfmtEncoder{}
}

func (logfmtEncoder) Encode(w io.Writer, r *filter.Record) error {
	buf := &bytes.Buffer{}
	enc := logfmt.NewEncoder(buf)
	if err := enc.EncodeKeyval("level", r.Level); err != nil {
		return err
	}
	if err := enc.EncodeKeyvals(r.Keyvals...); err != nil {
		return err
	}
	if err := enc.EndRecord(); err != nil {
		return err
	}
	// The record is buffered so it reaches w in a single Write.
	_, err := w.Write(buf.Bytes())
	return err
}
