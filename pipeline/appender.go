package pipeline

import (
	"io"

	"github.com/logkit/dynfilter/filter"
)

// Encoder writes an encoded record to w. Implementations must produce no
// more than one call to w.Write per record, so that a SyncWriter keeps
// concurrently encoded records separate.
type Encoder interface {
	Encode(w io.Writer, r *filter.Record) error
}

// Appender applies a filter chain to records and encodes the survivors to a
// writer.
type Appender struct {
	name    string
	w       io.Writer
	encoder Encoder
	filters []filter.Filter
}

// AppenderOption sets a parameter for an appender.
type AppenderOption func(*Appender)

// WithFilter appends f to the appender's filter chain. Filters run in the
// order they were added.
func WithFilter(f filter.Filter) AppenderOption {
	return func(a *Appender) { a.filters = append(a.filters, f) }
}

// WithEncoder sets the appender's encoder. The default is a logfmt encoder.
func WithEncoder(e Encoder) AppenderOption {
	return func(a *Appender) { a.encoder = e }
}

// NewAppender returns an appender encoding records to w. The passed Writer
// must be safe for concurrent use if the appender will be used concurrently.
func NewAppender(name string, w io.Writer, options ...AppenderOption) *Appender {
	a := &Appender{
		name:    name,
		w:       w,
		encoder: NewLogfmtEncoder(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Name returns the name the appender was declared under.
func (a *Appender) Name() string {
	return a.name
}

// Append runs r through the filter chain and encodes it if it survives. The
// first Reject drops the record with no error; the first Accept bypasses the
// remaining filters; if every filter answers Neutral the record is encoded.
func (a *Appender) Append(r *filter.Record) error {
chain:
	for _, f := range a.filters {
		switch f.Filter(r) {
		case filter.Reject:
			return nil
		case filter.Accept:
			break chain
		}
	}
	return a.encoder.Encode(a.w, r)
}
