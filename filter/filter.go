package filter

import "github.com/logkit/dynfilter/level"

// Record is a single log event flowing through the pipeline. Keyvals is an
// alternating sequence of keys and values.
type Record struct {
	Level   level.Level
	Keyvals []interface{}
}

// Response is a filter's verdict on a record.
type Response int

const (
	// Neutral means the filter does not object; later filters in the chain
	// and the appender decide.
	Neutral Response = iota

	// Reject drops the record immediately.
	Reject

	// Accept hands the record to the appender without consulting the
	// remaining filters in the chain.
	Accept
)

// String returns a human-readable name for the response.
func (r Response) String() string {
	switch r {
	case Neutral:
		return "neutral"
	case Reject:
		return "reject"
	case Accept:
		return "accept"
	}
	return "unknown"
}

// Filter inspects a record and returns a verdict. Implementations must be
// safe for concurrent use.
type Filter interface {
	Filter(r *Record) Response
}

// FilterFunc is an adapter to allow use of ordinary functions as Filters. If
// f is a function with the appropriate signature, FilterFunc(f) is a Filter
// object that calls f.
type FilterFunc func(r *Record) Response

// Filter implements Filter by calling f(r).
func (f FilterFunc) Filter(r *Record) Response {
	return f(r)
}
