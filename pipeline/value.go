package pipeline

import (
	"time"

	"github.com/go-stack/stack"
)

// A Valuer generates a value for a record at the moment the record is
// created. Passing a Valuer to Logger.With represents a dynamic value that
// is re-evaluated with each record.
type Valuer func() interface{}

// bindValues replaces Valuer elements in value positions with the result of
// calling them. The slice must be owned by the caller.
func bindValues(keyvals []interface{}) []interface{} {
	for i := 1; i < len(keyvals); i += 2 {
		if v, ok := keyvals[i].(Valuer); ok {
			keyvals[i] = v()
		}
	}
	return keyvals
}

var (
	// DefaultTimestamp is a Valuer that returns the current wallclock time,
	// respecting time zones, when bound.
	DefaultTimestamp Valuer = func() interface{} {
		return time.Now().Format(time.RFC3339)
	}

	// DefaultTimestampUTC is a Valuer that returns the current time in UTC
	// when bound.
	DefaultTimestampUTC Valuer = func() interface{} {
		return time.Now().UTC().Format(time.RFC3339Nano)
	}

	// DefaultCaller is a Valuer that returns the file and line where Log was
	// invoked. The per-level helpers on Logger add one frame.
	DefaultCaller = Caller(3)
)

// Caller returns a Valuer that reports the file and line depth frames up the
// callstack from where the record was created.
func Caller(depth int) Valuer {
	return func() interface{} { return stack.Caller(depth) }
}
