package pipeline

import (
	"errors"

	"github.com/logkit/dynfilter/filter"
	"github.com/logkit/dynfilter/level"
)

// ErrMissingValue is the value placed in a record when a caller passes an
// odd number of keyvals.
var ErrMissingValue = errors.New("(MISSING)")

// Logger routes records to a set of appenders. Records more verbose than the
// root level are dropped before any appender or filter sees them.
//
// Loggers are immutable after construction and safe for concurrent use.
type Logger struct {
	root      level.Level
	appenders []*Appender
	keyvals   []interface{}
}

// NewLogger returns a logger fanning records out to appenders, capped at the
// root level.
func NewLogger(root level.Level, appenders ...*Appender) *Logger {
	return &Logger{
		root:      root,
		appenders: appenders,
	}
}

// With returns a copy of the logger whose records carry keyvals ahead of
// those passed to Log. Values implementing Valuer are bound when each record
// is created.
func (l *Logger) With(keyvals ...interface{}) *Logger {
	if len(keyvals) == 0 {
		return l
	}
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, ErrMissingValue)
	}
	kvs := make([]interface{}, 0, len(l.keyvals)+len(keyvals))
	kvs = append(kvs, l.keyvals...)
	kvs = append(kvs, keyvals...)
	return &Logger{
		root:      l.root,
		appenders: l.appenders,
		keyvals:   kvs,
	}
}

// Log emits a record at lvl carrying the logger's contextual keyvals
// followed by keyvals. Every appender sees the record; the first appender
// error is returned.
func (l *Logger) Log(lvl level.Level, keyvals ...interface{}) error {
	if lvl > l.root {
		return nil
	}
	kvs := make([]interface{}, 0, len(l.keyvals)+len(keyvals)+1)
	kvs = append(kvs, l.keyvals...)
	kvs = append(kvs, keyvals...)
	if len(kvs)%2 != 0 {
		kvs = append(kvs, ErrMissingValue)
	}
	r := &filter.Record{
		Level:   lvl,
		Keyvals: bindValues(kvs),
	}
	var first error
	for _, a := range l.appenders {
		if err := a.Append(r); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Error emits a record at the error level.
func (l *Logger) Error(keyvals ...interface{}) error { return l.Log(level.Error, keyvals...) }

// Warn emits a record at the warn level.
func (l *Logger) Warn(keyvals ...interface{}) error { return l.Log(level.Warn, keyvals...) }

// Info emits a record at the info level.
func (l *Logger) Info(keyvals ...interface{}) error { return l.Log(level.Info, keyvals...) }

// Debug emits a record at the debug level.
func (l *Logger) Debug(keyvals ...interface{}) error { return l.Log(level.Debug, keyvals...) }

// Trace emits a record at the trace level.
func (l *Logger) Trace(keyvals ...interface{}) error { return l.Log(level.Trace, keyvals...) }
