// Package pipeline routes log records through filter chains to encoded
// outputs.
//
// A Logger fans records out to one or more Appenders. Each Appender owns an
// ordered chain of filters and an Encoder writing to an io.Writer. A record
// survives an appender's chain unless some filter rejects it; a filter that
// accepts it outright bypasses the rest of the chain.
//
// Loggers carry contextual keyvals. Values implementing Valuer are bound
// when the record is created, so timestamps and callers stay current.
//
// Concurrent Safety
//
// Loggers and Appenders hold no mutable state and may be shared freely
// across goroutines. Writers shared between appenders should be wrapped in a
// SyncWriter so that concurrently encoded records do not interleave.
package pipeline
