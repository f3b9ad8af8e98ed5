// Package filter provides record filtering for the dynfilter pipeline.
//
// A logging pipeline built from a configuration file is declarative: every
// appender, encoder and filter is fixed once the file is read. Application
// code that wants to raise or lower a severity threshold at runtime has no
// handle to reach into that pipeline. Package filter bridges the two models.
// A DynamicLevelFilter is declared like any other filter, with a name and a
// starting threshold, but its current threshold lives in a process-wide
// registry keyed by name. SetLevel mutates the registry, so application code
// can reconfigure a filter it never constructed, and the change takes effect
// on the next record evaluated.
//
// Filters answer with a Response. A filter that objects to a record answers
// Reject; a filter with no objection answers Neutral so that later filters
// in the chain remain authoritative. Accept ends the chain early and is
// reserved for filters that want to force a record through.
package filter
