package filter

import "github.com/logkit/dynfilter/level"

// ThresholdFilter rejects records more verbose than a fixed threshold. It is
// the static counterpart of DynamicLevelFilter.
type ThresholdFilter struct {
	threshold level.Level
}

// NewThresholdFilter returns a filter with the given fixed threshold.
func NewThresholdFilter(threshold level.Level) *ThresholdFilter {
	return &ThresholdFilter{threshold: threshold}
}

// Filter returns Reject for records strictly more verbose than the
// threshold, and Neutral otherwise.
func (f *ThresholdFilter) Filter(r *Record) Response {
	if r.Level > f.threshold {
		return Reject
	}
	return Neutral
}
