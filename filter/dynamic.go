package filter

import (
	"fmt"
	"sync"

	"github.com/logkit/dynfilter/level"
)

// Process-wide table of dynamic filter thresholds. Lookups happen on every
// record and writes only on SetLevel or registration, so a single RWMutex
// over the map is enough.
var registry = struct {
	sync.RWMutex
	levels map[string]level.Level
}{levels: make(map[string]level.Level)}

func register(name string, starting level.Level) {
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.levels[name]; !ok {
		registry.levels[name] = starting
	}
}

func currentLevel(name string) level.Level {
	registry.RLock()
	defer registry.RUnlock()
	lvl, ok := registry.levels[name]
	if !ok {
		panic(fmt.Sprintf("filter: no registered threshold for %q", name))
	}
	return lvl
}

// SetLevel sets the threshold of every DynamicLevelFilter sharing name. It
// has no effect if no filter with that name has been created; callers may
// race filter construction harmlessly, in either order.
func SetLevel(name string, lvl level.Level) {
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.levels[name]; ok {
		registry.levels[name] = lvl
	}
}

// DynamicLevelFilter rejects records more verbose than a threshold that can
// be changed at runtime with SetLevel. Every filter created with the same
// name shares one threshold, and the threshold outlives the handles
// referring to it: once a name is registered its entry lives for the rest of
// the process.
//
// The filter holds no mutable state of its own and is safe to share across
// goroutines.
type DynamicLevelFilter struct {
	name string
}

// NewDynamicLevelFilter returns a filter identified by name. If name is
// unused, it is registered with starting as its threshold. Creating another
// filter with an already-registered name never changes the current
// threshold.
func NewDynamicLevelFilter(name string, starting level.Level) *DynamicLevelFilter {
	register(name, starting)
	return &DynamicLevelFilter{name: name}
}

// Name returns the name the filter was created with.
func (f *DynamicLevelFilter) Name() string {
	return f.name
}

// Filter returns Reject for records strictly more verbose than the current
// threshold registered under the filter's name, and Neutral otherwise.
func (f *DynamicLevelFilter) Filter(r *Record) Response {
	if r.Level > currentLevel(f.name) {
		return Reject
	}
	return Neutral
}
