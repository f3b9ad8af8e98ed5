// Package level defines the severity scale shared by filters and the
// pipeline.
package level

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Level is a log severity. Greater values are more verbose: Off admits
// nothing and Trace admits everything. A threshold t admits a record at
// severity s when s <= t.
type Level int8

const (
	Off Level = iota
	Error
	Warn
	Info
	Debug
	Trace
)

var names = [...]string{"off", "error", "warn", "info", "debug", "trace"}

// String returns the lower-case token for l, matching the configuration
// vocabulary.
func (l Level) String() string {
	if l < Off || l > Trace {
		return fmt.Sprintf("level(%d)", int8(l))
	}
	return names[l]
}

// Parse returns the Level named by s. Tokens are matched case-insensitively
// against off, error, warn, info, debug and trace.
func Parse(s string) (Level, error) {
	for i, name := range names {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return Off, fmt.Errorf("unknown level %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if l < Off || l > Trace {
		return nil, fmt.Errorf("cannot marshal level(%d)", int8(l))
	}
	return []byte(names[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The yaml package does not
// consult encoding.TextUnmarshaler, so the hook is spelled out here.
func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return l.UnmarshalText([]byte(s))
}
