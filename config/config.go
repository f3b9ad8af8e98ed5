package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/logkit/dynfilter/level"
	"github.com/logkit/dynfilter/pipeline"
)

// Config mirrors the YAML document layout.
type Config struct {
	Root      RootConfig                `yaml:"root"`
	Appenders map[string]AppenderConfig `yaml:"appenders"`
}

// RootConfig names the appenders in use and the coarse level cap applied
// before any filter runs. The level defaults to trace.
type RootConfig struct {
	Level     *level.Level `yaml:"level"`
	Appenders []string     `yaml:"appenders"`
}

// AppenderConfig declares a single appender. Kind is console or file; file
// appenders require a path. Encoder is logfmt (the default) or json. Filter
// entries are held as raw nodes and dispatched on their kind tag.
type AppenderConfig struct {
	Kind    string      `yaml:"kind"`
	Path    string      `yaml:"path"`
	Encoder string      `yaml:"encoder"`
	Filters []yaml.Node `yaml:"filters"`
}

// Load reads a YAML document from path and builds the pipeline it declares.
func Load(path string, ds Deserializers) (*pipeline.Logger, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(doc, ds)
}

// Parse builds a pipeline from a YAML document. A malformed document or
// filter entry fails the whole parse; nothing is partially constructed.
func Parse(doc []byte, ds Deserializers) (*pipeline.Logger, error) {
	var cfg Config
	if err := yaml.Unmarshal(doc, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return New(cfg, ds)
}

// New builds a pipeline from an already-decoded Config.
func New(cfg Config, ds Deserializers) (*pipeline.Logger, error) {
	if len(cfg.Root.Appenders) == 0 {
		return nil, errors.New("config: root declares no appenders")
	}
	root := level.Trace
	if cfg.Root.Level != nil {
		root = *cfg.Root.Level
	}
	appenders := make([]*pipeline.Appender, 0, len(cfg.Root.Appenders))
	for _, name := range cfg.Root.Appenders {
		ac, ok := cfg.Appenders[name]
		if !ok {
			return nil, fmt.Errorf("config: root references undeclared appender %q", name)
		}
		a, err := buildAppender(name, ac, ds)
		if err != nil {
			return nil, err
		}
		appenders = append(appenders, a)
	}
	return pipeline.NewLogger(root, appenders...), nil
}

func buildAppender(name string, ac AppenderConfig, ds Deserializers) (*pipeline.Appender, error) {
	w, err := appenderWriter(name, ac)
	if err != nil {
		return nil, err
	}

	var options []pipeline.AppenderOption
	switch ac.Encoder {
	case "", "logfmt":
	case "json":
		options = append(options, pipeline.WithEncoder(pipeline.NewJSONEncoder()))
	default:
		return nil, fmt.Errorf("config: appender %q: unknown encoder %q", name, ac.Encoder)
	}

	for i := range ac.Filters {
		node := &ac.Filters[i]
		var tag struct {
			Kind string `yaml:"kind"`
		}
		if err := node.Decode(&tag); err != nil {
			return nil, fmt.Errorf("config: appender %q: %w", name, err)
		}
		if tag.Kind == "" {
			return nil, fmt.Errorf("config: appender %q: filter entry missing kind", name)
		}
		d, ok := ds.filters[tag.Kind]
		if !ok {
			return nil, fmt.Errorf("config: appender %q: no filter registered for kind %q", name, tag.Kind)
		}
		f, err := d.Deserialize(node)
		if err != nil {
			return nil, fmt.Errorf("config: appender %q: %w", name, err)
		}
		options = append(options, pipeline.WithFilter(f))
	}

	return pipeline.NewAppender(name, w, options...), nil
}

func appenderWriter(name string, ac AppenderConfig) (io.Writer, error) {
	switch ac.Kind {
	case "console":
		return pipeline.NewSyncWriter(os.Stdout), nil
	case "file":
		if ac.Path == "" {
			return nil, fmt.Errorf("config: appender %q: file kind requires a path", name)
		}
		f, err := os.OpenFile(ac.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("config: appender %q: %w", name, err)
		}
		return pipeline.NewSyncWriter(f), nil
	default:
		return nil, fmt.Errorf("config: appender %q: unknown kind %q", name, ac.Kind)
	}
}
