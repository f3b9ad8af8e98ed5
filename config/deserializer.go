package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/logkit/dynfilter/filter"
	"github.com/logkit/dynfilter/level"
)

// A FilterDeserializer constructs a filter from the YAML node of a filter
// entry. The node holds the entire entry, including the kind tag.
type FilterDeserializer interface {
	Deserialize(node *yaml.Node) (filter.Filter, error)
}

// FilterDeserializerFunc is an adapter to allow use of ordinary functions as
// FilterDeserializers.
type FilterDeserializerFunc func(node *yaml.Node) (filter.Filter, error)

// Deserialize implements FilterDeserializer by calling f(node).
func (f FilterDeserializerFunc) Deserialize(node *yaml.Node) (filter.Filter, error) {
	return f(node)
}

// Deserializers maps the kind tag of a declarative filter entry to the
// deserializer that builds the filter.
type Deserializers struct {
	filters map[string]FilterDeserializer
}

// NewDeserializers returns an empty registry.
func NewDeserializers() Deserializers {
	return Deserializers{filters: make(map[string]FilterDeserializer)}
}

// DefaultDeserializers returns a registry with the built-in filter kinds,
// threshold and dynamic_level.
func DefaultDeserializers() Deserializers {
	ds := NewDeserializers()
	ds.RegisterFilter("threshold", FilterDeserializerFunc(deserializeThreshold))
	ds.RegisterFilter("dynamic_level", FilterDeserializerFunc(deserializeDynamicLevel))
	return ds
}

// RegisterFilter makes d responsible for filter entries of the given kind,
// replacing any previous registration.
func (ds Deserializers) RegisterFilter(kind string, d FilterDeserializer) {
	ds.filters[kind] = d
}

// dynamicLevelConfig is the declarative record for a dynamic_level filter.
// Both fields are required.
type dynamicLevelConfig struct {
	Name    string       `yaml:"name"`
	Default *level.Level `yaml:"default"`
}

func deserializeDynamicLevel(node *yaml.Node) (filter.Filter, error) {
	var cfg dynamicLevelConfig
	if err := node.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("dynamic_level: %w", err)
	}
	if cfg.Name == "" {
		return nil, errors.New("dynamic_level: missing name")
	}
	if cfg.Default == nil {
		return nil, fmt.Errorf("dynamic_level: filter %q: missing default level", cfg.Name)
	}
	return filter.NewDynamicLevelFilter(cfg.Name, *cfg.Default), nil
}

type thresholdConfig struct {
	Level *level.Level `yaml:"level"`
}

func deserializeThreshold(node *yaml.Node) (filter.Filter, error) {
	var cfg thresholdConfig
	if err := node.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("threshold: %w", err)
	}
	if cfg.Level == nil {
		return nil, errors.New("threshold: missing level")
	}
	return filter.NewThresholdFilter(*cfg.Level), nil
}
