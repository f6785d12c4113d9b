// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// Item is a value and its priority.
type Item struct {
	Value    string `yaml:"value"`
	Priority int    `yaml:"priority"`
}

// Edge is a weighted, directed edge written as a flow sequence, eg:
//
//	[home, shop, 3]
type Edge struct {
	From, To string
	Weight   int
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Edge) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 3 {
		return fmt.Errorf("line %d: an edge must be specified as [from, to, weight]", node.Line)
	}
	e.From = node.Content[0].Value
	e.To = node.Content[1].Value
	if err := node.Content[2].Decode(&e.Weight); err != nil {
		return fmt.Errorf("line %d: invalid weight: %w", node.Line, err)
	}
	return nil
}

// Event is a value that is to be scheduled at a time relative to when
// the schedule command is started.
type Event struct {
	Value string        `yaml:"value"`
	After time.Duration `yaml:"after"`
}

// Config represents the configuration file used by all of the commands,
// each command uses only its own section.
type Config struct {
	Items  []Item  `yaml:"items"`
	Edges  []Edge  `yaml:"edges"`
	Events []Event `yaml:"events"`
}

// Validate returns all of the problems found in the configuration.
func (c Config) Validate() error {
	errs := &errors.M{}
	for i, e := range c.Edges {
		if len(e.From) == 0 || len(e.To) == 0 {
			errs.Append(fmt.Errorf("edge %d: missing node name", i))
		}
		if e.Weight < 0 {
			errs.Append(fmt.Errorf("edge %d: %v -> %v: negative weight %d", i, e.From, e.To, e.Weight))
		}
	}
	for i, ev := range c.Events {
		if ev.After < 0 {
			errs.Append(fmt.Errorf("event %d: %v: negative delay %v", i, ev.Value, ev.After))
		}
	}
	return errs.Err()
}

// LoadConfig reads and validates the configuration in file. The file
// is read using any filesystem stored in ctx, see cloudeng.io/file.
func LoadConfig(ctx context.Context, file string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFile(ctx, file, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%v: %w", file, err)
	}
	return cfg, nil
}
