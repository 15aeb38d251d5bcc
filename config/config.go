// Copyright 2026 The slow-learner-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the tunables shared by the observer and the
// simplifier (spec.md §6): the literal fan cap, literal string length
// cutoff, record-learning toggle, record field cap, recursion depth
// cutoff, and the ordered no-literal-pattern list.
package config

import (
	"io"

	"github.com/dlclark/regexp2"
	"gopkg.in/yaml.v3"
)

// Config is constructed once (via New or LoadYAML) and threaded through
// every call to observer.Observe and simplify.Simplify; there is no
// global mutable configuration state.
type Config struct {
	MaxLiteralFan          int
	MaxLiteralStringLength int
	LearnRecords           bool
	MaxRecordFields        int
	MaxDepth               int

	// RawPatterns preserves the source strings for logging/round-tripping
	// to YAML; Patterns holds the compiled regexp2 matchers used at
	// observation time. regexp2 (rather than the stdlib regexp package)
	// is used deliberately: it gives callers lookaround and backreference
	// support for path matching, which plain RE2 syntax cannot express.
	RawPatterns []string
	Patterns    []*regexp2.Regexp
}

// Default returns the spec's documented defaults.
func Default() Config {
	return Config{
		MaxLiteralFan:          10,
		MaxLiteralStringLength: 512,
		LearnRecords:           true,
		MaxRecordFields:        100,
		MaxDepth:               10,
	}
}

// Option mutates a Config under construction in New.
type Option func(*Config)

func WithMaxLiteralFan(n int) Option {
	return func(c *Config) { c.MaxLiteralFan = n }
}

func WithMaxLiteralStringLength(n int) Option {
	return func(c *Config) { c.MaxLiteralStringLength = n }
}

func WithLearnRecords(enabled bool) Option {
	return func(c *Config) { c.LearnRecords = enabled }
}

func WithMaxRecordFields(n int) Option {
	return func(c *Config) { c.MaxRecordFields = n }
}

func WithMaxDepth(n int) Option {
	return func(c *Config) { c.MaxDepth = n }
}

func WithNoLiteralPatterns(patterns ...string) Option {
	return func(c *Config) { c.RawPatterns = append(c.RawPatterns, patterns...) }
}

// New builds a Config from Default() plus the given options, compiling
// NoLiteralPatterns once up front (spec.md §9: "implementers should
// compile patterns once at configuration time").
func New(opts ...Option) (Config, error) {
	c := Default()
	for _, opt := range opts {
		opt(&c)
	}
	return c, c.compile()
}

func (c *Config) compile() error {
	c.Patterns = make([]*regexp2.Regexp, 0, len(c.RawPatterns))
	for _, p := range c.RawPatterns {
		re, err := regexp2.Compile(p, regexp2.None)
		if err != nil {
			return err
		}
		c.Patterns = append(c.Patterns, re)
	}
	return nil
}

// MatchesNoLiteralPattern reports whether jsonPath matches any configured
// no-literal pattern, in which case the observer must never turn a
// scalar observed at that path into a Literal.
func (c Config) MatchesNoLiteralPattern(jsonPath string) bool {
	for _, re := range c.Patterns {
		if ok, _ := re.MatchString(jsonPath); ok {
			return true
		}
	}
	return false
}

// yamlConfig mirrors Config's user-facing fields for (de)serialization;
// Patterns is derived, not stored.
type yamlConfig struct {
	MaxLiteralFan          int      `yaml:"max_literal_fan"`
	MaxLiteralStringLength int      `yaml:"max_literal_string_length"`
	LearnRecords           bool     `yaml:"learn_records"`
	MaxRecordFields        int      `yaml:"max_record_fields"`
	MaxDepth               int      `yaml:"max_depth"`
	NoLiteralPatterns      []string `yaml:"no_literal_patterns"`
}

// LoadYAML reads a Config from YAML, applying Default() for any field the
// document omits.
func LoadYAML(r io.Reader) (Config, error) {
	yc := yamlConfig{}
	def := Default()
	yc.MaxLiteralFan = def.MaxLiteralFan
	yc.MaxLiteralStringLength = def.MaxLiteralStringLength
	yc.LearnRecords = def.LearnRecords
	yc.MaxRecordFields = def.MaxRecordFields
	yc.MaxDepth = def.MaxDepth

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&yc); err != nil && err != io.EOF {
		return Config{}, err
	}

	return New(
		WithMaxLiteralFan(yc.MaxLiteralFan),
		WithMaxLiteralStringLength(yc.MaxLiteralStringLength),
		WithLearnRecords(yc.LearnRecords),
		WithMaxRecordFields(yc.MaxRecordFields),
		WithMaxDepth(yc.MaxDepth),
		WithNoLiteralPatterns(yc.NoLiteralPatterns...),
	)
}
