// Copyright 2025 walteh LLC
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

package config

import (
	"context"
	"os"
	"regexp"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Rule represents one ordered pattern/replacement pair
type Rule struct {
	Match   string `json:"match" yaml:"match"`                     // Pattern to search for
	Replace string `json:"replace" yaml:"replace"`                 // Replacement text
	Regex   bool   `json:"regex,omitempty" yaml:"regex,omitempty"` // Interpret Match as a regular expression
}

// 📐 Indent represents one indentation repair pass
type Indent struct {
	Anchor     string   `json:"anchor" yaml:"anchor"`                             // Marker substring establishing the indent context
	Canonical  string   `json:"canonical,omitempty" yaml:"canonical,omitempty"`   // Base indent override
	Offset     string   `json:"offset,omitempty" yaml:"offset,omitempty"`         // Nested offset (default two spaces)
	Properties []string `json:"properties,omitempty" yaml:"properties,omitempty"` // Property names eligible for repair
	MinDepth   int      `json:"min_depth,omitempty" yaml:"min_depth,omitempty"`   // Absolute indent floor
}

// 📄 File represents the rule table for one target file or glob
type File struct {
	Target            string   `json:"target" yaml:"target"`                                               // Path or doublestar glob, relative to Root
	Require           string   `json:"require,omitempty" yaml:"require,omitempty"`                         // Substring that must be present before rewriting
	Rules             []Rule   `json:"rules,omitempty" yaml:"rules,omitempty"`                             // Ordered rewrite rules
	Indents           []Indent `json:"indents,omitempty" yaml:"indents,omitempty"`                         // Indentation repair passes
	CollapseBlankRuns bool     `json:"collapse_blank_runs,omitempty" yaml:"collapse_blank_runs,omitempty"` // Collapse blank-line runs after rewriting
	Verify            string   `json:"verify,omitempty" yaml:"verify,omitempty"`                           // Residue pattern checked by the verify operation
}

// 📚 Config represents the complete configuration
type Config struct {
	Root  string `json:"root,omitempty" yaml:"root,omitempty"`   // Base directory for resolving targets
	Async bool   `json:"async,omitempty" yaml:"async,omitempty"` // Process files in parallel
	Files []File `json:"files" yaml:"files"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if len(cfg.Files) == 0 {
		return errors.Errorf("at least one file block is required")
	}

	for i, f := range cfg.Files {
		if f.Target == "" {
			return errors.Errorf("file %d: target is required", i)
		}
		if len(f.Rules) == 0 && len(f.Indents) == 0 && f.Verify == "" {
			return errors.Errorf("file %q: at least one rule, indent, or verify pattern is required", f.Target)
		}
		for j, r := range f.Rules {
			if r.Match == "" {
				return errors.Errorf("file %q: rule %d: match is required", f.Target, j)
			}
			if r.Regex {
				if _, err := regexp.Compile(r.Match); err != nil {
					return errors.Errorf("file %q: rule %d: invalid pattern: %w", f.Target, j, err)
				}
			}
		}
		for j, ind := range f.Indents {
			if ind.Anchor == "" {
				return errors.Errorf("file %q: indent %d: anchor is required", f.Target, j)
			}
		}
		if f.Verify != "" {
			if _, err := regexp.Compile(f.Verify); err != nil {
				return errors.Errorf("file %q: invalid verify pattern: %w", f.Target, err)
			}
		}
	}

	return nil
}
