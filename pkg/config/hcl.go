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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclRule struct {
		Match   string `hcl:"match"`
		Replace string `hcl:"replace"`
		Regex   bool   `hcl:"regex,optional"`
	}
	type hclIndent struct {
		Anchor     string   `hcl:"anchor"`
		Canonical  *string  `hcl:"canonical,optional"`
		Offset     *string  `hcl:"offset,optional"`
		Properties []string `hcl:"properties,optional"`
		MinDepth   int      `hcl:"min_depth,optional"`
	}
	type hclFileBlock struct {
		Target            string      `hcl:"target,label"`
		Require           *string     `hcl:"require,optional"`
		Rules             []hclRule   `hcl:"rule,block"`
		Indents           []hclIndent `hcl:"indent,block"`
		CollapseBlankRuns bool        `hcl:"collapse_blank_runs,optional"`
		Verify            *string     `hcl:"verify,optional"`
	}
	type hclConfig struct {
		Root  string         `hcl:"root,optional"`
		Async bool           `hcl:"async,optional"`
		Files []hclFileBlock `hcl:"file,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to Config
	cfg := &Config{
		Root:  hclCfg.Root,
		Async: hclCfg.Async,
	}
	for _, f := range hclCfg.Files {
		file := File{
			Target:            f.Target,
			CollapseBlankRuns: f.CollapseBlankRuns,
		}
		if f.Require != nil {
			file.Require = *f.Require
		}
		if f.Verify != nil {
			file.Verify = *f.Verify
		}
		for _, r := range f.Rules {
			file.Rules = append(file.Rules, Rule{
				Match:   r.Match,
				Replace: r.Replace,
				Regex:   r.Regex,
			})
		}
		for _, ind := range f.Indents {
			indent := Indent{
				Anchor:     ind.Anchor,
				Properties: ind.Properties,
				MinDepth:   ind.MinDepth,
			}
			if ind.Canonical != nil {
				indent.Canonical = *ind.Canonical
			}
			if ind.Offset != nil {
				indent.Offset = *ind.Offset
			}
			file.Indents = append(file.Indents, indent)
		}
		cfg.Files = append(cfg.Files, file)
	}

	return cfg, nil
}
