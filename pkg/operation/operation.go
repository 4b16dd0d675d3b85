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

package operation

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/logrc/pkg/config"
	"github.com/walteh/logrc/pkg/rewrite"
	"github.com/walteh/logrc/pkg/status"
	"github.com/walteh/logrc/pkg/userlog"
)

// 🎯 Operation is a unit of work executed by the runner
type Operation interface {
	// Execute runs the operation to completion
	Execute(ctx context.Context) error
	// Name identifies the operation for logging
	Name() string
}

// 🔧 Options contains the dependencies shared by all operations
type Options struct {
	// Config is the full logrc configuration
	Config *config.Config
	// Block is the file block this operation processes
	Block config.File
	// StatusMgr tracks per-file results and owns file access
	StatusMgr *status.Manager
	// UserLogger emits user-facing feedback
	UserLogger *userlog.UserLogger
}

// 🏗️ BaseOperation provides common functionality for operations
type BaseOperation struct {
	Config     *config.Config
	Block      config.File
	StatusMgr  *status.Manager
	UserLogger *userlog.UserLogger
}

// 🏭 NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.StatusMgr == nil {
		return BaseOperation{}, errors.Errorf("status manager is required")
	}
	if opts.UserLogger == nil {
		return BaseOperation{}, errors.Errorf("user logger is required")
	}
	return BaseOperation{
		Config:     opts.Config,
		Block:      opts.Block,
		StatusMgr:  opts.StatusMgr,
		UserLogger: opts.UserLogger,
	}, nil
}

// rewriteRules converts the block's config rules into engine rules
func (op *BaseOperation) rewriteRules() []rewrite.Rule {
	rules := make([]rewrite.Rule, 0, len(op.Block.Rules))
	for _, r := range op.Block.Rules {
		rules = append(rules, rewrite.Rule{
			Match:   r.Match,
			Replace: r.Replace,
			Literal: !r.Regex,
		})
	}
	return rules
}

// 🔍 resolveTargets expands the block's target into concrete file paths,
// relative to the configured root. A literal path that does not exist is a
// fatal error; a glob that matches nothing is not.
func (op *BaseOperation) resolveTargets() ([]string, error) {
	target := op.Block.Target

	if !strings.ContainsAny(target, "*?[{") {
		if _, err := os.Stat(filepath.Join(op.Config.Root, target)); err != nil {
			return nil, errors.Errorf("target %s: %w", target, err)
		}
		return []string{target}, nil
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(op.Config.Root, target))
	if err != nil {
		return nil, errors.Errorf("resolving glob %s: %w", target, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, errors.Errorf("target %s: %w", m, err)
		}
		if info.IsDir() {
			continue
		}
		rel, err := filepath.Rel(op.Config.Root, m)
		if err != nil {
			return nil, errors.Errorf("relativizing %s: %w", m, err)
		}
		paths = append(paths, rel)
	}
	return paths, nil
}
