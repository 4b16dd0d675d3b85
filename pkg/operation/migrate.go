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
	"bytes"
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/logrc/pkg/indent"
	"github.com/walteh/logrc/pkg/rewrite"
	"github.com/walteh/logrc/pkg/status"
)

// 📦 NewMigrateOperation creates a migrate operation for one file block
func NewMigrateOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &migrateOperation{BaseOperation: base}, nil
}

// 📦 migrateOperation rewrites the block's targets in place
type migrateOperation struct {
	BaseOperation
}

func (op *migrateOperation) Name() string {
	return "migrate " + op.Block.Target
}

// 🏃 Execute runs the migration for every resolved target
func (op *migrateOperation) Execute(ctx context.Context) error {
	targets, err := op.resolveTargets()
	if err != nil {
		return errors.Errorf("resolving targets: %w", err)
	}

	for _, target := range targets {
		info, err := processFile(ctx, &op.BaseOperation, target, true)
		if err != nil {
			return errors.Errorf("processing file %s: %w", target, err)
		}
		op.StatusMgr.TrackFile(ctx, info)
		op.UserLogger.LogFileResult(info)
	}
	return nil
}

// 📄 processFile runs the full rewrite pipeline for one file: rules, then
// the blank-run cleanup, then each indentation repair pass. When write is
// set and the content changed, the file is rewritten in place atomically.
// An unchanged file is never written, so a no-op run leaves the target's
// timestamp untouched.
func processFile(ctx context.Context, op *BaseOperation, path string, write bool) (status.FileInfo, error) {
	logger := zerolog.Ctx(ctx)

	original, err := op.StatusMgr.ReadFile(ctx, path)
	if err != nil {
		return status.FileInfo{}, err
	}

	if op.Block.Require != "" && !bytes.Contains(original, []byte(op.Block.Require)) {
		return status.FileInfo{
			Path:   path,
			Status: status.StatusError,
			Err:    errors.Errorf("required marker %q not found", op.Block.Require),
		}, nil
	}

	rules := op.rewriteRules()
	result, err := rewrite.Rewrite(ctx, original, rules)
	if err != nil {
		return status.FileInfo{}, errors.Errorf("applying rules: %w", err)
	}

	// Surface pattern drift: a configured rule that never fires usually
	// means the target text changed upstream, not that the work is done.
	for _, i := range rewrite.UnmatchedRules(rules, result) {
		logger.Warn().
			Str("path", path).
			Int("rule", i).
			Str("pattern", rules[i].Match).
			Msg("rule never matched")
	}

	current := result.ModifiedContent
	corrections := result.ReplacementCount

	if op.Block.CollapseBlankRuns {
		var collapsed int
		current, collapsed = rewrite.CollapseBlankRuns(current)
		corrections += collapsed
	}

	for _, ind := range op.Block.Indents {
		lines := strings.Split(string(current), "\n")
		repaired, n := indent.Repair(lines, indent.Options{
			Anchor:     ind.Anchor,
			Canonical:  ind.Canonical,
			Offset:     ind.Offset,
			Properties: ind.Properties,
			MinDepth:   ind.MinDepth,
		})
		if n > 0 {
			current = []byte(strings.Join(repaired, "\n"))
			corrections += n
		}
	}

	if bytes.Equal(original, current) {
		return status.FileInfo{Path: path, Status: status.StatusUnchanged}, nil
	}

	if !write {
		return status.FileInfo{
			Path:        path,
			Status:      status.StatusPending,
			Corrections: corrections,
		}, nil
	}

	if err := op.StatusMgr.WriteFileAtomic(ctx, path, current); err != nil {
		return status.FileInfo{}, errors.Errorf("writing file: %w", err)
	}

	return status.FileInfo{
		Path:        path,
		Status:      status.StatusModified,
		Corrections: corrections,
	}, nil
}
