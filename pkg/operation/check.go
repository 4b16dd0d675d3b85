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
	"fmt"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/logrc/pkg/rewrite"
)

// 🔎 NewCheckOperation creates a check operation for one file block
func NewCheckOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &checkOperation{BaseOperation: base}, nil
}

// 🔎 checkOperation runs the full pipeline without writing anything and
// reports which files would change. It also applies the rule set to its
// own output: a rule that fires twice would keep rewriting already
// migrated text on every run, which is a configuration defect.
type checkOperation struct {
	BaseOperation
}

func (op *checkOperation) Name() string {
	return "check " + op.Block.Target
}

// 🏃 Execute inspects every resolved target
func (op *checkOperation) Execute(ctx context.Context) error {
	targets, err := op.resolveTargets()
	if err != nil {
		return errors.Errorf("resolving targets: %w", err)
	}

	for _, target := range targets {
		info, err := processFile(ctx, &op.BaseOperation, target, false)
		if err != nil {
			return errors.Errorf("inspecting file %s: %w", target, err)
		}

		if err := op.checkIdempotence(ctx, target); err != nil {
			return err
		}

		op.StatusMgr.TrackFile(ctx, info)
		op.UserLogger.LogFileResult(info)
	}
	return nil
}

// 🔁 checkIdempotence flags rules that still match their own output
func (op *checkOperation) checkIdempotence(ctx context.Context, path string) error {
	rules := op.rewriteRules()
	if len(rules) == 0 {
		return nil
	}

	content, err := op.StatusMgr.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	offenders, err := rewrite.CheckIdempotent(ctx, content, rules)
	if err != nil {
		return errors.Errorf("checking idempotence for %s: %w", path, err)
	}

	for _, i := range offenders {
		zerolog.Ctx(ctx).Warn().
			Str("path", path).
			Int("rule", i).
			Str("pattern", rules[i].Match).
			Msg("rule is not idempotent")
		op.UserLogger.LogWarning(fmt.Sprintf("%s: rule %d (%s) matches its own output", path, i, rules[i].Match))
	}
	return nil
}
