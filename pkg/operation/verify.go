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
	"regexp"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/logrc/pkg/status"
)

// ✅ NewVerifyOperation creates a verify operation for one file block
func NewVerifyOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &verifyOperation{BaseOperation: base}, nil
}

// ✅ verifyOperation counts residual matches of the block's verify pattern.
// A file with residue is tracked as an error: the migration left behind
// occurrences it was supposed to remove.
type verifyOperation struct {
	BaseOperation
}

func (op *verifyOperation) Name() string {
	return "verify " + op.Block.Target
}

// 🏃 Execute verifies every resolved target
func (op *verifyOperation) Execute(ctx context.Context) error {
	if op.Block.Verify == "" {
		return nil
	}

	re, err := regexp.Compile(op.Block.Verify)
	if err != nil {
		return errors.Errorf("compiling verify pattern: %w", err)
	}

	targets, err := op.resolveTargets()
	if err != nil {
		return errors.Errorf("resolving targets: %w", err)
	}

	for _, target := range targets {
		content, err := op.StatusMgr.ReadFile(ctx, target)
		if err != nil {
			return errors.Errorf("reading file %s: %w", target, err)
		}

		info := status.FileInfo{Path: target, Status: status.StatusUnchanged}
		if residue := len(re.FindAllIndex(content, -1)); residue > 0 {
			info.Status = status.StatusError
			info.Residue = residue
			info.Err = errors.Errorf("%d occurrences of %q remaining", residue, op.Block.Verify)
		}

		op.StatusMgr.TrackFile(ctx, info)
		op.UserLogger.LogFileResult(info)
	}
	return nil
}
