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

// Package rewrite implements the ordered pattern-rewrite engine. Rules are
// applied strictly in order against the current state of the document, so
// the output of rule N is visible to rule N+1.
package rewrite

import (
	"bytes"
	"context"
	"regexp"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Rule defines a single rewrite operation
type Rule struct {
	// Match is the pattern to search for. Interpreted as a regular
	// expression unless Literal is set.
	Match string

	// Replace is the replacement text. For regex rules it may reference
	// capture groups ($1, ${name}); for literal rules it is inserted as-is.
	Replace string

	// Literal disables regex interpretation of both Match and Replace
	Literal bool
}

// Result contains the outcome of applying a rule set to a document
type Result struct {
	// OriginalContent is the content before any rule was applied
	OriginalContent []byte

	// ModifiedContent is the content after all rules were applied
	ModifiedContent []byte

	// WasModified indicates if the content actually changed
	WasModified bool

	// ReplacementCount is the total number of replaced occurrences.
	// Counting is per-occurrence: a rule matching N disjoint spans
	// contributes N to this total.
	ReplacementCount int

	// RuleStats holds the per-rule occurrence count, indexed like the
	// input rule slice. A zero entry means the rule never fired.
	RuleStats []int
}

// compile turns a rule into a regexp, quoting literal rules so there is a
// single application path for both kinds.
func compile(rule Rule) (*regexp.Regexp, error) {
	pattern := rule.Match
	if rule.Literal {
		pattern = regexp.QuoteMeta(pattern)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Errorf("compiling pattern %q: %w", rule.Match, err)
	}
	return re, nil
}

// Rewrite applies the rules in order against content and returns the
// rewritten text along with per-rule statistics. Zero matches is not an
// error; an uncompilable pattern is.
func Rewrite(ctx context.Context, content []byte, rules []Rule) (*Result, error) {
	result := &Result{
		OriginalContent: content,
		ModifiedContent: content,
		RuleStats:       make([]int, len(rules)),
	}

	current := content
	for i, rule := range rules {
		if rule.Match == "" {
			continue
		}

		re, err := compile(rule)
		if err != nil {
			return nil, errors.Errorf("rule %d: %w", i, err)
		}

		matches := re.FindAllIndex(current, -1)
		if len(matches) == 0 {
			zerolog.Ctx(ctx).Debug().Int("rule", i).Str("pattern", rule.Match).Msg("rule did not match")
			continue
		}

		if rule.Literal {
			current = re.ReplaceAllLiteral(current, []byte(rule.Replace))
		} else {
			current = re.ReplaceAll(current, []byte(rule.Replace))
		}

		result.RuleStats[i] = len(matches)
		result.ReplacementCount += len(matches)
	}

	result.ModifiedContent = current
	result.WasModified = !bytes.Equal(content, current)
	return result, nil
}

// ValidateRules checks that all rules are well-formed without applying them
func ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.Match == "" {
			return errors.Errorf("rule %d: match is required", i)
		}
		if _, err := compile(rule); err != nil {
			return errors.Errorf("rule %d: %w", i, err)
		}
	}
	return nil
}

// UnmatchedRules returns the indexes of rules that never fired during a run.
// Callers are expected to surface these as warnings: a literal pattern that
// silently stops matching usually means the target drifted, not that the
// migration is done.
func UnmatchedRules(rules []Rule, result *Result) []int {
	var unmatched []int
	for i := range rules {
		if rules[i].Match == "" {
			continue
		}
		if result.RuleStats[i] == 0 {
			unmatched = append(unmatched, i)
		}
	}
	return unmatched
}

// CheckIdempotent applies the rule set to its own output and returns the
// indexes of rules that fire again on the second pass. A non-empty result
// means the rule set is not idempotent: re-running the migration would keep
// rewriting already-migrated text.
func CheckIdempotent(ctx context.Context, content []byte, rules []Rule) ([]int, error) {
	first, err := Rewrite(ctx, content, rules)
	if err != nil {
		return nil, errors.Errorf("first pass: %w", err)
	}

	second, err := Rewrite(ctx, first.ModifiedContent, rules)
	if err != nil {
		return nil, errors.Errorf("second pass: %w", err)
	}

	var offenders []int
	for i, n := range second.RuleStats {
		if n > 0 {
			offenders = append(offenders, i)
		}
	}
	return offenders, nil
}

// blankRunPattern matches a run of three or more newlines with only blank
// whitespace between them.
var blankRunPattern = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)+`)

// CollapseBlankRuns collapses runs of blank lines down to a single blank
// line. Rewrites that delete statements tend to leave these behind.
func CollapseBlankRuns(content []byte) ([]byte, int) {
	matches := blankRunPattern.FindAllIndex(content, -1)
	if len(matches) == 0 {
		return content, 0
	}
	return blankRunPattern.ReplaceAll(content, []byte("\n\n")), len(matches)
}
