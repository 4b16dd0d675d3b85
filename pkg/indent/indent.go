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

// Package indent implements the anchor-based indentation repair engine.
// It scans lines for a marker substring that establishes an indentation
// context, then rewrites over-indented structural lines (bare closing
// braces, call terminators, known property assignments) back to a
// canonical depth.
//
// This is a heuristic, best-effort cosmetic pass: it infers structure from
// line shape, not from a grammar, and cannot tell a correctly-indented line
// that happens to match a defective shape from a genuinely malformed one.
package indent

import (
	"regexp"
	"strings"
)

// FallbackBase is the base indentation used when a candidate line is found
// before any anchor has been seen.
const FallbackBase = "      "

// defaultOffset is the nested offset applied on top of the base indent
const defaultOffset = "  "

// Options configures a repair pass
type Options struct {
	// Anchor is the marker substring identifying a context-establishing
	// line (e.g. "metadata: {"). Anchor lines are never rewritten.
	Anchor string

	// Canonical overrides the base indentation for repaired lines. When
	// empty, the indentation of the most recent anchor line is used, and
	// FallbackBase before any anchor has been seen.
	Canonical string

	// Offset is the nested offset added to the base indent. Defaults to
	// two spaces.
	Offset string

	// Properties is the set of property names whose assignment lines are
	// eligible for repair.
	Properties []string

	// MinDepth is an absolute floor: lines indented by fewer characters
	// are never touched, even when over-indented relative to their
	// target. Zero disables the floor.
	MinDepth int
}

// lineShape classifies the trimmed content of a repair candidate
type lineShape int

const (
	shapeNone       lineShape = iota
	shapeBrace                // bare closing brace: "}" or "},"
	shapeTerminator           // bare call terminator: ");" or "});"
	shapeProperty             // known property assignment: "name: ..."
)

var propertyPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*):`)

// classify determines whether trimmed matches one of the repaired shapes
func classify(trimmed string, properties map[string]bool) lineShape {
	switch trimmed {
	case "}", "},":
		return shapeBrace
	case ");", "});":
		return shapeTerminator
	}
	if m := propertyPattern.FindStringSubmatch(trimmed); m != nil && properties[m[1]] {
		return shapeProperty
	}
	return shapeNone
}

// leadingWhitespace returns the run of spaces and tabs at the start of line
func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// Repair scans lines sequentially and rewrites the leading whitespace of
// over-indented structural lines to the canonical depth for their shape.
// It returns the rewritten lines and the number of lines altered. Lines
// matching no repaired shape, and anchor lines themselves, are copied
// through unchanged.
//
// A line is repaired only when its current indentation is strictly deeper
// than the target for its shape: closing braces and call terminators sit
// at base+offset, property assignments one level further in.
func Repair(lines []string, opts Options) ([]string, int) {
	offset := opts.Offset
	if offset == "" {
		offset = defaultOffset
	}

	properties := make(map[string]bool, len(opts.Properties))
	for _, p := range opts.Properties {
		properties[p] = true
	}

	var (
		anchorIndent string
		haveAnchor   bool
		corrected    int
	)

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if opts.Anchor != "" && strings.Contains(line, opts.Anchor) {
			anchorIndent = leadingWhitespace(line)
			haveAnchor = true
			out = append(out, line)
			continue
		}

		shape := classify(strings.TrimSpace(line), properties)
		if shape == shapeNone {
			out = append(out, line)
			continue
		}

		base := opts.Canonical
		if base == "" {
			if haveAnchor {
				base = anchorIndent
			} else {
				base = FallbackBase
			}
		}

		target := base + offset
		if shape == shapeProperty {
			target += offset
		}

		current := leadingWhitespace(line)
		if len(current) <= len(target) || len(current) < opts.MinDepth {
			out = append(out, line)
			continue
		}

		out = append(out, target+strings.TrimLeft(line, " \t"))
		corrected++
	}

	return out, corrected
}
