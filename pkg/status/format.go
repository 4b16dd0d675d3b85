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

package status

import (
	"fmt"

	"github.com/fatih/color"
)

// FileFormatter defines how file results and summaries should be formatted
type FileFormatter interface {
	// FormatFileResult formats a per-file status message
	FormatFileResult(info FileInfo) string

	// FormatSummary formats the end-of-run summary
	FormatSummary(s Summary) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileResult formats a per-file status message with a colored symbol
func (f *DefaultFileFormatter) FormatFileResult(info FileInfo) string {
	switch info.Status {
	case StatusModified:
		symbol := color.New(color.FgGreen).Sprint("✓")
		return fmt.Sprintf("%s %s: %d corrections applied", symbol, info.Path, info.Corrections)
	case StatusPending:
		symbol := color.New(color.FgBlue).Sprint("⟳")
		return fmt.Sprintf("%s %s: %d corrections pending", symbol, info.Path, info.Corrections)
	case StatusError:
		symbol := color.New(color.FgRed).Sprint("✗")
		if info.Residue > 0 {
			return fmt.Sprintf("%s %s: %d occurrences remaining", symbol, info.Path, info.Residue)
		}
		return fmt.Sprintf("%s %s: %v", symbol, info.Path, info.Err)
	default:
		symbol := color.New(color.FgYellow).Sprint("-")
		return fmt.Sprintf("%s %s: no corrections needed", symbol, info.Path)
	}
}

// FormatSummary formats the end-of-run summary
func (f *DefaultFileFormatter) FormatSummary(s Summary) string {
	if s.Errors > 0 {
		return fmt.Sprintf("❌ %d/%d files failed (%d corrections applied)", s.Errors, s.Total, s.Corrections)
	}
	if s.Modified == 0 && s.Pending == 0 {
		return fmt.Sprintf("👍 %d files checked, nothing to do", s.Total)
	}
	if s.Pending > 0 {
		return fmt.Sprintf("⏳ %d/%d files pending (%d corrections)", s.Pending, s.Total, s.Corrections)
	}
	return fmt.Sprintf("✅ %d/%d files modified (%d corrections)", s.Modified, s.Total, s.Corrections)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
