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

package userlog

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/walteh/logrc/pkg/status"
)

func init() {
	// No-op runs still report "no corrections needed" (debug printer)
	pterm.EnableDebugMessages()
}

// 📢 UserLogger provides user-friendly feedback about file rewrites,
// mirrored into zerolog for debugging
type UserLogger struct {
	log       zerolog.Logger
	formatter status.FileFormatter
}

// 🎯 New creates a new user logger
func New(ctx context.Context, formatter status.FileFormatter) *UserLogger {
	if formatter == nil {
		formatter = status.NewDefaultFileFormatter()
	}
	return &UserLogger{
		log:       *zerolog.Ctx(ctx),
		formatter: formatter,
	}
}

// 📝 LogFileResult logs the outcome for one file with an appropriate printer
func (u *UserLogger) LogFileResult(info status.FileInfo) {
	msg := u.formatter.FormatFileResult(info)

	var printer *pterm.PrefixPrinter
	switch info.Status {
	case status.StatusModified:
		printer = &pterm.Success
	case status.StatusPending:
		printer = &pterm.Info
	case status.StatusError:
		printer = &pterm.Error
	default:
		printer = &pterm.Debug
	}

	printer.Println(msg)
	if info.Err != nil {
		u.log.Error().Err(info.Err).Str("path", info.Path).Msg("file failed")
		return
	}
	u.log.Info().
		Str("path", info.Path).
		Str("status", info.Status.String()).
		Int("corrections", info.Corrections).
		Msg("file processed")
}

// 📊 LogSummary logs the end-of-run summary
func (u *UserLogger) LogSummary(s status.Summary) {
	msg := u.formatter.FormatSummary(s)
	if s.Errors > 0 {
		pterm.Error.Println(msg)
	} else {
		pterm.Info.Println(msg)
	}
	u.log.Info().
		Int("total", s.Total).
		Int("modified", s.Modified).
		Int("unchanged", s.Unchanged).
		Int("pending", s.Pending).
		Int("errors", s.Errors).
		Int("corrections", s.Corrections).
		Msg("run complete")
}

// ⚠️ LogWarning logs a user-visible warning
func (u *UserLogger) LogWarning(msg string) {
	pterm.Warning.Println(msg)
	u.log.Warn().Msg(msg)
}
