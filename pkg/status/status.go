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
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome of processing one file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // File was rewritten and written back
	StatusUnchanged            // No rule or repair touched the file
	StatusPending              // File would change, but nothing was written
	StatusError                // Precondition or verification failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusPending:
		return "pending"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains the per-file result of a run
type FileInfo struct {
	Path        string     // Path relative to the base directory
	Status      FileStatus // Outcome of processing
	Corrections int        // Number of applied substitutions and repaired lines
	Residue     int        // Matches of the verify pattern still present
	Err         error      // Precondition or verification failure, if any
}

// 📈 Summary aggregates the results of a run
type Summary struct {
	Total       int // Files processed
	Modified    int
	Unchanged   int
	Pending     int
	Errors      int
	Corrections int // Total substitutions and repaired lines
}

// 🔧 Manager tracks per-file results for a single run and owns all file
// system access for target files. Tracking is in-memory only; there is no
// state file.
type Manager struct {
	baseDir string

	mu    sync.RWMutex
	files map[string]FileInfo
}

// 🏭 NewManager creates a new status manager rooted at baseDir
func NewManager(baseDir string) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
		files:   make(map[string]FileInfo),
	}
}

// 🔒 getAbsPath returns the absolute path for a given relative path
func (m *Manager) getAbsPath(path string) string {
	return filepath.Join(m.baseDir, path)
}

// 📥 ReadFile reads a target file in full
func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// 📤 WriteFileAtomic writes content via a temp file in the same directory
// and renames it over the target, preserving the original file mode.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)

	mode := os.FileMode(0644)
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode()
	}

	tempPath := absPath + ".tmp"
	if err := os.WriteFile(tempPath, content, mode); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// 📋 TrackFile records the result for one file
func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[info.Path] = info
}

// 📜 ListFiles returns the tracked results, sorted by path
func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]FileInfo, 0, len(m.files))
	for _, info := range m.files {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Path < infos[j].Path
	})
	return infos
}

// 📈 Summarize aggregates the tracked results
func (m *Manager) Summarize(ctx context.Context) Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var s Summary
	for _, info := range m.files {
		s.Total++
		s.Corrections += info.Corrections
		switch info.Status {
		case StatusModified:
			s.Modified++
		case StatusUnchanged:
			s.Unchanged++
		case StatusPending:
			s.Pending++
		case StatusError:
			s.Errors++
		}
	}
	return s
}
