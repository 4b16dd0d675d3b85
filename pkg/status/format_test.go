package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestDefaultFileFormatter_FormatFileResult(t *testing.T) {
	color.NoColor = true
	f := NewDefaultFileFormatter()

	tests := []struct {
		name string
		info FileInfo
		want string
	}{
		{
			name: "modified",
			info: FileInfo{Path: "a.ts", Status: StatusModified, Corrections: 7},
			want: "✓ a.ts: 7 corrections applied",
		},
		{
			name: "pending",
			info: FileInfo{Path: "a.ts", Status: StatusPending, Corrections: 2},
			want: "⟳ a.ts: 2 corrections pending",
		},
		{
			name: "unchanged",
			info: FileInfo{Path: "a.ts", Status: StatusUnchanged},
			want: "- a.ts: no corrections needed",
		},
		{
			name: "error",
			info: FileInfo{Path: "a.ts", Status: StatusError, Err: errors.New("required marker not found")},
			want: "✗ a.ts: required marker not found",
		},
		{
			name: "residue",
			info: FileInfo{Path: "a.ts", Status: StatusError, Residue: 4, Err: errors.New("residue")},
			want: "✗ a.ts: 4 occurrences remaining",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatFileResult(tt.info))
		})
	}
}

func TestDefaultFileFormatter_FormatSummary(t *testing.T) {
	f := NewDefaultFileFormatter()

	assert.Equal(t, "👍 2 files checked, nothing to do",
		f.FormatSummary(Summary{Total: 2, Unchanged: 2}))
	assert.Equal(t, "✅ 1/2 files modified (5 corrections)",
		f.FormatSummary(Summary{Total: 2, Modified: 1, Unchanged: 1, Corrections: 5}))
	assert.Equal(t, "⏳ 2/3 files pending (4 corrections)",
		f.FormatSummary(Summary{Total: 3, Pending: 2, Unchanged: 1, Corrections: 4}))
	assert.Equal(t, "❌ 1/3 files failed (2 corrections applied)",
		f.FormatSummary(Summary{Total: 3, Errors: 1, Modified: 1, Unchanged: 1, Corrections: 2}))
}

func TestDefaultFileFormatter_FormatError(t *testing.T) {
	f := NewDefaultFileFormatter()
	assert.Equal(t, "", f.FormatError(nil))
	assert.Equal(t, "❌ Error: boom", f.FormatError(errors.New("boom")))
}
