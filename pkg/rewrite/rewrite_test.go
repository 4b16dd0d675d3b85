package rewrite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		rules        []Rule
		want         string
		wantCount    int
		wantModified bool
		wantError    string
	}{
		{
			name:    "literal_replacement",
			content: "Hello World",
			rules: []Rule{
				{Match: "World", Replace: "Universe", Literal: true},
			},
			want:         "Hello Universe",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "per_occurrence_counting",
			content: "Hello World World",
			rules: []Rule{
				{Match: "World", Replace: "Universe", Literal: true},
			},
			want:         "Hello Universe Universe",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "multiple_rules_in_order",
			content: "Hello World",
			rules: []Rule{
				{Match: "Hello", Replace: "Hi", Literal: true},
				{Match: "World", Replace: "Universe", Literal: true},
			},
			want:         "Hi Universe",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "no_match_is_not_an_error",
			content: "Hello World",
			rules: []Rule{
				{Match: "Goodbye", Replace: "Hi", Literal: true},
			},
			want:         "Hello World",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:    "regex_with_capture_group",
			content: "console.log('ready');",
			rules: []Rule{
				{Match: `console\.log\('([^']+)'\);`, Replace: "logger.info('$1');"},
			},
			want:         "logger.info('ready');",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "rule_two_sees_rule_one_output",
			content: "start",
			rules: []Rule{
				{Match: "start", Replace: "X(Y)", Literal: true},
				{Match: "X(", Replace: "Z(", Literal: true},
			},
			want:         "Z(Y)",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "literal_replacement_does_not_expand_dollar",
			content: "price",
			rules: []Rule{
				{Match: "price", Replace: "$1.00", Literal: true},
			},
			want:         "$1.00",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "empty_match_is_skipped",
			content: "Hello World",
			rules: []Rule{
				{Match: "", Replace: "nope"},
				{Match: "World", Replace: "Universe", Literal: true},
			},
			want:         "Hello Universe",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "invalid_pattern",
			content: "Hello World",
			rules: []Rule{
				{Match: "([unclosed", Replace: "x"},
			},
			wantError: "rule 0",
		},
		{
			name:         "empty_content",
			content:      "",
			rules:        []Rule{{Match: "World", Replace: "Universe", Literal: true}},
			want:         "",
			wantCount:    0,
			wantModified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Rewrite(context.Background(), []byte(tt.content), tt.rules)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Equal(t, tt.wantModified, result.WasModified)
			assert.Equal(t, tt.content, string(result.OriginalContent), "original content must be preserved")
		})
	}
}

func TestRewrite_RuleStats(t *testing.T) {
	rules := []Rule{
		{Match: "a", Replace: "b", Literal: true},
		{Match: "zzz", Replace: "x", Literal: true},
		{Match: "c", Replace: "d", Literal: true},
	}

	result, err := Rewrite(context.Background(), []byte("a a c"), rules)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, result.RuleStats)
	assert.Equal(t, []int{1}, UnmatchedRules(rules, result))
}

func TestValidateRules(t *testing.T) {
	err := ValidateRules([]Rule{{Match: "ok", Replace: "fine"}})
	require.NoError(t, err)

	err = ValidateRules([]Rule{{Match: "", Replace: "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "match is required")

	err = ValidateRules([]Rule{{Match: "([bad", Replace: "x"}})
	require.Error(t, err)
}

func TestCheckIdempotent(t *testing.T) {
	t.Run("idempotent_rule_set", func(t *testing.T) {
		rules := []Rule{
			{Match: `console\.log\('([^']+)'\);`, Replace: "logger.info('$1');"},
		}
		offenders, err := CheckIdempotent(context.Background(), []byte("console.log('hi');"), rules)
		require.NoError(t, err)
		assert.Empty(t, offenders)
	})

	t.Run("self_matching_rule", func(t *testing.T) {
		// The replacement still contains the pattern, so a second pass
		// fires again.
		rules := []Rule{
			{Match: "log(", Replace: "log(ctx, ", Literal: true},
		}
		offenders, err := CheckIdempotent(context.Background(), []byte("log(msg)"), rules)
		require.NoError(t, err)
		assert.Equal(t, []int{0}, offenders)
	})
}

func TestCollapseBlankRuns(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		want      string
		wantCount int
	}{
		{
			name:      "triple_newline",
			content:   "a\n\n\nb",
			want:      "a\n\nb",
			wantCount: 1,
		},
		{
			name:      "blank_lines_with_whitespace",
			content:   "a\n  \n\t\nb",
			want:      "a\n\nb",
			wantCount: 1,
		},
		{
			name:      "long_run",
			content:   "a\n\n\n\n\n\nb",
			want:      "a\n\nb",
			wantCount: 1,
		},
		{
			name:      "single_blank_line_untouched",
			content:   "a\n\nb",
			want:      "a\n\nb",
			wantCount: 0,
		},
		{
			name:      "no_blank_lines",
			content:   "a\nb\nc",
			want:      "a\nb\nc",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := CollapseBlankRuns([]byte(tt.content))
			assert.Equal(t, tt.want, string(got))
			assert.Equal(t, tt.wantCount, count)
		})
	}
}
