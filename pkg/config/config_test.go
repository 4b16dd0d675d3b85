package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHCL = `
root = "server"

file "services/ContextCacheService.ts" {
  require = "import { logger }"

  rule {
    match   = "console\\.log\\('ready'\\);"
    replace = "logger.info('ready');"
    regex   = true
  }

  rule {
    match   = "console.error"
    replace = "logger.error"
  }

  indent {
    anchor     = "metadata: {"
    properties = ["module", "operation", "error"]
  }

  collapse_blank_runs = true
  verify              = "console\\."
}

file "services/*.ts" {
  rule {
    match   = "console.warn"
    replace = "logger.warn"
  }
}
`

var testYAML = `
root: server
files:
  - target: services/ContextCacheService.ts
    require: "import { logger }"
    rules:
      - match: console\.log\('ready'\);
        replace: logger.info('ready');
        regex: true
    indents:
      - anchor: "metadata: {"
        properties: [module, operation]
    verify: console\.
`

func TestHCLParser_Parse(t *testing.T) {
	p := &HCLParser{}
	require.True(t, p.CanParse(".logrc.hcl"))
	require.False(t, p.CanParse(".logrc.yaml"))

	cfg, err := p.Parse(context.Background(), []byte(testHCL))
	require.NoError(t, err)

	assert.Equal(t, "server", cfg.Root)
	require.Len(t, cfg.Files, 2)

	f := cfg.Files[0]
	assert.Equal(t, "services/ContextCacheService.ts", f.Target)
	assert.Equal(t, "import { logger }", f.Require)
	assert.True(t, f.CollapseBlankRuns)
	assert.Equal(t, `console\.`, f.Verify)

	require.Len(t, f.Rules, 2)
	assert.Equal(t, `console\.log\('ready'\);`, f.Rules[0].Match)
	assert.True(t, f.Rules[0].Regex)
	assert.False(t, f.Rules[1].Regex)

	require.Len(t, f.Indents, 1)
	assert.Equal(t, "metadata: {", f.Indents[0].Anchor)
	assert.Equal(t, []string{"module", "operation", "error"}, f.Indents[0].Properties)

	assert.Equal(t, "services/*.ts", cfg.Files[1].Target)
}

func TestYAMLParser_Parse(t *testing.T) {
	p := &YAMLParser{}
	require.True(t, p.CanParse(".logrc.yaml"))
	require.True(t, p.CanParse(".logrc.yml"))
	require.False(t, p.CanParse(".logrc.hcl"))

	cfg, err := p.Parse(context.Background(), []byte(testYAML))
	require.NoError(t, err)

	assert.Equal(t, "server", cfg.Root)
	require.Len(t, cfg.Files, 1)
	f := cfg.Files[0]
	assert.Equal(t, "services/ContextCacheService.ts", f.Target)
	require.Len(t, f.Rules, 1)
	assert.True(t, f.Rules[0].Regex)
	require.Len(t, f.Indents, 1)
	assert.Equal(t, "metadata: {", f.Indents[0].Anchor)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, ".logrc.hcl")
	require.NoError(t, os.WriteFile(path, []byte(testHCL), 0644))

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "server", cfg.Root)

	t.Run("missing_file", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(dir, "nope.hcl"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})

	t.Run("unknown_extension", func(t *testing.T) {
		path := filepath.Join(dir, "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		_, err := Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no parser found")
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Files: []File{
				{
					Target: "a.ts",
					Rules:  []Rule{{Match: "x", Replace: "y"}},
				},
			},
		}
	}

	tests := []struct {
		name      string
		mutate    func(cfg *Config)
		wantError string
	}{
		{
			name:   "valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:      "no_files",
			mutate:    func(cfg *Config) { cfg.Files = nil },
			wantError: "at least one file block",
		},
		{
			name:      "missing_target",
			mutate:    func(cfg *Config) { cfg.Files[0].Target = "" },
			wantError: "target is required",
		},
		{
			name:      "empty_file_block",
			mutate:    func(cfg *Config) { cfg.Files[0].Rules = nil },
			wantError: "at least one rule, indent, or verify",
		},
		{
			name:      "missing_match",
			mutate:    func(cfg *Config) { cfg.Files[0].Rules[0].Match = "" },
			wantError: "match is required",
		},
		{
			name: "invalid_regex_pattern",
			mutate: func(cfg *Config) {
				cfg.Files[0].Rules[0] = Rule{Match: "([bad", Replace: "x", Regex: true}
			},
			wantError: "invalid pattern",
		},
		{
			name: "invalid_literal_pattern_is_fine",
			mutate: func(cfg *Config) {
				cfg.Files[0].Rules[0] = Rule{Match: "([bad", Replace: "x"}
			},
		},
		{
			name: "missing_anchor",
			mutate: func(cfg *Config) {
				cfg.Files[0].Indents = []Indent{{Anchor: ""}}
			},
			wantError: "anchor is required",
		},
		{
			name: "invalid_verify_pattern",
			mutate: func(cfg *Config) {
				cfg.Files[0].Verify = "([bad"
			},
			wantError: "invalid verify pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ".", cfg.Root, "root defaults to the current directory")
		})
	}
}
