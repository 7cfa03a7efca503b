package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Config System:
// - Default() returns valid configuration targeting dotnet/runtime
// - LoadConfig() uses defaults when no config file exists
// - LoadConfig() loads from .bcl-sources/config.yml when present
// - LoadConfig() loads from .bcl-sources/config.yaml when present
// - LoadConfig() merges config file with defaults
// - Environment variables override config file values
// - LoadConfig() returns error for malformed YAML
// - LoadConfig() returns error for invalid configuration values
// - Validate() rejects empty root, empty src_dir, empty patterns, bad globs
// - Validate() rejects incomplete URL settings
// - Validate() rejects empty or clashing output names
// - Validate() returns multiple errors for multiple invalid fields
// - ToIndexerConfig() carries every setting across
// - ResolvePaths() anchors relative directories and keeps absolute ones

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	configDir := filepath.Join(dir, ConfigDirName)
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, name), []byte(content), 0644))
}

func TestDefault_ReturnsValidConfiguration(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)

	assert.Equal(t, "./libraries", cfg.Source.Root)
	assert.Equal(t, "src", cfg.Source.SrcDir)
	assert.Equal(t, []string{"**/*.cs"}, cfg.Source.Patterns)
	assert.Empty(t, cfg.Source.Ignore)

	assert.Equal(t, "raw.githubusercontent.com", cfg.URL.Host)
	assert.Equal(t, "dotnet", cfg.URL.Org)
	assert.Equal(t, "runtime", cfg.URL.Repo)
	assert.Equal(t, "main", cfg.URL.Branch)

	assert.Equal(t, "result.json", cfg.Output.Compact)
	assert.Equal(t, "resultformatted.json", cfg.Output.Formatted)
	assert.False(t, cfg.Output.Append)

	assert.NoError(t, Validate(cfg))
}

func TestConfig_OutputPaths(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Output.Dir = "out"

	assert.Equal(t, filepath.Join("out", "result.json"), cfg.IndexPath())
	assert.Equal(t, filepath.Join("out", "resultformatted.json"), cfg.FormattedPath())
}

func TestConfig_ResolvePaths(t *testing.T) {
	t.Parallel()

	base := filepath.Join(t.TempDir(), "project")

	cfg := Default()
	cfg.ResolvePaths(base)

	assert.Equal(t, filepath.Join(base, "libraries"), cfg.Source.Root)
	assert.Equal(t, base, cfg.Output.Dir)
	assert.Equal(t, filepath.Join(base, "result.json"), cfg.IndexPath())

	abs := filepath.Join(t.TempDir(), "runtime", "src", "libraries")
	cfg = Default()
	cfg.Source.Root = abs
	cfg.Output.Dir = ""
	cfg.ResolvePaths(base)

	assert.Equal(t, abs, cfg.Source.Root)
	assert.Equal(t, "", cfg.Output.Dir)
}

func TestLoadConfig_UsesDefaultsWhenNoConfigFile(t *testing.T) {
	tempDir := t.TempDir()

	cfg, err := NewLoader(tempDir).Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)

	expected := Default()
	assert.Equal(t, expected.Source.Root, cfg.Source.Root)
	assert.Equal(t, expected.Source.Patterns, cfg.Source.Patterns)
	assert.Equal(t, expected.URL, cfg.URL)
	assert.Equal(t, expected.Output, cfg.Output)
}

func TestLoadConfig_LoadsFromConfigYml(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
source:
  root: /src/runtime/src/libraries
  src_dir: source
  patterns:
    - "**/*.cs"
    - "**/*.csx"
  ignore:
    - "**/obj/**"
url:
  host: example.com
  org: acme
  repo: corelib
  branch: release/8.0
output:
  dir: build
  compact: index.json
  formatted: index.pretty.json
  append: true
`)

	cfg, err := NewLoader(tempDir).Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/src/runtime/src/libraries", cfg.Source.Root)
	assert.Equal(t, "source", cfg.Source.SrcDir)
	assert.Equal(t, []string{"**/*.cs", "**/*.csx"}, cfg.Source.Patterns)
	assert.Equal(t, []string{"**/obj/**"}, cfg.Source.Ignore)

	assert.Equal(t, "example.com", cfg.URL.Host)
	assert.Equal(t, "acme", cfg.URL.Org)
	assert.Equal(t, "corelib", cfg.URL.Repo)
	assert.Equal(t, "release/8.0", cfg.URL.Branch)

	assert.Equal(t, "build", cfg.Output.Dir)
	assert.Equal(t, "index.json", cfg.Output.Compact)
	assert.Equal(t, "index.pretty.json", cfg.Output.Formatted)
	assert.True(t, cfg.Output.Append)
}

func TestLoadConfig_LoadsFromConfigYaml(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yaml", `
url:
  org: mono
  repo: mono
`)

	cfg, err := NewLoader(tempDir).Load()

	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.URL.Org)
	assert.Equal(t, "mono", cfg.URL.Repo)
}

func TestLoadConfig_MergesConfigWithDefaults(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
url:
  branch: v9.0.0
`)

	cfg, err := NewLoader(tempDir).Load()

	require.NoError(t, err)

	assert.Equal(t, "v9.0.0", cfg.URL.Branch)

	// Untouched sections come from defaults
	assert.Equal(t, "dotnet", cfg.URL.Org)
	assert.Equal(t, "./libraries", cfg.Source.Root)
	assert.Equal(t, "result.json", cfg.Output.Compact)
}

func TestLoadConfig_EnvironmentVariablesOverrideConfigFile(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()
	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
source:
  root: ./from-file
url:
  branch: file-branch
`)

	t.Setenv("BCLSOURCES_URL_BRANCH", "env-branch")
	t.Setenv("BCLSOURCES_OUTPUT_APPEND", "true")

	cfg, err := NewLoader(tempDir).Load()

	require.NoError(t, err)

	assert.Equal(t, "env-branch", cfg.URL.Branch)
	assert.True(t, cfg.Output.Append)

	// Not overridden, comes from config file
	assert.Equal(t, "./from-file", cfg.Source.Root)
}

func TestLoadConfig_ErrorOnMalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", "source:\n  root: [unterminated\n")

	cfg, err := NewLoader(tempDir).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_ErrorOnInvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
url:
  host: ""
`)

	cfg, err := NewLoader(tempDir).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid defaults", func(c *Config) {}, nil},
		{"empty root", func(c *Config) { c.Source.Root = " " }, ErrEmptyRoot},
		{"empty src dir", func(c *Config) { c.Source.SrcDir = "" }, ErrEmptySrcDir},
		{"no patterns", func(c *Config) { c.Source.Patterns = nil }, ErrEmptyPatterns},
		{"bad pattern", func(c *Config) { c.Source.Patterns = []string{"[*.cs"} }, ErrInvalidPattern},
		{"bad ignore", func(c *Config) { c.Source.Ignore = []string{"{obj"} }, ErrInvalidPattern},
		{"empty org", func(c *Config) { c.URL.Org = "" }, ErrInvalidURL},
		{"host with slash", func(c *Config) { c.URL.Host = "github.com/dotnet" }, ErrInvalidURL},
		{"branch with slash", func(c *Config) { c.URL.Branch = "release/8.0" }, nil},
		{"empty compact", func(c *Config) { c.Output.Compact = "" }, ErrEmptyOutput},
		{"same outputs", func(c *Config) { c.Output.Formatted = c.Output.Compact }, ErrEmptyOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_EmptySrcDirIsNotARootError(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Source.SrcDir = " "

	err := Validate(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySrcDir)
	assert.NotErrorIs(t, err, ErrEmptyRoot)
	assert.Contains(t, err.Error(), "src_dir is required")
}

func TestValidate_MultipleErrors(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Source.Root = ""
	cfg.URL.Repo = ""
	cfg.Output.Formatted = ""

	err := Validate(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "root is required")
	assert.Contains(t, err.Error(), "repo is required")
	assert.Contains(t, err.Error(), "formatted is required")
}

func TestToIndexerConfig(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Source.Ignore = []string{"**/ref/**"}
	cfg.Output.Dir = "out"
	cfg.Output.Append = true

	ic := cfg.ToIndexerConfig()

	assert.Equal(t, "./libraries", ic.RootDir)
	assert.Equal(t, "src", ic.SrcDir)
	assert.Equal(t, []string{"**/*.cs"}, ic.Patterns)
	assert.Equal(t, []string{"**/ref/**"}, ic.IgnorePatterns)
	assert.Equal(t, "raw.githubusercontent.com", ic.URL.Host)
	assert.Equal(t, "dotnet", ic.URL.Org)
	assert.Equal(t, "runtime", ic.URL.Repo)
	assert.Equal(t, "main", ic.URL.Branch)
	assert.Equal(t, filepath.Join("out", "result.json"), ic.CompactPath)
	assert.Equal(t, filepath.Join("out", "resultformatted.json"), ic.FormattedPath)
	assert.True(t, ic.Append)
}
