// Package config provides configuration loading for bcl-sources.
//
// Configuration is resolved with the following priority (highest to lowest):
//  1. Environment variables (BCLSOURCES_*)
//  2. Project config (.bcl-sources/config.yml)
//  3. Built-in defaults
//
// Nested keys map to environment variables with underscores, e.g.
// BCLSOURCES_URL_BRANCH overrides url.branch.
package config

import (
	"path/filepath"
)

// Config represents the complete bcl-sources configuration.
type Config struct {
	Source SourceConfig `yaml:"source" mapstructure:"source"`
	URL    URLConfig    `yaml:"url" mapstructure:"url"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// SourceConfig describes the library tree to index.
type SourceConfig struct {
	Root     string   `yaml:"root" mapstructure:"root"`         // directory holding one folder per library
	SrcDir   string   `yaml:"src_dir" mapstructure:"src_dir"`   // per-library source folder name
	Patterns []string `yaml:"patterns" mapstructure:"patterns"` // glob patterns for source files, relative to <lib>/<src_dir>
	Ignore   []string `yaml:"ignore" mapstructure:"ignore"`     // glob patterns to skip
}

// URLConfig holds the source host convention used to build raw file URLs.
type URLConfig struct {
	Host   string `yaml:"host" mapstructure:"host"`
	Org    string `yaml:"org" mapstructure:"org"`
	Repo   string `yaml:"repo" mapstructure:"repo"`
	Branch string `yaml:"branch" mapstructure:"branch"`
}

// OutputConfig controls where the index is written.
type OutputConfig struct {
	Dir       string `yaml:"dir" mapstructure:"dir"`
	Compact   string `yaml:"compact" mapstructure:"compact"`
	Formatted string `yaml:"formatted" mapstructure:"formatted"`
	Append    bool   `yaml:"append" mapstructure:"append"` // append to existing output instead of truncating
}

// Default returns a configuration targeting dotnet/runtime.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Root:     "./libraries",
			SrcDir:   "src",
			Patterns: []string{"**/*.cs"},
			Ignore:   []string{},
		},
		URL: URLConfig{
			Host:   "raw.githubusercontent.com",
			Org:    "dotnet",
			Repo:   "runtime",
			Branch: "main",
		},
		Output: OutputConfig{
			Dir:       ".",
			Compact:   "result.json",
			Formatted: "resultformatted.json",
			Append:    false,
		},
	}
}

// IndexPath returns the path of the compact index file.
func (c *Config) IndexPath() string {
	return filepath.Join(c.Output.Dir, c.Output.Compact)
}

// FormattedPath returns the path of the pretty-printed index file.
func (c *Config) FormattedPath() string {
	return filepath.Join(c.Output.Dir, c.Output.Formatted)
}

// ResolvePaths anchors a relative source root and output directory at
// baseDir. Absolute paths are left alone.
func (c *Config) ResolvePaths(baseDir string) {
	c.Source.Root = resolvePath(baseDir, c.Source.Root)
	c.Output.Dir = resolvePath(baseDir, c.Output.Dir)
}

func resolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
