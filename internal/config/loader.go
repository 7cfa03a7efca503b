package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigDirName is the per-project directory holding config.yml.
const ConfigDirName = ".bcl-sources"

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (BCLSOURCES_*)
// 2. Config file (.bcl-sources/config.yml or .bcl-sources/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(l.rootDir, ConfigDirName))

	v.SetEnvPrefix("BCLSOURCES")
	v.AutomaticEnv()
	// BCLSOURCES_URL_BRANCH -> url.branch
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("source.root")
	v.BindEnv("source.src_dir")

	v.BindEnv("url.host")
	v.BindEnv("url.org")
	v.BindEnv("url.repo")
	v.BindEnv("url.branch")

	v.BindEnv("output.dir")
	v.BindEnv("output.compact")
	v.BindEnv("output.formatted")
	v.BindEnv("output.append")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("source.root", defaults.Source.Root)
	v.SetDefault("source.src_dir", defaults.Source.SrcDir)
	v.SetDefault("source.patterns", defaults.Source.Patterns)
	v.SetDefault("source.ignore", defaults.Source.Ignore)

	v.SetDefault("url.host", defaults.URL.Host)
	v.SetDefault("url.org", defaults.URL.Org)
	v.SetDefault("url.repo", defaults.URL.Repo)
	v.SetDefault("url.branch", defaults.URL.Branch)

	v.SetDefault("output.dir", defaults.Output.Dir)
	v.SetDefault("output.compact", defaults.Output.Compact)
	v.SetDefault("output.formatted", defaults.Output.Formatted)
	v.SetDefault("output.append", defaults.Output.Append)
}

// LoadConfig is a convenience function that creates a loader and loads config.
// It uses the current working directory as the root.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
