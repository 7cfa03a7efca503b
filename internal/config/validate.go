package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

var (
	// ErrEmptyRoot indicates a missing library root directory
	ErrEmptyRoot = errors.New("empty source root")

	// ErrEmptySrcDir indicates a missing per-library source folder name
	ErrEmptySrcDir = errors.New("empty source folder name")

	// ErrEmptyPatterns indicates no source file patterns were configured
	ErrEmptyPatterns = errors.New("empty source patterns")

	// ErrInvalidPattern indicates a glob pattern that does not compile
	ErrInvalidPattern = errors.New("invalid glob pattern")

	// ErrInvalidURL indicates an incomplete source host convention
	ErrInvalidURL = errors.New("invalid url settings")

	// ErrEmptyOutput indicates a missing output file name
	ErrEmptyOutput = errors.New("empty output file name")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateSource(&cfg.Source); err != nil {
		errs = append(errs, err)
	}

	if err := validateURL(&cfg.URL); err != nil {
		errs = append(errs, err)
	}

	if err := validateOutput(&cfg.Output); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateSource(cfg *SourceConfig) error {
	var errs []error

	if strings.TrimSpace(cfg.Root) == "" {
		errs = append(errs, fmt.Errorf("%w: root is required", ErrEmptyRoot))
	}

	if strings.TrimSpace(cfg.SrcDir) == "" {
		errs = append(errs, fmt.Errorf("%w: src_dir is required", ErrEmptySrcDir))
	}

	if len(cfg.Patterns) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one pattern required", ErrEmptyPatterns))
	}

	for _, pattern := range append(append([]string{}, cfg.Patterns...), cfg.Ignore...) {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateURL(cfg *URLConfig) error {
	var errs []error

	fields := []struct {
		name  string
		value string
	}{
		{"host", cfg.Host},
		{"org", cfg.Org},
		{"repo", cfg.Repo},
		{"branch", cfg.Branch},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s is required", ErrInvalidURL, f.name))
			continue
		}
		if strings.Contains(f.value, "/") && f.name != "branch" {
			errs = append(errs, fmt.Errorf("%w: %s must not contain '/', got '%s'", ErrInvalidURL, f.name, f.value))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateOutput(cfg *OutputConfig) error {
	var errs []error

	if strings.TrimSpace(cfg.Compact) == "" {
		errs = append(errs, fmt.Errorf("%w: compact is required", ErrEmptyOutput))
	}

	if strings.TrimSpace(cfg.Formatted) == "" {
		errs = append(errs, fmt.Errorf("%w: formatted is required", ErrEmptyOutput))
	}

	if cfg.Compact != "" && cfg.Compact == cfg.Formatted {
		errs = append(errs, fmt.Errorf("%w: compact and formatted must differ, both are '%s'", ErrEmptyOutput, cfg.Compact))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
