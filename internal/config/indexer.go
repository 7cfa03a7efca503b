package config

import (
	"github.com/mvp-joe/bcl-sources/internal/indexer"
)

// ToIndexerConfig converts a Config to an indexer.Config.
func (c *Config) ToIndexerConfig() *indexer.Config {
	return &indexer.Config{
		RootDir:        c.Source.Root,
		SrcDir:         c.Source.SrcDir,
		Patterns:       c.Source.Patterns,
		IgnorePatterns: c.Source.Ignore,
		URL: indexer.URLBuilder{
			Host:   c.URL.Host,
			Org:    c.URL.Org,
			Repo:   c.URL.Repo,
			Branch: c.URL.Branch,
		},
		CompactPath:   c.IndexPath(),
		FormattedPath: c.FormattedPath(),
		Append:        c.Output.Append,
	}
}
