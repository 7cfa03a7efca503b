// Package indexer builds the type name → source URL index from a tree of
// library projects laid out as <root>/<library>/src/**.
package indexer

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mvp-joe/bcl-sources/internal/indexer/parsers"
)

// Indexer provides the main interface for building an index.
type Indexer interface {
	// Index walks every library, extracts declarations and writes both
	// output files. The first unreadable file aborts the run.
	Index(ctx context.Context) (*Stats, error)
}

// Config contains configuration for the indexer.
type Config struct {
	// Library tree
	RootDir        string
	SrcDir         string
	Patterns       []string
	IgnorePatterns []string

	// Source host convention
	URL URLBuilder

	// Output
	CompactPath   string
	FormattedPath string
	Append        bool
}

// DefaultConfig returns the dotnet/runtime layout rooted at rootDir.
func DefaultConfig(rootDir string) *Config {
	return &Config{
		RootDir:       rootDir,
		SrcDir:        "src",
		Patterns:      []string{"**/*.cs"},
		URL:           DefaultURLBuilder(),
		CompactPath:   "result.json",
		FormattedPath: "resultformatted.json",
	}
}

// indexer is the sequential implementation of Indexer.
type indexer struct {
	config    *Config
	discovery *FileDiscovery
	parser    parsers.Parser
	progress  ProgressReporter
}

// New creates an indexer that parses C# sources.
func New(config *Config, progress ProgressReporter) (Indexer, error) {
	return NewWithParser(config, parsers.NewCSharpParser(), progress)
}

// NewWithParser creates an indexer with a custom parser.
func NewWithParser(config *Config, parser parsers.Parser, progress ProgressReporter) (Indexer, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if parser == nil {
		return nil, fmt.Errorf("parser is required")
	}
	if progress == nil {
		progress = &NoOpProgressReporter{}
	}

	discovery, err := NewFileDiscovery(config.RootDir, config.SrcDir, config.Patterns, config.IgnorePatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to create file discovery: %w", err)
	}

	return &indexer{
		config:    config,
		discovery: discovery,
		parser:    parser,
		progress:  progress,
	}, nil
}

// Index runs a single sequential pass: one library, one file, one
// declaration at a time. Cancellation is checked between files.
func (idx *indexer) Index(ctx context.Context) (*Stats, error) {
	startTime := time.Now()

	libraries, err := idx.discovery.DiscoverLibraries()
	if err != nil {
		return nil, err
	}
	idx.progress.OnDiscoveryComplete(len(libraries))

	writer, err := NewIndexWriter(idx.config.CompactPath, idx.config.FormattedPath, idx.config.Append)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Libraries: len(libraries)}
	namespaces := make(map[string]struct{})

	if err := idx.indexLibraries(ctx, libraries, writer, stats, namespaces); err != nil {
		if abortErr := writer.Abort(); abortErr != nil {
			log.Printf("Warning: %v", abortErr)
		}
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close index: %w", err)
	}

	idx.progress.OnFormatting()
	if err := writer.Format(); err != nil {
		return nil, err
	}

	stats.Records = writer.Count()
	stats.Namespaces = len(namespaces)
	stats.Duration = time.Since(startTime)
	idx.progress.OnComplete(stats)

	return stats, nil
}

// indexLibraries feeds every record of every library to writer and collects
// the distinct namespace names seen.
func (idx *indexer) indexLibraries(ctx context.Context, libraries []Library, writer *IndexWriter, stats *Stats, namespaces map[string]struct{}) error {
	for i, lib := range libraries {
		idx.progress.OnLibraryStart(i+1, len(libraries), lib.Name)

		files, err := idx.discovery.DiscoverFiles(lib)
		if err != nil {
			return err
		}

		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return err
			}

			decls, records, err := idx.indexFile(ctx, file)
			if err != nil {
				return err
			}
			for _, ns := range decls.Namespaces {
				namespaces[ns] = struct{}{}
			}

			for _, record := range records {
				if err := writer.Emit(record); err != nil {
					return err
				}
			}

			stats.Files++
			idx.progress.OnFileProcessed(file.Path, len(records))
		}
	}
	return nil
}

// indexFile parses one source file and returns its records in declaration order.
func (idx *indexer) indexFile(ctx context.Context, file SourceFile) (*parsers.FileDeclarations, []SourceRecord, error) {
	source, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", file.Path, err)
	}

	decls, err := idx.parser.ParseSource(ctx, file.Path, source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", file.Path, err)
	}

	folder := NormalizeFolder(file.Folder)
	types := decls.Types()
	records := make([]SourceRecord, 0, len(types))
	for _, d := range types {
		records = append(records, idx.config.URL.Build(d.Owner, d.Identifier, folder, file.FileName))
	}
	return decls, records, nil
}
