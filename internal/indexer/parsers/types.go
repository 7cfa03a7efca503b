package parsers

import (
	"context"

	"github.com/mvp-joe/bcl-sources/internal/indexer/extraction"
)

// FileDeclarations is the per-file extraction produced by a parser.
type FileDeclarations = extraction.FileDeclarations

// Parser extracts declarations from source files.
type Parser interface {
	// ParseFile reads and parses a file from disk.
	ParseFile(ctx context.Context, filePath string) (*FileDeclarations, error)

	// ParseSource parses already-loaded source. filePath is informational.
	ParseSource(ctx context.Context, filePath string, source []byte) (*FileDeclarations, error)
}
