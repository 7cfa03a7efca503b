package indexer

// ProgressReporter provides callbacks for reporting indexing progress.
// Implementations can display progress bars, log messages, or remain silent.
// Reporting is purely observational and never affects the index.
type ProgressReporter interface {
	// OnDiscoveryComplete is called once the library list is known.
	OnDiscoveryComplete(totalLibraries int)

	// OnLibraryStart is called before each library is scanned. current is 1-based.
	OnLibraryStart(current, total int, name string)

	// OnFileProcessed is called after each source file is indexed.
	OnFileProcessed(filePath string, records int)

	// OnFormatting is called before the pretty-printed copy is written.
	OnFormatting()

	// OnComplete is called when indexing completes successfully.
	OnComplete(stats *Stats)
}

// NoOpProgressReporter is a progress reporter that does nothing.
// Used when progress reporting is disabled (e.g., --quiet flag).
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) OnDiscoveryComplete(totalLibraries int)         {}
func (n *NoOpProgressReporter) OnLibraryStart(current, total int, name string) {}
func (n *NoOpProgressReporter) OnFileProcessed(filePath string, records int)   {}
func (n *NoOpProgressReporter) OnFormatting()                                  {}
func (n *NoOpProgressReporter) OnComplete(stats *Stats)                        {}
