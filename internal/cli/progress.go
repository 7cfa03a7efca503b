package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/mvp-joe/bcl-sources/internal/indexer"
	"github.com/schollz/progressbar/v3"
)

// CLIProgressReporter reports indexing progress. On a terminal it draws a
// progress bar over libraries; otherwise it prints one line per library.
type CLIProgressReporter struct {
	quiet       bool
	verbose     bool // log one line per file
	interactive bool
	out         io.Writer
	libraryBar  *progressbar.ProgressBar
}

// NewCLIProgressReporter creates a new CLI progress reporter writing to stdout.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{
		quiet:       quiet,
		verbose:     verbose,
		interactive: isTerminal(os.Stdout),
		out:         os.Stdout,
	}
}

func (c *CLIProgressReporter) OnDiscoveryComplete(totalLibraries int) {
	if c.quiet {
		return
	}
	log.Printf("Found %s libraries\n", formatNumber(totalLibraries))

	if !c.interactive {
		return
	}
	c.libraryBar = progressbar.NewOptions(totalLibraries,
		progressbar.OptionSetWriter(c.out),
		progressbar.OptionSetDescription("Indexing libraries"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(c.out)
		}),
	)
}

func (c *CLIProgressReporter) OnLibraryStart(current, total int, name string) {
	if c.quiet {
		return
	}
	if c.libraryBar != nil {
		c.libraryBar.Describe(fmt.Sprintf("%-40s", name))
		c.libraryBar.Set(current - 1)
		return
	}
	fmt.Fprintf(c.out, "Processing library %d out of %d (Library: %s)\n", current, total, name)
}

func (c *CLIProgressReporter) OnFileProcessed(filePath string, records int) {
	if c.quiet || !c.verbose {
		return
	}
	log.Printf("%s: %d types\n", filePath, records)
}

func (c *CLIProgressReporter) OnFormatting() {
	if c.quiet {
		return
	}
	if c.libraryBar != nil {
		c.libraryBar.Finish()
		c.libraryBar = nil
	}
	printStatus(c.out, "Formatting...")
}

func (c *CLIProgressReporter) OnComplete(stats *indexer.Stats) {
	if c.quiet {
		return
	}
	printSuccess(c.out, "Done: %s types in %s namespaces from %s files in %s libraries (%.1fs)",
		formatNumber(stats.Records),
		formatNumber(stats.Namespaces),
		formatNumber(stats.Files),
		formatNumber(stats.Libraries),
		stats.Duration.Seconds())
}
