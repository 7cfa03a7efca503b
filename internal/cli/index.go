package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mvp-joe/bcl-sources/internal/config"
	"github.com/mvp-joe/bcl-sources/internal/indexer"
	"github.com/spf13/cobra"
)

var (
	quietFlag  bool
	rootFlag   string
	appendFlag bool
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index C# type declarations into a name to URL document",
	Long: `Index walks every library under the library root, parses each C# source
file in the library's src folder and records one entry per declared type:

  {"name": "System.Collections.Generic.PriorityQueue", "url": "https://raw.githubusercontent.com/..."}

Two files are written to the output directory: a compact JSON array and an
indented copy of it.

Examples:
  # Index ./libraries with the defaults
  bcl-sources index

  # Index a runtime checkout somewhere else
  bcl-sources index --root ~/src/runtime/src/libraries

  # Keep the previous output and append this run to it
  bcl-sources index --append
`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	indexCmd.Flags().StringVar(&rootFlag, "root", "", "Library root directory (overrides source.root)")
	indexCmd.Flags().BoolVar(&appendFlag, "append", false, "Append to existing output instead of replacing it")
}

func runIndex(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			fmt.Println("\nInterrupted! Cancelling indexing...")
			cancel()
		case <-ctx.Done():
		}
	}()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if rootFlag != "" {
		cfg.Source.Root = rootFlag
	}
	if appendFlag {
		cfg.Output.Append = true
	}

	stats, err := executeIndex(ctx, cfg, NewCLIProgressReporter(quietFlag))
	if err != nil {
		return err
	}

	if quietFlag {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", stats.Records)
	}
	return nil
}

// executeIndex runs one indexing pass for cfg.
func executeIndex(ctx context.Context, cfg *config.Config, progress indexer.ProgressReporter) (*indexer.Stats, error) {
	if cfg.Output.Dir != "" {
		if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	idx, err := indexer.New(cfg.ToIndexerConfig(), progress)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexer: %w", err)
	}

	stats, err := idx.Index(ctx)
	if err != nil {
		return nil, fmt.Errorf("indexing failed: %w", err)
	}
	return stats, nil
}
