package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/mvp-joe/bcl-sources/internal/config"
	"github.com/spf13/cobra"
)

var cleanQuietFlag bool

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated index files",
	Long: `Clean removes the compact and formatted index files from the output
directory, along with any temporary file left behind by an interrupted run.

The configuration file (.bcl-sources/config.yml) is preserved.

Use cases:
  - Start over after indexing with --append
  - Remove output from a failed run

Examples:
  bcl-sources clean
  bcl-sources clean --quiet
`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().BoolVarP(&cleanQuietFlag, "quiet", "q", false, "Suppress output messages")
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if cleanQuietFlag {
		out = io.Discard
	}
	_, err = executeClean(out, cfg)
	return err
}

// executeClean deletes the output files named by cfg and returns how many
// were removed.
func executeClean(w io.Writer, cfg *config.Config) (int, error) {
	paths := []string{
		cfg.IndexPath(),
		cfg.FormattedPath(),
		cfg.FormattedPath() + ".tmp",
	}

	removed := 0
	var totalSize int64
	for _, path := range paths {
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return removed, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		totalSize += info.Size()
		removed++
	}

	if removed == 0 {
		fmt.Fprintln(w, "No index files found")
		return 0, nil
	}

	printSuccess(w, "Removed %d file(s) (%s)", removed, formatBytes(totalSize))
	return removed, nil
}

// formatBytes formats a byte count in human-readable form.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
