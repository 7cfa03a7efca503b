package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mvp-joe/bcl-sources/internal/lookup"
	"github.com/spf13/cobra"
)

var (
	lookupIndexFlag string
	lookupJSONFlag  bool
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup NAME...",
	Short: "Print the source URL for qualified type names",
	Long: `Lookup loads a previously built index and prints the source URL of each
namespace-qualified type name given on the command line. Matching is exact
and case-sensitive; the first entry with the name wins.

Examples:
  bcl-sources lookup System.Console
  bcl-sources lookup --json System.Console System.ConsoleKeyInfo
  bcl-sources lookup --index /tmp/result.json System.Collections.Generic.PriorityQueue
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().StringVar(&lookupIndexFlag, "index", "", "Index file or inline JSON text (default is the configured compact output)")
	lookupCmd.Flags().BoolVar(&lookupJSONFlag, "json", false, "Print results as JSON")
}

func runLookup(cmd *cobra.Command, args []string) error {
	source := lookupIndexFlag
	if source == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		source = cfg.IndexPath()
	}

	store, err := lookup.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer store.Close()

	return executeLookup(cmd.OutOrStdout(), store, args, lookupJSONFlag)
}

// lookupResult is one line of --json output.
type lookupResult struct {
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
	Found bool   `json:"found"`
}

// executeLookup resolves names against store and writes one result per name.
func executeLookup(w io.Writer, store *lookup.Store, names []string, asJSON bool) error {
	results := make([]lookupResult, 0, len(names))
	for _, name := range names {
		url, ok, err := store.URLOfName(name)
		if err != nil {
			return err
		}
		results = append(results, lookupResult{Name: name, URL: url, Found: ok})
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		if r.Found {
			fmt.Fprintf(w, "%s\t%s\n", r.Name, r.URL)
			continue
		}
		fmt.Fprintf(w, "%s\t", r.Name)
		missColor.Fprintln(w, "not found")
	}
	return nil
}
