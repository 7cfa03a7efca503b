package cli

import (
	"fmt"
	"os"

	"github.com/mvp-joe/bcl-sources/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	projectDir string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bcl-sources",
	Short: "Map .NET type names to the source files that declare them",
	Long: `bcl-sources indexes a checkout of a multi-library C# source tree
(libraries/<library>/src/**/*.cs) and writes a JSON document mapping every
namespace-qualified type name to the raw URL of the file declaring it.

The same index can then be queried from the command line or served to
coding assistants over MCP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectDir, "dir", "", "project directory holding .bcl-sources/config.yml (default is the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	viper.BindPFlag("dir", rootCmd.PersistentFlags().Lookup("dir"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// loadConfig loads configuration for the selected project directory.
// Relative source and output directories are taken relative to it.
func loadConfig() (*config.Config, error) {
	dir := projectDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	cfg, err := config.LoadConfigFromDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.ResolvePaths(dir)

	if verbose {
		fmt.Fprintf(os.Stderr, "Library root: %s\n", cfg.Source.Root)
		fmt.Fprintf(os.Stderr, "Index: %s\n", cfg.IndexPath())
	}
	return cfg, nil
}
