package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mvp-joe/bcl-sources/internal/lookup"
	"github.com/mvp-joe/bcl-sources/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpIndexFlag string

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for source URL lookups",
	Long: `Start the Model Context Protocol (MCP) server so coding assistants can
resolve .NET type names to their source files.

The MCP server:
- Loads the index written by 'bcl-sources index'
- Provides lookups via the bcl_source_url tool
- Communicates via stdio (standard MCP transport)

Example:
  bcl-sources mcp --index result.json`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&mcpIndexFlag, "index", "", "Index file to serve (default is the configured compact output)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	indexPath := mcpIndexFlag
	if indexPath == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		indexPath = cfg.IndexPath()
	}

	// stdout carries the protocol, so startup information goes to stderr
	fmt.Fprintf(os.Stderr, "bcl-sources MCP Server\n")
	fmt.Fprintf(os.Stderr, "Index: %s\n\n", indexPath)

	store, err := lookup.LoadFrom(indexPath)
	if err != nil {
		return fmt.Errorf("failed to load index: %w", err)
	}

	server, err := mcp.NewMCPServer(store, Version)
	if err != nil {
		store.Close()
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer server.Close()

	return server.Serve(ctx)
}
