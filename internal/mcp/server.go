package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/mvp-joe/bcl-sources/internal/lookup"
)

// ServerName is reported to MCP clients during initialization.
const ServerName = "bcl-sources-mcp"

// MCPServer serves source URL lookups over stdio.
type MCPServer struct {
	store *lookup.Store
	mcp   *server.MCPServer
}

// NewMCPServer creates a server answering queries from store.
func NewMCPServer(store *lookup.Store, version string) (*MCPServer, error) {
	if store == nil {
		return nil, fmt.Errorf("source store is required")
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
	)

	AddSourceURLTool(mcpServer, store)
	AddSourceURLsTool(mcpServer, store)

	return &MCPServer{
		store: store,
		mcp:   mcpServer,
	}, nil
}

// Serve starts the MCP server and blocks until shutdown.
func (s *MCPServer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio (%d records)...", s.store.Len())
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases the source store.
func (s *MCPServer) Close() error {
	return s.store.Close()
}
