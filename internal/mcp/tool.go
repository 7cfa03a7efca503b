package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	mcputils "github.com/mvp-joe/bcl-sources/internal/mcp-utils"
)

const (
	// ToolName is the name of the single lookup tool.
	ToolName = "bcl_source_url"
	// BatchToolName is the name of the multi-name lookup tool.
	BatchToolName = "bcl_source_urls"

	maxBatchNames = 100
)

// SourceLookup resolves qualified type names to source URLs.
type SourceLookup interface {
	URLOfName(name string) (url string, ok bool, err error)
}

// AddSourceURLTool registers the bcl_source_url tool with an MCP server.
func AddSourceURLTool(s *server.MCPServer, store SourceLookup) {
	tool := mcp.NewTool(
		ToolName,
		mcp.WithDescription(`Find the raw source file that declares a .NET type.

Pass the namespace-qualified type name, e.g. "System.Console" or
"System.Collections.Generic.List". Matching is exact and case-sensitive.
Nested types are indexed under their namespace, not their outer type.`),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Namespace-qualified type name")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createSourceURLHandler(store))
}

// createSourceURLHandler creates the handler function for the bcl_source_url tool.
func createSourceURLHandler(store SourceLookup) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := argumentsOf(request)
		if errResult != nil {
			return errResult, nil
		}

		name, ok := argsMap["name"].(string)
		if !ok || name == "" {
			return toolError("name parameter is required"), nil
		}

		url, found, err := store.URLOfName(name)
		if err != nil {
			return nil, fmt.Errorf("lookup failed: %w", err)
		}

		return jsonResult(&SourceURLResponse{
			Name:  name,
			URL:   url,
			Found: found,
		})
	}
}

// SourceURLResponse represents the JSON response schema for the bcl_source_url tool.
type SourceURLResponse struct {
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
	Found bool   `json:"found"`
}

// AddSourceURLsTool registers the bcl_source_urls tool with an MCP server.
func AddSourceURLsTool(s *server.MCPServer, store SourceLookup) {
	tool := mcp.NewTool(
		BatchToolName,
		mcp.WithDescription(`Find the raw source files for several .NET types at once.

Results are returned in the order the names were given.`),
		mcp.WithArray("names",
			mcp.Required(),
			mcp.Description("Namespace-qualified type names, e.g. ['System.Console', 'System.ConsoleKeyInfo']")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createSourceURLsHandler(store))
}

// SourceURLsRequest holds the bcl_source_urls arguments.
type SourceURLsRequest struct {
	Names []string `json:"names"`
}

// SourceURLsResponse represents the JSON response schema for the bcl_source_urls tool.
type SourceURLsResponse struct {
	Results []SourceURLResponse `json:"results"`
	Found   int                 `json:"found"`
}

func createSourceURLsHandler(store SourceLookup) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, errResult := argumentsOf(request); errResult != nil {
			return errResult, nil
		}

		var args SourceURLsRequest
		if err := mcputils.BindArguments(request, &args); err != nil {
			return toolError("invalid arguments: %v", err), nil
		}
		if len(args.Names) == 0 {
			return toolError("names parameter is required"), nil
		}
		if len(args.Names) > maxBatchNames {
			return toolError("at most %d names per call", maxBatchNames), nil
		}

		response := SourceURLsResponse{Results: make([]SourceURLResponse, 0, len(args.Names))}
		for _, name := range args.Names {
			url, found, err := store.URLOfName(name)
			if err != nil {
				return nil, fmt.Errorf("lookup failed: %w", err)
			}
			if found {
				response.Found++
			}
			response.Results = append(response.Results, SourceURLResponse{Name: name, URL: url, Found: found})
		}

		return jsonResult(&response)
	}
}
