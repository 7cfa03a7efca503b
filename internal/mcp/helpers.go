package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// argumentsOf returns the request arguments, or a tool error result when the
// client sent something other than a JSON object.
func argumentsOf(request mcp.CallToolRequest) (map[string]interface{}, *mcp.CallToolResult) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, toolError("invalid arguments format")
	}
	return args, nil
}

// toolError reports a caller mistake without failing the MCP call itself.
func toolError(format string, args ...interface{}) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf(format, args...))
}

// jsonResult encodes response as the text content of a tool result.
func jsonResult(response interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
