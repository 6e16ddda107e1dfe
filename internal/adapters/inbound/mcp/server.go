package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewGitcomplyMCPServer creates an MCP server with all gitcomply tools
// registered. The policyPath is the directory whose .gitcomply.yaml (if
// any) defines the convention to check against.
func NewGitcomplyMCPServer(policyPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"gitcomply",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, policyPath)

	return s
}
