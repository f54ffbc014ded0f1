package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewDeploycheckMCPServer creates an MCP server with the audit tools and
// resources registered. repoPath is the root of the repository to audit;
// catalogPath optionally names a YAML rule catalog.
func NewDeploycheckMCPServer(repoPath, catalogPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"deploycheck",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, repoPath, catalogPath)
	registerResources(s, repoPath, catalogPath)

	return s
}
