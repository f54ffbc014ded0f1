package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/deploycheck/deploycheck/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the deploycheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var (
		repoPath    string
		catalogPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start deploycheck MCP server (stdio)",
		Long:  "Start the deploycheck MCP server using stdio transport. This allows AI coding assistants to query compliance reports and the rule catalog.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if repoPath == "" {
				repoPath = "."
			}
			s := mcpadapter.NewDeploycheckMCPServer(repoPath, catalogPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&repoPath, "path", "", "Repository path (defaults to current working directory)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a YAML rule catalog (default: built-in catalog)")

	return cmd
}
