package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/abdidvp/gitcomply/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the gitcomply MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var policyPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gitcomply MCP server (stdio)",
		Long:  "Start the gitcomply MCP server using stdio transport. This lets review bots and AI assistants check titles and extract links through tool calls.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if policyPath == "" {
				policyPath = "."
			}
			s := mcpadapter.NewGitcomplyMCPServer(policyPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&policyPath, "path", "", "Directory containing .gitcomply.yaml (defaults to current working directory)")

	return cmd
}
