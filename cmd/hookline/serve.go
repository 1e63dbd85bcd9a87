package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	hooklinemcp "github.com/gorewood/hookline/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run hookline as a Model Context Protocol (MCP) server over stdio.

The server works on the repository given by -C (default: the current
directory). Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "hookline": {
        "command": "hookline",
        "args": ["serve"]
      }
    }
  }

Available tools: commit_details, hook_status, run_hook`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			server := hooklinemcp.NewServer(buildVersion(), e.repo, e.hooks())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
