// Package mcp provides a Model Context Protocol server for hookline.
// It exposes commit details and the commit hooks of one repository as MCP
// tools, so an agent can check a message against commit-msg before it
// commits.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/hookline/internal/gitops"
)

// NewServer creates an MCP server with all hookline tools registered. Tools
// operate on the repository containing repoPath.
func NewServer(version, repoPath string, runner gitops.Hooks) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "hookline",
		Version: version,
	}, nil)
	registerTools(server, repoPath, runner)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// execAnnotations returns annotations for tools that run repository hooks.
// Hooks are arbitrary scripts, so nothing can be promised about them.
func execAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all hookline tools to the server.
func registerTools(server *mcp.Server, repoPath string, runner gitops.Hooks) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "commit_details",
		Description: "Show a commit's author, committer and message with the repository mailmap applied. Defaults to HEAD.",
		Annotations: readOnlyAnnotations(),
	}, handleCommitDetails(repoPath))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "hook_status",
		Description: "Report where a commit hook (pre-commit, prepare-commit-msg, commit-msg, post-commit) is looked up and whether an executable hook exists there.",
		Annotations: readOnlyAnnotations(),
	}, handleHookStatus(repoPath, runner))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "run_hook",
		Description: "Run a commit hook. commit-msg and prepare-commit-msg take a message and return it as rewritten by the hook, even when the hook rejects.",
		Annotations: execAnnotations(),
	}, handleRunHook(repoPath, runner))
}
