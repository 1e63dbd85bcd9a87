package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/hookline/internal/gitops"
	"github.com/gorewood/hookline/internal/hooks"
)

// --- Hook status tool ---

// HookStatusInput is the input for the hook_status tool.
type HookStatusInput struct {
	Hook string `json:"hook" jsonschema:"hook name: pre-commit, prepare-commit-msg, commit-msg or post-commit"`
}

// HookStatusOutput is the output for the hook_status tool.
type HookStatusOutput struct {
	Hook    string `json:"hook"     jsonschema:"hook name"`
	Path    string `json:"path"     jsonschema:"hook file location (may not exist)"`
	WorkDir string `json:"work_dir" jsonschema:"directory the hook runs in"`
	Found   bool   `json:"found"    jsonschema:"whether an executable hook exists at path"`
}

func handleHookStatus(repoPath string, runner gitops.Hooks) mcp.ToolHandlerFor[HookStatusInput, HookStatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input HookStatusInput) (*mcp.CallToolResult, HookStatusOutput, error) {
		if err := checkHook(input.Hook); err != nil {
			return nil, HookStatusOutput{}, err
		}

		paths, err := runner.Resolve(repoPath, input.Hook)
		if err != nil {
			return nil, HookStatusOutput{}, fmt.Errorf("resolving hook: %w", err)
		}

		return nil, HookStatusOutput{
			Hook:    input.Hook,
			Path:    paths.Hook,
			WorkDir: paths.WorkDir,
			Found:   paths.Found(),
		}, nil
	}
}

// --- Run hook tool ---

// RunHookInput is the input for the run_hook tool.
type RunHookInput struct {
	Hook    string `json:"hook"              jsonschema:"hook name: pre-commit, prepare-commit-msg, commit-msg or post-commit"`
	Message string `json:"message,omitempty" jsonschema:"commit message for commit-msg and prepare-commit-msg"`
	Source  string `json:"source,omitempty"  jsonschema:"prepare-commit-msg source: message, template, merge, squash or commit"`
	Commit  string `json:"commit,omitempty"  jsonschema:"commit id when source is commit"`
}

// RunHookOutput is the output for the run_hook tool.
type RunHookOutput struct {
	Hook     string  `json:"hook"              jsonschema:"hook name"`
	Rejected bool    `json:"rejected"          jsonschema:"true when the hook exited non-zero"`
	Output   string  `json:"output,omitempty"  jsonschema:"stdout then stderr of a rejecting hook"`
	Message  *string `json:"message,omitempty" jsonschema:"message after the hook ran (message hooks only)"`
}

func handleRunHook(repoPath string, runner gitops.Hooks) mcp.ToolHandlerFor[RunHookInput, RunHookOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RunHookInput) (*mcp.CallToolResult, RunHookOutput, error) {
		if err := checkHook(input.Hook); err != nil {
			return nil, RunHookOutput{}, err
		}

		out := RunHookOutput{Hook: input.Hook}
		msg := input.Message

		var (
			res gitops.HookResult
			err error
		)
		switch input.Hook {
		case hooks.HookPreCommit:
			res, err = runner.PreCommit(repoPath)
		case hooks.HookPostCommit:
			res, err = runner.PostCommit(repoPath)
		case hooks.HookCommitMsg:
			res, err = runner.CommitMsg(repoPath, &msg)
			out.Message = &msg
		case hooks.HookPrepareCommitMsg:
			source, parseErr := hooks.ParseSource(input.Source, input.Commit)
			if parseErr != nil {
				return nil, RunHookOutput{}, parseErr
			}
			res, err = runner.PrepareCommitMsg(repoPath, source, &msg)
			out.Message = &msg
		}
		if err != nil {
			return nil, RunHookOutput{}, fmt.Errorf("running %s: %w", input.Hook, err)
		}

		out.Rejected = res.Rejected
		out.Output = res.Output
		return nil, out, nil
	}
}
