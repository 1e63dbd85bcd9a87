package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/hookline/internal/gitops"
)

// Signature is a commit identity for output.
type Signature struct {
	Name  string `json:"name"  jsonschema:"identity name after mailmap"`
	Email string `json:"email" jsonschema:"identity email after mailmap"`
	Time  string `json:"time"  jsonschema:"RFC3339 timestamp in UTC"`
}

// --- Commit details tool ---

// CommitDetailsInput is the input for the commit_details tool.
type CommitDetailsInput struct {
	Commit string `json:"commit,omitempty" jsonschema:"commit id or revision (default HEAD)"`
}

// CommitDetailsOutput is the output for the commit_details tool.
type CommitDetailsOutput struct {
	Hash      string     `json:"hash"                jsonschema:"full commit id"`
	Short     string     `json:"short"               jsonschema:"short commit id (7 chars)"`
	Author    Signature  `json:"author"              jsonschema:"commit author"`
	Committer *Signature `json:"committer,omitempty" jsonschema:"committer, omitted when identical to the author"`
	Subject   string     `json:"subject"             jsonschema:"first line of the message"`
	Body      *string    `json:"body,omitempty"      jsonschema:"remaining lines of the message"`
}

func handleCommitDetails(repoPath string) mcp.ToolHandlerFor[CommitDetailsInput, CommitDetailsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CommitDetailsInput) (*mcp.CallToolResult, CommitDetailsOutput, error) {
		rev := input.Commit
		if rev == "" {
			rev = "HEAD"
		}

		details, err := gitops.GetCommitDetails(repoPath, rev)
		if err != nil {
			return nil, CommitDetailsOutput{}, fmt.Errorf("getting commit details: %w", err)
		}

		out := CommitDetailsOutput{
			Hash:   details.Hash,
			Short:  details.ShortHash(),
			Author: toSignature(details.Author),
		}
		if details.Committer != nil {
			committer := toSignature(*details.Committer)
			out.Committer = &committer
		}
		if details.Message != nil {
			out.Subject = details.Message.Subject
			out.Body = details.Message.Body
		}

		return nil, out, nil
	}
}
