package gitops

import (
	"github.com/gorewood/hookline/internal/git"
	"github.com/gorewood/hookline/internal/hooks"
)

// HookResult is the outcome of a hook as shown to a user: either fine, or
// rejected with the hook's output.
type HookResult struct {
	// Rejected is true when the hook ran and exited non-zero.
	Rejected bool `json:"rejected"`
	// Output is stdout followed by stderr of a rejecting hook.
	Output string `json:"output,omitempty"`
}

// HookOk is the result for a hook that is absent or succeeded.
var HookOk = HookResult{}

// HookNotOk returns the result for a hook that rejected with output.
func HookNotOk(output string) HookResult {
	return HookResult{Rejected: true, Output: output}
}

// Ok reports whether the operation may proceed.
func (r HookResult) Ok() bool {
	return !r.Rejected
}

func resultOf(outcome hooks.Outcome) HookResult {
	if outcome.IsOk() {
		return HookOk
	}
	return HookNotOk(outcome.Output())
}

// Hooks runs hooks with extra search directories, relative to the git
// directory, that are tried after <gitdir>/hooks.
type Hooks struct {
	SearchPaths []string
}

// PreCommit runs the pre-commit hook of the repository at repoPath.
func (h Hooks) PreCommit(repoPath string) (HookResult, error) {
	repo, err := git.Open(repoPath)
	if err != nil {
		return HookResult{}, err
	}
	return result(hooks.PreCommit(repo, h.SearchPaths))
}

// PostCommit runs the post-commit hook of the repository at repoPath.
func (h Hooks) PostCommit(repoPath string) (HookResult, error) {
	repo, err := git.Open(repoPath)
	if err != nil {
		return HookResult{}, err
	}
	return result(hooks.PostCommit(repo, h.SearchPaths))
}

// CommitMsg runs the commit-msg hook. msg is replaced by whatever the hook
// left in its message file.
func (h Hooks) CommitMsg(repoPath string, msg *string) (HookResult, error) {
	repo, err := git.Open(repoPath)
	if err != nil {
		return HookResult{}, err
	}
	return result(hooks.CommitMsg(repo, h.SearchPaths, msg))
}

// PrepareCommitMsg runs the prepare-commit-msg hook. msg is replaced by
// whatever the hook left in its message file.
func (h Hooks) PrepareCommitMsg(repoPath string, source hooks.Source, msg *string) (HookResult, error) {
	repo, err := git.Open(repoPath)
	if err != nil {
		return HookResult{}, err
	}
	return result(hooks.PrepareCommitMsg(repo, h.SearchPaths, source, msg))
}

// Resolve reports where hook would be looked up for the repository at
// repoPath, without running it.
func (h Hooks) Resolve(repoPath, hook string) (hooks.HookPaths, error) {
	repo, err := git.Open(repoPath)
	if err != nil {
		return hooks.HookPaths{}, err
	}
	return hooks.Resolve(repo, hook, h.SearchPaths)
}

func result(outcome hooks.Outcome, err error) (HookResult, error) {
	if err != nil {
		return HookResult{}, err
	}
	return resultOf(outcome), nil
}

// HooksCommitMsg runs the commit-msg hook with the default search paths.
func HooksCommitMsg(repoPath string, msg *string) (HookResult, error) {
	return Hooks{}.CommitMsg(repoPath, msg)
}

// HooksPreCommit runs the pre-commit hook with the default search paths.
func HooksPreCommit(repoPath string) (HookResult, error) {
	return Hooks{}.PreCommit(repoPath)
}

// HooksPostCommit runs the post-commit hook with the default search paths.
func HooksPostCommit(repoPath string) (HookResult, error) {
	return Hooks{}.PostCommit(repoPath)
}

// HooksPrepareCommitMsg runs the prepare-commit-msg hook with the default
// search paths.
func HooksPrepareCommitMsg(repoPath string, source hooks.Source, msg *string) (HookResult, error) {
	return Hooks{}.PrepareCommitMsg(repoPath, source, msg)
}
