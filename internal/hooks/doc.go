// Package hooks locates and runs git's client-side commit hooks.
//
// Resolution follows the git CLI: core.hooksPath wins outright, otherwise
// <gitdir>/hooks is searched, then any extra search paths. Hooks always run
// from the work-tree root (the git directory for bare repositories).
//
//	outcome, err := hooks.PreCommit(repo, nil)
//	if err != nil {
//	    return err // resolution or spawn failure
//	}
//	if !outcome.IsOk() {
//	    fmt.Print(outcome.Output()) // hook rejected the commit
//	}
//
// commit-msg and prepare-commit-msg receive the message through a temporary
// file in the git directory; whatever the hook leaves in that file is copied
// back into the caller's message, even when the hook exits non-zero.
//
// On Unix hooks are executed directly, falling back to sh for scripts
// without a shebang line. On Windows every hook goes through the sh that
// ships with Git for Windows.
package hooks
