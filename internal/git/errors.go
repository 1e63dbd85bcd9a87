package git

import (
	"errors"
	"fmt"
)

var (
	// ErrNotARepository indicates the path is not inside a git repository.
	ErrNotARepository = errors.New("not a git repository")

	// ErrCommitNotFound indicates a commit id or revision could not be resolved.
	ErrCommitNotFound = errors.New("commit not found")

	// ErrInvalidSignature indicates a mailmap-resolved signature is not a
	// valid git identity (empty name, or angle brackets in name or email).
	ErrInvalidSignature = errors.New("invalid signature")
)

// RepositoryError reports a failure of the repository access layer:
// opening a repository, reading its config or looking up objects.
type RepositoryError struct {
	Op   string // operation, e.g. "open", "config", "find commit"
	Path string // repository path or revision the operation was about
	Err  error
}

// Error implements the error interface.
func (e *RepositoryError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("git %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("git %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *RepositoryError) Unwrap() error {
	return e.Err
}
