package git

import (
	"errors"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// Repository is an open repository handle. It holds a snapshot of the
// layered git config taken when the repository was opened.
type Repository struct {
	repo    *gogit.Repository
	gitDir  string
	workDir string
	config  layeredConfig
}

// Open opens the repository containing path. Parent directories are
// searched for a .git entry, so path may be any directory inside a
// work-tree. Returns a *RepositoryError wrapping ErrNotARepository when no
// repository is found.
func Open(path string) (*Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &RepositoryError{Op: "open", Path: path, Err: err}
	}

	// The path itself is tried first so that bare repositories open; parent
	// directories are only searched when that fails.
	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		repo, err = gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{
			DetectDotGit:          true,
			EnableDotGitCommonDir: true,
		})
	}
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			err = ErrNotARepository
		}
		return nil, &RepositoryError{Op: "open", Path: path, Err: err}
	}

	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return nil, &RepositoryError{Op: "open", Path: path, Err: errors.New("repository is not backed by a filesystem")}
	}

	r := &Repository{
		repo:   repo,
		gitDir: storage.Filesystem().Root(),
	}

	wt, err := repo.Worktree()
	switch {
	case err == nil:
		r.workDir = wt.Filesystem.Root()
	case errors.Is(err, gogit.ErrIsBareRepository):
		// no work-tree
	default:
		return nil, &RepositoryError{Op: "open", Path: path, Err: err}
	}

	local, err := repo.Config()
	if err != nil {
		return nil, &RepositoryError{Op: "config", Path: path, Err: err}
	}
	if r.config, err = loadLayeredConfig(local); err != nil {
		return nil, &RepositoryError{Op: "config", Path: path, Err: err}
	}

	return r, nil
}

// GitDir returns the path of the git directory (".git" for non-bare
// repositories, the repository itself for bare ones).
func (r *Repository) GitDir() string {
	return r.gitDir
}

// WorkDir returns the root of the work-tree. The bool is false for bare
// repositories.
func (r *Repository) WorkDir() (string, bool) {
	return r.workDir, r.workDir != ""
}

// IsBare reports whether the repository has no work-tree.
func (r *Repository) IsBare() bool {
	return r.workDir == ""
}

// ConfigString returns the value of a config key with git's precedence
// (local over global over system). The bool is false when the key is unset.
func (r *Repository) ConfigString(key string) (string, bool) {
	return r.config.lookup(key)
}
