// Package git is the repository access layer for hookline.
//
// It is backed by go-git and exposes the small surface the hook runner and
// the commit details extractor need:
//
//	repo, err := git.Open(path)          // path may be any directory in a work-tree
//	repo.GitDir()                         // .git directory, or the repo for bare repos
//	repo.WorkDir()                        // work-tree root, false for bare repos
//	repo.ConfigString("core.hooksPath")   // local > global > system
//	mm, err := repo.Mailmap()             // mailmap.blob, .mailmap, mailmap.file
//	commit, err := repo.FindCommit("HEAD")
//	author, err := commit.AuthorWithMailmap(mm)
//
// # Error Handling
//
// Failures are returned as *RepositoryError, which wraps ErrNotARepository
// or ErrCommitNotFound where applicable:
//
//	repo, err := git.Open(dir)
//	if errors.Is(err, git.ErrNotARepository) {
//	    return output.NewUserError("not in a git repository")
//	}
//
// Config values are read once when the repository is opened; reopen the
// repository to observe config changes.
package git
