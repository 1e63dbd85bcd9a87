// Package testrepo creates throwaway git repositories for tests.
//
// Repositories are created with go-git in t.TempDir(), configured with a
// fixed user identity, and removed when the test ends. Call Sandbox once
// from TestMain so the developer's own git config cannot leak into tests.
package testrepo

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Identity used for the user.name / user.email of every test repository.
const (
	UserName  = "name"
	UserEmail = "email"
)

// Repo is a repository created for a single test.
type Repo struct {
	t    testing.TB
	Dir  string // work-tree root, or the repository itself when bare
	Repo *gogit.Repository
	bare bool
}

// Sandbox points HOME and XDG_CONFIG_HOME at an empty directory so global
// git config files are not read. It is meant to be called once from
// TestMain; the returned func removes the directory.
func Sandbox() (func(), error) {
	dir, err := os.MkdirTemp("", "hookline-sandbox-*")
	if err != nil {
		return nil, err
	}

	vars := []string{"HOME", "XDG_CONFIG_HOME"}
	if runtime.GOOS == "windows" {
		vars = append(vars, "USERPROFILE")
	}
	for _, name := range vars {
		if err := os.Setenv(name, dir); err != nil {
			_ = os.RemoveAll(dir)
			return nil, err
		}
	}

	return func() { _ = os.RemoveAll(dir) }, nil
}

// Init creates an empty non-bare repository.
func Init(t testing.TB) *Repo {
	t.Helper()
	return InitWithPrefix(t, "")
}

// InitWithPrefix creates an empty non-bare repository in a directory whose
// name starts with prefix, to exercise paths with spaces and quotes.
func InitWithPrefix(t testing.TB, prefix string) *Repo {
	t.Helper()

	dir := filepath.Join(t.TempDir(), prefix+"repo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating repo dir: %v", err)
	}

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("git init: %v", err)
	}

	r := &Repo{t: t, Dir: dir, Repo: repo}
	r.SetConfig("user.name", UserName)
	r.SetConfig("user.email", UserEmail)
	return r
}

// InitWithCommit creates a repository with an empty "initial" commit.
func InitWithCommit(t testing.TB) *Repo {
	t.Helper()

	r := Init(t)
	sig := Signature(UserName, UserEmail, time.Now())
	r.Commit("initial", sig, sig)
	return r
}

// InitBare creates an empty bare repository.
func InitBare(t testing.TB) *Repo {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "bare.git")
	repo, err := gogit.PlainInit(dir, true)
	if err != nil {
		t.Fatalf("git init --bare: %v", err)
	}
	return &Repo{t: t, Dir: dir, Repo: repo, bare: true}
}

// Signature builds a commit signature truncated to whole seconds, which is
// the precision git stores.
func Signature(name, email string, when time.Time) object.Signature {
	return object.Signature{Name: name, Email: email, When: when.Truncate(time.Second)}
}

// GitDir returns the repository's git directory.
func (r *Repo) GitDir() string {
	if r.bare {
		return r.Dir
	}
	return filepath.Join(r.Dir, ".git")
}

// SetConfig sets a "section.key" value in the repository's local config.
func (r *Repo) SetConfig(key, value string) {
	r.t.Helper()

	section, name, ok := strings.Cut(key, ".")
	if !ok {
		r.t.Fatalf("config key %q has no section", key)
	}

	cfg, err := r.Repo.Config()
	if err != nil {
		r.t.Fatalf("reading config: %v", err)
	}
	cfg.Raw.Section(section).SetOption(name, value)
	if err := r.Repo.SetConfig(cfg); err != nil {
		r.t.Fatalf("writing config: %v", err)
	}
}

// WriteFile writes a file relative to the work-tree root, creating parent
// directories as needed.
func (r *Repo) WriteFile(name, content string) string {
	r.t.Helper()

	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatalf("creating directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		r.t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// Mkdir creates a directory relative to the work-tree root.
func (r *Repo) Mkdir(name string) string {
	r.t.Helper()

	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(path, 0o755); err != nil {
		r.t.Fatalf("creating %s: %v", name, err)
	}
	return path
}

// Add stages a work-tree file.
func (r *Repo) Add(name string) {
	r.t.Helper()

	wt, err := r.Repo.Worktree()
	if err != nil {
		r.t.Fatalf("opening worktree: %v", err)
	}
	if _, err := wt.Add(name); err != nil {
		r.t.Fatalf("git add %s: %v", name, err)
	}
}

// Commit records a commit of the current index and returns its id.
func (r *Repo) Commit(msg string, author, committer object.Signature) string {
	r.t.Helper()

	wt, err := r.Repo.Worktree()
	if err != nil {
		r.t.Fatalf("opening worktree: %v", err)
	}

	hash, err := wt.Commit(msg, &gogit.CommitOptions{
		Author:            &author,
		Committer:         &committer,
		AllowEmptyCommits: true,
	})
	if err != nil {
		r.t.Fatalf("git commit: %v", err)
	}
	return hash.String()
}

// CreateHook writes an executable hook script into <gitdir>/hooks.
func (r *Repo) CreateHook(name, script string) string {
	r.t.Helper()

	dir := filepath.Join(r.GitDir(), "hooks")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		r.t.Fatalf("creating hooks dir: %v", err)
	}
	path := filepath.Join(dir, name)
	CreateHookInPath(r.t, path, script)
	return path
}

// CreateHookInPath writes an executable hook script at path.
func CreateHookInPath(t testing.TB, path, script string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing hook %s: %v", path, err)
	}
	// WriteFile is subject to the umask.
	if err := os.Chmod(path, 0o755); err != nil {
		t.Fatalf("chmod hook %s: %v", path, err)
	}
}
