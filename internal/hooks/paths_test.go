package hooks

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/hookline/internal/testrepo"
)

// fakeRepo is a Repository backed by plain directories.
type fakeRepo struct {
	gitDir  string
	workDir string
	config  map[string]string
}

func newFakeRepo(t *testing.T) *fakeRepo {
	t.Helper()
	root := t.TempDir()
	gitDir := filepath.Join(root, ".git")
	require.NoError(t, os.MkdirAll(gitDir, 0o755))
	return &fakeRepo{gitDir: gitDir, workDir: root, config: map[string]string{}}
}

func (r *fakeRepo) GitDir() string { return r.gitDir }

func (r *fakeRepo) WorkDir() (string, bool) { return r.workDir, r.workDir != "" }

func (r *fakeRepo) ConfigString(key string) (string, bool) {
	v, ok := r.config[key]
	return v, ok
}

func (r *fakeRepo) hook(t *testing.T, dir, name string) string {
	t.Helper()
	full := filepath.Join(r.gitDir, dir)
	require.NoError(t, os.MkdirAll(full, 0o755))
	path := filepath.Join(full, name)
	testrepo.CreateHookInPath(t, path, "#!/bin/sh\nexit 0\n")
	return path
}

func TestResolve_NoHook(t *testing.T) {
	repo := newFakeRepo(t)

	paths, err := Resolve(repo, HookPreCommit, []string{"githooks"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(repo.gitDir, "hooks", HookPreCommit), paths.Hook)
	assert.Equal(t, repo.gitDir, paths.GitDir)
	assert.Equal(t, repo.workDir, paths.WorkDir)
	assert.False(t, paths.Found())
}

func TestResolve_DefaultDir(t *testing.T) {
	repo := newFakeRepo(t)
	want := repo.hook(t, "hooks", HookPreCommit)

	paths, err := Resolve(repo, HookPreCommit, nil)
	require.NoError(t, err)

	assert.Equal(t, want, paths.Hook)
	assert.True(t, paths.Found())
}

func TestResolve_SearchPaths(t *testing.T) {
	t.Run("trailing slash is trimmed", func(t *testing.T) {
		repo := newFakeRepo(t)
		want := repo.hook(t, "githooks", HookCommitMsg)

		paths, err := Resolve(repo, HookCommitMsg, []string{"missing/", "githooks/"})
		require.NoError(t, err)

		assert.Equal(t, want, paths.Hook)
		assert.True(t, paths.Found())
	})

	t.Run("default dir wins", func(t *testing.T) {
		repo := newFakeRepo(t)
		want := repo.hook(t, "hooks", HookCommitMsg)
		repo.hook(t, "githooks", HookCommitMsg)

		paths, err := Resolve(repo, HookCommitMsg, []string{"githooks"})
		require.NoError(t, err)

		assert.Equal(t, want, paths.Hook)
	})
}

func TestResolve_ConfigHooksPath(t *testing.T) {
	t.Run("no fallback when the hook is missing", func(t *testing.T) {
		repo := newFakeRepo(t)
		repo.hook(t, "hooks", HookPreCommit)
		custom := t.TempDir()
		repo.config[ConfigHooksPath] = custom

		paths, err := Resolve(repo, HookPreCommit, []string{"hooks"})
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(custom, HookPreCommit), paths.Hook)
		assert.False(t, paths.Found())
	})

	t.Run("absolute path with variable", func(t *testing.T) {
		repo := newFakeRepo(t)
		custom := t.TempDir()
		t.Setenv("HOOKLINE_TEST_DIR", custom)
		repo.config[ConfigHooksPath] = "$HOOKLINE_TEST_DIR"
		testrepo.CreateHookInPath(t, filepath.Join(custom, HookPreCommit), "#!/bin/sh\n")

		paths, err := Resolve(repo, HookPreCommit, nil)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(custom, HookPreCommit), paths.Hook)
		assert.True(t, paths.Found())
	})

	t.Run("relative path is taken from the work-tree", func(t *testing.T) {
		repo := newFakeRepo(t)
		repo.config[ConfigHooksPath] = "my_hooks"

		paths, err := Resolve(repo, HookCommitMsg, nil)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(repo.workDir, "my_hooks", HookCommitMsg), paths.Hook)
	})

	t.Run("expansion failure", func(t *testing.T) {
		repo := newFakeRepo(t)
		repo.config[ConfigHooksPath] = "${HOOKLINE_TEST_UNSET}"

		_, err := Resolve(repo, HookPreCommit, nil)

		var expErr *PathExpansionError
		require.ErrorAs(t, err, &expErr)
		assert.ErrorIs(t, err, ErrUndefinedVariable)
	})
}

func TestResolve_LinkedWorktreeUsesCommonDir(t *testing.T) {
	repo := newFakeRepo(t)
	want := repo.hook(t, "hooks", HookPreCommit)

	linked := &fakeRepo{
		gitDir:  filepath.Join(repo.gitDir, "worktrees", "linked"),
		workDir: t.TempDir(),
		config:  map[string]string{},
	}
	require.NoError(t, os.MkdirAll(linked.gitDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(linked.gitDir, "commondir"), []byte("../..\n"), 0o644))

	paths, err := Resolve(linked, HookPreCommit, nil)
	require.NoError(t, err)

	assert.Equal(t, want, paths.Hook)
	assert.Equal(t, linked.gitDir, paths.GitDir)
	assert.Equal(t, linked.workDir, paths.WorkDir)
}

func TestResolve_BareRunsInGitDir(t *testing.T) {
	repo := newFakeRepo(t)
	repo.workDir = ""

	paths, err := Resolve(repo, HookPostCommit, nil)
	require.NoError(t, err)
	assert.Equal(t, repo.gitDir, paths.WorkDir)

	repo.config[ConfigHooksPath] = "my_hooks"
	paths, err = Resolve(repo, HookPostCommit, nil)
	require.NoError(t, err)
	assert.Equal(t, repo.gitDir, paths.WorkDir)
	assert.Equal(t, filepath.Join(repo.gitDir, "my_hooks", HookPostCommit), paths.Hook)
}

func TestFound(t *testing.T) {
	t.Run("directory", func(t *testing.T) {
		repo := newFakeRepo(t)
		require.NoError(t, os.MkdirAll(filepath.Join(repo.gitDir, "hooks", HookPreCommit), 0o755))

		paths, err := Resolve(repo, HookPreCommit, nil)
		require.NoError(t, err)
		assert.False(t, paths.Found())
	})

	t.Run("not executable", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("no executable bit on windows")
		}
		repo := newFakeRepo(t)
		dir := filepath.Join(repo.gitDir, "hooks")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, HookPreCommit), []byte("#!/bin/sh\n"), 0o644))

		paths, err := Resolve(repo, HookPreCommit, nil)
		require.NoError(t, err)
		assert.False(t, paths.Found())
	})
}
