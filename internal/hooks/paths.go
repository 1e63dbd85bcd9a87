package hooks

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ConfigHooksPath is the git config key that overrides the hooks directory.
	ConfigHooksPath = "core.hooksPath"

	// DefaultHooksDir is the hooks directory inside the git directory.
	DefaultHooksDir = "hooks"
)

// Repository is the part of a repository handle needed to locate hooks.
// *git.Repository satisfies it.
type Repository interface {
	GitDir() string
	WorkDir() (string, bool)
	ConfigString(key string) (string, bool)
}

// HookPaths is the result of resolving a hook name in a repository.
type HookPaths struct {
	// GitDir is the repository's git directory.
	GitDir string
	// Hook is the candidate hook file. It may not exist; use Found.
	Hook string
	// WorkDir is the directory the hook runs in: the work-tree root, or the
	// git directory for bare repositories.
	WorkDir string
}

// Resolve locates hook the way the git CLI does.
//
// core.hooksPath always takes precedence: if it is set, the hook is looked
// for there only, even when the file is missing. Otherwise the default
// <gitdir>/hooks directory is checked first, followed by each of
// searchPaths (relative to the git directory). When no candidate exists the
// default location is returned, so callers must use Found to tell whether
// there is a hook to run.
func Resolve(repo Repository, hook string, searchPaths []string) (HookPaths, error) {
	gitDir := repo.GitDir()
	workDir, ok := repo.WorkDir()
	if !ok {
		workDir = gitDir
	}

	if configured, ok := repo.ConfigString(ConfigHooksPath); ok {
		path, err := expandPath(filepath.Join(configured, hook))
		if err != nil {
			return HookPaths{}, err
		}
		// Relative hooks paths are interpreted from where hooks run.
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		return HookPaths{GitDir: gitDir, Hook: path, WorkDir: workDir}, nil
	}

	return HookPaths{
		GitDir:  gitDir,
		Hook:    findHook(gitDir, searchPaths, hook),
		WorkDir: workDir,
	}, nil
}

// findHook returns the first existing candidate, or the default hook path.
// Linked work-trees share the hooks of the main repository.
func findHook(gitDir string, searchPaths []string, hook string) string {
	gitDir = commonDir(gitDir)
	dirs := make([]string, 0, len(searchPaths)+1)
	dirs = append(dirs, DefaultHooksDir)
	for _, dir := range searchPaths {
		dirs = append(dirs, strings.TrimRight(dir, "/"))
	}

	for _, dir := range dirs {
		candidate := filepath.Join(gitDir, dir, hook)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return filepath.Join(gitDir, DefaultHooksDir, hook)
}

// Found reports whether the hook file exists and is executable.
func (p HookPaths) Found() bool {
	info, err := os.Stat(p.Hook)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}
	if !isExecutable(info) {
		slog.Debug("hook is not executable", "hook", p.Hook)
		return false
	}
	return true
}

// commonDir follows the commondir file that linked work-trees keep in
// their git directory.
func commonDir(gitDir string) string {
	data, err := os.ReadFile(filepath.Join(gitDir, "commondir"))
	if err != nil {
		return gitDir
	}
	dir := strings.TrimSpace(string(data))
	if dir == "" {
		return gitDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(gitDir, dir)
	}
	return filepath.Clean(dir)
}
