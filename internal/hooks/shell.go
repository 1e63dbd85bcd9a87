package hooks

import (
	"os"
	"path/filepath"
)

// bundledShell finds the sh.exe that Git for Windows installs next to git:
// <install>/cmd/git.exe (or <install>/bin/git.exe) -> <install>/usr/bin/sh.exe.
func bundledShell(gitPath string) (string, bool) {
	install := filepath.Dir(filepath.Dir(gitPath))
	sh := filepath.Join(install, "usr", "bin", "sh.exe")
	if info, err := os.Stat(sh); err != nil || info.IsDir() {
		return "", false
	}
	return sh, true
}
