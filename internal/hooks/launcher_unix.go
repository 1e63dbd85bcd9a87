//go:build unix

package hooks

import (
	"errors"
	"io/fs"
	"os/exec"

	"golang.org/x/sys/unix"
)

// shellFlags are passed to sh before the script arguments.
var shellFlags []string

func newLauncher() launcher {
	return directLauncher{shell: "sh"}
}

// isExecutable reports whether any execute bit is set.
func isExecutable(info fs.FileInfo) bool {
	return info.Mode().Perm()&0o111 != 0
}

// isExecFormatError reports whether exec failed because the file has no
// recognised executable format or interpreter line.
func isExecFormatError(err error) bool {
	return errors.Is(err, unix.ENOEXEC)
}

func hideWindow(*exec.Cmd) {}
