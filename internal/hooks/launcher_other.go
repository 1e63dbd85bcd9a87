//go:build !unix && !windows

package hooks

import (
	"io/fs"
	"os/exec"
)

var shellFlags []string

// newLauncher runs every hook through sh on platforms without a usable
// executable bit.
func newLauncher() launcher {
	return shellLauncher{shell: "sh"}
}

func isExecutable(fs.FileInfo) bool {
	return true
}

func isExecFormatError(error) bool {
	return false
}

func hideWindow(*exec.Cmd) {}
