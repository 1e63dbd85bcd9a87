//go:build windows

package hooks

import (
	"errors"
	"io/fs"
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// shellFlags makes sh a login shell so that PATH is set up the way Git for
// Windows sets it up for hooks.
var shellFlags = []string{"-l"}

func newLauncher() launcher {
	return shellLauncher{shell: shPath()}
}

// isExecutable is always true: Windows has no executable bit and shell
// scripts are run through sh anyway.
func isExecutable(fs.FileInfo) bool {
	return true
}

func isExecFormatError(err error) bool {
	return errors.Is(err, windows.ERROR_BAD_EXE_FORMAT)
}

// hideWindow stops a console window from popping up for each hook.
func hideWindow(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.CreationFlags |= windows.CREATE_NO_WINDOW
}

// shPath returns the sh.exe bundled with Git for Windows, or "sh".
func shPath() string {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "sh"
	}
	if sh, ok := bundledShell(gitPath); ok {
		return sh
	}
	return "sh"
}
