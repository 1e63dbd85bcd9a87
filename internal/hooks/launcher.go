package hooks

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
)

// processOutput is what a finished hook process left behind.
type processOutput struct {
	exitCode int // -1 when terminated by a signal
	stdout   []byte
	stderr   []byte
}

func (o *processOutput) success() bool {
	return o.exitCode == 0
}

// launcher starts a hook process in dir and waits for it. A process that
// runs and exits non-zero is not an error; only failure to start is.
//
// The implementation is chosen per platform by newLauncher: directLauncher
// where the OS understands shebangs and the executable bit, shellLauncher
// where every hook has to go through sh.
type launcher interface {
	launch(hook string, args []string, dir string) (*processOutput, error)
}

// directLauncher executes the hook file itself and falls back to sh when
// the OS rejects it with ENOEXEC (a script without a shebang line).
type directLauncher struct {
	shell string
}

func (l directLauncher) launch(hook string, args []string, dir string) (*processOutput, error) {
	out, err := runCommand(exec.Command(hook, args...), dir)
	if err != nil && isExecFormatError(err) {
		shArgs := append([]string{hook}, args...)
		return runCommand(shellCommand(l.shell, shArgs...), dir)
	}
	return out, err
}

// shellLauncher always runs the hook through sh -c. The hook path is
// single-quoted into the script and the arguments are forwarded with "$@";
// the hook path is passed again as $0.
type shellLauncher struct {
	shell string
}

func (l shellLauncher) launch(hook string, args []string, dir string) (*processOutput, error) {
	shArgs := make([]string, 0, len(args)+3)
	shArgs = append(shArgs, "-c", shellScript(hook), hook)
	shArgs = append(shArgs, args...)
	return runCommand(shellCommand(l.shell, shArgs...), dir)
}

// shellScript builds `'<hook>' "$@"` with any single quote in the path
// closed, escaped and reopened, since a single quote cannot occur inside
// single quotes.
func shellScript(hook string) string {
	return "'" + strings.ReplaceAll(hook, "'", `'\''`) + `' "$@"`
}

// shellCommand builds an sh invocation with the platform's leading flags.
func shellCommand(shell string, args ...string) *exec.Cmd {
	all := append(append([]string{}, shellFlags...), args...)
	return exec.Command(shell, all...)
}

// runCommand runs cmd in dir with stdout and stderr captured separately.
func runCommand(cmd *exec.Cmd, dir string) (*processOutput, error) {
	var stdout, stderr bytes.Buffer
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	hideWindow(cmd)

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, err
		}
	}

	return &processOutput{
		exitCode: cmd.ProcessState.ExitCode(),
		stdout:   stdout.Bytes(),
		stderr:   stderr.Bytes(),
	}, nil
}
