package hooks

import (
	"log/slog"
	"strings"
)

// Status classifies the outcome of a hook invocation.
type Status int

const (
	// NoHookFound means there was no executable hook to run.
	NoHookFound Status = iota
	// Succeeded means the hook ran and exited 0.
	Succeeded
	// RunNotSuccessful means the hook ran and exited non-zero or was killed.
	RunNotSuccessful
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case NoHookFound:
		return "no hook found"
	case Succeeded:
		return "ok"
	case RunNotSuccessful:
		return "run not successful"
	default:
		return "unknown"
	}
}

// Outcome is the result of a hook invocation.
type Outcome struct {
	Status Status
	// Hook is the hook file that ran. Empty for NoHookFound.
	Hook string
	// Code is the exit code, nil when the process was killed by a signal.
	// Only set for RunNotSuccessful.
	Code *int
	// Stdout and Stderr are the captured output, decoded leniently.
	// Only set for RunNotSuccessful.
	Stdout string
	Stderr string
}

// IsOk reports whether the hook was absent or succeeded.
func (o Outcome) IsOk() bool {
	return o.Status != RunNotSuccessful
}

// Output returns stdout followed by stderr.
func (o Outcome) Output() string {
	return o.Stdout + o.Stderr
}

// defaultLauncher is the launcher for the host platform.
var defaultLauncher = newLauncher()

// Run executes the hook with args, following the conventions documented
// in githooks(5): the hook runs in WorkDir and receives args positionally.
// An error is returned only when the process could not be started.
func (p HookPaths) Run(args ...string) (Outcome, error) {
	return p.run(defaultLauncher, args)
}

func (p HookPaths) run(l launcher, args []string) (Outcome, error) {
	slog.Debug("run hook", "hook", p.Hook, "dir", p.WorkDir)

	out, err := l.launch(p.Hook, args, p.WorkDir)
	if err != nil {
		return Outcome{}, &IOError{Op: "run hook", Path: p.Hook, Err: err}
	}

	if out.success() {
		return Outcome{Status: Succeeded, Hook: p.Hook}, nil
	}

	outcome := Outcome{
		Status: RunNotSuccessful,
		Hook:   p.Hook,
		Stdout: lossyString(out.stdout),
		Stderr: lossyString(out.stderr),
	}
	if out.exitCode >= 0 {
		code := out.exitCode
		outcome.Code = &code
	}
	return outcome, nil
}

// lossyString decodes b as UTF-8, replacing invalid sequences with U+FFFD.
func lossyString(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}
