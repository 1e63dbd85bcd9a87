package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/hookline/internal/gitops"
	"github.com/gorewood/hookline/internal/hooks"
	"github.com/gorewood/hookline/internal/output"
)

// hookRunResult is the JSON output of hooks run.
type hookRunResult struct {
	Hook     string `json:"hook"`
	Rejected bool   `json:"rejected"`
	Output   string `json:"output,omitempty"`
}

// hookLocation is the JSON output of hooks which.
type hookLocation struct {
	Hook    string `json:"hook"`
	Path    string `json:"path"`
	WorkDir string `json:"work_dir"`
	Found   bool   `json:"found"`
}

// newHooksCmd creates the hooks parent command with subcommands.
func newHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Resolve and run git commit hooks",
		Long: `Resolve and run git commit hooks with git's lookup rules.

Subcommands:
  run    Run a hook
  which  Show where hooks are looked up

Examples:
  hookline hooks run pre-commit
  hookline hooks run commit-msg .git/COMMIT_EDITMSG
  hookline hooks run prepare-commit-msg .git/COMMIT_EDITMSG commit HEAD
  hookline hooks which --json`,
	}

	cmd.AddCommand(newHooksRunCmd())
	cmd.AddCommand(newHooksWhichCmd())
	return cmd
}

// newHooksRunCmd creates the hooks run subcommand.
func newHooksRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <hook> [<message-file> [<source> [<commit>]]]",
		Short: "Run a commit hook",
		Long: `Run a commit hook from the work-tree root.

commit-msg and prepare-commit-msg take the commit message file. The hook
sees a copy of it; whatever the hook leaves there is written back to the
file, even when the hook rejects.

prepare-commit-msg optionally takes the message source (message, template,
merge, squash, commit) and, for commit, the commit id.

Exit status is 3 when the hook rejects.`,
		Args:      cobra.RangeArgs(1, 4),
		ValidArgs: hooks.Names,
		RunE:      runHooksRun,
	}
}

// runHooksRun executes the hooks run command.
func runHooksRun(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	hook := args[0]
	if err := checkHookArgs(hook, args[1:]); err != nil {
		e.printer.Error(err)
		return err
	}

	res, err := runHook(e.hooks(), e.repo, hook, args[1:])
	if err != nil {
		return e.fail(err)
	}

	return reportHook(e.printer, hook, res)
}

// checkHookArgs validates the arguments following the hook name.
func checkHookArgs(hook string, rest []string) *output.ExitError {
	switch hook {
	case hooks.HookPreCommit, hooks.HookPostCommit:
		if len(rest) != 0 {
			return output.NewUserError(hook + " takes no arguments")
		}
	case hooks.HookCommitMsg:
		if len(rest) != 1 {
			return output.NewUserError(hook + " takes exactly one argument: the message file")
		}
	case hooks.HookPrepareCommitMsg:
		if len(rest) == 0 {
			return output.NewUserError(hook + " requires the message file")
		}
	default:
		return output.NewUserError(fmt.Sprintf("unknown hook %q (want one of %s)", hook, strings.Join(hooks.Names, ", ")))
	}
	return nil
}

// runHook dispatches to the gitops call for hook. Message hooks read the
// message file first and write the hook's version back afterwards.
func runHook(h gitops.Hooks, repo, hook string, rest []string) (gitops.HookResult, error) {
	switch hook {
	case hooks.HookPreCommit:
		return h.PreCommit(repo)
	case hooks.HookPostCommit:
		return h.PostCommit(repo)
	}

	file := rest[0]
	data, err := os.ReadFile(file)
	if err != nil {
		return gitops.HookResult{}, output.NewUserErrorWithCause("reading message file", err)
	}
	msg := string(data)

	var res gitops.HookResult
	if hook == hooks.HookCommitMsg {
		res, err = h.CommitMsg(repo, &msg)
	} else {
		var source hooks.Source
		source, err = parseSourceArgs(rest[1:])
		if err != nil {
			return gitops.HookResult{}, err
		}
		res, err = h.PrepareCommitMsg(repo, source, &msg)
	}
	if err != nil {
		return gitops.HookResult{}, err
	}

	if msg != string(data) {
		if err := os.WriteFile(file, []byte(msg), 0o644); err != nil {
			return gitops.HookResult{}, output.NewSystemErrorWithCause("writing message file", err)
		}
	}
	return res, nil
}

// parseSourceArgs parses the optional [<source> [<commit>]] arguments.
func parseSourceArgs(args []string) (hooks.Source, error) {
	var token, commitID string
	if len(args) > 0 {
		token = args[0]
	}
	if len(args) > 1 {
		commitID = args[1]
	}
	source, err := hooks.ParseSource(token, commitID)
	if err != nil {
		return hooks.Source{}, output.NewUserErrorWithCause("invalid message source", err)
	}
	return source, nil
}

// reportHook prints a hook result. A rejection is returned as an exit
// code 3 error after the hook's output has been shown.
func reportHook(printer *output.Printer, hook string, res gitops.HookResult) error {
	if printer.IsJSON() {
		if err := printer.WriteJSON(hookRunResult{Hook: hook, Rejected: res.Rejected, Output: res.Output}); err != nil {
			return output.NewSystemErrorWithCause("writing output", err)
		}
	} else if !res.Ok() {
		printer.Box(hook+" hook rejected", res.Output)
	}

	if !res.Ok() {
		return output.NewHookRejectedError(hook)
	}
	return nil
}

// newHooksWhichCmd creates the hooks which subcommand.
func newHooksWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "which [<hook>]",
		Short: "Show where hooks are looked up",
		Long: `Show the file each hook resolves to, the directory it runs in, and
whether an executable hook exists there. Without an argument all
supported hooks are listed.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: hooks.Names,
		RunE:      runHooksWhich,
	}
}

// runHooksWhich executes the hooks which command.
func runHooksWhich(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	names := hooks.Names
	if len(args) == 1 {
		if !hooks.Known(args[0]) {
			return e.fail(output.NewUserError(fmt.Sprintf("unknown hook %q", args[0])))
		}
		names = args
	}

	h := e.hooks()
	locations := make([]hookLocation, 0, len(names))
	for _, name := range names {
		paths, err := h.Resolve(e.repo, name)
		if err != nil {
			return e.fail(err)
		}
		locations = append(locations, hookLocation{
			Hook:    name,
			Path:    paths.Hook,
			WorkDir: paths.WorkDir,
			Found:   paths.Found(),
		})
	}

	if e.printer.IsJSON() {
		if len(args) == 1 {
			return e.printer.WriteJSON(locations[0])
		}
		return e.printer.WriteJSON(locations)
	}

	for i, loc := range locations {
		if i > 0 {
			e.printer.Println()
		}
		e.printer.Check(loc.Found, loc.Hook)
		e.printer.KeyValue("  path", loc.Path)
		e.printer.KeyValue("  runs in", loc.WorkDir)
	}
	return nil
}
