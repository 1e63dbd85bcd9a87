package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/hookline/internal/config"
	"github.com/gorewood/hookline/internal/git"
	"github.com/gorewood/hookline/internal/gitops"
	"github.com/gorewood/hookline/internal/hooks"
	"github.com/gorewood/hookline/internal/output"
)

// flagValue looks a flag up on cmd, falling back to the root's persistent flags
// for commands that have not parsed them.
func flagValue(cmd *cobra.Command, name string) string {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		f = cmd.Root().PersistentFlags().Lookup(name)
	}
	if f == nil {
		return ""
	}
	return f.Value.String()
}

func flagBool(cmd *cobra.Command, name string) bool {
	return flagValue(cmd, name) == "true"
}

// setupLogging installs a text slog handler on w. Debug output is enabled by
// --verbose or HOOKLINE_DEBUG.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose || os.Getenv("HOOKLINE_DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// env is what every command needs: a printer, the repository path and the
// user's config.
type env struct {
	printer *output.Printer
	repo    string
	cfg     *config.Config
}

// newEnv loads config.yaml and builds the printer. Config errors are
// reported through a plain printer and returned as user errors.
func newEnv(cmd *cobra.Command) (*env, error) {
	jsonMode := flagBool(cmd, "json")
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		printer := output.NewPrinter(out, jsonMode, false).WithStderr(cmd.ErrOrStderr())
		exitErr := output.NewUserErrorWithCause("invalid config", err)
		printer.Error(exitErr)
		return nil, exitErr
	}

	isTTY := output.ResolveColorMode(flagValue(cmd, "color"), cfg.Color, output.IsTTY(out))
	printer := output.NewPrinter(out, jsonMode, isTTY).WithStderr(cmd.ErrOrStderr())

	repo := flagValue(cmd, "repo")
	if repo == "" {
		repo = "."
	}

	return &env{printer: printer, repo: repo, cfg: cfg}, nil
}

func (e *env) hooks() gitops.Hooks {
	return gitops.Hooks{SearchPaths: e.cfg.Hooks.SearchPaths}
}

// fail classifies err, prints it and returns the coded error.
func (e *env) fail(err error) error {
	exitErr := classify(err)
	e.printer.Error(exitErr)
	return exitErr
}

// classify maps library errors to CLI exit codes.
func classify(err error) *output.ExitError {
	var (
		exitErr *output.ExitError
		pathErr *hooks.PathExpansionError
		ioErr   *hooks.IOError
	)
	switch {
	case errors.As(err, &exitErr):
		return exitErr
	case errors.Is(err, git.ErrNotARepository):
		return output.NewUserErrorWithCause("not in a git repository", err)
	case errors.Is(err, git.ErrCommitNotFound):
		return output.NewUserErrorWithCause("commit not found", err)
	case errors.As(err, &pathErr):
		return output.NewUserErrorWithCause("invalid "+hooks.ConfigHooksPath, err)
	case errors.As(err, &ioErr):
		return output.NewSystemErrorWithCause(ioErr.Op+" failed", err)
	default:
		return output.NewSystemErrorWithCause("git operation failed", err)
	}
}
