package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/hookline/internal/gitops"
	"github.com/gorewood/hookline/internal/output"
)

// gitDateFormat is the default date format of git log.
const gitDateFormat = "Mon Jan 2 15:04:05 2006 -0700"

// showResult is the JSON output of show.
type showResult struct {
	gitops.CommitDetails
	ShortHash string `json:"short_hash"`
}

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [<commit>]",
		Short: "Show commit details",
		Long: `Show a commit's author, committer and message with the repository
mailmap applied. The committer is only shown when it differs from the
author.

Examples:
  hookline show             # HEAD
  hookline show 1a2b3c4     # abbreviated id
  hookline show main~2 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	rev := "HEAD"
	if len(args) == 1 {
		rev = args[0]
	}

	details, err := gitops.GetCommitDetails(e.repo, rev)
	if err != nil {
		return e.fail(err)
	}

	if e.printer.IsJSON() {
		return e.printer.WriteJSON(showResult{CommitDetails: details, ShortHash: details.ShortHash()})
	}

	outputShowHuman(e.printer, details)
	return nil
}

// outputShowHuman prints details in the layout of git show --format=fuller.
func outputShowHuman(printer *output.Printer, details gitops.CommitDetails) {
	printer.Commit(details.Hash)
	printer.KeyValue("Author", formatSignature(details.Author))
	printer.KeyValue("Date", formatTime(details.Author.Time))
	if details.Committer != nil {
		printer.KeyValue("Commit", formatSignature(*details.Committer))
		printer.KeyValue("CommitDate", formatTime(details.Committer.Time))
	}

	if details.Message == nil {
		return
	}
	printer.Println()
	printer.Indented(details.Message.Combine())
}

func formatSignature(sig gitops.CommitSignature) string {
	return fmt.Sprintf("%s <%s>", sig.Name, sig.Email)
}

func formatTime(sec int64) string {
	return time.Unix(sec, 0).Format(gitDateFormat)
}
