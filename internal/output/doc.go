// Package output provides structured output handling for the hookline CLI.
//
// Every command works for both people and scripts: with --json results are
// written as JSON objects, otherwise as lipgloss-styled text that falls back
// to plain text when output is piped.
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "pre-commit hook passed"})
//	printer.Error(err)
//
// # JSON Mode
//
//	// Success: {"hook": "...", "status": "...", ...}
//	// Error:   {"error": "message", "code": N}
//
// # Exit Codes
//
//	output.ExitSuccess      // 0: Success
//	output.ExitUserError    // 1: bad args, not a repository, unknown commit
//	output.ExitSystemError  // 2: I/O error, hook could not be started
//	output.ExitHookRejected // 3: hook ran and exited non-zero
//
// Errors built with NewUserError, NewSystemError and NewHookRejectedError
// carry their code to both the JSON error object and the process exit
// status.
package output
