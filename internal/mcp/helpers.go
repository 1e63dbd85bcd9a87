package mcp

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorewood/hookline/internal/gitops"
	"github.com/gorewood/hookline/internal/hooks"
)

// checkHook rejects names other than the supported commit hooks.
func checkHook(name string) error {
	if !hooks.Known(name) {
		return fmt.Errorf("unknown hook %q (want one of %s)", name, strings.Join(hooks.Names, ", "))
	}
	return nil
}

// toSignature converts a commit signature for output.
func toSignature(sig gitops.CommitSignature) Signature {
	return Signature{
		Name:  sig.Name,
		Email: sig.Email,
		Time:  time.Unix(sig.Time, 0).UTC().Format(time.RFC3339),
	}
}
