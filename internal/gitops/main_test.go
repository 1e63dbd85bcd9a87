package gitops

import (
	"fmt"
	"os"
	"testing"

	"github.com/gorewood/hookline/internal/testrepo"
)

func TestMain(m *testing.M) {
	cleanup, err := testrepo.Sandbox()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sandboxing git config: %v\n", err)
		os.Exit(1)
	}
	code := m.Run()
	cleanup()
	os.Exit(code)
}
