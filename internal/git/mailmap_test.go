package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/hookline/internal/testrepo"
)

func TestMailmap_NoSources(t *testing.T) {
	tr := testrepo.Init(t)

	repo, err := Open(tr.Dir)
	require.NoError(t, err)

	mm, err := repo.Mailmap()
	require.NoError(t, err)
	assert.Equal(t, 0, mm.Len())
}

func TestMailmap_BareWithoutHead(t *testing.T) {
	tr := testrepo.InitBare(t)

	repo, err := Open(tr.Dir)
	require.NoError(t, err)

	mm, err := repo.Mailmap()
	require.NoError(t, err)
	assert.Equal(t, 0, mm.Len())
}

func TestMailmap_WorkTreeFile(t *testing.T) {
	tr := testrepo.Init(t)
	tr.WriteFile(".mailmap", "Jane Doe <jane@example.com> <jd@old.example.com>\n")

	repo, err := Open(tr.Dir)
	require.NoError(t, err)

	mm, err := repo.Mailmap()
	require.NoError(t, err)

	name, email := mm.Resolve("jd", "jd@old.example.com")
	assert.Equal(t, "Jane Doe", name)
	assert.Equal(t, "jane@example.com", email)
}

func TestMailmap_ConfigFileOverridesWorkTree(t *testing.T) {
	tr := testrepo.Init(t)
	tr.WriteFile(".mailmap", "Jane Doe <jane@example.com> <jd@old.example.com>\n")

	extra := filepath.Join(t.TempDir(), "mailmap")
	require.NoError(t, os.WriteFile(extra, []byte("Jane D. <jane@example.org> <jd@old.example.com>\n"), 0o644))
	tr.SetConfig("mailmap.file", extra)

	repo, err := Open(tr.Dir)
	require.NoError(t, err)

	mm, err := repo.Mailmap()
	require.NoError(t, err)

	name, email := mm.Resolve("jd", "jd@old.example.com")
	assert.Equal(t, "Jane D.", name)
	assert.Equal(t, "jane@example.org", email)
}

func TestMailmap_ConfigFileRelativeToWorkTree(t *testing.T) {
	tr := testrepo.Init(t)
	tr.WriteFile("meta/authors", "<bob@example.com> <bob@laptop>\n")
	tr.SetConfig("mailmap.file", "meta/authors")

	repo, err := Open(tr.Dir)
	require.NoError(t, err)

	mm, err := repo.Mailmap()
	require.NoError(t, err)

	_, email := mm.Resolve("bob", "bob@laptop")
	assert.Equal(t, "bob@example.com", email)
}

func TestMailmap_Blob(t *testing.T) {
	tr := testrepo.Init(t)
	tr.WriteFile(".mailmap", "Committed Name <c@example.com>\n")
	tr.Add(".mailmap")
	sig := testrepo.Signature(testrepo.UserName, testrepo.UserEmail, time.Now())
	tr.Commit("add mailmap", sig, sig)

	// Only the committed copy remains.
	require.NoError(t, os.Remove(filepath.Join(tr.Dir, ".mailmap")))
	tr.SetConfig("mailmap.blob", "HEAD:.mailmap")

	repo, err := Open(tr.Dir)
	require.NoError(t, err)

	mm, err := repo.Mailmap()
	require.NoError(t, err)

	name, _ := mm.Resolve("c", "c@example.com")
	assert.Equal(t, "Committed Name", name)
}

func TestMailmap_UnresolvableBlobIsIgnored(t *testing.T) {
	tr := testrepo.Init(t)
	tr.SetConfig("mailmap.blob", "no-such-ref:.mailmap")

	repo, err := Open(tr.Dir)
	require.NoError(t, err)

	mm, err := repo.Mailmap()
	require.NoError(t, err)
	assert.Equal(t, 0, mm.Len())
}
