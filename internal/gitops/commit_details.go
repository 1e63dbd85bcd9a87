package gitops

import (
	"log/slog"
	"strings"

	"github.com/gorewood/hookline/internal/git"
	"github.com/gorewood/hookline/internal/mailmap"
)

// CommitSignature is an identity with a commit time in Unix seconds.
type CommitSignature struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Time  int64  `json:"time"`
}

func signatureOf(sig git.Signature) CommitSignature {
	return CommitSignature{Name: sig.Name, Email: sig.Email, Time: sig.When.Unix()}
}

// CommitDetails is the display summary of a commit.
type CommitDetails struct {
	Author CommitSignature `json:"author"`
	// Committer is nil when it equals Author.
	Committer *CommitSignature `json:"committer,omitempty"`
	Message   *CommitMessage   `json:"message,omitempty"`
	// Hash is the full hex object id.
	Hash string `json:"hash"`
}

// ShortHash returns the first 7 characters of Hash.
func (d CommitDetails) ShortHash() string {
	return d.Hash[:7]
}

// GetCommitDetails looks up commitID (an object id or revision such as
// HEAD) in the repository at repoPath. Author and committer are resolved
// through the repository's mailmap.
func GetCommitDetails(repoPath, commitID string) (CommitDetails, error) {
	repo, err := git.Open(repoPath)
	if err != nil {
		return CommitDetails{}, err
	}

	mm, err := repo.Mailmap()
	if err != nil {
		return CommitDetails{}, err
	}

	commit, err := repo.FindCommit(commitID)
	if err != nil {
		return CommitDetails{}, err
	}

	author := signatureOf(authorOf(commit, mm))
	committer := signatureOf(committerOf(commit, mm))

	message := ParseCommitMessage(commitMessage(commit))

	details := CommitDetails{
		Author:  author,
		Message: &message,
		Hash:    commit.ID(),
	}
	if committer != author {
		details.Committer = &committer
	}

	return details, nil
}

// commitMessage returns the message as valid UTF-8 without surrounding
// whitespace.
func commitMessage(commit *git.Commit) string {
	return strings.TrimSpace(strings.ToValidUTF8(commit.Message(), "\uFFFD"))
}

func authorOf(commit *git.Commit, mm *mailmap.Mailmap) git.Signature {
	sig, err := commit.AuthorWithMailmap(mm)
	if err != nil {
		slog.Error("couldn't get author with mailmap",
			"commit", commit.ID(), "message", commit.Message(), "error", err)
		return commit.Author()
	}
	return sig
}

func committerOf(commit *git.Commit, mm *mailmap.Mailmap) git.Signature {
	sig, err := commit.CommitterWithMailmap(mm)
	if err != nil {
		slog.Error("couldn't get committer with mailmap",
			"commit", commit.ID(), "message", commit.Message(), "error", err)
		return commit.Committer()
	}
	return sig
}
