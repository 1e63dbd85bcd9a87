package git

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/gorewood/hookline/internal/mailmap"
)

// Signature is a commit identity.
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// Commit is a commit looked up in a Repository.
type Commit struct {
	c *object.Commit
}

// FindCommit resolves a commit id (full or abbreviated hex) or any
// revision go-git understands (HEAD, branch names, HEAD~1, ...).
// Returns a *RepositoryError wrapping ErrCommitNotFound for unknown ids.
func (r *Repository) FindCommit(rev string) (*Commit, error) {
	hash, err := r.resolve(rev)
	if err != nil {
		return nil, err
	}

	c, err := r.repo.CommitObject(hash)
	if err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			err = fmt.Errorf("%w: %s", ErrCommitNotFound, rev)
		}
		return nil, &RepositoryError{Op: "find commit", Path: rev, Err: err}
	}

	return &Commit{c: c}, nil
}

// resolve turns rev into an object hash.
func (r *Repository) resolve(rev string) (plumbing.Hash, error) {
	if plumbing.IsHash(rev) {
		return plumbing.NewHash(rev), nil
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) || errors.Is(err, plumbing.ErrObjectNotFound) {
			err = fmt.Errorf("%w: %s", ErrCommitNotFound, rev)
		}
		return plumbing.ZeroHash, &RepositoryError{Op: "find commit", Path: rev, Err: err}
	}
	return *hash, nil
}

// ID returns the full hex object id.
func (c *Commit) ID() string {
	return c.c.Hash.String()
}

// Message returns the raw commit message.
func (c *Commit) Message() string {
	return c.c.Message
}

// Author returns the recorded author.
func (c *Commit) Author() Signature {
	return fromObject(c.c.Author)
}

// Committer returns the recorded committer.
func (c *Commit) Committer() Signature {
	return fromObject(c.c.Committer)
}

// AuthorWithMailmap returns the author with the mailmap applied. It fails
// with ErrInvalidSignature when the mapped identity is not a valid git
// signature; callers usually fall back to Author.
func (c *Commit) AuthorWithMailmap(mm *mailmap.Mailmap) (Signature, error) {
	return withMailmap(c.Author(), mm)
}

// CommitterWithMailmap is AuthorWithMailmap for the committer.
func (c *Commit) CommitterWithMailmap(mm *mailmap.Mailmap) (Signature, error) {
	return withMailmap(c.Committer(), mm)
}

func withMailmap(sig Signature, mm *mailmap.Mailmap) (Signature, error) {
	name, email := mm.Resolve(sig.Name, sig.Email)
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return Signature{}, fmt.Errorf("%w: empty name", ErrInvalidSignature)
	}
	if strings.ContainsAny(name, "<>") || strings.ContainsAny(email, "<>") {
		return Signature{}, fmt.Errorf("%w: name and email must not contain angle brackets", ErrInvalidSignature)
	}

	return Signature{Name: name, Email: email, When: sig.When}, nil
}

func fromObject(sig object.Signature) Signature {
	return Signature{Name: sig.Name, Email: sig.Email, When: sig.When}
}
