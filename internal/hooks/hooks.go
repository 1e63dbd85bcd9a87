package hooks

import (
	"errors"
	"io/fs"
	"os"
	"slices"
)

// Hook names.
const (
	HookPreCommit        = "pre-commit"
	HookPostCommit       = "post-commit"
	HookCommitMsg        = "commit-msg"
	HookPrepareCommitMsg = "prepare-commit-msg"
)

// Names lists the hooks this package runs, in commit order.
var Names = []string{HookPreCommit, HookPrepareCommitMsg, HookCommitMsg, HookPostCommit}

// Known reports whether name is one of Names.
func Known(name string) bool {
	return slices.Contains(Names, name)
}

// messageFilePattern names the temporary file holding the commit message
// while commit-msg or prepare-commit-msg runs.
const messageFilePattern = "COMMIT_EDITMSG-*"

// SourceKind says where a commit message came from, for prepare-commit-msg.
type SourceKind int

const (
	// SourceMessage: the message was given with -m or -F.
	SourceMessage SourceKind = iota
	// SourceTemplate: the message came from a template.
	SourceTemplate
	// SourceMerge: the commit is a merge.
	SourceMerge
	// SourceSquash: the commit is a squash.
	SourceSquash
	// SourceCommit: the message was taken from an existing commit.
	SourceCommit
)

// Source is the prepare-commit-msg source argument. CommitID is only used
// with SourceCommit.
type Source struct {
	Kind     SourceKind
	CommitID string
}

// SourceFromCommit returns the source for a message reused from commit id.
func SourceFromCommit(id string) Source {
	return Source{Kind: SourceCommit, CommitID: id}
}

// Args returns the hook arguments that follow the message file name.
func (s Source) Args() []string {
	switch s.Kind {
	case SourceTemplate:
		return []string{"template"}
	case SourceMerge:
		return []string{"merge"}
	case SourceSquash:
		return []string{"squash"}
	case SourceCommit:
		return []string{"commit", s.CommitID}
	default:
		return []string{"message"}
	}
}

// ParseSource parses the token git passes to prepare-commit-msg.
func ParseSource(token, commitID string) (Source, error) {
	switch token {
	case "", "message":
		return Source{Kind: SourceMessage}, nil
	case "template":
		return Source{Kind: SourceTemplate}, nil
	case "merge":
		return Source{Kind: SourceMerge}, nil
	case "squash":
		return Source{Kind: SourceSquash}, nil
	case "commit":
		if commitID == "" {
			return Source{}, errors.New("commit source requires a commit id")
		}
		return SourceFromCommit(commitID), nil
	default:
		return Source{}, errors.New("unknown prepare-commit-msg source " + token)
	}
}

// PreCommit runs the pre-commit hook.
func PreCommit(repo Repository, searchPaths []string) (Outcome, error) {
	return runNoArgs(repo, searchPaths, HookPreCommit)
}

// PostCommit runs the post-commit hook.
func PostCommit(repo Repository, searchPaths []string) (Outcome, error) {
	return runNoArgs(repo, searchPaths, HookPostCommit)
}

// CommitMsg runs the commit-msg hook with msg in a temporary file. The
// file is read back into msg after the hook exits, whatever its exit
// status, so a rejecting hook can still rewrite the message.
func CommitMsg(repo Repository, searchPaths []string, msg *string) (Outcome, error) {
	paths, err := Resolve(repo, HookCommitMsg, searchPaths)
	if err != nil {
		return Outcome{}, err
	}
	if !paths.Found() {
		return Outcome{Status: NoHookFound}, nil
	}

	return withMessageFile(paths.GitDir, msg, func(file string) (Outcome, error) {
		return paths.Run(file)
	})
}

// PrepareCommitMsg runs the prepare-commit-msg hook. The message is
// exchanged through a temporary file as with CommitMsg.
func PrepareCommitMsg(repo Repository, searchPaths []string, source Source, msg *string) (Outcome, error) {
	paths, err := Resolve(repo, HookPrepareCommitMsg, searchPaths)
	if err != nil {
		return Outcome{}, err
	}
	if !paths.Found() {
		return Outcome{Status: NoHookFound}, nil
	}

	return withMessageFile(paths.GitDir, msg, func(file string) (Outcome, error) {
		return paths.Run(append([]string{file}, source.Args()...)...)
	})
}

func runNoArgs(repo Repository, searchPaths []string, hook string) (Outcome, error) {
	paths, err := Resolve(repo, hook, searchPaths)
	if err != nil {
		return Outcome{}, err
	}
	if !paths.Found() {
		return Outcome{Status: NoHookFound}, nil
	}
	return paths.Run()
}

// withMessageFile writes msg to a fresh file in dir, calls fn with its
// path, then reads the file back into msg. The file is removed on every
// path out of this function.
func withMessageFile(dir string, msg *string, fn func(path string) (Outcome, error)) (outcome Outcome, err error) {
	file, err := os.CreateTemp(dir, messageFilePattern)
	if err != nil {
		return Outcome{}, &IOError{Op: "create message file", Path: dir, Err: err}
	}
	path := file.Name()

	defer func() {
		if removeErr := os.Remove(path); removeErr != nil && !errors.Is(removeErr, fs.ErrNotExist) && err == nil {
			err = &IOError{Op: "remove message file", Path: path, Err: removeErr}
		}
	}()

	_, writeErr := file.WriteString(*msg)
	closeErr := file.Close()
	if writeErr = errors.Join(writeErr, closeErr); writeErr != nil {
		return Outcome{}, &IOError{Op: "write message file", Path: path, Err: writeErr}
	}

	outcome, err = fn(path)
	if err != nil {
		return Outcome{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Outcome{}, &IOError{Op: "read message file", Path: path, Err: err}
	}
	*msg = string(data)

	return outcome, nil
}
