package git

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/gorewood/hookline/internal/mailmap"
)

const (
	mailmapFileName = ".mailmap"

	// defaultBareMailmapBlob is read when mailmap.blob is unset in a bare
	// repository, which has no work-tree .mailmap.
	defaultBareMailmapBlob = "HEAD:" + mailmapFileName
)

// Mailmap loads the repository's mailmap from, in order, mailmap.blob,
// the work-tree .mailmap and mailmap.file. Later sources override earlier
// ones. Missing sources are not an error; the result may be empty.
func (r *Repository) Mailmap() (*mailmap.Mailmap, error) {
	mm := mailmap.New()

	blob, ok := r.ConfigString("mailmap.blob")
	if !ok && r.IsBare() {
		blob = defaultBareMailmapBlob
	}
	if blob != "" {
		if data, found := r.readBlob(blob); found {
			mm.AddBuffer(data)
		}
	}

	if workDir, ok := r.WorkDir(); ok {
		if err := addMailmapFile(mm, filepath.Join(workDir, mailmapFileName)); err != nil {
			return nil, &RepositoryError{Op: "mailmap", Path: workDir, Err: err}
		}
	}

	if file, ok := r.ConfigString("mailmap.file"); ok && file != "" {
		path, err := homedir.Expand(file)
		if err != nil {
			return nil, &RepositoryError{Op: "mailmap", Path: file, Err: err}
		}
		if workDir, hasWorkDir := r.WorkDir(); hasWorkDir && !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		if err := addMailmapFile(mm, path); err != nil {
			return nil, &RepositoryError{Op: "mailmap", Path: path, Err: err}
		}
	}

	return mm, nil
}

// readBlob reads "<rev>:<path>" from the object database. Unresolvable
// revisions and missing paths report found=false.
func (r *Repository) readBlob(spec string) ([]byte, bool) {
	rev, path, ok := strings.Cut(spec, ":")
	if !ok || path == "" {
		return nil, false
	}
	if rev == "" {
		rev = "HEAD"
	}

	commit, err := r.FindCommit(rev)
	if err != nil {
		return nil, false
	}

	file, err := commit.c.File(path)
	if err != nil {
		return nil, false
	}

	reader, err := file.Reader()
	if err != nil {
		return nil, false
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, false
	}
	return data, true
}

// addMailmapFile adds the mappings from path. A missing file is ignored.
func addMailmapFile(mm *mailmap.Mailmap, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	mm.AddBuffer(data)
	return nil
}
