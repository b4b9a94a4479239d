package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arthur-debert/stash/pkg/types"
)

// aferoFS implements types.FS on top of any afero.Fs, which lets the
// store run against afero's in-memory, read-only, or layered
// filesystems without touching the OS.
type aferoFS struct {
	fs   afero.Fs
	base string
}

// NewAfero wraps an afero filesystem rooted at base.
func NewAfero(fs afero.Fs, base string) types.FS {
	return &aferoFS{fs: fs, base: base}
}

func (a *aferoFS) BaseDir() (string, error) {
	if a.base == "" {
		return "", errors.New("no base storage directory configured")
	}
	return a.base, nil
}

func (a *aferoFS) Exists(path string) bool {
	ok, err := afero.Exists(a.fs, path)
	return err == nil && ok
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFileAtomic(name string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(name)
	if err := a.fs.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := afero.TempFile(a.fs, dir, ".stash-tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = a.fs.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := a.fs.Chmod(tmpName, perm); err != nil {
		return err
	}

	if err := a.fs.Rename(tmpName, name); err != nil {
		// Some afero backends (MemMapFs among them) refuse to rename
		// over an existing file; fall back to remove-then-rename.
		if removeErr := a.fs.Remove(name); removeErr != nil {
			return err
		}
		if err := a.fs.Rename(tmpName, name); err != nil {
			return err
		}
	}
	success = true
	return nil
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(name)
}
