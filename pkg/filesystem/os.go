package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/stash/pkg/types"
)

// EnvDataDir overrides the base storage directory.
const EnvDataDir = "STASH_DATA_DIR"

// osFS implements types.FS using the OS filesystem, rooted at the
// application's private data directory.
type osFS struct {
	base string
}

// NewOS creates an OS-backed filesystem for the given application name.
// The base directory is $STASH_DATA_DIR if set, otherwise
// $XDG_DATA_HOME/<appName>.
func NewOS(appName string) types.FS {
	base := os.Getenv(EnvDataDir)
	if base == "" && appName != "" {
		base = filepath.Join(xdg.DataHome, appName)
	}
	return &osFS{base: base}
}

// NewOSAt creates an OS-backed filesystem rooted at an explicit
// directory, bypassing XDG resolution. Intended for tests and for
// callers that manage their own layout.
func NewOSAt(base string) types.FS {
	return &osFS{base: base}
}

func (o *osFS) BaseDir() (string, error) {
	if o.base == "" {
		return "", errors.New("no base storage directory configured")
	}
	return o.base, nil
}

func (o *osFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFileAtomic writes data to a temp file in the target directory,
// fsyncs it, and renames it over name. Rename within one filesystem is
// atomic, so readers see either the old content or the new, never a
// partial write.
func (o *osFS) WriteFileAtomic(name string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".stash-tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpName, name); err != nil {
		return err
	}
	success = true
	return nil
}

func (o *osFS) Remove(name string) error {
	return os.Remove(name)
}
