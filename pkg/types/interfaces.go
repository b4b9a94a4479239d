package types

import "io/fs"

// FS is the filesystem capability injected into the store. Production
// code backs it with the OS filesystem; tests back it with an in-memory
// fake. The store performs no filesystem access outside this interface.
type FS interface {
	// BaseDir returns the root directory under which bare filenames are
	// resolved. An error or an empty path signals misconfiguration.
	BaseDir() (string, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// ReadFile reads the entire file at name.
	ReadFile(name string) ([]byte, error)

	// WriteFileAtomic replaces the file at name with data in a single
	// atomic step, creating it (and any parent directories) if needed.
	WriteFileAtomic(name string, data []byte, perm fs.FileMode) error

	// Remove deletes the file at name.
	Remove(name string) error
}
