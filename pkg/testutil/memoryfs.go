// Package testutil provides an in-memory implementation of the
// filesystem capability for testing the store without touching the OS.
package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/stash/pkg/types"
)

var _ types.FS = (*MemoryFS)(nil)

// MemoryFS implements types.FS with in-memory storage. It supports a
// configurable base directory, per-path error injection, and operation
// counters for asserting that I/O did or did not happen.
type MemoryFS struct {
	mu    sync.RWMutex
	base  string
	files map[string][]byte

	// Error injection
	baseDirErr error
	errorPaths map[string]error

	// Statistics
	readCount   int
	writeCount  int
	removeCount int
}

// NewMemoryFS creates an in-memory filesystem with base directory
// "/data".
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		base:       "/data",
		files:      make(map[string][]byte),
		errorPaths: make(map[string]error),
	}
}

// WithBaseDir overrides the base directory. An empty value makes
// BaseDir report a misconfigured store.
func (m *MemoryFS) WithBaseDir(dir string) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.base = dir
	return m
}

// WithBaseDirError makes BaseDir fail with err.
func (m *MemoryFS) WithBaseDirError(err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.baseDirErr = err
	return m
}

// WithError configures read, write, and remove operations on path to
// return err. The existence check is unaffected, so a file can exist
// and still fail to read.
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[filepath.Clean(path)] = err
	return m
}

// Seed places a file directly into the filesystem. Relative names are
// resolved against the base directory.
func (m *MemoryFS) Seed(name string, data []byte) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()
	content := make([]byte, len(data))
	copy(content, data)
	m.files[m.normalize(name)] = content
	return m
}

func (m *MemoryFS) normalize(name string) string {
	if !filepath.IsAbs(name) {
		name = filepath.Join(m.base, name)
	}
	return filepath.Clean(name)
}

func (m *MemoryFS) BaseDir() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.baseDirErr != nil {
		return "", m.baseDirErr
	}
	return m.base, nil
}

func (m *MemoryFS) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.files[filepath.Clean(path)]
	return ok
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.readCount++

	path := filepath.Clean(name)
	if err, ok := m.errorPaths[path]; ok {
		return nil, err
	}

	content, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	// Return a copy to prevent mutation
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (m *MemoryFS) WriteFileAtomic(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writeCount++

	path := filepath.Clean(name)
	if err, ok := m.errorPaths[path]; ok {
		return err
	}

	content := make([]byte, len(data))
	copy(content, data)
	m.files[path] = content
	return nil
}

func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeCount++

	path := filepath.Clean(name)
	if err, ok := m.errorPaths[path]; ok {
		return err
	}

	if _, ok := m.files[path]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}

	delete(m.files, path)
	return nil
}

// Stats returns the number of read, write, and remove operations
// performed so far.
func (m *MemoryFS) Stats() (reads, writes, removes int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.readCount, m.writeCount, m.removeCount
}
