package store

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/stash/pkg/errors"
	"github.com/arthur-debert/stash/pkg/logging"
	"github.com/arthur-debert/stash/pkg/types"
)

// Store saves, loads, and deletes Convertible values as files. It holds
// no mutable state beyond the injected filesystem capability and is
// safe to share; concurrent operations on the same location race at the
// filesystem layer and are serialized only by the atomicity of the
// underlying write.
type Store struct {
	fs  types.FS
	log zerolog.Logger
}

// New creates a Store backed by the given filesystem capability.
func New(fs types.FS) *Store {
	return &Store{
		fs:  fs,
		log: logging.GetLogger("store"),
	}
}

// Save serializes obj and writes it to filename, resolved against the
// filesystem's base directory. The write replaces any previous content
// at that location in a single atomic step. It returns the absolute
// location of the written file, which can be passed back to Get or
// Delete.
//
// Uniqueness of filenames is the caller's responsibility; filenames are
// not validated.
func Save[T types.Convertible[T]](s *Store, obj T, filename string) (string, error) {
	data, ok := obj.ToBytes()
	if !ok {
		return "", errors.New(errors.ErrDataConversion, "object could not be converted to bytes")
	}

	location, err := s.resolve(filename)
	if err != nil {
		return "", err
	}

	if err := s.fs.WriteFileAtomic(location, data, 0644); err != nil {
		return "", errors.Wrap(err, errors.ErrSave, "failed to write object").
			WithDetail("path", location)
	}

	s.log.Debug().Str("path", location).Int("bytes", len(data)).Msg("object saved")
	return location, nil
}

// Get reads the file at objectAt and reconstructs a value of type T
// from its contents. objectAt is either a bare filename, resolved the
// same way as in Save, or a location returned from a prior Save.
//
// Existence is checked before any read is attempted; a missing file is
// reported as ErrFileNotExist without touching the file. A read that
// fails after the check (including unreadable content at the I/O layer)
// is reported as ErrGetData with the cause attached.
func Get[T types.Convertible[T]](s *Store, objectAt string) (T, error) {
	var zero T

	location, err := s.resolve(objectAt)
	if err != nil {
		return zero, err
	}

	if !s.fs.Exists(location) {
		return zero, errors.New(errors.ErrFileNotExist, "no file at location").
			WithDetail("path", location)
	}

	data, err := s.fs.ReadFile(location)
	if err != nil {
		return zero, errors.Wrap(err, errors.ErrGetData, "failed to read object").
			WithDetail("path", location)
	}

	obj, ok := zero.FromBytes(data)
	if !ok {
		return zero, errors.New(errors.ErrObjectConversion, "bytes do not represent a valid object").
			WithDetail("path", location)
	}

	s.log.Debug().Str("path", location).Int("bytes", len(data)).Msg("object loaded")
	return obj, nil
}

// Delete removes the file at objectAt, resolved the same way as in Get.
// No existence pre-check is made; any failure of the underlying remove,
// including "does not exist", is reported as ErrDeletion with the cause
// attached.
func (s *Store) Delete(objectAt string) error {
	location, err := s.resolve(objectAt)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(location); err != nil {
		return errors.Wrap(err, errors.ErrDeletion, "failed to remove object").
			WithDetail("path", location)
	}

	s.log.Debug().Str("path", location).Msg("object deleted")
	return nil
}

// resolve turns a bare filename into an absolute location under the
// filesystem's base directory. Absolute paths are locations from a
// prior Save and pass through unchanged.
func (s *Store) resolve(objectAt string) (string, error) {
	if filepath.IsAbs(objectAt) {
		return objectAt, nil
	}

	base, err := s.fs.BaseDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidDirectory, "cannot resolve base storage directory")
	}
	if base == "" {
		return "", errors.New(errors.ErrInvalidDirectory, "base storage directory is empty")
	}

	return filepath.Join(base, objectAt), nil
}
