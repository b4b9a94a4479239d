// Package filesystem provides production implementations of the
// types.FS capability: one backed by the OS filesystem with
// XDG-compliant base directory resolution, and one adapting any
// afero.Fs.
package filesystem
