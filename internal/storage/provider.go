// Package storage defines the output tree file-system abstraction.
package storage

import (
	"io"
	"io/fs"
)

// Provider is the interface for output tree file operations. Every path is
// relative to the output root and uses forward slashes.
type Provider interface {
	// Files returns every regular file under dir in deterministic order.
	// A missing dir yields an empty list.
	Files(dir string) ([]string, error)
	// Open returns a reader for the file at path.
	Open(path string) (io.ReadCloser, error)
	// Write atomically writes content to path.
	Write(path string, content []byte) error
	// Copy atomically streams r into path with the given mode.
	Copy(path string, r io.Reader, mode fs.FileMode) error
	// MkdirAll creates dir and any missing parents.
	MkdirAll(dir string) error
	// RemoveAll removes dir and everything below it.
	RemoveAll(dir string) error
	// Exists reports whether path is present.
	Exists(path string) (bool, error)
}
