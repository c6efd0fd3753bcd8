// Package testable abstracts the file operations the validation run performs
// so tests can inject failures without touching the real file system.
package testable

import (
	"io"
	"os"
	"path/filepath"
)

// FileSystem is the set of file operations used to read an event file and
// write its report.
type FileSystem interface {
	// Open opens the named file for reading.
	Open(name string) (io.ReadCloser, error)

	// Create creates or truncates the named file for writing.
	Create(name string) (io.WriteCloser, error)

	// Abs returns an absolute representation of path.
	Abs(path string) (string, error)
}

// OsFileSystem delegates to the os and filepath packages.
type OsFileSystem struct{}

// Open wraps os.Open.
func (OsFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name) //nolint:gosec // caller controls path
}

// Create wraps os.Create.
func (OsFileSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name) //nolint:gosec // caller controls path
}

// Abs wraps filepath.Abs.
func (OsFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// DefaultFS is the production FileSystem.
var DefaultFS FileSystem = OsFileSystem{}
