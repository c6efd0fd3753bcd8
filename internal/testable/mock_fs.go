package testable

import "io"

// MockFileSystem is a test double for FileSystem. A non-nil function field
// replaces the corresponding method; nil fields fall through to OsFileSystem.
type MockFileSystem struct {
	OpenFn   func(name string) (io.ReadCloser, error)
	CreateFn func(name string) (io.WriteCloser, error)
	AbsFn    func(path string) (string, error)
}

var real OsFileSystem

// Open calls OpenFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Open(name string) (io.ReadCloser, error) {
	if m.OpenFn != nil {
		return m.OpenFn(name)
	}
	return real.Open(name)
}

// Create calls CreateFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Create(name string) (io.WriteCloser, error) {
	if m.CreateFn != nil {
		return m.CreateFn(name)
	}
	return real.Create(name)
}

// Abs calls AbsFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Abs(path string) (string, error) {
	if m.AbsFn != nil {
		return m.AbsFn(path)
	}
	return real.Abs(path)
}
