package projectfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/run/internal/core/ports"
)

// Sentinel causes carried by FileError.
var (
	ErrNotFound    = errors.New("is not found")
	ErrCannotRead  = errors.New("can't be read")
	ErrCannotWrite = errors.New("can't be written")
	ErrExists      = errors.New("already exists")
)

// FileError reports a failed file operation on a project file.
type FileError struct {
	File  string
	Err   error
	Cause error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %v", e.File, e.Err)
}

// Unwrap exposes both the sentinel and the underlying OS error.
func (e *FileError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// ProjectFiles reads and writes files relative to a project directory.
type ProjectFiles struct {
	dir string
}

// NewProjectFiles creates a FileStore rooted at dir. An empty dir means the
// current working directory.
func NewProjectFiles(dir string) ports.FileStore {
	return &ProjectFiles{dir: dir}
}

func (p *ProjectFiles) path(name string) string {
	if p.dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.dir, name)
}

// Read implements the ports.FileStore interface.
func (p *ProjectFiles) Read(name string) (string, error) {
	data, err := os.ReadFile(p.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &FileError{File: name, Err: ErrNotFound, Cause: err}
		}
		return "", &FileError{File: name, Err: ErrCannotRead, Cause: err}
	}
	return string(data), nil
}

// Write implements the ports.FileStore interface.
func (p *ProjectFiles) Write(name, content string) error {
	if err := os.WriteFile(p.path(name), []byte(content), 0644); err != nil {
		return &FileError{File: name, Err: ErrCannotWrite, Cause: err}
	}
	return nil
}

// Create implements the ports.FileStore interface. The file is opened with
// O_EXCL so an existing file is never truncated.
func (p *ProjectFiles) Create(name, content string) error {
	file, err := os.OpenFile(p.path(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &FileError{File: name, Err: ErrExists, Cause: err}
		}
		return &FileError{File: name, Err: ErrCannotWrite, Cause: err}
	}
	defer file.Close()

	if _, err := file.WriteString(content); err != nil {
		return &FileError{File: name, Err: ErrCannotWrite, Cause: err}
	}
	return nil
}

// Exists implements the ports.FileStore interface.
func (p *ProjectFiles) Exists(name string) bool {
	_, err := os.Stat(p.path(name))
	return err == nil
}
