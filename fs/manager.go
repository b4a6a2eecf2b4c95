package fs

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileSystem wraps the Afero Fs interface
type FileSystem struct {
	Fs afero.Fs
}

// NewMemoryFileSystem creates a new in-memory file system
func NewMemoryFileSystem() *FileSystem {
	return &FileSystem{
		Fs: afero.NewMemMapFs(),
	}
}

// NewOsFileSystem creates a new OS-based file system
func NewOsFileSystem() *FileSystem {
	return &FileSystem{
		Fs: afero.NewOsFs(),
	}
}

// WriteFile writes content to a file, creating parent directories as needed
// and overwriting any existing file at the path.
func (fs *FileSystem) WriteFile(path string, content string) error {
	dir := filepath.Dir(path)
	if err := fs.Fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory %s: %w", dir, err)
	}

	if err := afero.WriteFile(fs.Fs, path, []byte(content), 0644); err != nil {
		return fmt.Errorf("error writing file %s: %w", path, err)
	}

	return nil
}

// ReadFile returns the content of the file at path.
func (fs *FileSystem) ReadFile(path string) (string, error) {
	content, err := afero.ReadFile(fs.Fs, path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Exists reports whether a file or directory exists at path.
func (fs *FileSystem) Exists(path string) bool {
	exists, err := afero.Exists(fs.Fs, path)
	return err == nil && exists
}

// IsDir checks if the given path is a directory
func (fs *FileSystem) IsDir(path string) bool {
	isDir, err := afero.IsDir(fs.Fs, path)
	return err == nil && isDir
}

// MkdirAll creates a directory and all necessary parents.
func (fs *FileSystem) MkdirAll(path string) error {
	if err := fs.Fs.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("error creating directory %s: %w", path, err)
	}
	return nil
}

// ClearDir removes every file and subdirectory under dir, leaving dir
// itself in place. If dir does not exist it is created empty.
func (fs *FileSystem) ClearDir(dir string) error {
	exists, err := afero.DirExists(fs.Fs, dir)
	if err != nil {
		return fmt.Errorf("error checking directory %s: %w", dir, err)
	}
	if !exists {
		return fs.MkdirAll(dir)
	}

	entries, err := afero.ReadDir(fs.Fs, dir)
	if err != nil {
		return fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if err := fs.Fs.RemoveAll(path); err != nil {
			return fmt.Errorf("error removing %s: %w", path, err)
		}
	}

	return nil
}
