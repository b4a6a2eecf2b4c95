package fs

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestNewMemoryFileSystem(t *testing.T) {
	fs := NewMemoryFileSystem()
	assert.NotNil(t, fs)
	assert.IsType(t, &afero.MemMapFs{}, fs.Fs)
}

func TestNewOsFileSystem(t *testing.T) {
	fs := NewOsFileSystem()
	assert.NotNil(t, fs)
	assert.IsType(t, &afero.OsFs{}, fs.Fs)
}

func TestWriteFileCreatesParents(t *testing.T) {
	fs := NewMemoryFileSystem()
	err := fs.WriteFile("test/nested/file.txt", "Hello, World!")
	assert.NoError(t, err)

	content, err := fs.ReadFile("test/nested/file.txt")
	assert.NoError(t, err)
	assert.Equal(t, "Hello, World!", content)
}

func TestWriteFileOverwrites(t *testing.T) {
	fs := NewMemoryFileSystem()
	assert.NoError(t, fs.WriteFile("file.txt", "first"))
	assert.NoError(t, fs.WriteFile("file.txt", "second"))

	content, err := fs.ReadFile("file.txt")
	assert.NoError(t, err)
	assert.Equal(t, "second", content)
}

func TestExists(t *testing.T) {
	fs := NewMemoryFileSystem()
	assert.False(t, fs.Exists("file.txt"))

	assert.NoError(t, fs.WriteFile("file.txt", "content"))
	assert.True(t, fs.Exists("file.txt"))
}

func TestIsDir(t *testing.T) {
	fs := NewMemoryFileSystem()
	assert.NoError(t, fs.MkdirAll("test/dir"))

	assert.True(t, fs.IsDir("test/dir"))
	assert.False(t, fs.IsDir("test/nonexistent"))
}

func TestClearDir(t *testing.T) {
	fs := NewMemoryFileSystem()
	assert.NoError(t, fs.WriteFile("views/welcome.blade.php", "old"))
	assert.NoError(t, fs.WriteFile("views/errors/404.blade.php", "old"))
	assert.NoError(t, fs.WriteFile("views/errors/deep/500.blade.php", "old"))

	assert.NoError(t, fs.ClearDir("views"))

	assert.True(t, fs.IsDir("views"))
	entries, err := afero.ReadDir(fs.Fs, "views")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClearDirCreatesMissingDirectory(t *testing.T) {
	fs := NewMemoryFileSystem()
	assert.NoError(t, fs.ClearDir("views"))
	assert.True(t, fs.IsDir("views"))
}
