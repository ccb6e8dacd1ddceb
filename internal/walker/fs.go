package walker

import (
	"io/fs"
	"os"
)

// FS is the filesystem surface the walker reads through. It is satisfied
// by testing/fstest.MapFS, so tests can run against an in-memory tree.
type FS interface {
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	Open(name string) (fs.File, error)
}

// OSFS reads the real filesystem through the os package.
type OSFS struct{}

func (OSFS) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }
func (OSFS) Stat(name string) (fs.FileInfo, error)      { return os.Stat(name) }
func (OSFS) ReadFile(name string) ([]byte, error)       { return os.ReadFile(name) }
func (OSFS) Open(name string) (fs.File, error)          { return os.Open(name) }
