package types

import (
	"io/fs"
)

// FS is the filesystem interface the engine reads and mutates through. The
// OS-backed implementation lives in pkg/filesystem; tests substitute fault
// injecting wrappers.
type FS interface {
	// Read operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	Readlink(name string) (string, error)

	// Resolve canonicalizes a path, following every symlink in it.
	Resolve(name string) (string, error)

	// Mutations
	MkdirAll(path string, perm fs.FileMode) error
	Symlink(oldname, newname string) error
	Remove(name string) error
}
