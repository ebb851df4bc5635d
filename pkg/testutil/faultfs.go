// Package testutil provides test helpers for exercising the engine against
// a misbehaving filesystem.
package testutil

import (
	"io/fs"

	"github.com/arthur-debert/superlink/pkg/types"
)

// FaultFS wraps a types.FS and fails selected operations on selected paths.
// Paths without an injected error pass through to the underlying filesystem,
// so a batch can mix healthy and failing artifacts.
type FaultFS struct {
	types.FS

	symlinkErrs map[string]error
	removeErrs  map[string]error
	mkdirErrs   map[string]error
	readErrs    map[string]error
}

// NewFaultFS wraps fsys with error injection disabled for every path.
func NewFaultFS(fsys types.FS) *FaultFS {
	return &FaultFS{
		FS:          fsys,
		symlinkErrs: make(map[string]error),
		removeErrs:  make(map[string]error),
		mkdirErrs:   make(map[string]error),
		readErrs:    make(map[string]error),
	}
}

// FailSymlink makes Symlink calls targeting newname return err.
func (f *FaultFS) FailSymlink(newname string, err error) {
	f.symlinkErrs[newname] = err
}

// FailRemove makes Remove calls for name return err.
func (f *FaultFS) FailRemove(name string, err error) {
	f.removeErrs[name] = err
}

// FailMkdirAll makes MkdirAll calls for path return err.
func (f *FaultFS) FailMkdirAll(path string, err error) {
	f.mkdirErrs[path] = err
}

// FailReadDir makes ReadDir calls for name return err.
func (f *FaultFS) FailReadDir(name string, err error) {
	f.readErrs[name] = err
}

func (f *FaultFS) Symlink(oldname, newname string) error {
	if err, ok := f.symlinkErrs[newname]; ok {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FaultFS) Remove(name string) error {
	if err, ok := f.removeErrs[name]; ok {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FaultFS) MkdirAll(path string, perm fs.FileMode) error {
	if err, ok := f.mkdirErrs[path]; ok {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err, ok := f.readErrs[name]; ok {
		return nil, err
	}
	return f.FS.ReadDir(name)
}
