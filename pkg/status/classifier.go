// Package status classifies the installation state of a single artifact by
// comparing its destination path against its source path. Classification is
// read-only and recomputed from the filesystem on every pass; resolution
// failures fold into a conflict instead of propagating.
package status

import (
	"errors"
	"fmt"
	iofs "io/fs"

	"github.com/arthur-debert/superlink/pkg/types"
)

// Classification is the result of classifying one (source, dest) pair.
type Classification struct {
	Status types.Status

	// Detail explains a conflict; empty otherwise.
	Detail string
}

// Classify determines whether destPath is the symlink that installs
// sourcePath. It only reads filesystem metadata.
func Classify(fsys types.FS, sourcePath, destPath string) Classification {
	info, err := fsys.Lstat(destPath)
	if err != nil {
		if isNotExist(err) {
			return Classification{Status: types.StatusNotInstalled}
		}
		return Classification{
			Status: types.StatusConflict,
			Detail: fmt.Sprintf("cannot inspect %s: %v", destPath, err),
		}
	}

	if info.Mode()&iofs.ModeSymlink == 0 {
		return Classification{
			Status: types.StatusConflict,
			Detail: fmt.Sprintf("path exists but is not a symlink: %s", destPath),
		}
	}

	actual, err := fsys.Resolve(destPath)
	if err != nil {
		return Classification{
			Status: types.StatusConflict,
			Detail: fmt.Sprintf("cannot resolve %s: %v", destPath, err),
		}
	}

	expected, err := fsys.Resolve(sourcePath)
	if err != nil {
		return Classification{
			Status: types.StatusConflict,
			Detail: fmt.Sprintf("cannot resolve %s: %v", sourcePath, err),
		}
	}

	if actual != expected {
		return Classification{
			Status: types.StatusConflict,
			Detail: fmt.Sprintf("symlink points to %s, expected %s", actual, expected),
		}
	}

	return Classification{Status: types.StatusInstalled}
}

// Refresh reclassifies every artifact in place and resets its selection to
// mirror the fresh status, so the next round starts with no pending changes.
func Refresh(fsys types.FS, categories []types.Category) {
	for ci := range categories {
		for ai := range categories[ci].Artifacts {
			art := &categories[ci].Artifacts[ai]
			c := Classify(fsys, art.SourcePath, art.DestPath)
			art.Status = c.Status
			art.ConflictDetail = c.Detail
			art.Selected = c.Status == types.StatusInstalled
		}
	}
}

// isNotExist checks if an error indicates a file doesn't exist
func isNotExist(err error) bool {
	return errors.Is(err, iofs.ErrNotExist)
}
