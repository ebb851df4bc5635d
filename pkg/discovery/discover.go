// Package discovery scans the managed source tree and builds the current,
// status-classified artifact list. Discovery is read-only; it produces fresh
// artifacts on every pass and never reuses state from a previous one.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/superlink/pkg/errors"
	"github.com/arthur-debert/superlink/pkg/logging"
	"github.com/arthur-debert/superlink/pkg/status"
	"github.com/arthur-debert/superlink/pkg/types"
)

// Discover walks the fixed category subdirectories of sourceRoot and returns
// the categories that contain at least one installable artifact, each artifact
// already classified against destRoot. A missing category directory is
// skipped silently; a missing source root is an error.
func Discover(fsys types.FS, sourceRoot, destRoot string) ([]types.Category, error) {
	logger := logging.GetLogger("discovery")

	if _, err := fsys.Stat(sourceRoot); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrSourceNotFound, "source directory does not exist: %s", sourceRoot)
		}
		return nil, errors.Wrapf(err, errors.ErrSourceNotFound, "cannot access source directory %s", sourceRoot)
	}

	var categories []types.Category
	for _, kind := range types.Kinds() {
		artifacts, err := discoverKind(fsys, kind, sourceRoot, destRoot)
		if err != nil {
			return nil, err
		}
		if len(artifacts) == 0 {
			continue
		}
		categories = append(categories, types.Category{Kind: kind, Artifacts: artifacts})
	}

	logger.Debug().
		Str("source", sourceRoot).
		Str("dest", destRoot).
		Int("categories", len(categories)).
		Msg("discovery complete")

	return categories, nil
}

func discoverKind(fsys types.FS, kind types.CategoryKind, sourceRoot, destRoot string) ([]types.Artifact, error) {
	logger := logging.GetLogger("discovery")

	srcDir := filepath.Join(sourceRoot, kind.String())
	destDir := filepath.Join(destRoot, kind.String())

	entries, err := fsys.ReadDir(srcDir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Trace().Str("dir", srcDir).Msg("category directory missing, skipping")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrCategoryRead, "cannot read category directory %s", srcDir)
	}

	var artifacts []types.Artifact
	for _, entry := range entries {
		var art types.Artifact
		var ok bool
		if kind.IsDirectory() {
			art, ok = skillArtifact(fsys, entry.Name(), entry.IsDir(), srcDir, destDir)
		} else {
			art, ok = fileArtifact(kind, entry.Name(), entry.IsDir(), srcDir, destDir)
		}
		if !ok {
			continue
		}

		c := status.Classify(fsys, art.SourcePath, art.DestPath)
		art.Status = c.Status
		art.ConflictDetail = c.Detail
		art.Selected = c.Status == types.StatusInstalled
		artifacts = append(artifacts, art)
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Name < artifacts[j].Name
	})

	return artifacts, nil
}

// fileArtifact builds an artifact for a leaf-file category entry. Entries
// that are directories or lack the artifact extension are not installable.
func fileArtifact(kind types.CategoryKind, name string, isDir bool, srcDir, destDir string) (types.Artifact, bool) {
	if isDir || !strings.HasSuffix(name, types.ArtifactExtension) {
		return types.Artifact{}, false
	}
	return types.Artifact{
		Name:       strings.TrimSuffix(name, types.ArtifactExtension),
		Kind:       kind,
		SourcePath: filepath.Join(srcDir, name),
		DestPath:   filepath.Join(destDir, name),
	}, true
}

// skillArtifact builds an artifact for a skills entry. Only immediate
// subdirectories carrying the marker file are installable; the link target is
// the whole directory.
func skillArtifact(fsys types.FS, name string, isDir bool, srcDir, destDir string) (types.Artifact, bool) {
	if !isDir {
		return types.Artifact{}, false
	}
	srcPath := filepath.Join(srcDir, name)
	if _, err := fsys.Stat(filepath.Join(srcPath, types.SkillMarkerFile)); err != nil {
		return types.Artifact{}, false
	}
	return types.Artifact{
		Name:       name,
		Kind:       types.KindSkills,
		SourcePath: srcPath,
		DestPath:   filepath.Join(destDir, name),
	}, true
}
