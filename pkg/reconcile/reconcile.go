// Package reconcile applies the difference between each artifact's classified
// status and its selection, creating or removing destination symlinks.
//
// Every destructive action re-verifies the destination immediately before
// mutating: the filesystem may have changed since the status was computed,
// and the reconciler must never delete or overwrite a path it has not freshly
// confirmed to be a symlink it would itself have created. Artifacts are
// processed independently; one failure never blocks or rolls back another.
package reconcile

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/superlink/pkg/logging"
	"github.com/arthur-debert/superlink/pkg/status"
	"github.com/arthur-debert/superlink/pkg/types"
)

// Reconcile brings the filesystem in line with each artifact's selection and
// returns one result per attempted or refused action. Satisfied artifacts
// produce no result. After the batch, every artifact is reclassified in place
// and its selection reset to the fresh status.
func Reconcile(fsys types.FS, categories []types.Category) []types.OperationResult {
	logger := logging.GetLogger("reconcile")

	var results []types.OperationResult
	for ci := range categories {
		for ai := range categories[ci].Artifacts {
			art := &categories[ci].Artifacts[ai]

			switch {
			case art.Status == types.StatusConflict && art.Selected:
				results = append(results, refusal(art, types.ActionInstall,
					fmt.Sprintf("cannot install: %s", art.ConflictDetail)))
			case art.Status == types.StatusConflict && !art.Selected:
				results = append(results, refusal(art, types.ActionUninstall,
					fmt.Sprintf("cannot uninstall: %s", art.ConflictDetail)))
			case art.Selected && art.Status == types.StatusNotInstalled:
				results = append(results, install(fsys, art))
			case !art.Selected && art.Status == types.StatusInstalled:
				results = append(results, uninstall(fsys, art))
			}
		}
	}

	status.Refresh(fsys, categories)

	logger.Info().Int("operations", len(results)).Msg("reconcile batch applied")
	return results
}

// install creates the destination symlink, creating the category directory
// first. The destination is re-checked here: if anything appeared at the path
// since classification, the install is refused rather than overwriting.
func install(fsys types.FS, art *types.Artifact) types.OperationResult {
	logger := logging.GetLogger("reconcile")

	destDir := filepath.Dir(art.DestPath)
	if err := fsys.MkdirAll(destDir, 0755); err != nil {
		return refusal(art, types.ActionInstall,
			fmt.Sprintf("cannot create directory %s: %v", destDir, err))
	}

	if _, err := fsys.Lstat(art.DestPath); err == nil {
		return refusal(art, types.ActionInstall,
			fmt.Sprintf("destination already exists: %s", art.DestPath))
	} else if !os.IsNotExist(err) {
		return refusal(art, types.ActionInstall,
			fmt.Sprintf("cannot inspect destination %s: %v", art.DestPath, err))
	}

	if err := fsys.Symlink(art.SourcePath, art.DestPath); err != nil {
		return refusal(art, types.ActionInstall,
			fmt.Sprintf("cannot create symlink: %v", err))
	}

	logger.Debug().
		Str("source", art.SourcePath).
		Str("dest", art.DestPath).
		Msg("created symlink")

	return types.OperationResult{
		Artifact: *art,
		Action:   types.ActionInstall,
		Success:  true,
		Message:  fmt.Sprintf("created symlink: %s -> %s", art.DestPath, art.SourcePath),
	}
}

// uninstall removes the destination symlink after re-confirming that it still
// is a symlink and still resolves to the artifact's source.
func uninstall(fsys types.FS, art *types.Artifact) types.OperationResult {
	logger := logging.GetLogger("reconcile")

	info, err := fsys.Lstat(art.DestPath)
	if err != nil {
		return refusal(art, types.ActionUninstall,
			fmt.Sprintf("cannot inspect destination %s: %v", art.DestPath, err))
	}
	if info.Mode()&iofs.ModeSymlink == 0 {
		return refusal(art, types.ActionUninstall,
			fmt.Sprintf("not a symlink: %s", art.DestPath))
	}

	actual, err := fsys.Resolve(art.DestPath)
	if err != nil {
		return refusal(art, types.ActionUninstall,
			fmt.Sprintf("cannot resolve %s: %v", art.DestPath, err))
	}
	expected, err := fsys.Resolve(art.SourcePath)
	if err != nil {
		return refusal(art, types.ActionUninstall,
			fmt.Sprintf("cannot resolve %s: %v", art.SourcePath, err))
	}
	if actual != expected {
		return refusal(art, types.ActionUninstall,
			fmt.Sprintf("symlink points elsewhere: %s", actual))
	}

	if err := fsys.Remove(art.DestPath); err != nil {
		return refusal(art, types.ActionUninstall,
			fmt.Sprintf("cannot remove symlink: %v", err))
	}

	logger.Debug().Str("dest", art.DestPath).Msg("removed symlink")

	return types.OperationResult{
		Artifact: *art,
		Action:   types.ActionUninstall,
		Success:  true,
		Message:  fmt.Sprintf("removed symlink: %s", art.DestPath),
	}
}

func refusal(art *types.Artifact, action types.Action, message string) types.OperationResult {
	logger := logging.GetLogger("reconcile")
	logger.Warn().
		Str("artifact", art.Ref()).
		Str("action", string(action)).
		Str("reason", message).
		Msg("operation refused")

	return types.OperationResult{
		Artifact: *art,
		Action:   action,
		Success:  false,
		Message:  message,
	}
}
