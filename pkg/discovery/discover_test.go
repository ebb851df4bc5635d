package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/superlink/pkg/errors"
	"github.com/arthur-debert/superlink/pkg/filesystem"
	"github.com/arthur-debert/superlink/pkg/testutil"
	"github.com/arthur-debert/superlink/pkg/types"
)

func TestDiscover_CommandsAndAgents(t *testing.T) {
	fs := filesystem.NewOS()
	source, dest := t.TempDir(), t.TempDir()

	writeFile(t, filepath.Join(source, "commands", "review.md"), "review")
	writeFile(t, filepath.Join(source, "commands", "brainstorm.md"), "brainstorm")
	writeFile(t, filepath.Join(source, "agents", "tester.md"), "tester")

	categories, err := Discover(fs, source, dest)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	commands := categories[0]
	assert.Equal(t, types.KindCommands, commands.Kind)
	require.Len(t, commands.Artifacts, 2)
	// Sorted by name
	assert.Equal(t, "brainstorm", commands.Artifacts[0].Name)
	assert.Equal(t, "review", commands.Artifacts[1].Name)
	assert.Equal(t, filepath.Join(source, "commands", "brainstorm.md"), commands.Artifacts[0].SourcePath)
	assert.Equal(t, filepath.Join(dest, "commands", "brainstorm.md"), commands.Artifacts[0].DestPath)
	assert.Equal(t, types.StatusNotInstalled, commands.Artifacts[0].Status)
	assert.False(t, commands.Artifacts[0].Selected)

	agents := categories[1]
	assert.Equal(t, types.KindAgents, agents.Kind)
	require.Len(t, agents.Artifacts, 1)
	assert.Equal(t, "tester", agents.Artifacts[0].Name)
}

func TestDiscover_Skills(t *testing.T) {
	fs := filesystem.NewOS()
	source, dest := t.TempDir(), t.TempDir()

	writeFile(t, filepath.Join(source, "skills", "debugging", "SKILL.md"), "skill")
	writeFile(t, filepath.Join(source, "skills", "debugging", "notes.md"), "notes")
	// A subdirectory without the marker is not a skill.
	require.NoError(t, os.MkdirAll(filepath.Join(source, "skills", "scratch"), 0755))
	// A stray file directly under skills/ is ignored.
	writeFile(t, filepath.Join(source, "skills", "README.md"), "readme")

	categories, err := Discover(fs, source, dest)
	require.NoError(t, err)
	require.Len(t, categories, 1)

	skills := categories[0]
	assert.Equal(t, types.KindSkills, skills.Kind)
	require.Len(t, skills.Artifacts, 1)

	art := skills.Artifacts[0]
	assert.Equal(t, "debugging", art.Name)
	assert.Equal(t, filepath.Join(source, "skills", "debugging"), art.SourcePath)
	assert.Equal(t, filepath.Join(dest, "skills", "debugging"), art.DestPath)
}

func TestDiscover_MissingCategoryOmitted(t *testing.T) {
	fs := filesystem.NewOS()
	source, dest := t.TempDir(), t.TempDir()

	writeFile(t, filepath.Join(source, "commands", "review.md"), "review")

	categories, err := Discover(fs, source, dest)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, types.KindCommands, categories[0].Kind)
}

func TestDiscover_NonMarkdownIgnored(t *testing.T) {
	fs := filesystem.NewOS()
	source, dest := t.TempDir(), t.TempDir()

	writeFile(t, filepath.Join(source, "commands", "review.md"), "review")
	writeFile(t, filepath.Join(source, "commands", "review.txt"), "nope")
	require.NoError(t, os.MkdirAll(filepath.Join(source, "commands", "subdir"), 0755))

	categories, err := Discover(fs, source, dest)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Len(t, categories[0].Artifacts, 1)
	assert.Equal(t, "review", categories[0].Artifacts[0].Name)
}

func TestDiscover_InstalledSelection(t *testing.T) {
	fs := filesystem.NewOS()
	source, dest := t.TempDir(), t.TempDir()

	srcFile := filepath.Join(source, "commands", "review.md")
	writeFile(t, srcFile, "review")
	destFile := filepath.Join(dest, "commands", "review.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(destFile), 0755))
	require.NoError(t, os.Symlink(srcFile, destFile))

	categories, err := Discover(fs, source, dest)
	require.NoError(t, err)
	require.Len(t, categories, 1)

	art := categories[0].Artifacts[0]
	assert.Equal(t, types.StatusInstalled, art.Status)
	assert.True(t, art.Selected)
}

func TestDiscover_ConflictDegradesArtifact(t *testing.T) {
	fs := filesystem.NewOS()
	source, dest := t.TempDir(), t.TempDir()

	writeFile(t, filepath.Join(source, "commands", "review.md"), "review")
	writeFile(t, filepath.Join(source, "commands", "brainstorm.md"), "brainstorm")
	// The destination for review already exists as a regular file.
	writeFile(t, filepath.Join(dest, "commands", "review.md"), "imposter")

	categories, err := Discover(fs, source, dest)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Len(t, categories[0].Artifacts, 2)

	assert.Equal(t, types.StatusNotInstalled, categories[0].Artifacts[0].Status)
	review := categories[0].Artifacts[1]
	assert.Equal(t, types.StatusConflict, review.Status)
	assert.Contains(t, review.ConflictDetail, "not a symlink")
	assert.False(t, review.Selected)
}

func TestDiscover_SourceRootMissing(t *testing.T) {
	fs := filesystem.NewOS()
	dest := t.TempDir()

	_, err := Discover(fs, filepath.Join(dest, "nope"), dest)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotFound))
}

func TestDiscover_EmptySource(t *testing.T) {
	fs := filesystem.NewOS()
	source, dest := t.TempDir(), t.TempDir()

	categories, err := Discover(fs, source, dest)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestDiscover_CategoryReadError(t *testing.T) {
	source, dest := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(source, "commands", "review.md"), "review")

	fs := testutil.NewFaultFS(filesystem.NewOS())
	fs.FailReadDir(filepath.Join(source, "commands"), fmt.Errorf("permission denied"))

	_, err := Discover(fs, source, dest)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCategoryRead))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
