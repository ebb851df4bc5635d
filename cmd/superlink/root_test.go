package superlink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// setupDirs points the CLI at temp source and destination trees via the
// environment and seeds a couple of artifacts.
func setupDirs(t *testing.T) (string, string) {
	t.Helper()
	source, dest := t.TempDir(), t.TempDir()
	t.Setenv("SUPERLINK_SOURCE_DIR", source)
	t.Setenv("SUPERLINK_CLAUDE_DIR", dest)

	writeFile(t, filepath.Join(source, "commands", "brainstorm.md"), "# Brainstorm\n\nIdeas.")
	writeFile(t, filepath.Join(source, "agents", "tester.md"), "# Tester")
	return source, dest
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "superlink version")
	assert.Contains(t, out, "commit:")
}

func TestStatusCommand_Text(t *testing.T) {
	setupDirs(t)

	out, err := execute(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "commands")
	assert.Contains(t, out, "brainstorm")
	assert.Contains(t, out, "(0/1 installed)")
}

func TestStatusCommand_YAML(t *testing.T) {
	source, dest := setupDirs(t)

	out, err := execute(t, "status", "--format", "yaml")
	require.NoError(t, err)

	var docs []map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "brainstorm", docs[0]["name"])
	assert.Equal(t, "commands", docs[0]["category"])
	assert.Equal(t, "not-installed", docs[0]["status"])
	assert.Equal(t, filepath.Join(source, "commands", "brainstorm.md"), docs[0]["source"])
	assert.Equal(t, filepath.Join(dest, "commands", "brainstorm.md"), docs[0]["dest"])
}

func TestStatusCommand_BadFormat(t *testing.T) {
	setupDirs(t)

	_, err := execute(t, "status", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestInstallCommand_All(t *testing.T) {
	source, dest := setupDirs(t)

	out, err := execute(t, "install")
	require.NoError(t, err)
	assert.Contains(t, out, "Success (2)")

	target, err := os.Readlink(filepath.Join(dest, "commands", "brainstorm.md"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(source, "commands", "brainstorm.md"), target)
}

func TestInstallCommand_Named(t *testing.T) {
	_, dest := setupDirs(t)

	out, err := execute(t, "install", "commands/brainstorm")
	require.NoError(t, err)
	assert.Contains(t, out, "Success (1)")
	assert.Contains(t, out, "install: commands/brainstorm")

	_, err = os.Lstat(filepath.Join(dest, "agents", "tester.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestInstallCommand_UnknownArtifact(t *testing.T) {
	setupDirs(t)

	_, err := execute(t, "install", "no-such-thing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such artifact")
}

func TestInstallCommand_ConflictFails(t *testing.T) {
	_, dest := setupDirs(t)
	writeFile(t, filepath.Join(dest, "commands", "brainstorm.md"), "imposter")

	out, err := execute(t, "install", "brainstorm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operation(s) failed")
	assert.Contains(t, out, "Errors (1)")
}

func TestUninstallCommand_RoundTrip(t *testing.T) {
	_, dest := setupDirs(t)

	_, err := execute(t, "install")
	require.NoError(t, err)

	out, err := execute(t, "uninstall", "brainstorm")
	require.NoError(t, err)
	assert.Contains(t, out, "uninstall: commands/brainstorm")

	_, err = os.Lstat(filepath.Join(dest, "commands", "brainstorm.md"))
	assert.True(t, os.IsNotExist(err))
	// The other artifact stays installed.
	_, err = os.Readlink(filepath.Join(dest, "agents", "tester.md"))
	assert.NoError(t, err)
}

func TestShowCommand(t *testing.T) {
	setupDirs(t)

	out, err := execute(t, "show", "brainstorm")
	require.NoError(t, err)
	assert.Contains(t, out, "Brainstorm")
	assert.Contains(t, out, "Ideas")
}

func TestShowCommand_Unknown(t *testing.T) {
	setupDirs(t)

	_, err := execute(t, "show", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such artifact")
}

func TestGenconfigCommand_Stdout(t *testing.T) {
	out, err := execute(t, "genconfig", "--stdout")
	require.NoError(t, err)
	assert.Contains(t, out, "source_dir")
	assert.Contains(t, out, "claude_dir")
}

func TestStatusCommand_MissingSource(t *testing.T) {
	t.Setenv("SUPERLINK_SOURCE_DIR", filepath.Join(t.TempDir(), "nope"))
	t.Setenv("SUPERLINK_CLAUDE_DIR", t.TempDir())

	_, err := execute(t, "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOURCE_NOT_FOUND")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
