// Package paths provides centralized path handling for superlink: the
// managed source tree, the Claude directory the links land in, and the
// XDG location of the config file.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/superlink/pkg/errors"
)

// Defaults, relative to the user's home directory.
const (
	// DefaultSourceDir is the conventional checkout location of the
	// superpowers source tree.
	DefaultSourceDir = "Development/superpowers"

	// DefaultClaudeDir is where Claude looks for commands, skills and agents.
	DefaultClaudeDir = ".claude"

	// ConfigFileName is the name of the config file under the XDG config dir.
	ConfigFileName = "superlink.toml"

	// AppDirName is the subdirectory name used under XDG base dirs.
	AppDirName = "superlink"
)

// Paths resolves the two roots the engine operates between.
type Paths struct {
	sourceRoot string
	claudeDir  string
}

// New resolves the source root and Claude directory. Non-empty arguments
// (typically from config, which already layers env vars) win over the
// home-relative defaults. Both are returned absolute with ~ expanded.
func New(sourceRoot, claudeDir string) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine home directory")
	}

	if sourceRoot == "" {
		sourceRoot = filepath.Join(home, DefaultSourceDir)
	}
	if claudeDir == "" {
		claudeDir = filepath.Join(home, DefaultClaudeDir)
	}

	sourceRoot, err = normalize(sourceRoot, home)
	if err != nil {
		return nil, err
	}
	claudeDir, err = normalize(claudeDir, home)
	if err != nil {
		return nil, err
	}

	return &Paths{sourceRoot: sourceRoot, claudeDir: claudeDir}, nil
}

// SourceRoot returns the absolute path of the managed source tree.
func (p *Paths) SourceRoot() string {
	return p.sourceRoot
}

// ClaudeDir returns the absolute path of the destination Claude directory.
func (p *Paths) ClaudeDir() string {
	return p.claudeDir
}

// ConfigFilePath returns the path of the superlink config file.
func ConfigFilePath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// normalize expands a leading ~ and makes the path absolute.
func normalize(path, home string) (string, error) {
	if path == "~" {
		path = home
	} else if strings.HasPrefix(path, "~/") {
		path = filepath.Join(home, path[2:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid path %q", path)
	}
	return abs, nil
}
