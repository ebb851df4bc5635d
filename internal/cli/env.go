// Package cli holds the runtime wiring shared by all superlink commands:
// configuration loading, path resolution, and the OS filesystem handle.
package cli

import (
	"github.com/arthur-debert/superlink/pkg/config"
	"github.com/arthur-debert/superlink/pkg/filesystem"
	"github.com/arthur-debert/superlink/pkg/paths"
	"github.com/arthur-debert/superlink/pkg/types"
)

// Env is the resolved environment a command runs against.
type Env struct {
	FS    types.FS
	Paths *paths.Paths
}

// NewEnv loads configuration and resolves the source and Claude roots.
func NewEnv() (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	p, err := paths.New(cfg.SourceDir, cfg.ClaudeDir)
	if err != nil {
		return nil, err
	}

	return &Env{
		FS:    filesystem.NewOS(),
		Paths: p,
	}, nil
}
