// Package config loads superlink's configuration by layering built-in
// defaults, the TOML config file under the XDG config dir, and SUPERLINK_*
// environment variables, in that order of precedence.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/superlink/pkg/errors"
	"github.com/arthur-debert/superlink/pkg/paths"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// SUPERLINK_SOURCE_DIR and SUPERLINK_CLAUDE_DIR.
const EnvPrefix = "SUPERLINK_"

// Config holds the user-tunable settings. Empty path values mean "use the
// home-relative default" (resolved by pkg/paths).
type Config struct {
	// SourceDir is the managed source tree holding commands/, skills/ and
	// agents/.
	SourceDir string `koanf:"source_dir" toml:"source_dir" comment:"Managed source tree (default: ~/Development/superpowers)"`

	// ClaudeDir is the destination directory the symlinks are created under.
	ClaudeDir string `koanf:"claude_dir" toml:"claude_dir" comment:"Destination directory (default: ~/.claude)"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"source_dir": "",
		"claude_dir": "",
	}
}

// Load reads the configuration from defaults, the config file (if present)
// and the environment.
func Load() (*Config, error) {
	return loadFrom(paths.ConfigFilePath())
}

func loadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", configPath)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	return &cfg, nil
}
