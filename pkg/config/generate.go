package config

import (
	"bytes"
	"os"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/superlink/pkg/errors"
)

const generatedHeader = `# superlink configuration
# Values left empty fall back to the built-in defaults.
# Environment variables (SUPERLINK_SOURCE_DIR, SUPERLINK_CLAUDE_DIR)
# override this file.

`

// Generate renders the default configuration as commented TOML.
func Generate() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := gotoml.NewEncoder(&buf)
	if err := enc.Encode(Config{}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigWrite, "failed to encode default config")
	}

	return buf.Bytes(), nil
}

// WriteDefault writes the default configuration to the given path, refusing
// to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrConfigWrite, "config file already exists: %s", path)
	}

	data, err := Generate()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to create config directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write config file %s", path)
	}

	return nil
}
