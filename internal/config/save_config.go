package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"compound-setup/internal/logger"
)

// Write persists s to path, creating the parent directory when missing.
// An existing file is overwritten in place. Errors are returned unrecovered;
// a partially written file is left as is.
func Write(fs afero.Fs, path string, s Settings) error {
	dir := filepath.Dir(path)

	// MkdirAll is a no-op when the directory is already there
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory %s: %w", dir, err)
	}

	data := Render(s)
	logger.Debug("[DEBUG] Writing config to %s:\n%s\n", path, data)

	// 0644: read/write owner, read others, like any dotfile
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
