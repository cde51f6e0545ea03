package installer

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"compound-setup/internal/logger"
)

// MakeExecutable adds the execute bits to every scripts/*.sh file under root.
// Every match is attempted; the returned error joins all failures.
func MakeExecutable(fs afero.Fs, root string) error {
	pattern := filepath.Join(root, "scripts", "*.sh")
	matches, err := afero.Glob(fs, pattern)
	if err != nil {
		return fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no scripts match %s", pattern)
	}

	var errs []error
	for _, path := range matches {
		info, err := fs.Stat(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("stat %s: %w", path, err))
			continue
		}
		mode := info.Mode().Perm() | 0o111
		if err := fs.Chmod(path, mode); err != nil {
			errs = append(errs, fmt.Errorf("chmod %s: %w", path, err))
			continue
		}
		logger.Debug("[DEBUG] chmod %o %s\n", mode, path)
	}
	return errors.Join(errs...)
}
