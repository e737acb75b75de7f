package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmr-tortoise/publishkit/internal/buildlog"
	"github.com/mmr-tortoise/publishkit/internal/model"
)

// Prepare makes path usable as the publish output directory:
//
//   - path is a regular file: fail with an output-path-conflict error,
//     before anything is deleted;
//   - path is missing: create it (and parents);
//   - path is a directory and keep is set: leave it untouched;
//   - path is a directory and keep is unset: remove its contents, but
//     not the directory itself.
//
// With dryRun set, nothing on disk changes; the intended action is
// logged at debug level instead.
func Prepare(path string, keep, dryRun bool, log *buildlog.Logger) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if dryRun {
			log.Debugf("dry run: would create output directory %s", path)
			return nil
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("failed to create output directory %s", path), err)
		}
		log.Debugf("created output directory %s", path)
		return nil
	case err != nil:
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to stat output path %s", path), err)
	}

	if !info.IsDir() {
		return model.NewCLIError(model.ExitOutputPathConflict,
			fmt.Sprintf("output path %s exists and is a file, not a directory", path))
	}

	if keep {
		log.Debugf("keeping existing output directory %s", path)
		return nil
	}

	if dryRun {
		log.Debugf("dry run: would clear output directory %s", path)
		return nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to read output directory %s", path), err)
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(path, entry.Name())); err != nil {
			return model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("failed to clear output directory %s", path), err)
		}
	}
	log.Debugf("cleared output directory %s", path)
	return nil
}
