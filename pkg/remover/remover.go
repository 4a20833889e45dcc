// Package remover deletes installed asset files and directories.
package remover

import (
	"os"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// Remove deletes target, recursively when it is a directory. It reports
// whether anything was removed; a missing target is not an error.
func Remove(fsys types.FS, target string) (bool, error) {
	logger := logging.GetLogger("remover")

	info, err := fsys.Lstat(target)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Trace().Str("path", target).Msg("Nothing to remove")
			return false, nil
		}
		return false, errors.Wrap(err, errors.ErrFileAccess, "cannot access path").
			WithDetail("path", target).
			WithDetail("op", "remove")
	}

	if info.IsDir() {
		err = fsys.RemoveAll(target)
	} else {
		err = fsys.Remove(target)
	}
	if err != nil {
		return false, errors.Wrap(err, errors.ErrFileRemove, "cannot remove path").
			WithDetail("path", target).
			WithDetail("op", "remove")
	}

	logger.Debug().Str("path", target).Bool("dir", info.IsDir()).Msg("Removed")
	return true, nil
}
