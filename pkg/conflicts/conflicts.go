// Package conflicts finds which manifest entries already exist under the
// destination root.
package conflicts

import (
	"os"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// FindExisting returns the records for entries whose destination path,
// destRoot/<group>/<relPath>, exists. Input order is preserved. It only
// reads the filesystem.
func FindExisting(fsys types.FS, entries []types.ManifestEntry, destRoot string) ([]types.ConflictRecord, error) {
	var existing []types.ConflictRecord
	for _, entry := range entries {
		target := entry.DestPathUnder(destRoot)
		if _, err := fsys.Lstat(target); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot check destination").
				WithDetail("path", target).
				WithDetail("op", "stat")
		}
		existing = append(existing, types.ConflictRecord{
			Entry:  entry,
			Path:   target,
			Exists: true,
		})
	}
	return existing, nil
}
