// Package copier copies asset trees into the destination root.
//
// Copies are additive: files present in the destination but not in the
// source are left alone, and files present in both are overwritten.
package copier

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/types"
)

const (
	dirPerm = 0755

	// ownerWrite is added to every copied file so a later install can
	// overwrite it even when the source asset is read-only
	ownerWrite = 0200
)

// Copy copies source to dest. A directory source is merged into dest,
// creating dest and any missing parents. A file source overwrites dest and
// keeps the source permission bits plus owner write.
// The first failure is returned; nothing already written is rolled back.
func Copy(fsys types.FS, source, dest string) error {
	info, err := fsys.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(err, errors.ErrFileNotFound, "copy source does not exist").
				WithDetail("path", source).
				WithDetail("op", "copy")
		}
		return errors.Wrap(err, errors.ErrFileAccess, "cannot access copy source").
			WithDetail("path", source).
			WithDetail("op", "copy")
	}

	if info.IsDir() {
		return copyDir(fsys, source, dest)
	}
	return copyFile(fsys, source, dest, info.Mode().Perm()|ownerWrite)
}

func copyDir(fsys types.FS, source, dest string) error {
	if err := fsys.MkdirAll(dest, dirPerm); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create directory").
			WithDetail("path", dest).
			WithDetail("op", "mkdir")
	}

	entries, err := fsys.ReadDir(source)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileRead, "cannot read directory").
			WithDetail("path", source).
			WithDetail("op", "readdir")
	}

	for _, entry := range entries {
		name := entry.Name()
		if err := Copy(fsys, filepath.Join(source, name), filepath.Join(dest, name)); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(fsys types.FS, source, dest string, perm os.FileMode) error {
	logger := logging.GetLogger("copier")

	data, err := fsys.ReadFile(source)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileRead, "cannot read file").
			WithDetail("path", source).
			WithDetail("op", "read")
	}

	if err := fsys.MkdirAll(filepath.Dir(dest), dirPerm); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create parent directory").
			WithDetail("path", filepath.Dir(dest)).
			WithDetail("op", "mkdir")
	}

	if err := fsys.WriteFile(dest, data, perm); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot write file").
			WithDetail("path", dest).
			WithDetail("op", "write")
	}

	logger.Trace().Str("source", source).Str("dest", dest).Int("bytes", len(data)).Msg("Copied file")
	return nil
}
