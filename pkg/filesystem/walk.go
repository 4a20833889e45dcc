package filesystem

import (
	"path"
	"path/filepath"

	"github.com/arthur-debert/agentkit/pkg/types"
)

// ListFiles returns every regular file below root as slash-separated paths
// relative to root, in lexical order. A file root yields its own base name.
func ListFiles(fsys types.FS, root string) ([]string, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{filepath.Base(root)}, nil
	}

	var files []string
	var walk func(dir, rel string) error
	walk = func(dir, rel string) error {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			childRel := path.Join(rel, entry.Name())
			if entry.IsDir() {
				if err := walk(filepath.Join(dir, entry.Name()), childRel); err != nil {
					return err
				}
				continue
			}
			files = append(files, childRel)
		}
		return nil
	}

	if err := walk(root, ""); err != nil {
		return nil, err
	}
	return files, nil
}

// Exists reports whether name can be stat'ed without following a final symlink.
func Exists(fsys types.FS, name string) bool {
	_, err := fsys.Lstat(name)
	return err == nil
}
