package types

import (
	"path"
	"path/filepath"
)

// AssetGroup is a named top-level category of installable content. It maps
// to a subdirectory of the same name under both the source and the
// destination roots.
type AssetGroup struct {
	Name       string `json:"name" yaml:"name"`
	SourcePath string `json:"sourcePath" yaml:"sourcePath"`
	DestPath   string `json:"destPath" yaml:"destPath"`
}

// ManifestEntry is a path relative to its group that agentkit owns.
// RelPath always uses forward slashes.
type ManifestEntry struct {
	Group   AssetGroup
	RelPath string
}

// String returns the entry as "<group>/<relPath>".
func (e ManifestEntry) String() string {
	return path.Join(e.Group.Name, e.RelPath)
}

// SourcePath is the entry's location under the source root.
func (e ManifestEntry) SourcePath() string {
	return filepath.Join(e.Group.SourcePath, filepath.FromSlash(e.RelPath))
}

// DestPathUnder returns the entry's location under destRoot.
func (e ManifestEntry) DestPathUnder(destRoot string) string {
	return filepath.Join(destRoot, e.Group.Name, filepath.FromSlash(e.RelPath))
}

// ConflictRecord pairs a manifest entry with the absolute destination path
// it resolves to and whether that path exists.
type ConflictRecord struct {
	Entry  ManifestEntry
	Path   string
	Exists bool
}
