// Package manifest holds the static declaration of agentkit's asset groups
// and of the paths within them that agentkit owns.
package manifest

import (
	_ "embed"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/filesystem"
	"github.com/arthur-debert/agentkit/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

//go:embed manifest.toml
var embeddedManifest []byte

// GroupSpec declares one asset group and its owned paths
type GroupSpec struct {
	Name  string   `toml:"name"`
	Owned []string `toml:"owned"`
}

// Manifest is the parsed manifest. It is read-only after Parse.
type Manifest struct {
	Groups []GroupSpec `toml:"groups"`
}

// Default returns the manifest compiled into the binary
func Default() (*Manifest, error) {
	return Parse(embeddedManifest)
}

// Parse decodes and validates a TOML manifest
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to parse manifest")
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Groups) == 0 {
		return errors.New(errors.ErrManifestInvalid, "manifest declares no asset groups")
	}

	seenGroups := make(map[string]bool)
	for i, g := range m.Groups {
		if g.Name == "" || strings.ContainsAny(g.Name, `/\`) || g.Name == "." || g.Name == ".." {
			return errors.Newf(errors.ErrManifestInvalid, "invalid group name %q", g.Name).
				WithDetail("index", i)
		}
		if seenGroups[g.Name] {
			return errors.Newf(errors.ErrManifestInvalid, "duplicate group %q", g.Name)
		}
		seenGroups[g.Name] = true

		seenPaths := make(map[string]bool)
		for j, owned := range g.Owned {
			clean := path.Clean(filepath.ToSlash(owned))
			if owned == "" || path.IsAbs(clean) || clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
				return errors.Newf(errors.ErrManifestInvalid, "invalid owned path %q in group %q", owned, g.Name)
			}
			if seenPaths[clean] {
				return errors.Newf(errors.ErrManifestInvalid, "duplicate owned path %q in group %q", owned, g.Name)
			}
			seenPaths[clean] = true
			m.Groups[i].Owned[j] = clean
		}
	}
	return nil
}

// AssetGroups resolves every declared group against the roots, in manifest order
func (m *Manifest) AssetGroups(sourceRoot, destRoot string) []types.AssetGroup {
	groups := make([]types.AssetGroup, 0, len(m.Groups))
	for _, g := range m.Groups {
		groups = append(groups, types.AssetGroup{
			Name:       g.Name,
			SourcePath: filepath.Join(sourceRoot, g.Name),
			DestPath:   filepath.Join(destRoot, g.Name),
		})
	}
	return groups
}

// Entries returns every owned path, grouped in manifest order
func (m *Manifest) Entries(sourceRoot, destRoot string) []types.ManifestEntry {
	var entries []types.ManifestEntry
	for i, group := range m.AssetGroups(sourceRoot, destRoot) {
		for _, owned := range m.Groups[i].Owned {
			entries = append(entries, types.ManifestEntry{Group: group, RelPath: owned})
		}
	}
	return entries
}

// VerifyReport describes how the manifest and a source tree disagree
type VerifyReport struct {
	// Missing are owned entries that do not exist in the source tree
	Missing []types.ManifestEntry

	// Unowned are source files, as "<group>/<path>", that no owned entry
	// covers. Install copies them but uninstall would leave them behind.
	Unowned []string
}

// OK reports whether the manifest and the source tree agree
func (r VerifyReport) OK() bool {
	return len(r.Missing) == 0 && len(r.Unowned) == 0
}

// Verify compares the owned entries with the files under sourceRoot in
// both directions. Groups without a source directory contribute no
// unowned files.
func (m *Manifest) Verify(fsys types.FS, sourceRoot string) VerifyReport {
	var report VerifyReport
	for _, entry := range m.Entries(sourceRoot, "") {
		if !filesystem.Exists(fsys, entry.SourcePath()) {
			report.Missing = append(report.Missing, entry)
		}
	}

	for i, group := range m.AssetGroups(sourceRoot, "") {
		files, err := filesystem.ListFiles(fsys, group.SourcePath)
		if err != nil {
			continue
		}
		for _, f := range files {
			if !covered(m.Groups[i].Owned, f) {
				report.Unowned = append(report.Unowned, path.Join(group.Name, f))
			}
		}
	}
	return report
}

// covered reports whether file is an owned path or lies below an owned directory
func covered(owned []string, file string) bool {
	for _, o := range owned {
		if file == o || strings.HasPrefix(file, o+"/") {
			return true
		}
	}
	return false
}
