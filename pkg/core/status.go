package core

import (
	"github.com/arthur-debert/agentkit/pkg/conflicts"
	"github.com/arthur-debert/agentkit/pkg/filesystem"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// Status reports, per manifest group, what the source provides and which
// owned entries are currently installed. It only reads the filesystem.
func (r *Runner) Status() ([]types.GroupStatus, error) {
	entries := r.manifest.Entries(r.sourceRoot, r.destRoot)
	existing, err := conflicts.FindExisting(r.fs, entries, r.destRoot)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(existing))
	for _, rec := range existing {
		present[rec.Entry.String()] = true
	}

	var statuses []types.GroupStatus
	for _, group := range r.manifest.AssetGroups(r.sourceRoot, r.destRoot) {
		gs := types.GroupStatus{
			Name:      group.Name,
			Installed: filesystem.Exists(r.fs, group.DestPath),
			Owned:     []string{},
			Present:   []string{},
		}
		if files, err := filesystem.ListFiles(r.fs, group.SourcePath); err == nil {
			gs.HasSource = true
			gs.SourceFiles = len(files)
		}
		for _, entry := range entries {
			if entry.Group.Name != group.Name {
				continue
			}
			gs.Owned = append(gs.Owned, entry.RelPath)
			if present[entry.String()] {
				gs.Present = append(gs.Present, entry.RelPath)
			}
		}
		statuses = append(statuses, gs)
	}
	return statuses, nil
}
