package core

import (
	"fmt"

	"github.com/arthur-debert/agentkit/pkg/conflicts"
	"github.com/arthur-debert/agentkit/pkg/copier"
	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/filesystem"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/style"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// Install copies every available asset group into the destination root
func (r *Runner) Install(autoConfirm bool) (*types.OperationResult, error) {
	logger := logging.GetLogger("core.install")
	done := logging.LogOperationStart(logger, "install")
	defer done()

	result := &types.OperationResult{Mode: types.ModeInstall}

	groups := r.availableGroups()
	if len(groups) == 0 {
		r.println(style.Muted(fmt.Sprintf(MsgNothingToInstall, r.sourceRoot)))
		result.Status = types.StatusNothingToDo
		return result, nil
	}

	r.println(style.Title(fmt.Sprintf(MsgInstallHeader, r.destRoot)))

	var candidates []types.ManifestEntry
	for _, group := range groups {
		files, err := filesystem.ListFiles(r.fs, group.SourcePath)
		if err != nil {
			return result, errors.Wrap(err, errors.ErrFileRead, "cannot list asset group").
				WithDetail("path", group.SourcePath).
				WithDetail("op", "list")
		}

		line := fmt.Sprintf(MsgGroupLine, group.Name, len(files))
		if filesystem.Exists(r.fs, group.DestPath) {
			line += MsgGroupPresent
		}
		r.println(style.Indent(line, 1))

		for _, f := range files {
			candidates = append(candidates, types.ManifestEntry{Group: group, RelPath: f})
		}
	}

	overwrites, err := conflicts.FindExisting(r.fs, candidates, r.destRoot)
	if err != nil {
		return result, err
	}
	logger.Debug().Int("files", len(candidates)).Int("overwrites", len(overwrites)).Msg("Checked for overwrites")

	if len(overwrites) > 0 {
		r.println("")
		r.println(style.Warning(MsgOverwriteHeader))
		for _, rec := range overwrites {
			r.listItem(rec.Entry.String())
		}
		ok, err := r.confirm(autoConfirm, MsgOverwritePrompt)
		if err != nil {
			return result, err
		}
		if !ok {
			r.println(style.Muted(MsgInstallCancelled))
			result.Status = types.StatusCancelled
			return result, nil
		}
	}

	if err := r.fs.MkdirAll(r.destRoot, 0755); err != nil {
		return result, errors.Wrap(err, errors.ErrDirCreate, "cannot create destination root").
			WithDetail("path", r.destRoot).
			WithDetail("op", "mkdir")
	}

	for _, group := range groups {
		result.Attempted = append(result.Attempted, group.Name)
		if err := copier.Copy(r.fs, group.SourcePath, group.DestPath); err != nil {
			logger.Error().Err(err).Str("group", group.Name).Msg("Copy failed")
			result.Failures = append(result.Failures, types.EntryFailure{Entry: group.Name, Err: err})
			return result, err
		}
		result.Groups = append(result.Groups, group.Name)
		result.Succeeded++
		logger.Info().Str("group", group.Name).Str("dest", group.DestPath).Msg("Installed group")
	}

	result.Status = types.StatusCompleted
	r.println("")
	r.println(style.Success(fmt.Sprintf(MsgInstalledHeader, len(result.Groups), r.destRoot)))
	for _, name := range result.Groups {
		r.listItem(name)
	}
	return result, nil
}

// availableGroups returns the manifest groups whose source directory exists
func (r *Runner) availableGroups() []types.AssetGroup {
	logger := logging.GetLogger("core.install")

	var groups []types.AssetGroup
	for _, group := range r.manifest.AssetGroups(r.sourceRoot, r.destRoot) {
		info, err := r.fs.Stat(group.SourcePath)
		if err != nil || !info.IsDir() {
			logger.Debug().Str("group", group.Name).Str("path", group.SourcePath).Msg("Skipping group without source directory")
			continue
		}
		groups = append(groups, group)
	}
	return groups
}
