package core

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/agentkit/pkg/conflicts"
	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/remover"
	"github.com/arthur-debert/agentkit/pkg/style"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// Uninstall removes the manifest's owned entries from the destination root.
// Each removal is independent: failures are collected and returned together
// after every entry has been attempted.
func (r *Runner) Uninstall(autoConfirm bool) (*types.OperationResult, error) {
	logger := logging.GetLogger("core.uninstall")
	done := logging.LogOperationStart(logger, "uninstall")
	defer done()

	result := &types.OperationResult{Mode: types.ModeUninstall}

	entries := r.manifest.Entries(r.sourceRoot, r.destRoot)
	existing, err := conflicts.FindExisting(r.fs, entries, r.destRoot)
	if err != nil {
		return result, err
	}

	if len(existing) == 0 {
		r.println(style.Muted(MsgNothingToRemove))
		result.Status = types.StatusNothingToDo
		return result, nil
	}

	r.println(style.Warning(fmt.Sprintf(MsgRemoveHeader, r.destRoot)))
	for _, rec := range existing {
		r.listItem(rec.Entry.String())
	}

	ok, err := r.confirm(autoConfirm, MsgRemovePrompt)
	if err != nil {
		return result, err
	}
	if !ok {
		r.println(style.Muted(MsgUninstallCancelled))
		result.Status = types.StatusCancelled
		return result, nil
	}

	var errs []error
	for _, rec := range existing {
		name := rec.Entry.String()
		result.Attempted = append(result.Attempted, name)

		removed, err := remover.Remove(r.fs, rec.Path)
		if err != nil {
			logger.Error().Err(err).Str("entry", name).Msg("Remove failed")
			r.println(style.Error(fmt.Sprintf(MsgRemoveFailed, name, err)))
			result.Failures = append(result.Failures, types.EntryFailure{Entry: name, Err: err})
			errs = append(errs, err)
			continue
		}
		if removed {
			result.Succeeded++
			r.pruneEmptyParents(rec.Path)
		}
	}

	result.Status = types.StatusCompleted
	summary := fmt.Sprintf(MsgRemovedSummary, result.Succeeded, len(result.Attempted))
	if len(errs) > 0 {
		r.println(style.Error(summary))
		return result, errors.Wrapf(errors.Join(errs...), errors.ErrFileRemove,
			"failed to remove %d of %d entries", len(errs), len(result.Attempted))
	}
	r.println(style.Success(summary))
	return result, nil
}

// pruneEmptyParents removes the now-empty directories between a removed
// path and the destination root. The destination root itself is kept.
func (r *Runner) pruneEmptyParents(removed string) {
	logger := logging.GetLogger("core.uninstall")

	root := filepath.Clean(r.destRoot)
	for dir := filepath.Dir(removed); dir != root && len(dir) > len(root); dir = filepath.Dir(dir) {
		entries, err := r.fs.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := r.fs.Remove(dir); err != nil {
			logger.Debug().Err(err).Str("path", dir).Msg("Could not prune empty directory")
			return
		}
		logger.Debug().Str("path", dir).Msg("Pruned empty directory")
	}
}
