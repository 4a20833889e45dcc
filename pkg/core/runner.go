package core

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/manifest"
	"github.com/arthur-debert/agentkit/pkg/style"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/arthur-debert/agentkit/pkg/ui/confirmations"
)

// Options configures a Runner
type Options struct {
	FS         types.FS
	Manifest   *manifest.Manifest
	SourceRoot string
	DestRoot   string

	// Confirmer defaults to a console dialog on stdin
	Confirmer confirmations.Confirmer

	// Out receives the operator narrative; defaults to stdout
	Out io.Writer
}

// Runner executes the install and uninstall flows against one source root
// and one destination root
type Runner struct {
	fs         types.FS
	manifest   *manifest.Manifest
	sourceRoot string
	destRoot   string
	confirmer  confirmations.Confirmer
	out        io.Writer
}

// NewRunner creates a Runner from opts
func NewRunner(opts Options) *Runner {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	confirmer := opts.Confirmer
	if confirmer == nil {
		confirmer = confirmations.NewConsoleDialog(os.Stdin, out)
	}
	return &Runner{
		fs:         opts.FS,
		manifest:   opts.Manifest,
		sourceRoot: opts.SourceRoot,
		destRoot:   opts.DestRoot,
		confirmer:  confirmer,
		out:        out,
	}
}

// Run dispatches to the flow selected by opts.Mode
func (r *Runner) Run(opts types.RunOptions) (*types.OperationResult, error) {
	switch opts.Mode {
	case types.ModeInstall, "":
		return r.Install(opts.AutoConfirm)
	case types.ModeUninstall:
		return r.Uninstall(opts.AutoConfirm)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown mode %q", opts.Mode)
	}
}

// confirm asks the operator unless auto is set
func (r *Runner) confirm(auto bool, prompt string) (bool, error) {
	if auto {
		return true, nil
	}
	ok, err := r.confirmer.Confirm(prompt)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrInvalidInput, "failed to read confirmation")
	}
	return ok, nil
}

func (r *Runner) println(s string) {
	fmt.Fprintln(r.out, s)
}

func (r *Runner) listItem(s string) {
	fmt.Fprintln(r.out, style.Indent("- "+style.Path(s), 1))
}
