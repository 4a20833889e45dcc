package types

// Mode selects which flow the orchestrator runs
type Mode string

const (
	// ModeInstall copies every available asset group into the destination root
	ModeInstall Mode = "install"

	// ModeUninstall removes the manifest's owned entries from the destination root
	ModeUninstall Mode = "uninstall"
)

// RunOptions is passed explicitly into the orchestrator instead of being read
// from process-wide flag state.
type RunOptions struct {
	AutoConfirm bool
	Mode        Mode
}
