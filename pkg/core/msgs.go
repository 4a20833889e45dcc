package core

// Operator-facing messages
const (
	MsgInstallHeader      = "Installing into %s"
	MsgGroupLine          = "%s: %d file(s)"
	MsgGroupPresent       = " (already installed, will be merged)"
	MsgOverwriteHeader    = "The following files already exist and will be overwritten:"
	MsgOverwritePrompt    = "Overwrite these files? [y/N]: "
	MsgInstallCancelled   = "Installation cancelled. Nothing was changed."
	MsgNothingToInstall   = "No assets found to install in %s."
	MsgInstalledHeader    = "Installed %d asset group(s) into %s:"
	MsgRemoveHeader       = "The following installed entries will be removed from %s:"
	MsgRemovePrompt       = "Remove these entries? [y/N]: "
	MsgUninstallCancelled = "Uninstall cancelled. Nothing was removed."
	MsgNothingToRemove    = "Nothing to remove."
	MsgRemovedSummary     = "Removed %d of %d entries."
	MsgRemoveFailed       = "failed to remove %s: %v"
)
