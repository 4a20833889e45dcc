package agentkit

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install agent commands and skills into your agent directory"
	MsgListShort       = "Show asset groups and what is installed"
	MsgVerifyShort     = "Check the manifest against the source tree"
	MsgShowShort       = "Render an asset in the terminal"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgGroupHeader      = "%s (%d file(s) in source)"
	MsgGroupNoSource    = "%s (no source directory)"
	MsgGroupInstalled   = "installed"
	MsgGroupNotPresent  = "not installed"
	MsgOwnedPresent     = "%d of %d owned entries present"
	MsgVerifyOK         = "Manifest matches %s (%d owned entries)."
	MsgVerifyMissing    = "Owned entries missing from %s:"
	MsgVerifyUnowned    = "Files in %s not listed as owned in the manifest:"
	MsgShowDirHeader    = "%s contains:"
	MsgVersionFormat    = "agentkit version %s\n  commit: %s\n  built:  %s\n"
	MsgDebugRoots       = "Resolved roots"
	MsgRunFinished      = "Run finished"
	MsgCommandStarted   = "Command started"
	MsgFormatText       = "text"
	MsgFormatYAML       = "yaml"

	// Error messages
	MsgErrUnknownFormat = "unknown output format %q (expected text or yaml)"
	MsgErrManifestDrift = "manifest drift: %d owned entries missing, %d source files unowned"
	MsgErrShowPath      = "path must be relative to the source root and start with a group name"
	MsgErrNotAGroup     = "%q is not an asset group"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagAutoOverride = "Do not ask for confirmation before overwriting or removing"
	MsgFlagUninstall    = "Remove the installed entries instead of installing"
	MsgFlagSource       = "Directory holding the asset groups (default: <repo>/assets)"
	MsgFlagDest         = "Destination directory (default: ~/.claude)"
	MsgFlagConfig       = "Config file (default: $XDG_CONFIG_HOME/agentkit/config.toml)"
	MsgFlagFormat       = "Output format: text or yaml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/verify-long.txt
	msgVerifyLongRaw string
	MsgVerifyLong    = strings.TrimSpace(msgVerifyLongRaw)

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/show-example.txt
	msgShowExampleRaw string
	MsgShowExample    = strings.TrimRight(msgShowExampleRaw, "\n")

	//go:embed msgs/fallback-warning.txt
	msgFallbackWarningRaw string
	MsgFallbackWarning    = strings.TrimSpace(msgFallbackWarningRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
