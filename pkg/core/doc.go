// Package core sequences agentkit's install and uninstall flows.
//
// # Install
//
// Every manifest group whose source directory exists is included; groups
// without one are skipped. Each source file is checked against the
// destination root and, when any would be overwritten, the operator is asked
// to confirm unless auto-confirm is set. Declining leaves the filesystem
// untouched. Groups are then copied one after another; the first failure
// stops the run and groups already copied stay in place.
//
// # Uninstall
//
// Only the paths the manifest lists as owned are candidates. Those that
// exist are listed, confirmed, and removed one by one. A failed removal is
// recorded and the remaining entries are still attempted. Group directories
// left empty afterwards are removed too, so install followed by uninstall
// leaves the destination root as it was.
//
// Both flows return a types.OperationResult whose Status distinguishes a
// completed run from a cancelled one and from a run with nothing to do.
package core
