// Package types defines the core types and interfaces used throughout agentkit.
// This includes the FS abstraction, the asset model (AssetGroup, ManifestEntry,
// ConflictRecord) and the run options and results passed between the CLI and
// the orchestrator.
package types
