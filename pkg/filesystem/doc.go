// Package filesystem provides filesystem implementations for agentkit.
//
// This package contains implementations of the types.FS interface, the
// real OS filesystem and an afero-backed one used by tests, plus helpers
// that walk a tree through that interface.
package filesystem
