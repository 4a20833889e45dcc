// Package paths provides centralized path handling for agentkit.
//
// It handles:
//
//   - Source root discovery (where the asset groups live)
//   - Destination root expansion (where assets are installed)
//   - The location of the user configuration file
//
// # Environment Variables
//
//   - AGENTKIT_SOURCE_ROOT: location of the asset groups
//   - XDG_CONFIG_HOME: base of the user configuration file
//     ($XDG_CONFIG_HOME/agentkit/config.toml)
//
// # Source root discovery
//
// An explicitly configured root wins. Otherwise the assets/ directory at the
// top of the current git repository is used, and finally assets/ under the
// current working directory. The last case is reported as a fallback so the
// CLI can warn about it.
package paths
