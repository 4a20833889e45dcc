// Package config handles configuration management for agentkit.
// It layers the embedded defaults, the user TOML file, AGENTKIT_*
// environment variables and command-line flags, in that order.
package config
