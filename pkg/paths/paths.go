package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/agentkit/pkg/errors"
)

// Environment variable names
const (
	// EnvSourceRoot points at the directory holding the asset groups
	EnvSourceRoot = "AGENTKIT_SOURCE_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name for agentkit-specific files
	AppDirName = "agentkit"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the append-only log file
	LogFileName = "agentkit.log"

	// AssetsDirName is the conventional source directory inside a repository
	AssetsDirName = "assets"

	// DefaultDestRoot is the per-user directory assets are installed into
	DefaultDestRoot = "~/.claude"
)

// ConfigFile returns the default location of the user configuration file
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// LogFile returns the location of the log file under the XDG state dir.
// XDG_STATE_HOME is re-read so a changed environment is honoured.
func LogFile() string {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, AppDirName, LogFileName)
	}
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}

// ResolveDestRoot expands ~ and makes the destination root absolute
func ResolveDestRoot(destRoot string) (string, error) {
	if destRoot == "" {
		destRoot = DefaultDestRoot
	}
	abs, err := filepath.Abs(ExpandHome(destRoot))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for destination root").
			WithDetail("path", destRoot)
	}
	return abs, nil
}

// FindSourceRoot returns the directory holding the asset groups. The bool
// result is true when no configured or repository location was found and
// the current directory was used instead.
func FindSourceRoot(configured string) (string, bool, error) {
	if configured == "" {
		configured = os.Getenv(EnvSourceRoot)
	}
	if configured != "" {
		abs, err := filepath.Abs(ExpandHome(configured))
		if err != nil {
			return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for source root").
				WithDetail("path", configured)
		}
		return abs, false, nil
	}

	if gitRoot, err := findGitRoot(); err == nil {
		candidate := filepath.Join(gitRoot, AssetsDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, false, nil
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}
	return filepath.Join(cwd, AssetsDirName), true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	// ~user forms are left alone
	return path
}
