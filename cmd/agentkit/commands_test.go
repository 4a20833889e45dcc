// cmd/agentkit/commands_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: real filesystem in temp dirs
// PURPOSE: Test the command line surface end to end

package agentkit

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type cliEnv struct {
	t          *testing.T
	sourceRoot string
	destRoot   string
	configFile string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	root := t.TempDir()
	e := &cliEnv{
		t:          t,
		sourceRoot: filepath.Join(root, "assets"),
		destRoot:   filepath.Join(root, "home", ".claude"),
		configFile: filepath.Join(root, "config.toml"),
	}
	require.NoError(t, os.WriteFile(e.configFile, nil, 0644))

	e.write(e.sourceRoot, "commands/review.md", "# Review\n\nReview the current diff carefully.\n")
	e.write(e.sourceRoot, "commands/plan.md", "# Plan\n")
	e.write(e.sourceRoot, "commands/commit.md", "# Commit\n")
	e.write(e.sourceRoot, "skills/code-review/SKILL.md", "# Code review\n")
	e.write(e.sourceRoot, "skills/code-review/checklist.md", "- tests\n")
	return e
}

func (e *cliEnv) write(root, rel, content string) {
	e.t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(e.t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0644))
}

func (e *cliEnv) read(root, rel string) string {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(e.t, err)
	return string(data)
}

// run executes the root command with the env's roots and returns stdout
func (e *cliEnv) run(stdin string, args ...string) (string, error) {
	e.t.Helper()
	var out, errOut bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{
		"--config=" + e.configFile,
		"--source=" + e.sourceRoot,
		"--dest=" + e.destRoot,
	}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestInstallCommand(t *testing.T) {
	e := newCLIEnv(t)

	out, err := e.run("", "-y")
	require.NoError(t, err)

	assert.Contains(t, out, "Installed 2 asset group(s)")
	assert.Equal(t, e.read(e.sourceRoot, "commands/review.md"), e.read(e.destRoot, "commands/review.md"))
	assert.Equal(t, "- tests\n", e.read(e.destRoot, "skills/code-review/checklist.md"))
}

func TestInstallCommandDeclined(t *testing.T) {
	e := newCLIEnv(t)
	e.write(e.destRoot, "commands/review.md", "my own review")

	out, err := e.run("n\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Overwrite these files?")
	assert.Contains(t, out, "Installation cancelled")
	assert.Equal(t, "my own review", e.read(e.destRoot, "commands/review.md"))
	assert.NoFileExists(t, filepath.Join(e.destRoot, "commands", "plan.md"))
}

func TestInstallCommandAccepted(t *testing.T) {
	e := newCLIEnv(t)
	e.write(e.destRoot, "commands/review.md", "my own review")

	_, err := e.run("y\n")
	require.NoError(t, err)

	assert.Equal(t, e.read(e.sourceRoot, "commands/review.md"), e.read(e.destRoot, "commands/review.md"))
}

func TestUninstallCommand(t *testing.T) {
	e := newCLIEnv(t)
	_, err := e.run("", "-y")
	require.NoError(t, err)
	e.write(e.destRoot, "commands/mine.md", "keep me")

	out, err := e.run("", "--uninstall", "--auto-override")
	require.NoError(t, err)

	assert.Contains(t, out, "Removed 4 of 4 entries.")
	assert.NoFileExists(t, filepath.Join(e.destRoot, "commands", "review.md"))
	assert.NoDirExists(t, filepath.Join(e.destRoot, "skills"))
	assert.Equal(t, "keep me", e.read(e.destRoot, "commands/mine.md"))
}

func TestUninstallCommandNothingToRemove(t *testing.T) {
	e := newCLIEnv(t)

	out, err := e.run("", "--uninstall")
	require.NoError(t, err)

	assert.Contains(t, out, "Nothing to remove.")
	assert.NoDirExists(t, e.destRoot)
}

func TestRootCommandRejectsArguments(t *testing.T) {
	e := newCLIEnv(t)

	_, err := e.run("", "commands")
	assert.Error(t, err)
	assert.NoDirExists(t, e.destRoot)
}

func TestListCommand(t *testing.T) {
	e := newCLIEnv(t)
	e.write(e.destRoot, "commands/review.md", "installed")

	t.Run("text", func(t *testing.T) {
		out, err := e.run("", "list")
		require.NoError(t, err)

		assert.Contains(t, out, "commands (3 file(s) in source)")
		assert.Contains(t, out, "1 of 3 owned entries present")
		assert.Contains(t, out, "skills (2 file(s) in source)")
		assert.Contains(t, out, "0 of 1 owned entries present")
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := e.run("", "list", "--format", "yaml")
		require.NoError(t, err)

		var statuses []types.GroupStatus
		require.NoError(t, yaml.Unmarshal([]byte(out), &statuses))
		require.Len(t, statuses, 2)
		assert.Equal(t, "commands", statuses[0].Name)
		assert.True(t, statuses[0].Installed)
		assert.Equal(t, []string{"review.md"}, statuses[0].Present)
		assert.Equal(t, "skills", statuses[1].Name)
		assert.False(t, statuses[1].Installed)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := e.run("", "list", "--format", "json")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestVerifyCommand(t *testing.T) {
	e := newCLIEnv(t)

	out, err := e.run("", "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "Manifest matches")

	require.NoError(t, os.Remove(filepath.Join(e.sourceRoot, "commands", "plan.md")))

	out, err = e.run("", "verify")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestDrift))
	assert.Contains(t, out, "commands/plan.md")
}

func TestVerifyCommandReportsUnownedFiles(t *testing.T) {
	e := newCLIEnv(t)
	e.write(e.sourceRoot, "commands/new.md", "# New\n")

	out, err := e.run("", "verify")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestDrift))
	assert.Contains(t, out, "not listed as owned")
	assert.Contains(t, out, "commands/new.md")
}

func TestShowCommand(t *testing.T) {
	e := newCLIEnv(t)

	t.Run("markdown file", func(t *testing.T) {
		out, err := e.run("", "show", "commands/review.md")
		require.NoError(t, err)
		assert.Contains(t, out, "Review the current diff carefully.")
	})

	t.Run("directory", func(t *testing.T) {
		out, err := e.run("", "show", "skills/code-review")
		require.NoError(t, err)
		assert.Contains(t, out, "SKILL.md")
		assert.Contains(t, out, "checklist.md")
	})

	tests := []struct {
		name string
		arg  string
		code errors.ErrorCode
	}{
		{name: "escaping path", arg: "../secrets.md", code: errors.ErrInvalidInput},
		{name: "absolute path", arg: "/etc/passwd", code: errors.ErrInvalidInput},
		{name: "unknown group", arg: "agents/x.md", code: errors.ErrInvalidInput},
		{name: "missing file", arg: "commands/nope.md", code: errors.ErrFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.run("", "show", tt.arg)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestConfigFileSetsRoots(t *testing.T) {
	e := newCLIEnv(t)
	config := "source_root = \"" + filepath.ToSlash(e.sourceRoot) + "\"\n" +
		"dest_root = \"" + filepath.ToSlash(e.destRoot) + "\"\n"
	require.NoError(t, os.WriteFile(e.configFile, []byte(config), 0644))

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"--config=" + e.configFile, "-y"})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(e.destRoot, "commands", "commit.md"))
}

func TestVersionCommand(t *testing.T) {
	e := newCLIEnv(t)

	out, err := e.run("", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "agentkit version")
}

func TestCompletionCommand(t *testing.T) {
	e := newCLIEnv(t)

	out, err := e.run("", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "agentkit")
}

func TestPipedStdinAutoConfirms(t *testing.T) {
	e := newCLIEnv(t)
	e.write(e.destRoot, "commands/review.md", "my own review")

	stdinPath := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(stdinPath, []byte("n\n"), 0644))
	stdin, err := os.Open(stdinPath)
	require.NoError(t, err)
	defer func() { _ = stdin.Close() }()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(stdin)
	cmd.SetArgs([]string{
		"--config=" + e.configFile,
		"--source=" + e.sourceRoot,
		"--dest=" + e.destRoot,
	})
	require.NoError(t, cmd.Execute())

	assert.NotContains(t, out.String(), "Overwrite these files?")
	assert.Contains(t, out.String(), "Installed 2 asset group(s)")
	assert.Equal(t, e.read(e.sourceRoot, "commands/review.md"), e.read(e.destRoot, "commands/review.md"))
}

func TestBrokenConfig(t *testing.T) {
	e := newCLIEnv(t)
	require.NoError(t, os.WriteFile(e.configFile, []byte("dest_root = "), 0644))

	t.Run("install fails", func(t *testing.T) {
		_, err := e.run("", "-y")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
		assert.NoDirExists(t, e.destRoot)
	})

	t.Run("completion still works", func(t *testing.T) {
		out, err := e.run("", "completion", "zsh")
		require.NoError(t, err)
		assert.Contains(t, out, "agentkit")
	})

	t.Run("version still works", func(t *testing.T) {
		out, err := e.run("", "version")
		require.NoError(t, err)
		assert.Contains(t, out, "agentkit version")
	})
}
