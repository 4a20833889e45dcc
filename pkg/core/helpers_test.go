package core

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/agentkit/pkg/filesystem"
	"github.com/arthur-debert/agentkit/pkg/manifest"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/arthur-debert/agentkit/pkg/ui/confirmations"
	"github.com/stretchr/testify/require"
)

const testManifest = `
[[groups]]
name = "commands"
owned = ["review.md", "plan.md", "commit.md"]

[[groups]]
name = "skills"
owned = ["code-review"]
`

// testEnv is a source tree and destination root on the real filesystem
type testEnv struct {
	t          *testing.T
	SourceRoot string
	DestRoot   string
	Out        *bytes.Buffer
	FS         types.FS
	Manifest   *manifest.Manifest
}

func newTestEnv(t *testing.T, manifestTOML string) *testEnv {
	t.Helper()
	root := t.TempDir()
	m, err := manifest.Parse([]byte(manifestTOML))
	require.NoError(t, err)
	return &testEnv{
		t:          t,
		SourceRoot: filepath.Join(root, "assets"),
		DestRoot:   filepath.Join(root, "home", ".claude"),
		Out:        &bytes.Buffer{},
		FS:         filesystem.NewOS(),
		Manifest:   m,
	}
}

// withDefaultAssets lays out 3 commands and one skill directory with 2 files
func (e *testEnv) withDefaultAssets() *testEnv {
	e.writeSource("commands/review.md", "review body")
	e.writeSource("commands/plan.md", "plan body")
	e.writeSource("commands/commit.md", "commit body")
	e.writeSource("skills/code-review/SKILL.md", "skill body")
	e.writeSource("skills/code-review/checklist.md", "checklist body")
	return e
}

func (e *testEnv) writeSource(rel, content string) {
	e.t.Helper()
	writeAt(e.t, filepath.Join(e.SourceRoot, filepath.FromSlash(rel)), content)
}

func (e *testEnv) writeDest(rel, content string) {
	e.t.Helper()
	writeAt(e.t, filepath.Join(e.DestRoot, filepath.FromSlash(rel)), content)
}

func (e *testEnv) destPath(rel string) string {
	return filepath.Join(e.DestRoot, filepath.FromSlash(rel))
}

func (e *testEnv) runner(confirmer confirmations.Confirmer) *Runner {
	return NewRunner(Options{
		FS:         e.FS,
		Manifest:   e.Manifest,
		SourceRoot: e.SourceRoot,
		DestRoot:   e.DestRoot,
		Confirmer:  confirmer,
		Out:        e.Out,
	})
}

// answering returns a console dialog fed with the given input
func (e *testEnv) answering(input string) confirmations.Confirmer {
	return confirmations.NewConsoleDialog(strings.NewReader(input), e.Out)
}

func writeAt(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// snapshot captures every path under root with file contents and mod times
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	snap := make(map[string]string)
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return snap
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		info, err := d.Info()
		if err != nil {
			return err
		}
		if d.IsDir() {
			snap[rel] = "dir " + info.ModTime().String()
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snap[rel] = string(data) + " " + info.ModTime().String()
		return nil
	})
	require.NoError(t, err)
	return snap
}

// neverAsk fails the test if a prompt is shown
type neverAsk struct{ t *testing.T }

func (n neverAsk) Confirm(prompt string) (bool, error) {
	n.t.Errorf("unexpected prompt: %q", prompt)
	return false, nil
}

// faultyFS fails writes or removals of paths containing failOn
type faultyFS struct {
	types.FS
	failOn string
}

func (f *faultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if strings.Contains(name, f.failOn) {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrPermission}
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *faultyFS) Remove(name string) error {
	if strings.Contains(name, f.failOn) {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrPermission}
	}
	return f.FS.Remove(name)
}

func (f *faultyFS) RemoveAll(name string) error {
	if strings.Contains(name, f.failOn) {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrPermission}
	}
	return f.FS.RemoveAll(name)
}

// tree returns the content of every file under root keyed by slash path
func tree(t *testing.T, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return files
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}
