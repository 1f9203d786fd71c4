// pkg/testutil/environment.go
// PURPOSE: Orchestrate test environments with a vault, a project tree,
// and a filesystem, in memory or isolated on disk.

package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/vaultpull/pkg/filesystem"
	"github.com/arthur-debert/vaultpull/pkg/paths"
	"github.com/arthur-debert/vaultpull/pkg/types"
)

// EnvType defines the type of test environment.
type EnvType int

const (
	// EnvMemoryOnly runs on an in-memory filesystem; nothing touches disk.
	EnvMemoryOnly EnvType = iota
	// EnvIsolated runs on the real filesystem inside t.TempDir().
	EnvIsolated
)

// TestEnvironment provides a vault and a project tree plus the matching
// filesystem and environment variables.
type TestEnvironment struct {
	VaultRoot   string
	ProjectRoot string
	HomeDir     string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a test environment of the given type. The
// vault and project roots exist afterwards, and VAULT_ROOT / PROJECT_ROOT
// point at them for code that resolves roots from the environment.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.VaultRoot = "/virtual/vault"
		env.ProjectRoot = "/virtual/project"
		env.HomeDir = "/virtual/home"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		tempDir := t.TempDir()
		env.VaultRoot = filepath.Join(tempDir, "vault")
		env.ProjectRoot = filepath.Join(tempDir, "project")
		env.HomeDir = filepath.Join(tempDir, "home")
		env.FS = filesystem.NewOS()
	}

	require.NoError(t, env.FS.MkdirAll(env.VaultRoot, 0755))
	require.NoError(t, env.FS.MkdirAll(env.ProjectRoot, 0755))
	require.NoError(t, env.FS.MkdirAll(env.HomeDir, 0755))

	t.Setenv(paths.EnvVaultRoot, env.VaultRoot)
	t.Setenv(paths.EnvProjectRoot, env.ProjectRoot)
	if envType == EnvIsolated {
		t.Setenv("HOME", env.HomeDir)
		t.Setenv("XDG_STATE_HOME", filepath.Join(env.HomeDir, ".local", "state"))
	}

	return env
}

// VaultFile writes a file under the vault root and pins its mtime.
// Returns the absolute path.
func (env *TestEnvironment) VaultFile(rel, content string, mtime time.Time) string {
	env.t.Helper()
	return env.writeFile(filepath.Join(env.VaultRoot, rel), content, mtime)
}

// ProjectFile writes a file under the project root and pins its mtime.
// Returns the absolute path.
func (env *TestEnvironment) ProjectFile(rel, content string, mtime time.Time) string {
	env.t.Helper()
	return env.writeFile(filepath.Join(env.ProjectRoot, rel), content, mtime)
}

func (env *TestEnvironment) writeFile(path, content string, mtime time.Time) string {
	env.t.Helper()
	require.NoError(env.t, env.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.t, env.FS.WriteFile(path, []byte(content), 0644))
	require.NoError(env.t, env.FS.Chtimes(path, mtime, mtime))
	return path
}

// ReadProjectFile returns the content of a file under the project root.
func (env *TestEnvironment) ReadProjectFile(rel string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(filepath.Join(env.ProjectRoot, rel))
	require.NoError(env.t, err)
	return string(data)
}

// ProjectFileExists reports whether a file exists under the project root.
func (env *TestEnvironment) ProjectFileExists(rel string) bool {
	env.t.Helper()
	_, err := env.FS.Stat(filepath.Join(env.ProjectRoot, rel))
	return err == nil
}

// ProjectFileMtime returns the mtime of a file under the project root.
func (env *TestEnvironment) ProjectFileMtime(rel string) time.Time {
	env.t.Helper()
	info, err := env.FS.Stat(filepath.Join(env.ProjectRoot, rel))
	require.NoError(env.t, err)
	return info.ModTime()
}
