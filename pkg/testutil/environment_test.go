// pkg/testutil/environment_test.go
// TEST TYPE: Unit Test
// PURPOSE: Test TestEnvironment orchestration

package testutil

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/vaultpull/pkg/paths"
)

func TestTestEnvironmentMemoryOnly(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)

	require.NotEmpty(t, env.VaultRoot)
	require.NotEmpty(t, env.ProjectRoot)

	mtime := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	path := env.VaultFile("Bases/tasks.base", "content", mtime)

	info, err := env.FS.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))

	assert.Equal(t, env.VaultRoot, os.Getenv(paths.EnvVaultRoot))
	assert.Equal(t, env.ProjectRoot, os.Getenv(paths.EnvProjectRoot))
}

func TestTestEnvironmentIsolated(t *testing.T) {
	env := NewTestEnvironment(t, EnvIsolated)

	mtime := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	env.ProjectFile("templates/Dashboard.md", "dash", mtime)

	assert.True(t, env.ProjectFileExists("templates/Dashboard.md"))
	assert.Equal(t, "dash", env.ReadProjectFile("templates/Dashboard.md"))
	assert.True(t, env.ProjectFileMtime("templates/Dashboard.md").Equal(mtime))

	// Isolated environments really live under the temp dir.
	_, err := os.Stat(env.VaultRoot)
	assert.NoError(t, err)
}
