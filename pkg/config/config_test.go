package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/vaultpull/pkg/errors"
	"github.com/arthur-debert/vaultpull/pkg/types"
)

func TestLoadLayering(t *testing.T) {
	t.Run("loads_embedded_defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "Bases", cfg.Discovery.Dir)
		assert.Equal(t, ".base", cfg.Discovery.Suffix)
		assert.Equal(t, "templates/bases", cfg.Discovery.Dest)
		assert.Equal(t, "collector", cfg.Service.Name)

		require.Len(t, cfg.Entries, 2)
		assert.Equal(t, "Dashboard.md", cfg.Entries[0].Source)
		assert.Equal(t, "templates/Dashboard.md", cfg.Entries[0].Dest)
	})

	t.Run("project_file_overrides_defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, ".vaultpull.toml")
		err := os.WriteFile(configFile, []byte(`
[vault]
root = "/mnt/vault"

[discovery]
dir = "Queries"
suffix = ".query"
dest = "templates/queries"

[[entries]]
source = "Notes/Index.md"
dest = "templates/Index.md"
`), 0644)
		require.NoError(t, err)

		cfg, err := Load(tmpDir)
		require.NoError(t, err)

		assert.Equal(t, "/mnt/vault", cfg.Vault.Root)
		assert.Equal(t, "Queries", cfg.Discovery.Dir)
		assert.Equal(t, ".query", cfg.Discovery.Suffix)

		// Arrays replace, they do not append: the project file owns the
		// explicit entry list once it declares one.
		require.Len(t, cfg.Entries, 1)
		assert.Equal(t, "Notes/Index.md", cfg.Entries[0].Source)

		// Untouched sections keep their defaults.
		assert.Equal(t, "collector", cfg.Service.Name)
	})

	t.Run("accepts_yaml_config", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, ".vaultpull.yaml")
		err := os.WriteFile(configFile, []byte(`
vault:
  root: /mnt/vault-yaml
discovery:
  dir: Bases
  suffix: .base
  dest: out/bases
`), 0644)
		require.NoError(t, err)

		cfg, err := Load(tmpDir)
		require.NoError(t, err)

		assert.Equal(t, "/mnt/vault-yaml", cfg.Vault.Root)
		assert.Equal(t, "out/bases", cfg.Discovery.Dest)
	})

	t.Run("dotted_file_wins_over_plain", func(t *testing.T) {
		tmpDir := t.TempDir()
		err := os.WriteFile(filepath.Join(tmpDir, ".vaultpull.toml"), []byte(`
[service]
name = "dotted"
`), 0644)
		require.NoError(t, err)
		err = os.WriteFile(filepath.Join(tmpDir, "vaultpull.toml"), []byte(`
[service]
name = "plain"
`), 0644)
		require.NoError(t, err)

		cfg, err := Load(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, "dotted", cfg.Service.Name)
	})

	t.Run("environment_overrides_file", func(t *testing.T) {
		tmpDir := t.TempDir()
		err := os.WriteFile(filepath.Join(tmpDir, ".vaultpull.toml"), []byte(`
[vault]
root = "/from/file"
`), 0644)
		require.NoError(t, err)

		t.Setenv("VAULTPULL_VAULT__ROOT", "/from/env")
		t.Setenv("VAULTPULL_SERVICE__NAME", "indexer")

		cfg, err := Load(tmpDir)
		require.NoError(t, err)

		assert.Equal(t, "/from/env", cfg.Vault.Root)
		assert.Equal(t, "indexer", cfg.Service.Name)
	})

	t.Run("rejects_malformed_toml", func(t *testing.T) {
		tmpDir := t.TempDir()
		err := os.WriteFile(filepath.Join(tmpDir, ".vaultpull.toml"), []byte(`[vault`), 0644)
		require.NoError(t, err)

		_, err = Load(tmpDir)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Discovery: types.Discovery{Dir: "Bases", Suffix: ".base", Dest: "templates/bases"},
			Entries: []types.Rule{
				{Source: "Dashboard.md", Dest: "templates/Dashboard.md"},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid_config",
			mutate: func(c *Config) {},
		},
		{
			name:   "discovery_disabled_is_fine",
			mutate: func(c *Config) { c.Discovery = types.Discovery{} },
		},
		{
			name:    "suffix_missing_dot",
			mutate:  func(c *Config) { c.Discovery.Suffix = "base" },
			wantErr: true,
		},
		{
			name:    "discovery_without_dest",
			mutate:  func(c *Config) { c.Discovery.Dest = "" },
			wantErr: true,
		},
		{
			name:    "absolute_discovery_dir",
			mutate:  func(c *Config) { c.Discovery.Dir = "/etc/bases" },
			wantErr: true,
		},
		{
			name:    "entry_missing_dest",
			mutate:  func(c *Config) { c.Entries[0].Dest = "" },
			wantErr: true,
		},
		{
			name:    "absolute_entry_source",
			mutate:  func(c *Config) { c.Entries[0].Source = "/vault/Dashboard.md" },
			wantErr: true,
		},
		{
			name:    "entry_dest_escapes_project",
			mutate:  func(c *Config) { c.Entries[0].Dest = "../outside/Dashboard.md" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()
	require.NotEmpty(t, content)

	// Section headers survive uncommented so the file stays navigable.
	assert.Contains(t, content, "[discovery]")
	assert.Contains(t, content, "[[entries]]")

	// Value lines come out commented; nothing in the generated file is
	// active until the user uncomments it.
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "["),
			"unexpected active line in generated config: %q", line)
	}
}

func TestDump(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	out, err := Dump(cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "[discovery]")
	assert.Contains(t, out, "suffix = '.base'")
	assert.Contains(t, out, "[[entries]]")
}
