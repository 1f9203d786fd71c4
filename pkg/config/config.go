package config

import (
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/vaultpull/pkg/errors"
	"github.com/arthur-debert/vaultpull/pkg/types"
)

// Vault holds the vault-side configuration
type Vault struct {
	// Root is the mounted vault directory. Empty defers to VAULT_ROOT / --vault.
	Root string `koanf:"root" toml:"root"`
}

// Project holds the project-side configuration
type Project struct {
	// Root is the project tree receiving templates. Empty defers to
	// PROJECT_ROOT, then git-root discovery, then the cwd fallback.
	Root string `koanf:"root" toml:"root"`
}

// Service identifies the long-running consumer of the pulled templates
type Service struct {
	Name string `koanf:"name" toml:"name"`
}

// Config is the main configuration structure
type Config struct {
	Vault     Vault           `koanf:"vault" toml:"vault"`
	Project   Project         `koanf:"project" toml:"project"`
	Discovery types.Discovery `koanf:"discovery" toml:"discovery"`
	Entries   []types.Rule    `koanf:"entries" toml:"entries"`
	Service   Service         `koanf:"service" toml:"service"`
}

// Validate checks the configuration for values the sync run cannot work with.
func (c *Config) Validate() error {
	if c.Discovery.Dir != "" {
		if c.Discovery.Suffix == "" {
			return errors.New(errors.ErrConfigValid, "discovery.suffix must be set when discovery.dir is set")
		}
		if !strings.HasPrefix(c.Discovery.Suffix, ".") {
			return errors.Newf(errors.ErrConfigValid, "discovery.suffix %q must start with a dot", c.Discovery.Suffix)
		}
		if c.Discovery.Dest == "" {
			return errors.New(errors.ErrConfigValid, "discovery.dest must be set when discovery.dir is set")
		}
		if escapesRoot(c.Discovery.Dir) || escapesRoot(c.Discovery.Dest) {
			return errors.New(errors.ErrConfigValid, "discovery paths must stay inside the vault and project roots")
		}
	}

	for _, e := range c.Entries {
		if e.Source == "" || e.Dest == "" {
			return errors.Newf(errors.ErrConfigValid, "entry %q -> %q: source and dest must both be set", e.Source, e.Dest)
		}
		if escapesRoot(e.Source) || escapesRoot(e.Dest) {
			return errors.Newf(errors.ErrConfigValid, "entry %q -> %q: paths must stay inside the vault and project roots", e.Source, e.Dest)
		}
	}

	return nil
}

// escapesRoot reports whether a configured path is absolute or walks out
// of the root it is joined onto.
func escapesRoot(path string) bool {
	if filepath.IsAbs(path) {
		return true
	}
	clean := filepath.Clean(path)
	return clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator))
}

// Dump renders the effective configuration as TOML, for `vaultpull config`.
func Dump(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return string(out), nil
}
