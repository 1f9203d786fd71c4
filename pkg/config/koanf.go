package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/vaultpull/pkg/errors"
)

// EnvPrefix is the prefix for environment overrides. A double underscore
// separates sections: VAULTPULL_VAULT__ROOT sets vault.root.
const EnvPrefix = "VAULTPULL_"

// DefaultFileName is the config file gen-config writes and the first
// name Load looks for.
const DefaultFileName = ".vaultpull.toml"

// configFileNames are tried in order inside the project root; the first
// hit wins. TOML is the native format, YAML is accepted for vaults that
// already keep YAML tooling around.
var configFileNames = []string{
	DefaultFileName,
	"vaultpull.toml",
	".vaultpull.yaml",
	"vaultpull.yaml",
}

// Load builds the effective configuration: embedded defaults, then the
// project config file (if any), then VAULTPULL_* environment variables.
func Load(projectRoot string) (*Config, error) {
	k, err := loadKoanf(projectRoot)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadKoanf performs the layered load and returns the raw koanf tree.
func loadKoanf(projectRoot string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Project config file, first match wins
	if projectRoot == "" {
		projectRoot = "."
	}
	for _, filename := range configFileNames {
		path := filepath.Join(projectRoot, filename)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), parserFor(filename)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		break
	}

	// 3. Environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", envKeyToPath), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	return k, nil
}

// parserFor picks the koanf parser matching the config file extension.
func parserFor(filename string) koanf.Parser {
	if strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml") {
		return yaml.Parser()
	}
	return toml.Parser()
}

// envKeyToPath maps VAULTPULL_VAULT__ROOT to vault.root.
func envKeyToPath(key string) string {
	key = strings.TrimPrefix(key, EnvPrefix)
	key = strings.ToLower(key)
	return strings.ReplaceAll(key, "__", ".")
}
