// Package paths provides centralized path handling for vaultpull.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/vaultpull/pkg/errors"
)

// Environment variable names
const (
	// EnvVaultRoot is the primary environment variable for the vault mount
	EnvVaultRoot = "VAULT_ROOT"

	// EnvProjectRoot overrides project root discovery
	EnvProjectRoot = "PROJECT_ROOT"

	// EnvDataDir overrides the XDG data directory for vaultpull
	EnvDataDir = "VAULTPULL_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for vaultpull
	EnvConfigDir = "VAULTPULL_CONFIG_DIR"

	// EnvCacheDir overrides the XDG cache directory for vaultpull
	EnvCacheDir = "VAULTPULL_CACHE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for vaultpull-specific files
	AppDirName = "vaultpull"

	// LogFileName is the name of the log file
	LogFileName = "vaultpull.log"
)

// Paths provides centralized path management for vaultpull
type Paths interface {
	VaultRoot() string
	ProjectRoot() string
	UsedFallback() bool
	DataDir() string
	ConfigDir() string
	CacheDir() string
	StateDir() string
	LogFilePath() string
	// InVault joins a vault-relative path onto the vault root
	InVault(rel string) string
	// InProject joins a project-relative path onto the project root
	InProject(rel string) string
}

type paths struct {
	vaultRoot   string
	projectRoot string

	xdgData   string
	xdgConfig string
	xdgCache  string
	xdgState  string

	// usedFallback indicates the project root fell back to cwd (for warning display)
	usedFallback bool
}

// New creates a new Paths instance. If vaultRoot is empty it is taken from
// VAULT_ROOT; an empty result is an error since the vault mount is an
// environment precondition. If projectRoot is empty it is resolved from
// PROJECT_ROOT, then the enclosing git repository, then the current
// directory as a flagged fallback.
func New(vaultRoot, projectRoot string) (Paths, error) {
	p := &paths{}

	if vaultRoot == "" {
		vaultRoot = os.Getenv(EnvVaultRoot)
	}
	if vaultRoot == "" {
		return nil, errors.New(errors.ErrVaultNotFound,
			"no vault configured: set VAULT_ROOT, pass --vault, or add [vault] root to the config file")
	}
	absVault, err := filepath.Abs(expandHome(vaultRoot))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for vault root")
	}
	p.vaultRoot = absVault

	if projectRoot == "" {
		root, usedFallback, err := findProjectRoot()
		if err != nil {
			return nil, err
		}
		p.projectRoot = root
		p.usedFallback = usedFallback
	} else {
		p.projectRoot = expandHome(projectRoot)
	}
	absProject, err := filepath.Abs(p.projectRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for project root")
	}
	p.projectRoot = absProject

	p.setupXDGDirs()

	return p, nil
}

// ProvisionalProjectRoot resolves the project root before the config
// file has been read: flag, then PROJECT_ROOT, then the enclosing git
// repository, then the current directory. The bool reports whether the
// cwd fallback was used.
func ProvisionalProjectRoot(flagProject string) (string, bool, error) {
	if flagProject != "" {
		return expandHome(flagProject), false, nil
	}
	return findProjectRoot()
}

// ResolveRoots applies the root resolution priority shared by all
// commands: flag > environment > config file. Either result may still be
// empty; New turns a missing vault into ErrVaultNotFound and falls back
// to git-root discovery for the project.
//
// The config file is found relative to a provisional project root, so a
// config file that redirects project.root elsewhere takes effect on the
// run but never on locating the config file itself.
func ResolveRoots(flagVault, flagProject, cfgVault, cfgProject string) (vault, project string) {
	vault = flagVault
	if vault == "" {
		vault = os.Getenv(EnvVaultRoot)
	}
	if vault == "" {
		vault = cfgVault
	}

	project = flagProject
	if project == "" {
		project = os.Getenv(EnvProjectRoot)
	}
	if project == "" {
		project = cfgProject
	}

	return vault, project
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, AppDirName)
	}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if cacheDir := os.Getenv(EnvCacheDir); cacheDir != "" {
		p.xdgCache = expandHome(cacheDir)
	} else {
		p.xdgCache = filepath.Join(xdg.CacheHome, AppDirName)
	}

	// State directory - XDG doesn't provide StateHome, so we check manually
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, AppDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", AppDirName)
	}
}

// findProjectRoot determines the project root using the following priority:
// 1. PROJECT_ROOT environment variable (if set)
// 2. Git repository root (found via 'git rev-parse --show-toplevel')
// 3. Current working directory (fallback)
//
// The returned bool reports whether the cwd fallback was used, so callers
// can warn before pulling files into an unexpected tree.
func findProjectRoot() (string, bool, error) {
	if root := os.Getenv(EnvProjectRoot); root != "" {
		return expandHome(root), false, nil
	}

	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")

	output, err := cmd.Output()
	if err != nil {
		// Git command failed - not in a git repo or git not installed
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}

	return gitRoot, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}
		if path == "~" {
			return homeDir
		}
		if strings.HasPrefix(path, "~/") {
			return filepath.Join(homeDir, path[2:])
		}
	}

	return path
}

func (p *paths) VaultRoot() string   { return p.vaultRoot }
func (p *paths) ProjectRoot() string { return p.projectRoot }
func (p *paths) UsedFallback() bool  { return p.usedFallback }
func (p *paths) DataDir() string     { return p.xdgData }
func (p *paths) ConfigDir() string   { return p.xdgConfig }
func (p *paths) CacheDir() string    { return p.xdgCache }
func (p *paths) StateDir() string    { return p.xdgState }

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

func (p *paths) InVault(rel string) string {
	return filepath.Join(p.vaultRoot, rel)
}

func (p *paths) InProject(rel string) string {
	return filepath.Join(p.projectRoot, rel)
}
