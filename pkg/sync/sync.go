// Package sync implements the one-way template pull from an Obsidian
// vault into a project tree.
//
// A run has two phases. The discovery phase lists the immediate children
// of one vault subdirectory and keeps names matching a suffix; the
// explicit phase resolves configured source → dest pairs. Every candidate
// then goes through the same copy decision: a missing source is counted
// and skipped, an up-to-date destination is never overwritten, anything
// else is copied with its mtime and permission bits carried over. Entries
// are independent; one failure never aborts the run.
//
// Timestamps are compared at second resolution, so edits landing in the
// same second as the deployed copy are indistinguishable from it.
// Concurrent runs against the same project tree are not guarded against.
package sync

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/vaultpull/pkg/errors"
	"github.com/arthur-debert/vaultpull/pkg/filesystem"
	"github.com/arthur-debert/vaultpull/pkg/logging"
	"github.com/arthur-debert/vaultpull/pkg/types"
)

// Options carries everything one pull needs. Optional fields default to:
// no discovery, no explicit rules, the operating system filesystem, real
// writes.
type Options struct {
	// VaultRoot is the mounted vault; it must exist.
	VaultRoot string

	// ProjectRoot receives the templates.
	ProjectRoot string

	// Discovery configures the suffix scan. An empty Dir disables the
	// phase.
	Discovery types.Discovery

	// Rules are the explicit pairs, source relative to the vault root and
	// dest relative to the project root.
	Rules []types.Rule

	// FileSystem lets tests run in memory. Nil means the real one.
	FileSystem types.FS

	// DryRun computes outcomes and counts without writing anything.
	DryRun bool

	// Force re-copies entries whose destination is up to date.
	Force bool
}

// Pull runs one sync pass and returns the per-run result. The only fatal
// condition is an absent vault root; per-entry failures are counted in
// the result instead of aborting.
func Pull(opts Options) (*types.Result, error) {
	logger := logging.GetLogger("sync")
	defer logging.LogOperationStart(logger, "pull")()

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	if opts.VaultRoot == "" {
		return nil, errors.New(errors.ErrVaultNotFound, "vault root is not set")
	}
	info, err := fsys.Stat(opts.VaultRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrVaultNotFound,
			"vault not mounted at %s", opts.VaultRoot)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrVaultNotFound,
			"vault root %s is not a directory", opts.VaultRoot)
	}

	result := &types.Result{
		DryRun:  opts.DryRun,
		Started: time.Now(),
	}

	entries := discover(fsys, logger, opts)
	entries = append(entries, explicit(opts)...)

	logger.Info().
		Str("vault", opts.VaultRoot).
		Str("project", opts.ProjectRoot).
		Int("candidates", len(entries)).
		Bool("dry_run", opts.DryRun).
		Msg("Starting pull")

	for _, entry := range entries {
		result.Add(apply(fsys, logger, entry, opts))
	}

	result.Finished = time.Now()

	logger.Info().
		Uint("pulled", result.Pulled).
		Uint("skipped", result.Skipped).
		Uint("missing", result.Missing).
		Uint("errors", result.Errors).
		Bool("needs_restart", result.NeedsRestart).
		Msg("Pull finished")

	return result, nil
}

// discover lists the immediate children of the discovery dir and keeps
// regular files whose names end in the suffix. The scan is non-recursive.
// A vault without the discovery dir yields zero candidates: vaults
// predating the template directory are a normal state, not an error.
func discover(fsys types.FS, logger zerolog.Logger, opts Options) []types.Entry {
	if opts.Discovery.Dir == "" {
		return nil
	}

	dir := filepath.Join(opts.VaultRoot, opts.Discovery.Dir)
	dirents, err := fsys.ReadDir(dir)
	if err != nil {
		logger.Debug().Err(err).Str("dir", dir).Msg("Discovery dir not listable, phase yields nothing")
		return nil
	}

	var entries []types.Entry
	for _, de := range dirents {
		if de.IsDir() || !strings.HasSuffix(de.Name(), opts.Discovery.Suffix) {
			continue
		}
		entries = append(entries, types.Entry{
			Source: filepath.Join(dir, de.Name()),
			Dest:   filepath.Join(opts.ProjectRoot, opts.Discovery.Dest, de.Name()),
			Origin: types.OriginDiscovered,
		})
	}

	logger.Debug().
		Int("matched", len(entries)).
		Str("dir", dir).
		Str("suffix", opts.Discovery.Suffix).
		Msg("Discovery phase done")

	return entries
}

// explicit resolves the configured pairs against the roots.
func explicit(opts Options) []types.Entry {
	entries := make([]types.Entry, 0, len(opts.Rules))
	for _, rule := range opts.Rules {
		entries = append(entries, types.Entry{
			Source: filepath.Join(opts.VaultRoot, rule.Source),
			Dest:   filepath.Join(opts.ProjectRoot, rule.Dest),
			Origin: types.OriginExplicit,
		})
	}
	return entries
}
