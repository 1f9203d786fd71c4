package sync

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/vaultpull/pkg/errors"
	"github.com/arthur-debert/vaultpull/pkg/types"
)

// apply runs the copy decision rule for one entry and returns its record.
// Entries fail in isolation: any error becomes an error record and the
// run moves on to the next entry.
func apply(fsys types.FS, logger zerolog.Logger, entry types.Entry, opts Options) types.Record {
	rec := types.Record{Entry: entry}

	srcInfo, err := fsys.Stat(entry.Source)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("source", entry.Source).Msg("Source not in vault")
			rec.Outcome = types.OutcomeMissing
			return rec
		}
		logger.Error().Err(err).Str("source", entry.Source).Msg("Source not readable")
		rec.Outcome = types.OutcomeError
		rec.Message = errors.Wrapf(err, errors.ErrFileAccess, "stat %s", entry.Source).Error()
		return rec
	}
	if srcInfo.IsDir() {
		logger.Error().Str("source", entry.Source).Msg("Source is a directory")
		rec.Outcome = types.OutcomeError
		rec.Message = errors.Newf(errors.ErrInvalidInput, "source %s is a directory", entry.Source).Error()
		return rec
	}

	if !opts.Force {
		if destInfo, err := fsys.Stat(entry.Dest); err == nil {
			if skip, detail := upToDate(srcInfo.ModTime(), destInfo.ModTime()); skip {
				logger.Debug().Str("dest", entry.Dest).Str("detail", detail).Msg("Destination up to date")
				rec.Outcome = types.OutcomeSkipped
				rec.Message = detail
				return rec
			}
		}
	}

	if opts.DryRun {
		rec.Outcome = types.OutcomePulled
		return rec
	}

	if err := copyFile(fsys, entry.Source, entry.Dest, srcInfo); err != nil {
		logger.Error().Err(err).Str("source", entry.Source).Str("dest", entry.Dest).Msg("Copy failed")
		rec.Outcome = types.OutcomeError
		rec.Message = err.Error()
		return rec
	}

	logger.Info().Str("source", entry.Source).Str("dest", entry.Dest).Msg("Pulled")
	rec.Outcome = types.OutcomePulled
	return rec
}

// upToDate is the overwrite guard: the destination wins whenever its
// mtime is at least the source's. Times are compared truncated to whole
// seconds, so a source edited in the same second as its deployed copy
// counts as up to date.
func upToDate(src, dest time.Time) (bool, string) {
	s, d := src.Truncate(time.Second), dest.Truncate(time.Second)
	if s.Equal(d) {
		return true, "same mtime"
	}
	if s.Before(d) {
		return true, "destination is newer"
	}
	return false, ""
}

// copyFile copies source bytes to dest, creating parent directories and
// carrying over the source's permission bits and mtime. The mtime is set
// last so no later file operation resets it.
func copyFile(fsys types.FS, source, dest string, srcInfo os.FileInfo) error {
	data, err := fsys.ReadFile(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "read %s", source)
	}

	if err := fsys.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "create %s", filepath.Dir(dest))
	}

	perm := srcInfo.Mode().Perm()
	if err := fsys.WriteFile(dest, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "write %s", dest)
	}

	// WriteFile applies perm only on create; a pre-existing dest keeps
	// its old bits without this.
	if err := fsys.Chmod(dest, perm); err != nil {
		return errors.Wrapf(err, errors.ErrCopyFailure, "chmod %s", dest)
	}

	if err := fsys.Chtimes(dest, time.Now(), srcInfo.ModTime()); err != nil {
		return errors.Wrapf(err, errors.ErrCopyFailure, "set mtime on %s", dest)
	}

	return nil
}
