package types

import (
	"io/fs"
	"time"
)

// FS is the filesystem interface required for vaultpull operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Metadata operations - the copy rule depends on these to carry the
	// source's mtime and permission bits onto the destination
	Chtimes(name string, atime, mtime time.Time) error
	Chmod(name string, mode fs.FileMode) error

	// Other operations
	Remove(name string) error

	// Optional operations - implementations should check for support
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}
