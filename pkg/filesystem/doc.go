// Package filesystem provides filesystem implementations for vaultpull.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and an afero-backed filesystem
// used by the in-memory test environments.
package filesystem
