// Package types defines the core types and interfaces used throughout
// vaultpull. This includes the FS filesystem interface and the sync data
// model: Rule, Discovery, Entry and Result.
package types
