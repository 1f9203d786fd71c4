// Package display converts sync results into presentation-ready reports.
// Renderers (terminal, text, json) consume these types instead of the raw
// sync result, so formatting decisions stay out of the sync engine.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/vaultpull/pkg/types"
)

// Report is the top-level structure for commands that show a sync run.
// It is rendered by all three output formats; the JSON renderer encodes
// it as-is.
type Report struct {
	Command      string    `json:"command"` // "pull", "status"
	VaultRoot    string    `json:"vaultRoot"`
	ProjectRoot  string    `json:"projectRoot"`
	DryRun       bool      `json:"dryRun"`
	NeedsRestart bool      `json:"needsRestart"`
	Service      string    `json:"service,omitempty"`
	Rows         []Row     `json:"rows"`
	Summary      Summary   `json:"summary"`
	Timestamp    time.Time `json:"timestamp"`
}

// Row is a single sync record prepared for display: paths are shown
// relative to their roots, the outcome is a plain string.
type Row struct {
	Origin  string `json:"origin"`
	Source  string `json:"source"`
	Dest    string `json:"dest"`
	Outcome string `json:"outcome"`
	Message string `json:"message,omitempty"`
}

// Summary holds the run counters.
type Summary struct {
	Pulled  uint `json:"pulled"`
	Skipped uint `json:"skipped"`
	Missing uint `json:"missing"`
	Errors  uint `json:"errors"`
	Total   uint `json:"total"`
}

// GenConfigResult holds the result of the genconfig command.
type GenConfigResult struct {
	ConfigContent string `json:"configContent"`
	Path          string `json:"path,omitempty"`
	Written       bool   `json:"written"`
}

// ConfigDump holds the result of the config command: the effective
// configuration rendered as TOML.
type ConfigDump struct {
	Content string `json:"content"`
}

// NewReport builds a Report from a sync result. Source paths are shown
// relative to the vault root and destinations relative to the project
// root, which keeps lines short without losing where files live.
func NewReport(command string, res *types.Result, vaultRoot, projectRoot, service string) *Report {
	report := &Report{
		Command:      command,
		VaultRoot:    vaultRoot,
		ProjectRoot:  projectRoot,
		DryRun:       res.DryRun,
		NeedsRestart: res.NeedsRestart,
		Service:      service,
		Timestamp:    res.Finished,
		Summary: Summary{
			Pulled:  res.Pulled,
			Skipped: res.Skipped,
			Missing: res.Missing,
			Errors:  res.Errors,
			Total:   res.Total(),
		},
	}

	for _, rec := range res.Records {
		report.Rows = append(report.Rows, Row{
			Origin:  string(rec.Entry.Origin),
			Source:  RelTo(rec.Entry.Source, vaultRoot),
			Dest:    RelTo(rec.Entry.Dest, projectRoot),
			Outcome: string(rec.Outcome),
			Message: rec.Message,
		})
	}

	return report
}

// SummaryLine renders the counters as a one-line summary.
func (r *Report) SummaryLine() string {
	line := fmt.Sprintf("pulled %d, skipped %d, missing %d, errors %d",
		r.Summary.Pulled, r.Summary.Skipped, r.Summary.Missing, r.Summary.Errors)
	if r.DryRun {
		line += " (dry run)"
	}
	return line
}

// RestartHint returns the advisory line shown when templates changed.
// vaultpull never restarts anything itself; this is the whole extent of
// its involvement.
func (r *Report) RestartHint() string {
	if !r.NeedsRestart || r.DryRun {
		return ""
	}
	service := r.Service
	if service == "" {
		service = "the consuming service"
	}
	return fmt.Sprintf("Templates changed: restart %s to pick them up.", service)
}

// RelTo strips root from path when path lives under it. Paths outside
// the root come back unchanged.
func RelTo(path, root string) string {
	if root == "" || path == root {
		return path
	}
	prefix := strings.TrimSuffix(root, "/") + "/"
	if strings.HasPrefix(path, prefix) {
		return path[len(prefix):]
	}
	return path
}

// TruncateLeft shortens s to maxLen runes, keeping the tail: for paths
// the filename matters more than the leading directories.
func TruncateLeft(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return "..." + s[len(s)-(maxLen-3):]
}

// TildePath replaces a homeDir prefix with ~ for display.
func TildePath(path, homeDir string) string {
	if homeDir != "" && strings.HasPrefix(path, homeDir) {
		return "~" + path[len(homeDir):]
	}
	return path
}
