package types

import (
	"time"
)

// Origin records which phase produced a sync entry.
type Origin string

const (
	// OriginDiscovered marks entries found by the discovery phase
	// (suffix scan of the watched vault subdirectory).
	OriginDiscovered Origin = "discovered"

	// OriginExplicit marks entries from the configured pair list.
	OriginExplicit Origin = "explicit"
)

// Rule is one explicit source → destination pair, both relative:
// Source to the vault root, Dest to the project root.
type Rule struct {
	Source string `koanf:"source" toml:"source"`
	Dest   string `koanf:"dest" toml:"dest"`
}

// Discovery describes the suffix scan: the immediate children of Dir
// (relative to the vault root) whose names end in Suffix are pulled into
// Dest (relative to the project root). The scan is non-recursive.
type Discovery struct {
	Dir    string `koanf:"dir" toml:"dir"`
	Suffix string `koanf:"suffix" toml:"suffix"`
	Dest   string `koanf:"dest" toml:"dest"`
}

// Entry is a fully resolved sync candidate: absolute source and
// destination paths plus the phase that produced it.
type Entry struct {
	Source string
	Dest   string
	Origin Origin
}

// Outcome is the result of applying the copy decision rule to one entry.
type Outcome string

const (
	// OutcomePulled means the source was copied over the destination.
	OutcomePulled Outcome = "pulled"

	// OutcomeSkipped means the destination was as new as the source (or
	// newer) and was left untouched.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeMissing means the configured source file does not exist.
	OutcomeMissing Outcome = "missing"

	// OutcomeError means the entry failed mid-copy; the run continued.
	OutcomeError Outcome = "error"
)

// Record is the per-entry outcome kept for display and tests.
type Record struct {
	Entry   Entry
	Outcome Outcome

	// Message carries the human-readable detail ("vault copy newer",
	// "not in vault", the error text, ...).
	Message string
}

// Result is the accumulator for one sync run. It is created at the start
// of the run, mutated once per entry, and returned to the caller; there is
// no process-wide state.
type Result struct {
	Pulled  uint
	Skipped uint
	Missing uint
	Errors  uint

	// NeedsRestart is set when at least one file was pulled: the
	// collector service only reads templates at startup, so the caller
	// should surface a restart hint. Advisory only; vaultpull never
	// restarts anything itself.
	NeedsRestart bool

	// DryRun records whether the run was a preview (no writes happened).
	DryRun bool

	Records []Record

	Started  time.Time
	Finished time.Time
}

// Add appends a record and bumps the matching counter.
func (r *Result) Add(rec Record) {
	r.Records = append(r.Records, rec)
	switch rec.Outcome {
	case OutcomePulled:
		r.Pulled++
		r.NeedsRestart = true
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeMissing:
		r.Missing++
	case OutcomeError:
		r.Errors++
	}
}

// Total returns the number of processed entries.
func (r *Result) Total() uint {
	return r.Pulled + r.Skipped + r.Missing + r.Errors
}
