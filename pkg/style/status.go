package style

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/vaultpull/pkg/types"
)

// outcomeVerbs holds the past and conditional tense used when narrating
// an outcome: past for a real run, conditional for --dry-run.
var outcomeVerbs = map[types.Outcome]struct {
	Past        string
	Conditional string
}{
	types.OutcomePulled:  {Past: "pulled from", Conditional: "would pull from"},
	types.OutcomeSkipped: {Past: "up to date", Conditional: "up to date"},
	types.OutcomeMissing: {Past: "not in vault", Conditional: "not in vault"},
	types.OutcomeError:   {Past: "failed", Conditional: "would fail"},
}

// OutcomeStyle returns the pterm style for an outcome tag.
func OutcomeStyle(outcome types.Outcome) *pterm.Style {
	switch outcome {
	case types.OutcomePulled:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case types.OutcomeSkipped:
		return pterm.NewStyle(pterm.FgGray)
	case types.OutcomeMissing:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case types.OutcomeError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// OutcomeIndicator returns the single-rune marker for an outcome.
func OutcomeIndicator(outcome types.Outcome) string {
	switch outcome {
	case types.OutcomePulled:
		return Get("Success").Render("✓")
	case types.OutcomeSkipped:
		return Get("Muted").Render("=")
	case types.OutcomeMissing:
		return Get("Warning").Render("?")
	case types.OutcomeError:
		return Get("Error").Render("✗")
	default:
		return Get("Info").Render("•")
	}
}

// OutcomeMessage narrates an outcome for one record. Errors carry their
// own message through; the rest are derived from the verbs table.
func OutcomeMessage(rec types.Record, dryRun bool) string {
	verbs, ok := outcomeVerbs[rec.Outcome]
	if !ok {
		return rec.Message
	}

	switch rec.Outcome {
	case types.OutcomePulled:
		verb := verbs.Past
		if dryRun {
			verb = verbs.Conditional
		}
		return fmt.Sprintf("%s %s", verb, rec.Entry.Source)
	case types.OutcomeSkipped, types.OutcomeMissing:
		if rec.Message != "" {
			return fmt.Sprintf("%s (%s)", verbs.Past, rec.Message)
		}
		return verbs.Past
	case types.OutcomeError:
		return fmt.Sprintf("%s: %s", verbs.Past, rec.Message)
	}

	return rec.Message
}

// RenderRecord renders one sync record as a three-column line:
// outcome tag, destination path, narration.
func RenderRecord(rec types.Record, dryRun bool) string {
	tag := fmt.Sprintf("%-8s", string(rec.Outcome))
	styledTag := OutcomeStyle(rec.Outcome).Sprint(tag)

	dest := fmt.Sprintf("%-32s", rec.Entry.Dest)

	return fmt.Sprintf("    %s : %s : %s", styledTag, dest, OutcomeMessage(rec, dryRun))
}
