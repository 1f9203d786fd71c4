// Package text provides plain text output without any styling.
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/vaultpull/pkg/display"
	"github.com/arthur-debert/vaultpull/pkg/types"
)

// Renderer writes unstyled text, suitable for pipes and logs.
type Renderer struct {
	output io.Writer
}

// New creates a text renderer writing to output.
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders a command result as plain text.
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.Report:
		return r.renderReport(v)
	case *display.GenConfigResult:
		if v.Written {
			_, err := fmt.Fprintf(r.output, "Wrote %s\n", v.Path)
			return err
		}
		_, err := fmt.Fprint(r.output, v.ConfigContent)
		return err
	case *display.ConfigDump:
		_, err := fmt.Fprint(r.output, v.Content)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderReport(report *display.Report) error {
	header := report.Command
	if report.DryRun {
		header += " (dry run)"
	}
	if _, err := fmt.Fprintf(r.output, "%s: %s -> %s\n", header, report.VaultRoot, report.ProjectRoot); err != nil {
		return err
	}

	if len(report.Rows) == 0 {
		if _, err := fmt.Fprintln(r.output, "nothing to sync"); err != nil {
			return err
		}
		return nil
	}

	for _, row := range report.Rows {
		line := fmt.Sprintf("    %-8s : %-10s : %-32s : %s",
			row.Outcome, row.Origin, row.Dest, rowDetail(row))
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(r.output, report.SummaryLine()); err != nil {
		return err
	}

	if hint := report.RestartHint(); hint != "" {
		if _, err := fmt.Fprintln(r.output, hint); err != nil {
			return err
		}
	}

	return nil
}

// rowDetail narrates one row without styling.
func rowDetail(row display.Row) string {
	switch types.Outcome(row.Outcome) {
	case types.OutcomePulled:
		return "from " + row.Source
	case types.OutcomeSkipped:
		if row.Message != "" {
			return "up to date (" + row.Message + ")"
		}
		return "up to date"
	case types.OutcomeMissing:
		return "not in vault"
	default:
		return row.Message
	}
}

// RenderError renders an error as plain text.
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message.
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
