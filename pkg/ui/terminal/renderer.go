// Package terminal provides rich terminal output with colors and styling.
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/vaultpull/pkg/display"
	"github.com/arthur-debert/vaultpull/pkg/style"
	"github.com/arthur-debert/vaultpull/pkg/types"
)

// Renderer writes styled output for interactive terminals.
type Renderer struct {
	output io.Writer
}

// New creates a terminal renderer writing to output.
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders a command result with styling.
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.Report:
		return r.renderReport(v)
	case *display.GenConfigResult:
		if v.Written {
			_, err := fmt.Fprintf(r.output, "%s %s\n",
				style.Get("Success").Render("Wrote"),
				style.Get("ProjectPath").Render(v.Path))
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
	headerLine := fmt.Sprintf("%s  %s %s %s",
		style.Get("Header").Render(header),
		style.Get("VaultPath").Render(report.VaultRoot),
		style.Get("Muted").Render("->"),
		style.Get("ProjectPath").Render(report.ProjectRoot))
	if _, err := fmt.Fprintln(r.output, headerLine); err != nil {
		return err
	}

	if len(report.Rows) == 0 {
		_, err := fmt.Fprintln(r.output, style.Get("Muted").Render("nothing to sync"))
		return err
	}

	for _, row := range report.Rows {
		rec := types.Record{
			Entry: types.Entry{
				Source: row.Source,
				Dest:   row.Dest,
				Origin: types.Origin(row.Origin),
			},
			Outcome: types.Outcome(row.Outcome),
			Message: row.Message,
		}
		if _, err := fmt.Fprintln(r.output, style.RenderRecord(rec, report.DryRun)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(r.output, style.Get("Summary").Render(report.SummaryLine())); err != nil {
		return err
	}

	if hint := report.RestartHint(); hint != "" {
		if _, err := fmt.Fprintln(r.output, style.Get("RestartHint").Render(hint)); err != nil {
			return err
		}
	}

	return nil
}

// RenderError renders an error. The error text already carries its code,
// so only the prefix is styled.
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s: %v\n", style.Get("Error").Render("Error"), err)
	return werr
}

// RenderMessage renders a simple informational message.
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.Get("Info").Render(msg))
	return err
}
