// Package ui provides a unified interface for rendering command output.
// It supports terminal (rich), text (plain), and JSON formats; commands
// hand results to a Renderer and never print directly.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/vaultpull/pkg/errors"
	"github.com/arthur-debert/vaultpull/pkg/ui/json"
	"github.com/arthur-debert/vaultpull/pkg/ui/terminal"
	"github.com/arthur-debert/vaultpull/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result (reports, config dumps, ...).
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting.
	RenderError(err error) error

	// RenderMessage renders a simple message.
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for the given format. FormatAuto
// resolves against the output when it is a file, and falls back to plain
// text otherwise: a non-file writer is never a terminal.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
