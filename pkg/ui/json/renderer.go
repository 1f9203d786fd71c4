// Package json provides machine-readable JSON output.
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/vaultpull/pkg/errors"
)

// Renderer encodes results for machine consumption.
type Renderer struct {
	encoder *json.Encoder
}

// New creates a JSON renderer writing to output.
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// RenderResult encodes any result type as JSON.
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError encodes an error, keeping the code visible for scripts.
func (r *Renderer) RenderError(err error) error {
	obj := map[string]string{
		"error": err.Error(),
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		obj["code"] = string(code)
	}
	return r.encoder.Encode(obj)
}

// RenderMessage encodes a simple message.
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
