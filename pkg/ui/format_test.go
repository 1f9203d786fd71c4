package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/vaultpull/pkg/ui"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		name     string
		format   ui.Format
		expected string
	}{
		{"auto", ui.FormatAuto, "auto"},
		{"terminal", ui.FormatTerminal, "term"},
		{"text", ui.FormatText, "text"},
		{"json", ui.FormatJSON, "json"},
		{"unknown", ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"auto", "auto", ui.FormatAuto, false},
		{"empty_is_auto", "", ui.FormatAuto, false},
		{"term", "term", ui.FormatTerminal, false},
		{"terminal_alias", "terminal", ui.FormatTerminal, false},
		{"text", "text", ui.FormatText, false},
		{"plain_alias", "plain", ui.FormatText, false},
		{"json", "json", ui.FormatJSON, false},
		{"case_insensitive", "JSON", ui.FormatJSON, false},
		{"unknown_value", "xml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, format)
			}
		})
	}
}
