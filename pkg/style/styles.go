// Package style defines the visual styling for vaultpull's terminal output.
//
// All styles use semantic names and adaptive colors that adjust to light
// and dark terminal themes. Renderers look styles up by name through Get.
// The embedded styles.yaml is the default theme; a user theme found via
// VAULTPULL_STYLES or the XDG config dir replaces it wholesale.
package style

import (
	_ "embed"
	"os"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/vaultpull/pkg/errors"
)

// ColorDef is an adaptive color definition in YAML.
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition in YAML.
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	MarginTop    int    `yaml:"marginTop,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Theme is the complete styles configuration.
type Theme struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedTheme []byte

var (
	registry map[string]lipgloss.Style
	colors   map[string]lipgloss.AdaptiveColor
)

func init() {
	for _, path := range userThemePaths() {
		if err := LoadTheme(path); err == nil {
			return
		}
	}
	if err := LoadThemeData(embeddedTheme); err != nil {
		initDefaultStyles()
	}
}

// userThemePaths lists where a user theme may live, in precedence order:
// the VAULTPULL_STYLES env var, then styles.yaml in the XDG config dir.
func userThemePaths() []string {
	var paths []string
	if p := os.Getenv("VAULTPULL_STYLES"); p != "" {
		paths = append(paths, p)
	}
	if p, err := xdg.SearchConfigFile("vaultpull/styles.yaml"); err == nil {
		paths = append(paths, p)
	}
	return paths
}

// initDefaultStyles keeps rendering alive when the embedded theme fails
// to parse: every known name maps to an unstyled passthrough.
func initDefaultStyles() {
	colors = make(map[string]lipgloss.AdaptiveColor)
	registry = make(map[string]lipgloss.Style)

	plain := lipgloss.NewStyle()
	for _, name := range []string{
		"Header", "Subheader", "Success", "Error", "Warning", "Info",
		"Muted", "Bold", "VaultPath", "ProjectPath", "Origin",
		"Summary", "RestartHint",
	} {
		registry[name] = plain
	}
}

// LoadTheme loads a theme from a YAML file, replacing the embedded one.
func LoadTheme(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read theme file %s", path)
	}
	return LoadThemeData(data)
}

// LoadThemeData loads a theme from raw YAML bytes.
func LoadThemeData(data []byte) error {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to parse theme")
	}

	colors = make(map[string]lipgloss.AdaptiveColor)
	for name, def := range theme.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry = make(map[string]lipgloss.Style)
	for name, def := range theme.Styles {
		registry[name] = buildStyle(def)
	}

	return nil
}

// buildStyle constructs a lipgloss style from a style definition.
func buildStyle(def StyleDef) lipgloss.Style {
	s := lipgloss.NewStyle()

	if def.Bold {
		s = s.Bold(true)
	}
	if def.Italic {
		s = s.Italic(true)
	}
	if def.Underline {
		s = s.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			s = s.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			s = s.Background(color)
		}
	}

	if def.Width > 0 {
		s = s.Width(def.Width)
	}
	if def.MarginTop > 0 {
		s = s.MarginTop(def.MarginTop)
	}
	if def.MarginBottom > 0 {
		s = s.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		s = s.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return s
}

// Get retrieves a style from the registry. Unknown names render unstyled
// rather than failing, so a stale name in a template degrades gracefully.
func Get(name string) lipgloss.Style {
	if s, ok := registry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Bold renders s in bold, independent of the theme.
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

// Indent pads s left by level * 2 spaces.
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
