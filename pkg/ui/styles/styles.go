// Package styles defines the lipgloss styles for superlink's terminal
// output. Styles use semantic names and adaptive colors loaded from an
// embedded YAML palette, so light and dark terminals both render sensibly.
package styles

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

type config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

var registry map[string]lipgloss.Style

func init() {
	var cfg config
	if err := yaml.Unmarshal(stylesYAML, &cfg); err != nil {
		// The palette is embedded; a parse failure is a build defect.
		panic("styles: invalid embedded styles.yaml: " + err.Error())
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry = make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		s := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if c, ok := colors[def.Foreground]; ok {
			s = s.Foreground(c)
		}
		if c, ok := colors[def.Background]; ok {
			s = s.Background(c)
		}
		registry[name] = s
	}
}

// Get returns the style registered under the given semantic name, or a
// zero style when the name is unknown.
func Get(name string) lipgloss.Style {
	if s, ok := registry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
