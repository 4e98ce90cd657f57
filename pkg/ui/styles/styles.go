// Package styles defines the visual styling for ren's terminal output.
//
// Styles use semantic names and adaptive colors that adjust to light
// and dark terminal themes. Styling is suppressed entirely when output
// is not a terminal or the user opted out via NO_COLOR.
package styles

import (
	_ "embed"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

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
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// registry maps semantic names to lipgloss styles
var registry map[string]lipgloss.Style

//go:embed styles.yaml
var embeddedStyles []byte

func init() {
	if err := loadStylesFromData(embeddedStyles); err != nil {
		// Fall back to unstyled output rather than failing the run
		registry = map[string]lipgloss.Style{}
	}
}

// GetStyle returns the style registered under the given semantic name.
// Unknown names and non-terminal output yield a plain, unstyled style.
func GetStyle(name string) lipgloss.Style {
	if !styledOutput() {
		return lipgloss.NewStyle()
	}
	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// loadStylesFromData parses the YAML style sheet and builds the registry
func loadStylesFromData(data []byte) error {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry = make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if def.Foreground != "" {
			if color, ok := colors[def.Foreground]; ok {
				style = style.Foreground(color)
			}
		}
		registry[name] = style
	}
	return nil
}

// styledOutput reports whether stdout should receive styled text
func styledOutput() bool {
	if termenv.EnvNoColor() {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
