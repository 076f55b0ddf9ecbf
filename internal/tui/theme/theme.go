// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Task cards, subtle highlight
	BgSelection string `toml:"bg_selection"` // Hovered drop target
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Gutter labels, muted elements
	Accent      string `toml:"accent"`       // Title, borders
	Inbox       string `toml:"inbox"`        // Inbox task cards
	Scheduled   string `toml:"scheduled"`    // Calendar task cards
	Night       string `toml:"night"`        // Night section strips
	Memory      string `toml:"memory"`       // Memory bin
	Warning     string `toml:"warning"`      // Drag ghost, warnings
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to frappe if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "frappe"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != "frappe" {
			return Load("frappe")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}

	return &t, nil
}

// Names lists the embedded theme names.
func Names() []string {
	entries, err := embeddedThemes.ReadDir("embedded")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	return names
}
