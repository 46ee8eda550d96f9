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
	Name      string `toml:"name"`
	Bg        string `toml:"bg"`        // base background
	Fg        string `toml:"fg"`        // primary foreground
	FgMuted   string `toml:"fg_muted"`  // out-of-month days, hints
	Accent    string `toml:"accent"`    // header, week labels
	Available string `toml:"available"` // days/weeks with a report
	Selected  string `toml:"selected"`  // current selection highlight
	Today     string `toml:"today"`     // today marker
	Warning   string `toml:"warning"`   // status line errors
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}

	return &t, nil
}

// Names returns the available theme names.
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
