// Package theme provides theming support for the UI.
package theme

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ThemeType names a theme selection from config or flags.
type ThemeType string

const (
	ThemeAuto  ThemeType = "auto"
	ThemeDark  ThemeType = "dark"
	ThemeLight ThemeType = "light"
)

// ParseName validates a theme name. The empty name means auto.
func ParseName(name string) (ThemeType, error) {
	switch t := ThemeType(strings.ToLower(strings.TrimSpace(name))); t {
	case "":
		return ThemeAuto, nil
	case ThemeAuto, ThemeDark, ThemeLight:
		return t, nil
	default:
		return ThemeAuto, fmt.Errorf("unknown theme %q (want auto, dark or light)", name)
	}
}

// Theme names a background class. Colors are adaptive and resolved by
// lipgloss against the selected background.
type Theme struct {
	Name string
	Dark bool
}

var (
	DarkTheme  = Theme{Name: "dark", Dark: true}
	LightTheme = Theme{Name: "light", Dark: false}
)

var (
	mu      sync.RWMutex
	current = DarkTheme
)

// Current returns the active theme.
func Current() Theme {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set activates t and points adaptive colors at its background.
func Set(t Theme) {
	mu.Lock()
	current = t
	mu.Unlock()
	lipgloss.SetHasDarkBackground(t.Dark)
}

// SetByName activates the named theme, detecting the terminal background
// for auto.
func SetByName(name ThemeType) {
	switch name {
	case ThemeLight:
		Set(LightTheme)
	case ThemeDark:
		Set(DarkTheme)
	default:
		Set(Detect())
	}
}

// IsDark reports whether the active theme is dark.
func IsDark() bool {
	return Current().Dark
}
