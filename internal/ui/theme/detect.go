package theme

import (
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Detect attempts to detect whether the terminal is using a light or dark theme.
// Returns DarkTheme if detection fails.
func Detect() Theme {
	// COLORFGBG is "fg;bg", higher bg values indicate a light background
	if colorfgbg := os.Getenv("COLORFGBG"); colorfgbg != "" {
		if isLightFromCOLORFGBG(colorfgbg) {
			return LightTheme
		}
		return DarkTheme
	}

	if isLightHint(os.Getenv) {
		return LightTheme
	}

	// Ask the terminal for its background color.
	if !termenv.HasDarkBackground() {
		return LightTheme
	}
	return DarkTheme
}

// isLightFromCOLORFGBG parses the COLORFGBG environment variable.
// Background values: 0-6 and 8 are dark, 7 and 9-15 are light
func isLightFromCOLORFGBG(value string) bool {
	parts := strings.Split(value, ";")
	if len(parts) < 2 {
		return false
	}

	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return false
	}
	return bg == 7 || (bg >= 9 && bg <= 15)
}

// isLightHint checks terminal-specific environment hints.
func isLightHint(getenv func(string) string) bool {
	for _, name := range []string{"ITERM_PROFILE", "VSCODE_THEME_KIND", "TERMINAL_THEME"} {
		if strings.Contains(strings.ToLower(getenv(name)), "light") {
			return true
		}
	}
	return false
}
