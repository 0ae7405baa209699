package components

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens s to at most maxLen display columns, marking the cut
// with an ellipsis.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxLen, "…")
}

// padRight pads s with spaces to width display columns.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// DefaultIcon renders a page icon for the terminal. Emoji are shown as-is;
// image icons cannot be drawn and render as nothing.
func DefaultIcon(icon string) string {
	if strings.HasPrefix(icon, "http://") || strings.HasPrefix(icon, "https://") || strings.HasPrefix(icon, "/") {
		return ""
	}
	return icon
}

// label joins a rendered icon and a title.
func label(icon, title string) string {
	switch {
	case icon == "":
		return title
	case title == "":
		return icon
	default:
		return icon + " " + title
	}
}
