package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"docview/internal/ui/theme"
)

// KeyBinding is a key hint shown in the footer.
type KeyBinding struct {
	Key  string
	Desc string
}

// HelpBindings converts enabled key bindings to footer hints using their
// help text.
func HelpBindings(bindings ...key.Binding) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			continue
		}
		out = append(out, KeyBinding{Key: h.Key, Desc: h.Desc})
	}
	return out
}

// Footer renders a status message followed by as many key hints as fit.
type Footer struct {
	width    int
	bindings []KeyBinding
	status   string
}

// NewFooter creates a new Footer component.
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width.
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings sets the key hints to display, most important first.
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetStatus sets a short message shown before the key hints.
func (f *Footer) SetStatus(status string) {
	f.status = status
}

// View renders the footer. Hints that would overflow the width are dropped
// from the end.
func (f *Footer) View() string {
	s := theme.DefaultStyles()
	divider := s.StatusDivider.Render(" | ")

	var parts []string
	if f.status != "" {
		parts = append(parts, s.StatusInfo.Render(f.status))
	}

	// StatusBar pads two columns on each side.
	room := f.width - 4
	used := lipgloss.Width(strings.Join(parts, divider))
	for _, b := range f.bindings {
		part := s.StatusKey.Render(b.Key) + " " + s.StatusValue.Render(b.Desc)
		w := lipgloss.Width(part)
		if len(parts) > 0 {
			w += lipgloss.Width(divider)
		}
		if f.width > 0 && used+w > room {
			break
		}
		parts = append(parts, part)
		used += w
	}

	return s.StatusBar.Width(f.width).Render(strings.Join(parts, divider))
}
