package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docview/internal/ui/components"
	"docview/internal/ui/layout"
	"docview/internal/ui/theme"
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	s := theme.DefaultStyles()

	if m.dims.Mode == layout.ModeTooSmall {
		msg := s.Muted.Render("Terminal too small")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	m.footer.SetBindings(m.footerBindings())

	header := m.header.View()
	if header == "" {
		header = s.Muted.Render(" " + m.state.Source)
	}

	contentHeight := m.dims.BodyHeight + m.dims.ListHeight
	var content string
	switch {
	case m.dialog.IsActive():
		content = lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, m.dialog.View())
	case m.state.ActivePage() == nil:
		content = lipgloss.NewStyle().Padding(0, 1).Render(m.children.View())
	default:
		body := lipgloss.NewStyle().Padding(0, 1).Height(m.dims.BodyHeight).Render(m.page.View())
		list := lipgloss.NewStyle().Padding(0, 1).Render(m.children.View())
		content = body + "\n" + list
	}
	content = lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight).Render(content)

	parts := []string{header, "", content}
	if m.dims.LogsHeight > 0 {
		parts = append(parts, m.logs.View())
	}
	parts = append(parts, m.footer.View())

	return strings.Join(parts, "\n")
}

// footerBindings lists the key hints for the current mode.
func (m *Model) footerBindings() []components.KeyBinding {
	k := m.keys
	switch {
	case m.dialog.IsActive():
		return []components.KeyBinding{
			{Key: "↑↓", Desc: "select"},
			{Key: "enter", Desc: "open"},
			{Key: "esc", Desc: "close"},
		}
	case m.state.ShowLogs:
		return components.HelpBindings(k.LogScrollUp, k.LogScrollDown, k.LogScrollEnd, k.Logs, k.Quit)
	default:
		return components.HelpBindings(k.Enter, k.Parent, k.Back, k.Search, k.CopyURL, k.Reload, k.Logs, k.Quit)
	}
}
