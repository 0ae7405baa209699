package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"docview/internal/log"
	"docview/internal/ui/theme"
)

// Logs is a scrollable panel over the in-memory log buffer.
type Logs struct {
	buffer   *log.Buffer
	viewport viewport.Model
	width    int
	height   int
	follow   bool
}

// NewLogs creates a new Logs panel reading from buffer.
func NewLogs(buffer *log.Buffer) *Logs {
	return &Logs{
		buffer:   buffer,
		viewport: viewport.New(0, 0),
		follow:   true,
	}
}

// SetSize sets the panel size including its border.
func (l *Logs) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.viewport.Width = max(0, width-4)
	l.viewport.Height = max(0, height-3)
	l.Refresh()
}

// Refresh reloads lines from the buffer.
func (l *Logs) Refresh() {
	if l.buffer == nil {
		return
	}
	s := theme.DefaultStyles()

	var b strings.Builder
	for i, line := range l.buffer.Lines() {
		if i > 0 {
			b.WriteString("\n")
		}
		levelStyle := s.StatusInfo
		switch line.Level {
		case "ERROR":
			levelStyle = s.StatusError
		case "WARN":
			levelStyle = s.StatusWarning
		case "DEBUG":
			levelStyle = s.Muted
		}
		b.WriteString(s.Muted.Render(line.Time.Format("15:04:05")))
		b.WriteString(" ")
		b.WriteString(levelStyle.Render(padRight(line.Level, 5)))
		b.WriteString(" ")
		b.WriteString(truncate(line.Message, max(10, l.viewport.Width-16)))
	}
	l.viewport.SetContent(b.String())
	if l.follow {
		l.viewport.GotoBottom()
	}
}

// ScrollUp scrolls up one line and stops following new lines.
func (l *Logs) ScrollUp() {
	l.viewport.LineUp(1)
	l.follow = false
}

// ScrollDown scrolls down one line.
func (l *Logs) ScrollDown() {
	l.viewport.LineDown(1)
	l.follow = l.viewport.AtBottom()
}

// ScrollToBottom scrolls to the newest line and follows new lines.
func (l *Logs) ScrollToBottom() {
	l.viewport.GotoBottom()
	l.follow = true
}

// View renders the panel.
func (l *Logs) View() string {
	s := theme.DefaultStyles()
	title := s.LogsTitle.Render("Logs")
	body := lipgloss.JoinVertical(lipgloss.Left, title, l.viewport.View())
	return s.Logs.Width(max(0, l.width-2)).Render(body)
}
