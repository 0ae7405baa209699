package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docview/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// SpinnerTickMsg advances the spinner that started the tick loop with id.
type SpinnerTickMsg struct {
	id int
}

// Spinner is an animated loading indicator with a label. Each Start begins a
// new tick loop and orphans the previous one, so reloading while a load is in
// flight does not speed the animation up.
type Spinner struct {
	id    int
	frame int
	label string
}

// NewSpinner creates a Spinner showing label next to the animation.
func NewSpinner(label string) *Spinner {
	return &Spinner{label: label}
}

// SetLabel changes the text shown next to the animation.
func (s *Spinner) SetLabel(label string) {
	s.label = label
}

// Start resets the animation and returns the first tick.
func (s *Spinner) Start() tea.Cmd {
	s.id++
	s.frame = 0
	return s.tick()
}

// Update advances the frame for ticks of the current loop while running is
// true and schedules the next one.
func (s *Spinner) Update(msg SpinnerTickMsg, running bool) tea.Cmd {
	if msg.id != s.id || !running {
		return nil
	}
	s.frame = (s.frame + 1) % len(spinnerFrames)
	return s.tick()
}

func (s *Spinner) tick() tea.Cmd {
	id := s.id
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return SpinnerTickMsg{id: id}
	})
}

// View renders the current frame and label.
func (s *Spinner) View() string {
	frame := lipgloss.NewStyle().Foreground(theme.Primary).Render(spinnerFrames[s.frame])
	if s.label == "" {
		return frame
	}
	return frame + " " + theme.DefaultStyles().Muted.Render(s.label)
}
