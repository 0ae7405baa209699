package components

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docview/internal/log"
	"docview/internal/search"
	"docview/internal/ui/theme"
)

const (
	searchDebounce = 200 * time.Millisecond
	searchTimeout  = 10 * time.Second
)

// searchDebounceMsg fires after typing pauses. Stale sequence numbers are
// ignored.
type searchDebounceMsg struct {
	seq int
}

// SearchResultsMsg carries the results of one search run.
type SearchResultsMsg struct {
	seq     int
	Query   string
	Results []search.Result
	Err     error
}

// SearchDialogResult is returned when the dialog closes.
type SearchDialogResult struct {
	Cancelled bool
	BlockID   string
}

// SearchDialog is a modal dialog that searches pages as the user types.
type SearchDialog struct {
	searcher search.Searcher
	limit    int
	debounce time.Duration

	width  int
	height int
	active bool

	input   textinput.Model
	rootID  string
	seq     int
	loading bool
	err     error
	results []search.Result
	cursor  int
}

// NewSearchDialog creates a dialog over searcher. limit caps the results
// per query.
func NewSearchDialog(searcher search.Searcher, limit int) *SearchDialog {
	input := textinput.New()
	input.Placeholder = "Search pages..."
	input.CharLimit = 128
	input.Width = 48
	input.Prompt = "⌕ "

	return &SearchDialog{
		searcher: searcher,
		limit:    limit,
		debounce: searchDebounce,
		input:    input,
	}
}

// SetSize sets the dialog size.
func (d *SearchDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetSearcher replaces the search backend.
func (d *SearchDialog) SetSearcher(searcher search.Searcher) {
	d.searcher = searcher
}

// Open shows the dialog, searching within rootID.
func (d *SearchDialog) Open(rootID string) tea.Cmd {
	d.active = true
	d.rootID = rootID
	d.seq++
	d.loading = false
	d.err = nil
	d.results = nil
	d.cursor = 0
	d.input.SetValue("")
	d.input.Focus()
	return textinput.Blink
}

// Close hides the dialog.
func (d *SearchDialog) Close() {
	d.active = false
	d.seq++
	d.input.Blur()
}

// IsActive returns whether the dialog is shown.
func (d *SearchDialog) IsActive() bool {
	return d.active
}

// RootID returns the subtree being searched.
func (d *SearchDialog) RootID() string {
	return d.rootID
}

// Results returns the current results.
func (d *SearchDialog) Results() []search.Result {
	return d.results
}

// Update handles keys and search messages. A non-nil result means the
// dialog closed.
func (d *SearchDialog) Update(msg tea.Msg) (*SearchDialogResult, tea.Cmd) {
	if !d.active {
		return nil, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			d.Close()
			return &SearchDialogResult{Cancelled: true}, nil

		case "enter":
			if d.cursor < len(d.results) {
				id := d.results[d.cursor].BlockID
				d.Close()
				return &SearchDialogResult{BlockID: id}, nil
			}
			return nil, nil

		case "up", "ctrl+k":
			if d.cursor > 0 {
				d.cursor--
			}
			return nil, nil

		case "down", "ctrl+j":
			if d.cursor < len(d.results)-1 {
				d.cursor++
			}
			return nil, nil
		}

		before := d.input.Value()
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		if d.input.Value() == before {
			return nil, cmd
		}
		return nil, tea.Batch(cmd, d.schedule())

	case searchDebounceMsg:
		if msg.seq != d.seq {
			return nil, nil
		}
		return nil, d.run()

	case SearchResultsMsg:
		if msg.seq != d.seq {
			return nil, nil
		}
		d.loading = false
		d.err = msg.Err
		d.results = msg.Results
		d.cursor = 0
		if msg.Err != nil {
			log.Warn("Search for %q failed: %v", msg.Query, msg.Err)
		}
		return nil, nil
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return nil, cmd
}

// schedule starts the debounce timer for the current input.
func (d *SearchDialog) schedule() tea.Cmd {
	d.seq++
	seq := d.seq
	if strings.TrimSpace(d.input.Value()) == "" {
		d.loading = false
		d.results = nil
		d.err = nil
		d.cursor = 0
		return nil
	}
	return tea.Tick(d.debounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

// run searches for the current input in the background.
func (d *SearchDialog) run() tea.Cmd {
	if d.searcher == nil {
		return nil
	}
	d.loading = true

	searcher := d.searcher
	seq := d.seq
	q := search.Query{Text: d.input.Value(), RootBlockID: d.rootID, Limit: d.limit}
	log.Debug("Searching %q under %s", q.Text, q.RootBlockID)

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()
		results, err := searcher.Search(ctx, q)
		return SearchResultsMsg{seq: seq, Query: q.Text, Results: results, Err: err}
	}
}

// View renders the dialog.
func (d *SearchDialog) View() string {
	if !d.active {
		return ""
	}
	s := theme.DefaultStyles()

	dialogWidth := 64
	if d.width > 0 && d.width < dialogWidth+6 {
		dialogWidth = max(30, d.width-6)
	}
	inner := dialogWidth - 6

	var b strings.Builder
	b.WriteString(s.DialogTitle.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString(d.input.View())
	b.WriteString("\n\n")

	query := strings.TrimSpace(d.input.Value())
	switch {
	case d.loading:
		b.WriteString(s.Muted.Render("Searching..."))
	case d.err != nil:
		b.WriteString(s.StatusError.Render(truncate("✗ "+d.err.Error(), inner)))
	case query == "":
		b.WriteString(s.Muted.Render("Type to search pages"))
	case len(d.results) == 0:
		b.WriteString(s.Muted.Render(fmt.Sprintf("No pages match %q", query)))
	default:
		b.WriteString(d.resultsView(s, inner))
	}

	b.WriteString("\n\n")
	b.WriteString(s.DialogHint.Render("↑↓: select | Enter: open | Esc: close"))

	return s.Dialog.Width(dialogWidth).Render(b.String())
}

func (d *SearchDialog) resultsView(s theme.Styles, width int) string {
	visible := len(d.results)
	if d.height > 0 {
		visible = min(visible, max(3, (d.height-12)/2))
	}
	start := 0
	if d.cursor >= visible {
		start = d.cursor - visible + 1
	}

	var lines []string
	for i := start; i < start+visible && i < len(d.results); i++ {
		r := d.results[i]
		title := truncate(label(DefaultIcon(r.Icon), r.Title), width-2)
		path := truncate(strings.Join(r.Path, " / "), width-2)
		if i == d.cursor {
			lines = append(lines, s.ListCursor.Render("▸ ")+s.ListSelected.Render(title))
		} else {
			lines = append(lines, "  "+s.ListItem.Render(title))
		}
		lines = append(lines, "  "+s.Muted.Render(path))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
